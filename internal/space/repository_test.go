package space

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"roomly/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(mockDB, "postgres")
	return NewRepository(sqlxDB), mock, func() { mockDB.Close() }
}

func spaceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "capacity", "equipped", "equipment_count", "created_at"})
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("INSERT INTO spaces").
		WithArgs("Lab 2", 24, true, 12).
		WillReturnRows(spaceRows().AddRow(1, "Lab 2", 24, true, 12, time.Now()))

	sp, err := repo.Create(context.Background(), "Lab 2", 24, true, 12)

	require.NoError(t, err)
	assert.Equal(t, 1, sp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate_DuplicateName(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("INSERT INTO spaces").
		WithArgs("Room 101", 30, false, 0).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "spaces_name_key"})

	_, err := repo.Create(context.Background(), "Room 101", 30, false, 0)

	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRepositoryGetByID_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM spaces").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRepositoryList_Filtered(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM spaces").
		WithArgs(20, true).
		WillReturnRows(spaceRows().AddRow(1, "Lab 2", 24, true, 12, time.Now()))

	spaces, err := repo.List(context.Background(), ListFilter{MinCapacity: 20, EquippedOnly: true})

	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "Lab 2", spaces[0].Name)
}

func TestRepositoryUpdate_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectQuery("UPDATE spaces").
		WithArgs(99, "Lab 2", 24, true, 12).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), 99, "Lab 2", 24, true, 12)

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRepositoryDelete_NotFound(t *testing.T) {
	repo, mock, closeDB := newMockRepo(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM spaces").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
