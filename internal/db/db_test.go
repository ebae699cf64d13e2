package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505", Constraint: "spaces_name_key"}

	assert.True(t, IsUniqueViolation(uniqueErr, ""))
	assert.True(t, IsUniqueViolation(uniqueErr, "spaces_name_key"))
	assert.False(t, IsUniqueViolation(uniqueErr, "users_email_key"))
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(nil, ""))
}

func TestIsUniqueViolation_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.True(t, IsUniqueViolation(wrapped, "users_email_key"))
}
