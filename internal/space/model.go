package space

import "time"

type Space struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Capacity       int       `db:"capacity" json:"capacity"`
	Equipped       bool      `db:"equipped" json:"equipped"`
	EquipmentCount int       `db:"equipment_count" json:"equipment_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateSpaceRequest struct {
	Name           string `json:"name" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,min=1"`
	Equipped       bool   `json:"equipped"`
	EquipmentCount int    `json:"equipment_count" binding:"min=0"`
}

type UpdateSpaceRequest struct {
	Name           string `json:"name" binding:"required"`
	Capacity       int    `json:"capacity" binding:"required,min=1"`
	Equipped       bool   `json:"equipped"`
	EquipmentCount int    `json:"equipment_count" binding:"min=0"`
}

// ListFilter narrows the space listing. Zero values mean no filtering.
type ListFilter struct {
	MinCapacity  int
	EquippedOnly bool
}
