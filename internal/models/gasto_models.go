package models

import "time"

// Gasto is a studio expense. Fecha is required and has no default.
type Gasto struct {
	ID          string    `json:"id" db:"id"`
	Categoria   string    `json:"categoria" db:"categoria" binding:"required"`
	Descripcion string    `json:"descripcion" db:"descripcion" binding:"required"`
	Profesor    *string   `json:"profesor,omitempty" db:"profesor"`
	Monto       float64   `json:"monto" db:"monto"`
	Fecha       time.Time `json:"fecha" db:"fecha" binding:"required"`
}

// GastoUpdate carries the fields of a partial update. Nil fields are left
// untouched.
type GastoUpdate struct {
	Categoria   *string    `json:"categoria"`
	Descripcion *string    `json:"descripcion"`
	Profesor    *string    `json:"profesor"`
	Monto       *float64   `json:"monto"`
	Fecha       *time.Time `json:"fecha"`
}
