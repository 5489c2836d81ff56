package models

// Producto is an inventory item sold at the front desk. Stock is kept
// non-negative procedurally by the sale flow, not by the schema.
type Producto struct {
	ID     string  `json:"id" db:"id"`
	Nombre string  `json:"nombre" db:"nombre" binding:"required"`
	Precio float64 `json:"precio" db:"precio"`
	Stock  int     `json:"stock" db:"stock"`
}
