package models

import "time"

// Stock movement actions.
const (
	AccionAdd    = "add"
	AccionReduce = "reduce"
)

// MovimientoStock is an append-only audit entry for a manual stock change.
// The sale flow does not write these; they are caller-driven.
type MovimientoStock struct {
	ID             string    `json:"id" db:"id"`
	ProductoID     string    `json:"productoId" db:"producto_id" binding:"required"`
	ProductoNombre string    `json:"productoNombre" db:"producto_nombre" binding:"required"`
	Accion         string    `json:"accion" db:"accion" binding:"required,oneof=add reduce"`
	Cantidad       int       `json:"cantidad" db:"cantidad"`
	StockAntes     int       `json:"stockAntes" db:"stock_antes"`
	StockDespues   int       `json:"stockDespues" db:"stock_despues"`
	Fecha          time.Time `json:"fecha" db:"fecha"`
}
