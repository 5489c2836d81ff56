package models

import "time"

// VentaItem is one line of a sale. Nombre and Price are snapshots taken at
// sale time; ProductID is an informational reference checked against the
// productos table only while the sale is being registered.
type VentaItem struct {
	ProductID string  `json:"productId" db:"product_id"`
	Nombre    string  `json:"nombre" db:"nombre"`
	Price     float64 `json:"price" db:"price"`
	Quantity  int     `json:"quantity" db:"quantity"`
}

// Venta is a front-desk product sale. Total is caller-supplied and is not
// reconciled against the line items.
type Venta struct {
	ID            string      `json:"id" db:"id"`
	ClienteID     string      `json:"clienteId" db:"cliente_id"`
	ClienteNombre *string     `json:"clienteNombre,omitempty" db:"cliente_nombre"`
	Productos     []VentaItem `json:"productos"`
	Total         float64     `json:"total" db:"total"`
	Fecha         time.Time   `json:"fecha" db:"fecha"`
}
