package models

// Pago represents a membership or class payment.
type Pago struct {
	ID          string  `json:"id" db:"id"`
	ClienteID   string  `json:"clienteId" db:"cliente_id"`
	Tipo        string  `json:"tipo" db:"tipo"`
	Monto       float64 `json:"monto" db:"monto"`
	Fecha       string  `json:"fecha" db:"fecha"`
	Descripcion string  `json:"descripcion" db:"descripcion"`
}
