package models

// Cliente represents a registered gym member.
// fechaRegistro is kept as a plain string, matching what the frontend sends.
type Cliente struct {
	ID            string `json:"id" db:"id"`
	Nombre        string `json:"nombre" db:"nombre"`
	TipoMembresia string `json:"tipoMembresia" db:"tipo_membresia"`
	FechaRegistro string `json:"fechaRegistro" db:"fecha_registro"`
}
