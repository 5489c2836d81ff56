package models

// Asistencia records a single class attendance. ClienteID is an
// informational reference, not an enforced relation.
type Asistencia struct {
	ID                   string  `json:"id" db:"id"`
	ClienteID            string  `json:"clienteId" db:"cliente_id"`
	Fecha                string  `json:"fecha" db:"fecha"`
	Instructor           string  `json:"instructor" db:"instructor"`
	Horario              string  `json:"horario" db:"horario"`
	MontoCobrado         float64 `json:"montoCobrado" db:"monto_cobrado"`
	EsSegundaClaseDelDia bool    `json:"esSegundaClaseDelDia" db:"es_segunda_clase_del_dia"`
}

// AsistenciaUpdate carries the fields of a partial update. Nil fields are
// left untouched.
type AsistenciaUpdate struct {
	ClienteID            *string  `json:"clienteId"`
	Fecha                *string  `json:"fecha"`
	Instructor           *string  `json:"instructor"`
	Horario              *string  `json:"horario"`
	MontoCobrado         *float64 `json:"montoCobrado"`
	EsSegundaClaseDelDia *bool    `json:"esSegundaClaseDelDia"`
}
