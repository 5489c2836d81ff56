package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// AsistenciaRepository defines the interface for asistencia-related database operations.
type AsistenciaRepository interface {
	CreateAsistencia(executor SQLExecutor, asistencia *models.Asistencia) error
	GetAsistencias() ([]models.Asistencia, error)
	UpdateAsistencia(executor SQLExecutor, id string, upd models.AsistenciaUpdate) (*models.Asistencia, error)
	DeleteAsistencia(executor SQLExecutor, id string) error
}

type asistenciaRepository struct {
	db *sql.DB
}

// NewAsistenciaRepository creates a new instance of AsistenciaRepository.
func NewAsistenciaRepository(db *sql.DB) AsistenciaRepository {
	return &asistenciaRepository{db: db}
}

func (r *asistenciaRepository) CreateAsistencia(executor SQLExecutor, asistencia *models.Asistencia) error {
	asistencia.ID = uuid.NewString()
	query := `INSERT INTO asistencias (id, cliente_id, fecha, instructor, horario, monto_cobrado, es_segunda_clase_del_dia)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := executor.Exec(query,
		asistencia.ID, asistencia.ClienteID, asistencia.Fecha, asistencia.Instructor,
		asistencia.Horario, asistencia.MontoCobrado, asistencia.EsSegundaClaseDelDia,
	)
	if err != nil {
		return fmt.Errorf("%w: creating asistencia: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *asistenciaRepository) GetAsistencias() ([]models.Asistencia, error) {
	asistencias := []models.Asistencia{}
	query := `SELECT id, cliente_id, fecha, instructor, horario, monto_cobrado, es_segunda_clase_del_dia
	          FROM asistencias ORDER BY fecha ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying asistencias: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var asistencia models.Asistencia
		if err := rows.Scan(
			&asistencia.ID, &asistencia.ClienteID, &asistencia.Fecha, &asistencia.Instructor,
			&asistencia.Horario, &asistencia.MontoCobrado, &asistencia.EsSegundaClaseDelDia,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning asistencia: %v", ErrDatabaseError, err)
		}
		asistencias = append(asistencias, asistencia)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating asistencia rows: %v", ErrDatabaseError, err)
	}

	return asistencias, nil
}

// UpdateAsistencia applies a partial merge of the provided fields and returns
// the updated row.
func (r *asistenciaRepository) UpdateAsistencia(executor SQLExecutor, id string, upd models.AsistenciaUpdate) (*models.Asistencia, error) {
	var assignments []string
	var args []interface{}
	argCount := 1

	addAssignment := func(column string, value interface{}) {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if upd.ClienteID != nil {
		addAssignment("cliente_id", *upd.ClienteID)
	}
	if upd.Fecha != nil {
		addAssignment("fecha", *upd.Fecha)
	}
	if upd.Instructor != nil {
		addAssignment("instructor", *upd.Instructor)
	}
	if upd.Horario != nil {
		addAssignment("horario", *upd.Horario)
	}
	if upd.MontoCobrado != nil {
		addAssignment("monto_cobrado", *upd.MontoCobrado)
	}
	if upd.EsSegundaClaseDelDia != nil {
		addAssignment("es_segunda_clase_del_dia", *upd.EsSegundaClaseDelDia)
	}

	if len(assignments) == 0 {
		return r.getAsistenciaByID(id)
	}

	query := fmt.Sprintf(`UPDATE asistencias SET %s WHERE id = $%d
	          RETURNING id, cliente_id, fecha, instructor, horario, monto_cobrado, es_segunda_clase_del_dia`,
		strings.Join(assignments, ", "), argCount)
	args = append(args, id)

	asistencia := &models.Asistencia{}
	err := executor.QueryRow(query, args...).Scan(
		&asistencia.ID, &asistencia.ClienteID, &asistencia.Fecha, &asistencia.Instructor,
		&asistencia.Horario, &asistencia.MontoCobrado, &asistencia.EsSegundaClaseDelDia,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating asistencia %s: %v", ErrDatabaseError, id, err)
	}
	return asistencia, nil
}

func (r *asistenciaRepository) getAsistenciaByID(id string) (*models.Asistencia, error) {
	asistencia := &models.Asistencia{}
	query := `SELECT id, cliente_id, fecha, instructor, horario, monto_cobrado, es_segunda_clase_del_dia
	          FROM asistencias WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&asistencia.ID, &asistencia.ClienteID, &asistencia.Fecha, &asistencia.Instructor,
		&asistencia.Horario, &asistencia.MontoCobrado, &asistencia.EsSegundaClaseDelDia,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting asistencia %s: %v", ErrDatabaseError, id, err)
	}
	return asistencia, nil
}

func (r *asistenciaRepository) DeleteAsistencia(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM asistencias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting asistencia %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting asistencia %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
