package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// GastoRepository defines the interface for gasto-related database operations.
type GastoRepository interface {
	CreateGasto(executor SQLExecutor, gasto *models.Gasto) error
	GetGastos() ([]models.Gasto, error)
	UpdateGasto(executor SQLExecutor, id string, upd models.GastoUpdate) (*models.Gasto, error)
	DeleteGasto(executor SQLExecutor, id string) error
}

type gastoRepository struct {
	db *sql.DB
}

// NewGastoRepository creates a new instance of GastoRepository.
func NewGastoRepository(db *sql.DB) GastoRepository {
	return &gastoRepository{db: db}
}

func (r *gastoRepository) CreateGasto(executor SQLExecutor, gasto *models.Gasto) error {
	gasto.ID = uuid.NewString()

	var profesor sql.NullString
	if gasto.Profesor != nil {
		profesor = sql.NullString{String: *gasto.Profesor, Valid: true}
	}

	query := `INSERT INTO gastos (id, categoria, descripcion, profesor, monto, fecha)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := executor.Exec(query, gasto.ID, gasto.Categoria, gasto.Descripcion, profesor, gasto.Monto, gasto.Fecha)
	if err != nil {
		return fmt.Errorf("%w: creating gasto: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *gastoRepository) GetGastos() ([]models.Gasto, error) {
	gastos := []models.Gasto{}
	query := `SELECT id, categoria, descripcion, profesor, monto, fecha FROM gastos ORDER BY fecha DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying gastos: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var gasto models.Gasto
		var profesor sql.NullString
		if err := rows.Scan(&gasto.ID, &gasto.Categoria, &gasto.Descripcion, &profesor, &gasto.Monto, &gasto.Fecha); err != nil {
			return nil, fmt.Errorf("%w: scanning gasto: %v", ErrDatabaseError, err)
		}
		if profesor.Valid {
			gasto.Profesor = &profesor.String
		}
		gastos = append(gastos, gasto)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating gasto rows: %v", ErrDatabaseError, err)
	}

	return gastos, nil
}

// UpdateGasto applies a partial merge of the provided fields and returns the
// updated row.
func (r *gastoRepository) UpdateGasto(executor SQLExecutor, id string, upd models.GastoUpdate) (*models.Gasto, error) {
	var assignments []string
	var args []interface{}
	argCount := 1

	addAssignment := func(column string, value interface{}) {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if upd.Categoria != nil {
		addAssignment("categoria", *upd.Categoria)
	}
	if upd.Descripcion != nil {
		addAssignment("descripcion", *upd.Descripcion)
	}
	if upd.Profesor != nil {
		addAssignment("profesor", *upd.Profesor)
	}
	if upd.Monto != nil {
		addAssignment("monto", *upd.Monto)
	}
	if upd.Fecha != nil {
		addAssignment("fecha", *upd.Fecha)
	}

	if len(assignments) == 0 {
		return r.getGastoByID(id)
	}

	query := fmt.Sprintf(`UPDATE gastos SET %s WHERE id = $%d
	          RETURNING id, categoria, descripcion, profesor, monto, fecha`,
		strings.Join(assignments, ", "), argCount)
	args = append(args, id)

	gasto := &models.Gasto{}
	var profesor sql.NullString
	err := executor.QueryRow(query, args...).Scan(&gasto.ID, &gasto.Categoria, &gasto.Descripcion, &profesor, &gasto.Monto, &gasto.Fecha)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating gasto %s: %v", ErrDatabaseError, id, err)
	}
	if profesor.Valid {
		gasto.Profesor = &profesor.String
	}
	return gasto, nil
}

func (r *gastoRepository) getGastoByID(id string) (*models.Gasto, error) {
	gasto := &models.Gasto{}
	var profesor sql.NullString
	query := `SELECT id, categoria, descripcion, profesor, monto, fecha FROM gastos WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&gasto.ID, &gasto.Categoria, &gasto.Descripcion, &profesor, &gasto.Monto, &gasto.Fecha)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting gasto %s: %v", ErrDatabaseError, id, err)
	}
	if profesor.Valid {
		gasto.Profesor = &profesor.String
	}
	return gasto, nil
}

func (r *gastoRepository) DeleteGasto(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting gasto %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting gasto %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
