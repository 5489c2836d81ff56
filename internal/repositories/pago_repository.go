package repositories

import (
	"database/sql"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// PagoRepository defines the interface for pago-related database operations.
type PagoRepository interface {
	CreatePago(executor SQLExecutor, pago *models.Pago) error
	GetPagos() ([]models.Pago, error)
	DeletePago(executor SQLExecutor, id string) error
}

type pagoRepository struct {
	db *sql.DB
}

// NewPagoRepository creates a new instance of PagoRepository.
func NewPagoRepository(db *sql.DB) PagoRepository {
	return &pagoRepository{db: db}
}

func (r *pagoRepository) CreatePago(executor SQLExecutor, pago *models.Pago) error {
	pago.ID = uuid.NewString()
	query := `INSERT INTO pagos (id, cliente_id, tipo, monto, fecha, descripcion)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := executor.Exec(query, pago.ID, pago.ClienteID, pago.Tipo, pago.Monto, pago.Fecha, pago.Descripcion)
	if err != nil {
		return fmt.Errorf("%w: creating pago: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *pagoRepository) GetPagos() ([]models.Pago, error) {
	pagos := []models.Pago{}
	query := `SELECT id, cliente_id, tipo, monto, fecha, descripcion FROM pagos ORDER BY fecha ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying pagos: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var pago models.Pago
		if err := rows.Scan(&pago.ID, &pago.ClienteID, &pago.Tipo, &pago.Monto, &pago.Fecha, &pago.Descripcion); err != nil {
			return nil, fmt.Errorf("%w: scanning pago: %v", ErrDatabaseError, err)
		}
		pagos = append(pagos, pago)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating pago rows: %v", ErrDatabaseError, err)
	}

	return pagos, nil
}

func (r *pagoRepository) DeletePago(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting pago %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting pago %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
