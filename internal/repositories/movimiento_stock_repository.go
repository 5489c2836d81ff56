package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// MovimientoStockRepository defines the interface for the stock audit log.
// The log is append-only; there are no update or delete operations.
type MovimientoStockRepository interface {
	CreateMovimiento(executor SQLExecutor, movimiento *models.MovimientoStock) error
	GetMovimientos() ([]models.MovimientoStock, error)
}

type movimientoStockRepository struct {
	db *sql.DB
}

// NewMovimientoStockRepository creates a new instance of MovimientoStockRepository.
func NewMovimientoStockRepository(db *sql.DB) MovimientoStockRepository {
	return &movimientoStockRepository{db: db}
}

func (r *movimientoStockRepository) CreateMovimiento(executor SQLExecutor, movimiento *models.MovimientoStock) error {
	movimiento.ID = uuid.NewString()
	if movimiento.Fecha.IsZero() {
		movimiento.Fecha = time.Now()
	}
	query := `INSERT INTO movimientos_stock (id, producto_id, producto_nombre, accion, cantidad, stock_antes, stock_despues, fecha)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := executor.Exec(query,
		movimiento.ID, movimiento.ProductoID, movimiento.ProductoNombre, movimiento.Accion,
		movimiento.Cantidad, movimiento.StockAntes, movimiento.StockDespues, movimiento.Fecha,
	)
	if err != nil {
		return fmt.Errorf("%w: creating movimiento de stock: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *movimientoStockRepository) GetMovimientos() ([]models.MovimientoStock, error) {
	movimientos := []models.MovimientoStock{}
	query := `SELECT id, producto_id, producto_nombre, accion, cantidad, stock_antes, stock_despues, fecha
	          FROM movimientos_stock ORDER BY fecha DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying movimientos de stock: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var movimiento models.MovimientoStock
		if err := rows.Scan(
			&movimiento.ID, &movimiento.ProductoID, &movimiento.ProductoNombre, &movimiento.Accion,
			&movimiento.Cantidad, &movimiento.StockAntes, &movimiento.StockDespues, &movimiento.Fecha,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning movimiento de stock: %v", ErrDatabaseError, err)
		}
		movimientos = append(movimientos, movimiento)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating movimiento rows: %v", ErrDatabaseError, err)
	}

	return movimientos, nil
}
