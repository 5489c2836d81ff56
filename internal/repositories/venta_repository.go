package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// VentaRepository defines the interface for venta-related database operations.
type VentaRepository interface {
	CreateVenta(executor SQLExecutor, venta *models.Venta) error
	GetVentas() ([]models.Venta, error)
	GetVentaByID(id string) (*models.Venta, error)
	DeleteVenta(executor SQLExecutor, id string) error
}

type ventaRepository struct {
	db *sql.DB
}

// NewVentaRepository creates a new instance of VentaRepository.
func NewVentaRepository(db *sql.DB) VentaRepository {
	return &ventaRepository{db: db}
}

// CreateVenta inserts the venta header and its line items. Item order is
// preserved through the posicion column.
func (r *ventaRepository) CreateVenta(executor SQLExecutor, venta *models.Venta) error {
	venta.ID = uuid.NewString()
	if venta.Fecha.IsZero() {
		venta.Fecha = time.Now()
	}

	var clienteNombre sql.NullString
	if venta.ClienteNombre != nil {
		clienteNombre = sql.NullString{String: *venta.ClienteNombre, Valid: true}
	}

	query := `INSERT INTO ventas (id, cliente_id, cliente_nombre, total, fecha)
	          VALUES ($1, $2, $3, $4, $5)`
	if _, err := executor.Exec(query, venta.ID, venta.ClienteID, clienteNombre, venta.Total, venta.Fecha); err != nil {
		return fmt.Errorf("%w: creating venta: %v", ErrDatabaseError, err)
	}

	itemQuery := `INSERT INTO venta_items (venta_id, posicion, product_id, nombre, price, quantity)
	              VALUES ($1, $2, $3, $4, $5, $6)`
	for i, item := range venta.Productos {
		if _, err := executor.Exec(itemQuery, venta.ID, i, item.ProductID, item.Nombre, item.Price, item.Quantity); err != nil {
			return fmt.Errorf("%w: creating venta item %d: %v", ErrDatabaseError, i, err)
		}
	}
	return nil
}

func (r *ventaRepository) GetVentas() ([]models.Venta, error) {
	ventas := []models.Venta{}
	query := `SELECT id, cliente_id, cliente_nombre, total, fecha FROM ventas ORDER BY fecha DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying ventas: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	index := map[string]int{}
	for rows.Next() {
		var venta models.Venta
		var clienteNombre sql.NullString
		if err := rows.Scan(&venta.ID, &venta.ClienteID, &clienteNombre, &venta.Total, &venta.Fecha); err != nil {
			return nil, fmt.Errorf("%w: scanning venta: %v", ErrDatabaseError, err)
		}
		if clienteNombre.Valid {
			venta.ClienteNombre = &clienteNombre.String
		}
		venta.Productos = []models.VentaItem{}
		index[venta.ID] = len(ventas)
		ventas = append(ventas, venta)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating venta rows: %v", ErrDatabaseError, err)
	}

	itemRows, err := r.db.Query(`SELECT venta_id, product_id, nombre, price, quantity FROM venta_items ORDER BY venta_id, posicion`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying venta items: %v", ErrDatabaseError, err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var ventaID string
		var item models.VentaItem
		if err := itemRows.Scan(&ventaID, &item.ProductID, &item.Nombre, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("%w: scanning venta item: %v", ErrDatabaseError, err)
		}
		if i, ok := index[ventaID]; ok {
			ventas[i].Productos = append(ventas[i].Productos, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating venta item rows: %v", ErrDatabaseError, err)
	}

	return ventas, nil
}

func (r *ventaRepository) GetVentaByID(id string) (*models.Venta, error) {
	venta := &models.Venta{}
	var clienteNombre sql.NullString
	query := `SELECT id, cliente_id, cliente_nombre, total, fecha FROM ventas WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&venta.ID, &venta.ClienteID, &clienteNombre, &venta.Total, &venta.Fecha)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting venta %s: %v", ErrDatabaseError, id, err)
	}
	if clienteNombre.Valid {
		venta.ClienteNombre = &clienteNombre.String
	}

	venta.Productos = []models.VentaItem{}
	rows, err := r.db.Query(`SELECT product_id, nombre, price, quantity FROM venta_items WHERE venta_id = $1 ORDER BY posicion`, id)
	if err != nil {
		return nil, fmt.Errorf("%w: querying items for venta %s: %v", ErrDatabaseError, id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.VentaItem
		if err := rows.Scan(&item.ProductID, &item.Nombre, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("%w: scanning item for venta %s: %v", ErrDatabaseError, id, err)
		}
		venta.Productos = append(venta.Productos, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating items for venta %s: %v", ErrDatabaseError, id, err)
	}

	return venta, nil
}

func (r *ventaRepository) DeleteVenta(executor SQLExecutor, id string) error {
	if _, err := executor.Exec(`DELETE FROM venta_items WHERE venta_id = $1`, id); err != nil {
		return fmt.Errorf("%w: deleting items for venta %s: %v", ErrDatabaseError, id, err)
	}
	result, err := executor.Exec(`DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting venta %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting venta %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
