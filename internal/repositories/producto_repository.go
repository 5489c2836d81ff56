package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// ProductoRepository defines the interface for producto-related database operations.
type ProductoRepository interface {
	CreateProducto(executor SQLExecutor, producto *models.Producto) error
	GetProductos() ([]models.Producto, error)
	GetProductoByID(id string) (*models.Producto, error)
	SetStock(executor SQLExecutor, id string, stock int) (*models.Producto, error)
	DecrementStock(executor SQLExecutor, id string, cantidad int) (int, error)
}

type productoRepository struct {
	db *sql.DB
}

// NewProductoRepository creates a new instance of ProductoRepository.
func NewProductoRepository(db *sql.DB) ProductoRepository {
	return &productoRepository{db: db}
}

func (r *productoRepository) CreateProducto(executor SQLExecutor, producto *models.Producto) error {
	producto.ID = uuid.NewString()
	query := `INSERT INTO productos (id, nombre, precio, stock) VALUES ($1, $2, $3, $4)`
	_, err := executor.Exec(query, producto.ID, producto.Nombre, producto.Precio, producto.Stock)
	if err != nil {
		return fmt.Errorf("%w: creating producto: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *productoRepository) GetProductos() ([]models.Producto, error) {
	productos := []models.Producto{}
	query := `SELECT id, nombre, precio, stock FROM productos ORDER BY nombre ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying productos: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var producto models.Producto
		if err := rows.Scan(&producto.ID, &producto.Nombre, &producto.Precio, &producto.Stock); err != nil {
			return nil, fmt.Errorf("%w: scanning producto: %v", ErrDatabaseError, err)
		}
		productos = append(productos, producto)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating producto rows: %v", ErrDatabaseError, err)
	}

	return productos, nil
}

func (r *productoRepository) GetProductoByID(id string) (*models.Producto, error) {
	producto := &models.Producto{}
	query := `SELECT id, nombre, precio, stock FROM productos WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&producto.ID, &producto.Nombre, &producto.Precio, &producto.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting producto %s: %v", ErrDatabaseError, id, err)
	}
	return producto, nil
}

// SetStock overwrites the stock count and returns the updated row. Both the
// PUT and PATCH producto routes funnel into this.
func (r *productoRepository) SetStock(executor SQLExecutor, id string, stock int) (*models.Producto, error) {
	producto := &models.Producto{}
	query := `UPDATE productos SET stock = $1 WHERE id = $2 RETURNING id, nombre, precio, stock`
	err := executor.QueryRow(query, stock, id).Scan(&producto.ID, &producto.Nombre, &producto.Precio, &producto.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: setting stock for producto %s: %v", ErrDatabaseError, id, err)
	}
	return producto, nil
}

// DecrementStock subtracts cantidad only when enough stock remains; the check
// and the write happen in a single statement, so concurrent sales cannot
// jointly oversell a product. Returns the new stock level. When the product
// holds less than cantidad it returns the current stock level together with
// ErrInsufficientStock.
func (r *productoRepository) DecrementStock(executor SQLExecutor, id string, cantidad int) (int, error) {
	var newStock int
	query := `UPDATE productos SET stock = stock - $1 WHERE id = $2 AND stock >= $1 RETURNING stock`
	err := executor.QueryRow(query, cantidad, id).Scan(&newStock)
	if err == nil {
		return newStock, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: decrementing stock for producto %s: %v", ErrDatabaseError, id, err)
	}

	// The update matched no row: either the product is gone or its stock is
	// below cantidad. Disambiguate with a plain read.
	var currentStock int
	checkErr := executor.QueryRow(`SELECT stock FROM productos WHERE id = $1`, id).Scan(&currentStock)
	if errors.Is(checkErr, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if checkErr != nil {
		return 0, fmt.Errorf("%w: checking stock for producto %s: %v", ErrDatabaseError, id, checkErr)
	}
	return currentStock, ErrInsufficientStock
}
