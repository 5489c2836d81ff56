package repositories

import (
	"database/sql"
	"fmt"

	"fitness_club_backend/internal/models"

	"github.com/google/uuid"
)

// ClienteRepository defines the interface for cliente-related database operations.
type ClienteRepository interface {
	CreateCliente(executor SQLExecutor, cliente *models.Cliente) error
	GetClientes() ([]models.Cliente, error)
}

type clienteRepository struct {
	db *sql.DB
}

// NewClienteRepository creates a new instance of ClienteRepository.
func NewClienteRepository(db *sql.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) CreateCliente(executor SQLExecutor, cliente *models.Cliente) error {
	cliente.ID = uuid.NewString()
	query := `INSERT INTO clientes (id, nombre, tipo_membresia, fecha_registro)
	          VALUES ($1, $2, $3, $4)`
	_, err := executor.Exec(query, cliente.ID, cliente.Nombre, cliente.TipoMembresia, cliente.FechaRegistro)
	if err != nil {
		return fmt.Errorf("%w: creating cliente: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *clienteRepository) GetClientes() ([]models.Cliente, error) {
	clientes := []models.Cliente{}
	query := `SELECT id, nombre, tipo_membresia, fecha_registro FROM clientes ORDER BY nombre ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clientes: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cliente models.Cliente
		if err := rows.Scan(&cliente.ID, &cliente.Nombre, &cliente.TipoMembresia, &cliente.FechaRegistro); err != nil {
			return nil, fmt.Errorf("%w: scanning cliente: %v", ErrDatabaseError, err)
		}
		clientes = append(clientes, cliente)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating cliente rows: %v", ErrDatabaseError, err)
	}

	return clientes, nil
}
