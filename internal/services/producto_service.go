package services

import (
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
)

// ErrProductoNotFound is returned when the referenced producto does not exist.
var ErrProductoNotFound = errors.New("producto no encontrado")

// UpdateStockRequest is used by the PUT and PATCH producto routes; both set
// stock only.
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// ProductoService exposes product CRUD and stock overwrite.
type ProductoService interface {
	CreateProducto(producto *models.Producto) error
	GetProductos() ([]models.Producto, error)
	GetProductoByID(id string) (*models.Producto, error)
	SetStock(id string, stock int) (*models.Producto, error)
}

type productoService struct {
	productoRepo repositories.ProductoRepository
	store        repositories.DB
}

// NewProductoService creates a new instance of ProductoService.
func NewProductoService(pr repositories.ProductoRepository, store repositories.DB) ProductoService {
	return &productoService{productoRepo: pr, store: store}
}

func (s *productoService) CreateProducto(producto *models.Producto) error {
	if err := s.productoRepo.CreateProducto(s.store, producto); err != nil {
		return fmt.Errorf("failed to create producto: %w", err)
	}
	return nil
}

func (s *productoService) GetProductos() ([]models.Producto, error) {
	productos, err := s.productoRepo.GetProductos()
	if err != nil {
		return nil, fmt.Errorf("failed to get productos: %w", err)
	}
	return productos, nil
}

func (s *productoService) GetProductoByID(id string) (*models.Producto, error) {
	producto, err := s.productoRepo.GetProductoByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductoNotFound
		}
		return nil, fmt.Errorf("failed to get producto %s: %w", id, err)
	}
	return producto, nil
}

func (s *productoService) SetStock(id string, stock int) (*models.Producto, error) {
	producto, err := s.productoRepo.SetStock(s.store, id, stock)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductoNotFound
		}
		return nil, fmt.Errorf("failed to set stock for producto %s: %w", id, err)
	}
	return producto, nil
}
