package services

import (
	"errors"
	"fmt"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
)

var (
	// ErrVentaVacia rejects a sale whose line-item list is empty.
	ErrVentaVacia = errors.New("No hay productos en la venta")
	// ErrProductoNoEncontrado is wrapped with the name of the missing product.
	ErrProductoNoEncontrado = errors.New("Producto no encontrado")
	// ErrStockInsuficiente is wrapped with the available vs requested quantities.
	ErrStockInsuficiente = errors.New("Stock insuficiente")
	// ErrVentaInvalida rejects malformed sale input, e.g. a non-positive quantity.
	ErrVentaInvalida = errors.New("Venta inválida")
	// ErrVentaNotFound is returned when the referenced venta does not exist.
	ErrVentaNotFound = errors.New("venta no encontrada")
)

// VentaItemRequest is one requested line item of a sale.
type VentaItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Nombre    string  `json:"nombre" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CreateVentaRequest is used for registering a new sale.
type CreateVentaRequest struct {
	ClienteID     string             `json:"clienteId" binding:"required"`
	ClienteNombre *string            `json:"clienteNombre"`
	Productos     []VentaItemRequest `json:"productos"`
	Total         float64            `json:"total"`
	Fecha         *time.Time         `json:"fecha"`
}

// VentaService exposes sale registration with stock decrement, plus listing
// and deletion.
type VentaService interface {
	RegistrarVenta(req CreateVentaRequest) (*models.Venta, error)
	GetVentas() ([]models.Venta, error)
	DeleteVenta(id string) (*models.Venta, error)
}

type ventaService struct {
	ventaRepo    repositories.VentaRepository
	productoRepo repositories.ProductoRepository
	store        repositories.DB
}

// NewVentaService creates a new instance of VentaService.
func NewVentaService(vr repositories.VentaRepository, pr repositories.ProductoRepository, store repositories.DB) VentaService {
	return &ventaService{
		ventaRepo:    vr,
		productoRepo: pr,
		store:        store,
	}
}

// RegistrarVenta validates every line item against current stock, then
// decrements stock and persists the venta inside one transaction. The first
// pass is read-only, so validation failures leave stock untouched; the
// decrements themselves are conditional updates, so a concurrent sale that
// drains a product between the two passes rolls the whole sale back instead
// of overselling.
func (s *ventaService) RegistrarVenta(req CreateVentaRequest) (*models.Venta, error) {
	if len(req.Productos) == 0 {
		return nil, ErrVentaVacia
	}

	for _, item := range req.Productos {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad inválida para %s", ErrVentaInvalida, item.Nombre)
		}
		producto, err := s.productoRepo.GetProductoByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductoNoEncontrado, item.Nombre)
			}
			return nil, fmt.Errorf("failed to fetch producto %s: %w", item.ProductID, err)
		}
		if producto.Stock < item.Quantity {
			return nil, fmt.Errorf("%w para %s. Disponible: %d, solicitado: %d",
				ErrStockInsuficiente, item.Nombre, producto.Stock, item.Quantity)
		}
	}

	tx, err := s.store.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range req.Productos {
		available, err := s.productoRepo.DecrementStock(tx, item.ProductID, item.Quantity)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductoNoEncontrado, item.Nombre)
			}
			if errors.Is(err, repositories.ErrInsufficientStock) {
				return nil, fmt.Errorf("%w para %s. Disponible: %d, solicitado: %d",
					ErrStockInsuficiente, item.Nombre, available, item.Quantity)
			}
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", item.Nombre, err)
		}
	}

	items := make([]models.VentaItem, 0, len(req.Productos))
	for _, item := range req.Productos {
		items = append(items, models.VentaItem{
			ProductID: item.ProductID,
			Nombre:    item.Nombre,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	venta := &models.Venta{
		ClienteID:     req.ClienteID,
		ClienteNombre: req.ClienteNombre,
		Productos:     items,
		Total:         req.Total,
	}
	if req.Fecha != nil {
		venta.Fecha = *req.Fecha
	}

	if err := s.ventaRepo.CreateVenta(tx, venta); err != nil {
		return nil, fmt.Errorf("failed to create venta record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit venta transaction: %w", err)
	}

	return venta, nil
}

func (s *ventaService) GetVentas() ([]models.Venta, error) {
	ventas, err := s.ventaRepo.GetVentas()
	if err != nil {
		return nil, fmt.Errorf("failed to get ventas: %w", err)
	}
	return ventas, nil
}

// DeleteVenta removes the venta and returns the deleted record. Stock is not
// restored; a cancelled sale is corrected through the stock routes.
func (s *ventaService) DeleteVenta(id string) (*models.Venta, error) {
	venta, err := s.ventaRepo.GetVentaByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVentaNotFound
		}
		return nil, fmt.Errorf("failed to fetch venta for deletion: %w", err)
	}

	tx, err := s.store.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.ventaRepo.DeleteVenta(tx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVentaNotFound
		}
		return nil, fmt.Errorf("failed to delete venta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit venta deletion: %w", err)
	}
	return venta, nil
}
