package services

import (
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
)

// MovimientoStockService exposes the caller-driven stock audit log. Sales do
// not write entries here; the log stays decoupled from the sale flow.
type MovimientoStockService interface {
	CreateMovimiento(movimiento *models.MovimientoStock) error
	GetMovimientos() ([]models.MovimientoStock, error)
}

type movimientoStockService struct {
	movimientoRepo repositories.MovimientoStockRepository
	store          repositories.DB
}

// NewMovimientoStockService creates a new instance of MovimientoStockService.
func NewMovimientoStockService(mr repositories.MovimientoStockRepository, store repositories.DB) MovimientoStockService {
	return &movimientoStockService{movimientoRepo: mr, store: store}
}

func (s *movimientoStockService) CreateMovimiento(movimiento *models.MovimientoStock) error {
	if err := s.movimientoRepo.CreateMovimiento(s.store, movimiento); err != nil {
		return fmt.Errorf("failed to create movimiento de stock: %w", err)
	}
	return nil
}

func (s *movimientoStockService) GetMovimientos() ([]models.MovimientoStock, error) {
	movimientos, err := s.movimientoRepo.GetMovimientos()
	if err != nil {
		return nil, fmt.Errorf("failed to get movimientos de stock: %w", err)
	}
	return movimientos, nil
}
