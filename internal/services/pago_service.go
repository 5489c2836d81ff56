package services

import (
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
)

// ErrPagoNotFound is returned when the referenced pago does not exist.
var ErrPagoNotFound = errors.New("pago no encontrado")

// PagoService exposes payment CRUD.
type PagoService interface {
	CreatePago(pago *models.Pago) error
	GetPagos() ([]models.Pago, error)
	DeletePago(id string) error
}

type pagoService struct {
	pagoRepo repositories.PagoRepository
	store    repositories.DB
}

// NewPagoService creates a new instance of PagoService.
func NewPagoService(pr repositories.PagoRepository, store repositories.DB) PagoService {
	return &pagoService{pagoRepo: pr, store: store}
}

func (s *pagoService) CreatePago(pago *models.Pago) error {
	if err := s.pagoRepo.CreatePago(s.store, pago); err != nil {
		return fmt.Errorf("failed to create pago: %w", err)
	}
	return nil
}

func (s *pagoService) GetPagos() ([]models.Pago, error) {
	pagos, err := s.pagoRepo.GetPagos()
	if err != nil {
		return nil, fmt.Errorf("failed to get pagos: %w", err)
	}
	return pagos, nil
}

func (s *pagoService) DeletePago(id string) error {
	if err := s.pagoRepo.DeletePago(s.store, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPagoNotFound
		}
		return fmt.Errorf("failed to delete pago %s: %w", id, err)
	}
	return nil
}
