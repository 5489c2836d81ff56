package services

import (
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
)

// ErrGastoNotFound is returned when the referenced gasto does not exist.
var ErrGastoNotFound = errors.New("gasto no encontrado")

// GastoService exposes expense CRUD.
type GastoService interface {
	CreateGasto(gasto *models.Gasto) error
	GetGastos() ([]models.Gasto, error)
	UpdateGasto(id string, upd models.GastoUpdate) (*models.Gasto, error)
	DeleteGasto(id string) error
}

type gastoService struct {
	gastoRepo repositories.GastoRepository
	store     repositories.DB
}

// NewGastoService creates a new instance of GastoService.
func NewGastoService(gr repositories.GastoRepository, store repositories.DB) GastoService {
	return &gastoService{gastoRepo: gr, store: store}
}

func (s *gastoService) CreateGasto(gasto *models.Gasto) error {
	if err := s.gastoRepo.CreateGasto(s.store, gasto); err != nil {
		return fmt.Errorf("failed to create gasto: %w", err)
	}
	return nil
}

func (s *gastoService) GetGastos() ([]models.Gasto, error) {
	gastos, err := s.gastoRepo.GetGastos()
	if err != nil {
		return nil, fmt.Errorf("failed to get gastos: %w", err)
	}
	return gastos, nil
}

func (s *gastoService) UpdateGasto(id string, upd models.GastoUpdate) (*models.Gasto, error) {
	gasto, err := s.gastoRepo.UpdateGasto(s.store, id, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGastoNotFound
		}
		return nil, fmt.Errorf("failed to update gasto %s: %w", id, err)
	}
	return gasto, nil
}

func (s *gastoService) DeleteGasto(id string) error {
	if err := s.gastoRepo.DeleteGasto(s.store, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGastoNotFound
		}
		return fmt.Errorf("failed to delete gasto %s: %w", id, err)
	}
	return nil
}
