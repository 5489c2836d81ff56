package services

import (
	"errors"
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
)

// ErrAsistenciaNotFound is returned when the referenced asistencia does not exist.
var ErrAsistenciaNotFound = errors.New("asistencia no encontrada")

// AsistenciaService exposes attendance CRUD.
type AsistenciaService interface {
	CreateAsistencia(asistencia *models.Asistencia) error
	GetAsistencias() ([]models.Asistencia, error)
	UpdateAsistencia(id string, upd models.AsistenciaUpdate) (*models.Asistencia, error)
	DeleteAsistencia(id string) error
}

type asistenciaService struct {
	asistenciaRepo repositories.AsistenciaRepository
	store          repositories.DB
}

// NewAsistenciaService creates a new instance of AsistenciaService.
func NewAsistenciaService(ar repositories.AsistenciaRepository, store repositories.DB) AsistenciaService {
	return &asistenciaService{asistenciaRepo: ar, store: store}
}

func (s *asistenciaService) CreateAsistencia(asistencia *models.Asistencia) error {
	if err := s.asistenciaRepo.CreateAsistencia(s.store, asistencia); err != nil {
		return fmt.Errorf("failed to create asistencia: %w", err)
	}
	return nil
}

func (s *asistenciaService) GetAsistencias() ([]models.Asistencia, error) {
	asistencias, err := s.asistenciaRepo.GetAsistencias()
	if err != nil {
		return nil, fmt.Errorf("failed to get asistencias: %w", err)
	}
	return asistencias, nil
}

func (s *asistenciaService) UpdateAsistencia(id string, upd models.AsistenciaUpdate) (*models.Asistencia, error) {
	asistencia, err := s.asistenciaRepo.UpdateAsistencia(s.store, id, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAsistenciaNotFound
		}
		return nil, fmt.Errorf("failed to update asistencia %s: %w", id, err)
	}
	return asistencia, nil
}

func (s *asistenciaService) DeleteAsistencia(id string) error {
	if err := s.asistenciaRepo.DeleteAsistencia(s.store, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAsistenciaNotFound
		}
		return fmt.Errorf("failed to delete asistencia %s: %w", id, err)
	}
	return nil
}
