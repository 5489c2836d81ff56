package services

import (
	"fmt"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"
)

// ClienteService exposes client registration and listing.
type ClienteService interface {
	CreateCliente(cliente *models.Cliente) error
	GetClientes() ([]models.Cliente, error)
}

type clienteService struct {
	clienteRepo repositories.ClienteRepository
	store       repositories.DB
}

// NewClienteService creates a new instance of ClienteService.
func NewClienteService(cr repositories.ClienteRepository, store repositories.DB) ClienteService {
	return &clienteService{clienteRepo: cr, store: store}
}

func (s *clienteService) CreateCliente(cliente *models.Cliente) error {
	if err := s.clienteRepo.CreateCliente(s.store, cliente); err != nil {
		return fmt.Errorf("failed to create cliente: %w", err)
	}
	return nil
}

func (s *clienteService) GetClientes() ([]models.Cliente, error) {
	clientes, err := s.clienteRepo.GetClientes()
	if err != nil {
		return nil, fmt.Errorf("failed to get clientes: %w", err)
	}
	return clientes, nil
}
