package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClienteHandler holds the cliente service.
type ClienteHandler struct {
	clienteService services.ClienteService
}

// NewClienteHandler creates a new ClienteHandler.
func NewClienteHandler(cs services.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: cs}
}

// CreateCliente registers a new gym member.
func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	var cliente models.Cliente
	if err := c.ShouldBindJSON(&cliente); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de cliente inválidos: "+err.Error())
		return
	}

	if err := h.clienteService.CreateCliente(&cliente); err != nil {
		utils.LogError(err, "CreateCliente: error from clienteService.CreateCliente")
		utils.RespondError(c, http.StatusInternalServerError, "Error al registrar cliente")
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// GetClientes lists all registered members.
func (h *ClienteHandler) GetClientes(c *gin.Context) {
	clientes, err := h.clienteService.GetClientes()
	if err != nil {
		utils.LogError(err, "GetClientes: error from clienteService.GetClientes")
		utils.RespondError(c, http.StatusInternalServerError, "Error al obtener clientes")
		return
	}
	c.JSON(http.StatusOK, clientes)
}
