package handlers

import (
	"errors"
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PagoHandler holds the pago service.
type PagoHandler struct {
	pagoService services.PagoService
}

// NewPagoHandler creates a new PagoHandler.
func NewPagoHandler(ps services.PagoService) *PagoHandler {
	return &PagoHandler{pagoService: ps}
}

// CreatePago records a payment.
func (h *PagoHandler) CreatePago(c *gin.Context) {
	var pago models.Pago
	if err := c.ShouldBindJSON(&pago); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de pago inválidos: "+err.Error())
		return
	}

	if err := h.pagoService.CreatePago(&pago); err != nil {
		utils.LogError(err, "CreatePago: error from pagoService.CreatePago")
		utils.RespondError(c, http.StatusInternalServerError, "Error al registrar pago")
		return
	}
	c.JSON(http.StatusOK, pago)
}

// GetPagos lists all payments.
func (h *PagoHandler) GetPagos(c *gin.Context) {
	pagos, err := h.pagoService.GetPagos()
	if err != nil {
		utils.LogError(err, "GetPagos: error from pagoService.GetPagos")
		utils.RespondError(c, http.StatusInternalServerError, "Error al obtener pagos")
		return
	}
	c.JSON(http.StatusOK, pagos)
}

// DeletePago removes a payment.
func (h *PagoHandler) DeletePago(c *gin.Context) {
	id := c.Param("id")

	if err := h.pagoService.DeletePago(id); err != nil {
		if errors.Is(err, services.ErrPagoNotFound) {
			utils.RespondFailure(c, http.StatusNotFound, "Pago no encontrado")
			return
		}
		utils.LogError(err, "DeletePago: error deleting pago "+id)
		utils.RespondFailure(c, http.StatusInternalServerError, "Error al eliminar pago")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
