package handlers

import (
	"errors"
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GastoHandler holds the gasto service.
type GastoHandler struct {
	gastoService services.GastoService
}

// NewGastoHandler creates a new GastoHandler.
func NewGastoHandler(gs services.GastoService) *GastoHandler {
	return &GastoHandler{gastoService: gs}
}

// CreateGasto records an expense.
func (h *GastoHandler) CreateGasto(c *gin.Context) {
	var gasto models.Gasto
	if err := c.ShouldBindJSON(&gasto); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de gasto inválidos: "+err.Error())
		return
	}

	if err := h.gastoService.CreateGasto(&gasto); err != nil {
		utils.LogError(err, "CreateGasto: error from gastoService.CreateGasto")
		utils.RespondError(c, http.StatusInternalServerError, "Error al registrar gasto")
		return
	}
	c.JSON(http.StatusOK, gasto)
}

// GetGastos lists expenses, newest first.
func (h *GastoHandler) GetGastos(c *gin.Context) {
	gastos, err := h.gastoService.GetGastos()
	if err != nil {
		utils.LogError(err, "GetGastos: error from gastoService.GetGastos")
		utils.RespondError(c, http.StatusInternalServerError, "Error al obtener gastos")
		return
	}
	c.JSON(http.StatusOK, gastos)
}

// UpdateGasto applies a partial update and returns the updated record.
func (h *GastoHandler) UpdateGasto(c *gin.Context) {
	id := c.Param("id")

	var upd models.GastoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de gasto inválidos: "+err.Error())
		return
	}

	gasto, err := h.gastoService.UpdateGasto(id, upd)
	if err != nil {
		if errors.Is(err, services.ErrGastoNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Gasto no encontrado")
			return
		}
		utils.LogError(err, "UpdateGasto: error updating gasto "+id)
		utils.RespondError(c, http.StatusInternalServerError, "Error al actualizar gasto")
		return
	}
	c.JSON(http.StatusOK, gasto)
}

// DeleteGasto removes an expense.
func (h *GastoHandler) DeleteGasto(c *gin.Context) {
	id := c.Param("id")

	if err := h.gastoService.DeleteGasto(id); err != nil {
		if errors.Is(err, services.ErrGastoNotFound) {
			utils.RespondFailure(c, http.StatusNotFound, "Gasto no encontrado")
			return
		}
		utils.LogError(err, "DeleteGasto: error deleting gasto "+id)
		utils.RespondFailure(c, http.StatusInternalServerError, "Error al eliminar gasto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
