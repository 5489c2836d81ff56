package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MovimientoStockHandler holds the stock audit log service.
type MovimientoStockHandler struct {
	movimientoService services.MovimientoStockService
}

// NewMovimientoStockHandler creates a new MovimientoStockHandler.
func NewMovimientoStockHandler(ms services.MovimientoStockService) *MovimientoStockHandler {
	return &MovimientoStockHandler{movimientoService: ms}
}

// CreateMovimiento appends a stock audit entry.
func (h *MovimientoStockHandler) CreateMovimiento(c *gin.Context) {
	var movimiento models.MovimientoStock
	if err := c.ShouldBindJSON(&movimiento); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de movimiento inválidos: "+err.Error())
		return
	}

	if err := h.movimientoService.CreateMovimiento(&movimiento); err != nil {
		utils.LogError(err, "CreateMovimiento: error from movimientoService.CreateMovimiento")
		utils.RespondError(c, http.StatusInternalServerError, "Error al registrar movimiento")
		return
	}
	c.JSON(http.StatusOK, movimiento)
}

// GetMovimientos lists the stock history, newest first.
func (h *MovimientoStockHandler) GetMovimientos(c *gin.Context) {
	movimientos, err := h.movimientoService.GetMovimientos()
	if err != nil {
		utils.LogError(err, "GetMovimientos: error from movimientoService.GetMovimientos")
		utils.RespondError(c, http.StatusInternalServerError, "Error al obtener historial")
		return
	}
	c.JSON(http.StatusOK, movimientos)
}
