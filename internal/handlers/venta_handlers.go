package handlers

import (
	"errors"
	"net/http"

	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// VentaHandler holds the venta service.
type VentaHandler struct {
	ventaService services.VentaService
}

// NewVentaHandler creates a new VentaHandler.
func NewVentaHandler(vs services.VentaService) *VentaHandler {
	return &VentaHandler{ventaService: vs}
}

// CreateVenta registers a sale, decrementing product stock.
func (h *VentaHandler) CreateVenta(c *gin.Context) {
	var req services.CreateVentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de venta inválidos: "+err.Error())
		return
	}

	venta, err := h.ventaService.RegistrarVenta(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVentaVacia),
			errors.Is(err, services.ErrVentaInvalida),
			errors.Is(err, services.ErrStockInsuficiente):
			utils.RespondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrProductoNoEncontrado):
			utils.RespondError(c, http.StatusNotFound, err.Error())
		default:
			utils.LogError(err, "CreateVenta: error from ventaService.RegistrarVenta")
			utils.RespondError(c, http.StatusInternalServerError, "Error al registrar venta")
		}
		return
	}

	c.JSON(http.StatusCreated, venta)
}

// GetVentas lists sales, newest first.
func (h *VentaHandler) GetVentas(c *gin.Context) {
	ventas, err := h.ventaService.GetVentas()
	if err != nil {
		utils.LogError(err, "GetVentas: error from ventaService.GetVentas")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Error al obtener ventas",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ventas obtenidas correctamente",
		"total":   len(ventas),
		"ventas":  ventas,
	})
}

// DeleteVenta removes a sale and returns the deleted record.
func (h *VentaHandler) DeleteVenta(c *gin.Context) {
	id := c.Param("id")

	venta, err := h.ventaService.DeleteVenta(id)
	if err != nil {
		if errors.Is(err, services.ErrVentaNotFound) {
			utils.RespondFailure(c, http.StatusNotFound, "Venta no encontrada")
			return
		}
		utils.LogError(err, "DeleteVenta: error deleting venta "+id)
		utils.RespondFailure(c, http.StatusInternalServerError, "Error al eliminar venta")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Venta eliminada correctamente",
		"venta":   venta,
	})
}
