package handlers

import (
	"errors"
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProductoHandler holds the producto service.
type ProductoHandler struct {
	productoService services.ProductoService
}

// NewProductoHandler creates a new ProductoHandler.
func NewProductoHandler(ps services.ProductoService) *ProductoHandler {
	return &ProductoHandler{productoService: ps}
}

// CreateProducto adds a product to the inventory.
func (h *ProductoHandler) CreateProducto(c *gin.Context) {
	var producto models.Producto
	if err := c.ShouldBindJSON(&producto); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de producto inválidos: "+err.Error())
		return
	}

	if err := h.productoService.CreateProducto(&producto); err != nil {
		utils.LogError(err, "CreateProducto: error from productoService.CreateProducto")
		utils.RespondError(c, http.StatusInternalServerError, "Error al registrar producto")
		return
	}
	c.JSON(http.StatusCreated, producto)
}

// GetProductos lists the inventory.
func (h *ProductoHandler) GetProductos(c *gin.Context) {
	productos, err := h.productoService.GetProductos()
	if err != nil {
		utils.LogError(err, "GetProductos: error from productoService.GetProductos")
		utils.RespondError(c, http.StatusInternalServerError, "Error al obtener productos")
		return
	}
	c.JSON(http.StatusOK, productos)
}

// GetProductoByID fetches a single product.
func (h *ProductoHandler) GetProductoByID(c *gin.Context) {
	id := c.Param("id")

	producto, err := h.productoService.GetProductoByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductoNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Producto no encontrado")
			return
		}
		utils.LogError(err, "GetProductoByID: error fetching producto "+id)
		utils.RespondError(c, http.StatusInternalServerError, "Error al obtener producto")
		return
	}
	c.JSON(http.StatusOK, producto)
}

// UpdateStock overwrites a product's stock count. Both PUT and PATCH
// /productos/:id route here; they only ever set stock.
func (h *ProductoHandler) UpdateStock(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de stock inválidos: "+err.Error())
		return
	}

	producto, err := h.productoService.SetStock(id, *req.Stock)
	if err != nil {
		if errors.Is(err, services.ErrProductoNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Producto no encontrado")
			return
		}
		utils.LogError(err, "UpdateStock: error updating stock for producto "+id)
		utils.RespondError(c, http.StatusInternalServerError, "No se pudo actualizar el stock")
		return
	}
	c.JSON(http.StatusOK, producto)
}
