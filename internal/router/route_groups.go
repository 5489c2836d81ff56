package router

import (
	"fitness_club_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClienteRoutes sets up the cliente routes.
func SetupClienteRoutes(engine *gin.Engine, clienteHandler *handlers.ClienteHandler) {
	clienteRoutes := engine.Group("/clientes")
	{
		clienteRoutes.GET("", clienteHandler.GetClientes)
		clienteRoutes.POST("", clienteHandler.CreateCliente)
	}
}

// SetupAsistenciaRoutes sets up the asistencia routes.
func SetupAsistenciaRoutes(engine *gin.Engine, asistenciaHandler *handlers.AsistenciaHandler) {
	asistenciaRoutes := engine.Group("/asistencias")
	{
		asistenciaRoutes.GET("", asistenciaHandler.GetAsistencias)
		asistenciaRoutes.POST("", asistenciaHandler.CreateAsistencia)
		asistenciaRoutes.PUT("/:id", asistenciaHandler.UpdateAsistencia)
		asistenciaRoutes.DELETE("/:id", asistenciaHandler.DeleteAsistencia)
	}
}

// SetupPagoRoutes sets up the pago routes.
func SetupPagoRoutes(engine *gin.Engine, pagoHandler *handlers.PagoHandler) {
	pagoRoutes := engine.Group("/pagos")
	{
		pagoRoutes.GET("", pagoHandler.GetPagos)
		pagoRoutes.POST("", pagoHandler.CreatePago)
		pagoRoutes.DELETE("/:id", pagoHandler.DeletePago)
	}
}

// SetupProductoRoutes sets up the producto routes. PUT and PATCH share a
// handler; both only ever set stock.
func SetupProductoRoutes(engine *gin.Engine, productoHandler *handlers.ProductoHandler) {
	productoRoutes := engine.Group("/productos")
	{
		productoRoutes.GET("", productoHandler.GetProductos)
		productoRoutes.POST("", productoHandler.CreateProducto)
		productoRoutes.GET("/:id", productoHandler.GetProductoByID)
		productoRoutes.PUT("/:id", productoHandler.UpdateStock)
		productoRoutes.PATCH("/:id", productoHandler.UpdateStock)
	}
}

// SetupVentaRoutes sets up the venta routes.
func SetupVentaRoutes(engine *gin.Engine, ventaHandler *handlers.VentaHandler) {
	ventaRoutes := engine.Group("/ventas")
	{
		ventaRoutes.GET("", ventaHandler.GetVentas)
		ventaRoutes.POST("", ventaHandler.CreateVenta)
		ventaRoutes.DELETE("/:id", ventaHandler.DeleteVenta)
	}
}

// SetupMovimientoStockRoutes sets up the stock history routes.
func SetupMovimientoStockRoutes(engine *gin.Engine, movimientoHandler *handlers.MovimientoStockHandler) {
	movimientoRoutes := engine.Group("/stock-movements")
	{
		movimientoRoutes.GET("", movimientoHandler.GetMovimientos)
		movimientoRoutes.POST("", movimientoHandler.CreateMovimiento)
	}
}

// SetupGastoRoutes sets up the gasto routes.
func SetupGastoRoutes(engine *gin.Engine, gastoHandler *handlers.GastoHandler) {
	gastoRoutes := engine.Group("/gastos")
	{
		gastoRoutes.GET("", gastoHandler.GetGastos)
		gastoRoutes.POST("", gastoHandler.CreateGasto)
		gastoRoutes.PUT("/:id", gastoHandler.UpdateGasto)
		gastoRoutes.DELETE("/:id", gastoHandler.DeleteGasto)
	}
}
