package router

import (
	"database/sql"

	"fitness_club_backend/internal/handlers"
	"fitness_club_backend/internal/repositories"
	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup wires repositories, services and handlers and registers every route.
// The database handle is passed in explicitly; nothing below this point
// reaches for global state.
func Setup(engine *gin.Engine, db *sql.DB) {
	store := repositories.NewDB(db)

	clienteRepo := repositories.NewClienteRepository(db)
	asistenciaRepo := repositories.NewAsistenciaRepository(db)
	pagoRepo := repositories.NewPagoRepository(db)
	productoRepo := repositories.NewProductoRepository(db)
	ventaRepo := repositories.NewVentaRepository(db)
	movimientoRepo := repositories.NewMovimientoStockRepository(db)
	gastoRepo := repositories.NewGastoRepository(db)

	clienteService := services.NewClienteService(clienteRepo, store)
	asistenciaService := services.NewAsistenciaService(asistenciaRepo, store)
	pagoService := services.NewPagoService(pagoRepo, store)
	productoService := services.NewProductoService(productoRepo, store)
	ventaService := services.NewVentaService(ventaRepo, productoRepo, store)
	movimientoService := services.NewMovimientoStockService(movimientoRepo, store)
	gastoService := services.NewGastoService(gastoRepo, store)

	clienteHandler := handlers.NewClienteHandler(clienteService)
	asistenciaHandler := handlers.NewAsistenciaHandler(asistenciaService)
	pagoHandler := handlers.NewPagoHandler(pagoService)
	productoHandler := handlers.NewProductoHandler(productoService)
	ventaHandler := handlers.NewVentaHandler(ventaService)
	movimientoHandler := handlers.NewMovimientoStockHandler(movimientoService)
	gastoHandler := handlers.NewGastoHandler(gastoService)

	SetupClienteRoutes(engine, clienteHandler)
	SetupAsistenciaRoutes(engine, asistenciaHandler)
	SetupPagoRoutes(engine, pagoHandler)
	SetupProductoRoutes(engine, productoHandler)
	SetupVentaRoutes(engine, ventaHandler)
	SetupMovimientoStockRoutes(engine, movimientoHandler)
	SetupGastoRoutes(engine, gastoHandler)
}
