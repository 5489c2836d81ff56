package services

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore satisfies repositories.DB without a live database. The fake
// repositories below ignore the executor, so the SQLExecutor methods are
// never reached.
type fakeStore struct{}

func (fakeStore) Exec(string, ...interface{}) (sql.Result, error) { return nil, nil }
func (fakeStore) QueryRow(string, ...interface{}) *sql.Row        { return nil }
func (fakeStore) Query(string, ...interface{}) (*sql.Rows, error) { return nil, nil }
func (fakeStore) Begin() (repositories.Tx, error)                 { return fakeTx{}, nil }

type fakeTx struct{ fakeStore }

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeProductoRepo struct {
	productos map[string]*models.Producto
}

func newFakeProductoRepo(productos ...*models.Producto) *fakeProductoRepo {
	repo := &fakeProductoRepo{productos: map[string]*models.Producto{}}
	for _, p := range productos {
		repo.productos[p.ID] = p
	}
	return repo
}

func (f *fakeProductoRepo) CreateProducto(_ repositories.SQLExecutor, p *models.Producto) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("producto-%d", len(f.productos)+1)
	}
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) GetProductos() ([]models.Producto, error) {
	productos := []models.Producto{}
	for _, p := range f.productos {
		productos = append(productos, *p)
	}
	return productos, nil
}

func (f *fakeProductoRepo) GetProductoByID(id string) (*models.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductoRepo) SetStock(_ repositories.SQLExecutor, id string, stock int) (*models.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	p.Stock = stock
	copied := *p
	return &copied, nil
}

func (f *fakeProductoRepo) DecrementStock(_ repositories.SQLExecutor, id string, cantidad int) (int, error) {
	p, ok := f.productos[id]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	if p.Stock < cantidad {
		return p.Stock, repositories.ErrInsufficientStock
	}
	p.Stock -= cantidad
	return p.Stock, nil
}

type fakeVentaRepo struct {
	ventas []models.Venta
}

func (f *fakeVentaRepo) CreateVenta(_ repositories.SQLExecutor, venta *models.Venta) error {
	venta.ID = fmt.Sprintf("venta-%d", len(f.ventas)+1)
	if venta.Fecha.IsZero() {
		venta.Fecha = time.Now()
	}
	f.ventas = append(f.ventas, *venta)
	return nil
}

func (f *fakeVentaRepo) GetVentas() ([]models.Venta, error) {
	return append([]models.Venta{}, f.ventas...), nil
}

func (f *fakeVentaRepo) GetVentaByID(id string) (*models.Venta, error) {
	for _, v := range f.ventas {
		if v.ID == id {
			copied := v
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeVentaRepo) DeleteVenta(_ repositories.SQLExecutor, id string) error {
	for i, v := range f.ventas {
		if v.ID == id {
			f.ventas = append(f.ventas[:i], f.ventas[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func newVentaServiceForTest(productos ...*models.Producto) (VentaService, *fakeVentaRepo, *fakeProductoRepo) {
	ventaRepo := &fakeVentaRepo{}
	productoRepo := newFakeProductoRepo(productos...)
	return NewVentaService(ventaRepo, productoRepo, fakeStore{}), ventaRepo, productoRepo
}

func TestRegistrarVentaSinProductos(t *testing.T) {
	svc, ventaRepo, _ := newVentaServiceForTest()

	venta, err := svc.RegistrarVenta(CreateVentaRequest{ClienteID: "cliente-1"})

	require.ErrorIs(t, err, ErrVentaVacia)
	assert.Equal(t, "No hay productos en la venta", err.Error())
	assert.Nil(t, venta)
	assert.Empty(t, ventaRepo.ventas)
}

func TestRegistrarVentaProductoNoEncontrado(t *testing.T) {
	agua := &models.Producto{ID: "p1", Nombre: "AGUA MINERAL 1L", Precio: 3.5, Stock: 20}
	svc, ventaRepo, productoRepo := newVentaServiceForTest(agua)

	venta, err := svc.RegistrarVenta(CreateVentaRequest{
		ClienteID: "cliente-1",
		Productos: []VentaItemRequest{
			{ProductID: "no-existe", Nombre: "OMEGA", Price: 4, Quantity: 1},
		},
		Total: 4,
	})

	require.ErrorIs(t, err, ErrProductoNoEncontrado)
	assert.Contains(t, err.Error(), "OMEGA")
	assert.Nil(t, venta)
	assert.Empty(t, ventaRepo.ventas)
	assert.Equal(t, 20, productoRepo.productos["p1"].Stock)
}

func TestRegistrarVentaStockInsuficiente(t *testing.T) {
	agua := &models.Producto{ID: "p1", Nombre: "AGUA MINERAL 1L", Precio: 3.5, Stock: 3}
	svc, ventaRepo, productoRepo := newVentaServiceForTest(agua)

	venta, err := svc.RegistrarVenta(CreateVentaRequest{
		ClienteID: "cliente-1",
		Productos: []VentaItemRequest{
			{ProductID: "p1", Nombre: "AGUA MINERAL 1L", Price: 3.5, Quantity: 5},
		},
		Total: 17.5,
	})

	require.ErrorIs(t, err, ErrStockInsuficiente)
	assert.Contains(t, err.Error(), "Stock insuficiente")
	assert.Contains(t, err.Error(), "Disponible: 3, solicitado: 5")
	assert.Nil(t, venta)
	assert.Empty(t, ventaRepo.ventas)
	assert.Equal(t, 3, productoRepo.productos["p1"].Stock)
}

func TestRegistrarVentaCantidadInvalida(t *testing.T) {
	agua := &models.Producto{ID: "p1", Nombre: "AGUA MINERAL 1L", Precio: 3.5, Stock: 20}
	svc, ventaRepo, productoRepo := newVentaServiceForTest(agua)

	venta, err := svc.RegistrarVenta(CreateVentaRequest{
		ClienteID: "cliente-1",
		Productos: []VentaItemRequest{
			{ProductID: "p1", Nombre: "AGUA MINERAL 1L", Price: 3.5, Quantity: 0},
		},
	})

	require.ErrorIs(t, err, ErrVentaInvalida)
	assert.Nil(t, venta)
	assert.Empty(t, ventaRepo.ventas)
	assert.Equal(t, 20, productoRepo.productos["p1"].Stock)
}

func TestRegistrarVentaDescuentaStock(t *testing.T) {
	agua := &models.Producto{ID: "p1", Nombre: "AGUA MINERAL 1L", Precio: 3.5, Stock: 20}
	svc, ventaRepo, productoRepo := newVentaServiceForTest(agua)

	venta, err := svc.RegistrarVenta(CreateVentaRequest{
		ClienteID: "cliente-1",
		Productos: []VentaItemRequest{
			{ProductID: "p1", Nombre: "AGUA MINERAL 1L", Price: 3.5, Quantity: 5},
		},
		Total: 17.5,
	})

	require.NoError(t, err)
	require.NotNil(t, venta)
	assert.NotEmpty(t, venta.ID)
	assert.Equal(t, 17.5, venta.Total)
	assert.False(t, venta.Fecha.IsZero())
	require.Len(t, venta.Productos, 1)
	assert.Equal(t, "p1", venta.Productos[0].ProductID)
	assert.Equal(t, 5, venta.Productos[0].Quantity)

	assert.Equal(t, 15, productoRepo.productos["p1"].Stock)
	require.Len(t, ventaRepo.ventas, 1)
	assert.Equal(t, venta.ID, ventaRepo.ventas[0].ID)
}

func TestRegistrarVentaVariosProductos(t *testing.T) {
	agua := &models.Producto{ID: "p1", Nombre: "AGUA MINERAL 1L", Precio: 3.5, Stock: 20}
	omega := &models.Producto{ID: "p2", Nombre: "OMEGA", Precio: 4, Stock: 10}
	svc, ventaRepo, productoRepo := newVentaServiceForTest(agua, omega)

	venta, err := svc.RegistrarVenta(CreateVentaRequest{
		ClienteID: "cliente-1",
		Productos: []VentaItemRequest{
			{ProductID: "p1", Nombre: "AGUA MINERAL 1L", Price: 3.5, Quantity: 2},
			{ProductID: "p2", Nombre: "OMEGA", Price: 4, Quantity: 3},
		},
		Total: 19,
	})

	require.NoError(t, err)
	require.Len(t, venta.Productos, 2)
	assert.Equal(t, 18, productoRepo.productos["p1"].Stock)
	assert.Equal(t, 7, productoRepo.productos["p2"].Stock)
	require.Len(t, ventaRepo.ventas, 1)
}

func TestRegistrarVentaConservaFecha(t *testing.T) {
	agua := &models.Producto{ID: "p1", Nombre: "AGUA MINERAL 1L", Precio: 3.5, Stock: 20}
	svc, _, _ := newVentaServiceForTest(agua)

	fecha := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	venta, err := svc.RegistrarVenta(CreateVentaRequest{
		ClienteID: "cliente-1",
		Productos: []VentaItemRequest{
			{ProductID: "p1", Nombre: "AGUA MINERAL 1L", Price: 3.5, Quantity: 1},
		},
		Total: 3.5,
		Fecha: &fecha,
	})

	require.NoError(t, err)
	assert.True(t, venta.Fecha.Equal(fecha))
}

func TestDeleteVentaNoEncontrada(t *testing.T) {
	svc, _, _ := newVentaServiceForTest()

	venta, err := svc.DeleteVenta("no-existe")

	require.ErrorIs(t, err, ErrVentaNotFound)
	assert.Nil(t, venta)
}

func TestDeleteVentaDevuelveRegistro(t *testing.T) {
	agua := &models.Producto{ID: "p1", Nombre: "AGUA MINERAL 1L", Precio: 3.5, Stock: 20}
	svc, ventaRepo, _ := newVentaServiceForTest(agua)

	creada, err := svc.RegistrarVenta(CreateVentaRequest{
		ClienteID: "cliente-1",
		Productos: []VentaItemRequest{
			{ProductID: "p1", Nombre: "AGUA MINERAL 1L", Price: 3.5, Quantity: 1},
		},
		Total: 3.5,
	})
	require.NoError(t, err)

	borrada, err := svc.DeleteVenta(creada.ID)
	require.NoError(t, err)
	assert.Equal(t, creada.ID, borrada.ID)
	assert.Empty(t, ventaRepo.ventas)
}
