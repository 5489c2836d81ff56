package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGastoService struct {
	createFn func(gasto *models.Gasto) error
	getFn    func() ([]models.Gasto, error)
	updateFn func(id string, upd models.GastoUpdate) (*models.Gasto, error)
	deleteFn func(id string) error
}

func (s *stubGastoService) CreateGasto(gasto *models.Gasto) error {
	return s.createFn(gasto)
}

func (s *stubGastoService) GetGastos() ([]models.Gasto, error) {
	return s.getFn()
}

func (s *stubGastoService) UpdateGasto(id string, upd models.GastoUpdate) (*models.Gasto, error) {
	return s.updateFn(id, upd)
}

func (s *stubGastoService) DeleteGasto(id string) error {
	return s.deleteFn(id)
}

func newGastoTestEngine(svc services.GastoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewGastoHandler(svc)
	engine.GET("/gastos", handler.GetGastos)
	engine.POST("/gastos", handler.CreateGasto)
	engine.PUT("/gastos/:id", handler.UpdateGasto)
	engine.DELETE("/gastos/:id", handler.DeleteGasto)
	return engine
}

func TestCreateGastoResponde200(t *testing.T) {
	var created *models.Gasto
	svc := &stubGastoService{
		createFn: func(gasto *models.Gasto) error {
			gasto.ID = "g1"
			created = gasto
			return nil
		},
	}
	engine := newGastoTestEngine(svc)

	w := postJSON(t, engine, "/gastos", gin.H{
		"categoria":   "limpieza",
		"descripcion": "productos de limpieza",
		"monto":       45.0,
		"fecha":       "2026-02-10T00:00:00Z",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, "limpieza", created.Categoria)

	var got models.Gasto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "g1", got.ID)
}

func TestCreateGastoSinFechaResponde400(t *testing.T) {
	svc := &stubGastoService{
		createFn: func(gasto *models.Gasto) error {
			t.Fatal("el servicio no debe ser llamado con datos inválidos")
			return nil
		},
	}
	engine := newGastoTestEngine(svc)

	w := postJSON(t, engine, "/gastos", gin.H{
		"categoria":   "limpieza",
		"descripcion": "productos de limpieza",
		"monto":       45.0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGastosDevuelveLista(t *testing.T) {
	fecha := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	svc := &stubGastoService{
		getFn: func() ([]models.Gasto, error) {
			return []models.Gasto{
				{ID: "g2", Categoria: "sueldos", Descripcion: "clase de yoga", Monto: 300, Fecha: fecha},
				{ID: "g1", Categoria: "limpieza", Descripcion: "productos", Monto: 45, Fecha: fecha.AddDate(0, 0, -3)},
			}, nil
		},
	}
	engine := newGastoTestEngine(svc)

	req := httptest.NewRequest(http.MethodGet, "/gastos", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Gasto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "g2", got[0].ID)
}

func TestUpdateGastoNoEncontradoResponde404(t *testing.T) {
	svc := &stubGastoService{
		updateFn: func(id string, upd models.GastoUpdate) (*models.Gasto, error) {
			return nil, services.ErrGastoNotFound
		},
	}
	engine := newGastoTestEngine(svc)

	body, err := json.Marshal(gin.H{"monto": 50.0})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/gastos/nope", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gasto no encontrado", resp["error"])
}

func TestDeleteGastoNoEncontradoResponde404(t *testing.T) {
	svc := &stubGastoService{
		deleteFn: func(id string) error {
			return services.ErrGastoNotFound
		},
	}
	engine := newGastoTestEngine(svc)

	req := httptest.NewRequest(http.MethodDelete, "/gastos/nope", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Gasto no encontrado", resp["message"])
}

func TestDeleteGastoResponde200(t *testing.T) {
	var deletedID string
	svc := &stubGastoService{
		deleteFn: func(id string) error {
			deletedID = id
			return nil
		},
	}
	engine := newGastoTestEngine(svc)

	req := httptest.NewRequest(http.MethodDelete, "/gastos/g1", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "g1", deletedID)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}
