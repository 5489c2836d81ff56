package handlers

import (
	"errors"
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AsistenciaHandler holds the asistencia service.
type AsistenciaHandler struct {
	asistenciaService services.AsistenciaService
}

// NewAsistenciaHandler creates a new AsistenciaHandler.
func NewAsistenciaHandler(as services.AsistenciaService) *AsistenciaHandler {
	return &AsistenciaHandler{asistenciaService: as}
}

// CreateAsistencia records a class attendance.
func (h *AsistenciaHandler) CreateAsistencia(c *gin.Context) {
	var asistencia models.Asistencia
	if err := c.ShouldBindJSON(&asistencia); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de asistencia inválidos: "+err.Error())
		return
	}

	if err := h.asistenciaService.CreateAsistencia(&asistencia); err != nil {
		utils.LogError(err, "CreateAsistencia: error from asistenciaService.CreateAsistencia")
		utils.RespondError(c, http.StatusInternalServerError, "Error al registrar asistencia")
		return
	}
	c.JSON(http.StatusOK, asistencia)
}

// GetAsistencias lists all attendance records.
func (h *AsistenciaHandler) GetAsistencias(c *gin.Context) {
	asistencias, err := h.asistenciaService.GetAsistencias()
	if err != nil {
		utils.LogError(err, "GetAsistencias: error from asistenciaService.GetAsistencias")
		utils.RespondError(c, http.StatusInternalServerError, "Error al obtener asistencias")
		return
	}
	c.JSON(http.StatusOK, asistencias)
}

// UpdateAsistencia applies a partial update and returns the updated record.
func (h *AsistenciaHandler) UpdateAsistencia(c *gin.Context) {
	id := c.Param("id")

	var upd models.AsistenciaUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de asistencia inválidos: "+err.Error())
		return
	}

	asistencia, err := h.asistenciaService.UpdateAsistencia(id, upd)
	if err != nil {
		if errors.Is(err, services.ErrAsistenciaNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Asistencia no encontrada")
			return
		}
		utils.LogError(err, "UpdateAsistencia: error updating asistencia "+id)
		utils.RespondError(c, http.StatusInternalServerError, "No se pudo actualizar")
		return
	}
	c.JSON(http.StatusOK, asistencia)
}

// DeleteAsistencia removes an attendance record.
func (h *AsistenciaHandler) DeleteAsistencia(c *gin.Context) {
	id := c.Param("id")

	if err := h.asistenciaService.DeleteAsistencia(id); err != nil {
		if errors.Is(err, services.ErrAsistenciaNotFound) {
			utils.RespondFailure(c, http.StatusNotFound, "Asistencia no encontrada")
			return
		}
		utils.LogError(err, "DeleteAsistencia: error deleting asistencia "+id)
		utils.RespondFailure(c, http.StatusInternalServerError, "Error al eliminar asistencia")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
