package handler

import (
	"net/http"

	"erpstore/internal/apierror"
	"erpstore/internal/dto"
	"erpstore/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificacionesHandler struct{ svc service.NotificacionService }

func NewNotificacionesHandler(svc service.NotificacionService) *NotificacionesHandler {
	return &NotificacionesHandler{svc: svc}
}

// Listar runs the low-stock sweep before returning, so the bell icon is
// always up to date without a scheduler.
func (h *NotificacionesHandler) Listar(c *gin.Context) {
	var filter dto.NotificacionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar notificaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificacionesHandler) ContarNoLeidas(c *gin.Context) {
	total, err := h.svc.ContarNoLeidas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al contar notificaciones"))
		return
	}
	c.JSON(http.StatusOK, dto.ContadorNoLeidasResponse{NoLeidas: total})
}

func (h *NotificacionesHandler) MarcarLeida(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.MarcarLeida(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificacionesHandler) MarcarTodasLeidas(c *gin.Context) {
	if err := h.svc.MarcarTodasLeidas(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al marcar notificaciones"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificacionesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificacionesHandler) EliminarTodas(c *gin.Context) {
	if err := h.svc.EliminarTodas(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar notificaciones"))
		return
	}
	c.Status(http.StatusNoContent)
}
