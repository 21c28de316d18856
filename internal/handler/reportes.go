package handler

import (
	"net/http"

	"erpstore/internal/apierror"
	"erpstore/internal/dto"
	"erpstore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Report endpoints never leak aggregation errors to the client; the
// detail goes to the log and the caller gets a generic 500.

func (h *ReportesHandler) Kpi(c *gin.Context) {
	var rango dto.ReporteRango
	if err := c.ShouldBindQuery(&rango); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.KpiStats(c.Request.Context(), rango)
	if err != nil {
		log.Error().Err(err).Msg("reporte kpi")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) Tendencia(c *gin.Context) {
	var rango dto.ReporteRango
	if err := c.ShouldBindQuery(&rango); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.TendenciaVentas(c.Request.Context(), rango)
	if err != nil {
		log.Error().Err(err).Msg("reporte tendencia")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) TopProductos(c *gin.Context) {
	var rango dto.ReporteRango
	if err := c.ShouldBindQuery(&rango); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.TopProductos(c.Request.Context(), rango)
	if err != nil {
		log.Error().Err(err).Msg("reporte top productos")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) ValuacionInventario(c *gin.Context) {
	resp, err := h.svc.ValuacionInventario(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("reporte valuación inventario")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) UtilidadVentas(c *gin.Context) {
	var rango dto.ReporteRango
	if err := c.ShouldBindQuery(&rango); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.UtilidadVentas(c.Request.Context(), rango)
	if err != nil {
		log.Error().Err(err).Msg("reporte utilidad ventas")
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
