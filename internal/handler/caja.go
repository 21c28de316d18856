package handler

import (
	"net/http"

	"erpstore/internal/apierror"
	"erpstore/internal/dto"
	"erpstore/internal/middleware"
	"erpstore/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Abrir godoc
// @Summary      Abrir sesión de caja
// @Description  Abre la sesión de caja del usuario autenticado con un monto de apertura contado.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AbrirSesionRequest true "Monto de apertura"
// @Success      201  {object} dto.SesionCajaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/caja/abrir [post]
func (h *CajaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirSesionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.AbrirSesion(c.Request.Context(), claims.UserID, req)
	if err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Estado reports the caller's open session, or null when there is none.
func (h *CajaHandler) Estado(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Estado(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar la caja"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusOK, gin.H{"abierta": false, "sesion": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"abierta": true, "sesion": resp})
}

func (h *CajaHandler) Resumen(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Resumen(c.Request.Context(), claims.UserID)
	if err != nil {
		if err == service.ErrSinSesionAbierta {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen de caja"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cerrar godoc
// @Summary      Cerrar sesión de caja
// @Description  Congela el balance calculado, registra el monto contado y cierra la sesión.
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CerrarSesionRequest true "Monto de cierre contado"
// @Success      200  {object} dto.SesionCajaResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/caja/cerrar [post]
func (h *CajaHandler) Cerrar(c *gin.Context) {
	var req dto.CerrarSesionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.CerrarSesion(c.Request.Context(), claims.UserID, req)
	if err != nil {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Transaccion registers a manual cash in/out against the open session.
func (h *CajaHandler) Transaccion(c *gin.Context) {
	var req dto.TransaccionCajaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.RegistrarTransaccion(c.Request.Context(), claims.UserID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CajaHandler) Historial(c *gin.Context) {
	var filter dto.SesionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Historial(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar sesiones de caja"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
