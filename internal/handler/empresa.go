package handler

import (
	"net/http"

	"erpstore/internal/apierror"
	"erpstore/internal/dto"
	"erpstore/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpresaHandler struct{ svc service.EmpresaService }

func NewEmpresaHandler(svc service.EmpresaService) *EmpresaHandler {
	return &EmpresaHandler{svc: svc}
}

func (h *EmpresaHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener la configuración"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar configuración de empresa
// @Description  Actualiza identidad fiscal y cuenta SMTP. Un smtp_password vacío conserva el almacenado.
// @Tags         empresa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ConfiguracionEmpresaRequest true "Configuración"
// @Success      200  {object} dto.ConfiguracionEmpresaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/empresa [put]
func (h *EmpresaHandler) Actualizar(c *gin.Context) {
	var req dto.ConfiguracionEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TestEmail sends a probe mail synchronously so the admin sees SMTP
// failures in the response instead of in a worker log.
func (h *EmpresaHandler) TestEmail(c *gin.Context) {
	var req dto.TestEmailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarEmailPrueba(c.Request.Context(), req.Destinatario); err != nil {
		c.JSON(http.StatusBadGateway, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"enviado": true})
}
