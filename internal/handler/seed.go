package handler

import (
	"net/http"

	"erpstore/internal/apierror"
	"erpstore/internal/middleware"
	"erpstore/internal/service"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct{ svc service.SeedService }

func NewSeedHandler(svc service.SeedService) *SeedHandler { return &SeedHandler{svc: svc} }

// Restaurar hydrates demo data from the configured seed file. Idempotent:
// rows that already exist by name are skipped.
func (h *SeedHandler) Restaurar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resumen, err := h.svc.Restaurar(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resumen)
}
