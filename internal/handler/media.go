package handler

import (
	"context"
	"io"
	"net/http"

	"erpstore/internal/apierror"
	"erpstore/internal/infra"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps media uploads at 25 MB.
const maxUploadSize = 25 << 20

type MediaHandler struct{ client *infra.MediaClient }

func NewMediaHandler(client *infra.MediaClient) *MediaHandler {
	return &MediaHandler{client: client}
}

// UploadImage godoc
// @Summary      Subir imagen de producto
// @Description  Reenvía el archivo al servicio de media y retorna la URL pública.
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Imagen"
// @Success      201  {object} map[string]string
// @Failure      400  {object} apierror.APIError
// @Router       /v1/media/imagenes [post]
func (h *MediaHandler) UploadImage(c *gin.Context) {
	h.upload(c, h.client.UploadImage)
}

func (h *MediaHandler) UploadVideo(c *gin.Context) {
	h.upload(c, h.client.UploadVideo)
}

func (h *MediaHandler) upload(c *gin.Context, send func(ctx context.Context, filename string, r io.Reader) (string, error)) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo requerido en el campo 'file'"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	url, err := send(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("El servicio de media no está disponible"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
