package handlers

import (
	"io"
	"net/http"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/gin-gonic/gin"
)

// statusFromError maps a service error kind to the HTTP status the client
// sees. Inconsistent failures surface as plain 500s: the client cannot act on
// them, only the operator can.
func statusFromError(err *erro.CustomError) int {
	switch err.Type {
	case erro.NotFoundType:
		return http.StatusNotFound
	case erro.StorageUnavailableType:
		return http.StatusServiceUnavailable
	case erro.ImageEncodingType:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorKey(err *erro.CustomError) string {
	switch err.Type {
	case erro.NotFoundType, erro.ImageEncodingType:
		return "ClientError"
	default:
		return "InternalServerError"
	}
}

func parseFormat(c *gin.Context) (string, bool) {
	format := c.DefaultQuery("format", model.FormatPng)
	switch format {
	case model.FormatNative, model.FormatWebp, model.FormatPng, model.FormatJpeg:
		return format, true
	default:
		return "", false
	}
}

func parseQuality(c *gin.Context) (string, bool) {
	quality := c.DefaultQuery("quality", model.TierUnspecified)
	switch quality {
	case model.TierUnspecified, model.TierOriginal, model.TierMedium, model.TierThumbnail:
		return quality, true
	default:
		return "", false
	}
}

func (h *Handler) readPhotoFile(c *gin.Context) ([]byte, string) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.config.Server.MaxFileSize)
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		return nil, "Required image file up to the configured size limit"
	}
	defer file.Close()
	filedata, err := io.ReadAll(file)
	if err != nil {
		return nil, "Failed to read image file"
	}
	return filedata, ""
}
