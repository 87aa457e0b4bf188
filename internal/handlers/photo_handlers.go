package handlers

import (
	"net/http"
	"time"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/handlers/response"
	"github.com/SpookyBoy99/chroma/internal/metrics"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createPhoto(c *gin.Context) {
	const place = API_CreatePhoto
	start := time.Now()
	defer func() { metrics.GalleryRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds()) }()
	metrics.GalleryTotalRequests.Inc()
	traceID := c.MustGet("traceID").(string)
	h.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	maparesponse := make(map[string]string)
	filedata, clienterr := h.readPhotoFile(c)
	if clienterr != "" {
		h.logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceID, clienterr)
		maparesponse["ClientError"] = clienterr
		metrics.GalleryErrorsTotal.WithLabelValues("ClientError").Inc()
		response.SendResponse(c, http.StatusBadRequest, false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	albumid := c.PostForm("album_id")
	serviceresp := h.photoservice.CreatePhoto(c.Request.Context(), albumid, filedata)
	if !serviceresp.Success {
		maparesponse[errorKey(serviceresp.Errors)] = serviceresp.Errors.Message
		metrics.GalleryErrorsTotal.WithLabelValues(errorKey(serviceresp.Errors)).Inc()
		response.SendResponse(c, statusFromError(serviceresp.Errors), false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	metrics.GalleryTotalSuccessfulRequests.Inc()
	response.SendResponse(c, http.StatusCreated, true, map[string]any{"photo_id": serviceresp.Data.PhotoID}, nil, traceID, place, h.logproducer)
}

func (h *Handler) getPhoto(c *gin.Context) {
	const place = API_GetPhoto
	start := time.Now()
	defer func() { metrics.GalleryRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds()) }()
	metrics.GalleryTotalRequests.Inc()
	traceID := c.MustGet("traceID").(string)
	h.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	maparesponse := make(map[string]string)
	format, ok := parseFormat(c)
	if !ok {
		maparesponse["ClientError"] = "Unsupported output format"
		metrics.GalleryErrorsTotal.WithLabelValues("ClientError").Inc()
		response.SendResponse(c, http.StatusBadRequest, false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	quality, ok := parseQuality(c)
	if !ok {
		maparesponse["ClientError"] = "Unsupported quality tier"
		metrics.GalleryErrorsTotal.WithLabelValues("ClientError").Inc()
		response.SendResponse(c, http.StatusBadRequest, false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	serviceresp := h.photoservice.GetPhoto(c.Request.Context(), c.Param("photoid"), quality, format)
	if !serviceresp.Success {
		maparesponse[errorKey(serviceresp.Errors)] = serviceresp.Errors.Message
		metrics.GalleryErrorsTotal.WithLabelValues(errorKey(serviceresp.Errors)).Inc()
		response.SendResponse(c, statusFromError(serviceresp.Errors), false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	metrics.GalleryTotalSuccessfulRequests.Inc()
	photo := serviceresp.Data.Photo
	response.SendResponse(c, http.StatusOK, true, map[string]any{
		"photo_id":   photo.ID,
		"album_id":   photo.AlbumID,
		"created_at": photo.CreatedAt,
		"image_data": serviceresp.Data.ImageData,
	}, nil, traceID, place, h.logproducer)
}

func (h *Handler) getPhotos(c *gin.Context) {
	const place = API_GetPhotos
	start := time.Now()
	defer func() { metrics.GalleryRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds()) }()
	metrics.GalleryTotalRequests.Inc()
	traceID := c.MustGet("traceID").(string)
	h.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	maparesponse := make(map[string]string)
	serviceresp := h.photoservice.GetPhotos(c.Request.Context(), c.Query("album_id"))
	if !serviceresp.Success {
		maparesponse[errorKey(serviceresp.Errors)] = serviceresp.Errors.Message
		metrics.GalleryErrorsTotal.WithLabelValues(errorKey(serviceresp.Errors)).Inc()
		response.SendResponse(c, statusFromError(serviceresp.Errors), false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	metrics.GalleryTotalSuccessfulRequests.Inc()
	response.SendResponse(c, http.StatusOK, true, map[string]any{"photos": serviceresp.Data.Photos}, nil, traceID, place, h.logproducer)
}
