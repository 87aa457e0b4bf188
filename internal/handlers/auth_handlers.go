package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/handlers/response"
	"github.com/SpookyBoy99/chroma/internal/metrics"
	"github.com/gin-gonic/gin"
)

// login completes the IdP redirect: the authorization code in the query gets
// exchanged for a session, the session lands in a cookie and the client is
// sent back to the frontend.
func (h *Handler) login(c *gin.Context) {
	const place = API_Login
	start := time.Now()
	defer func() { metrics.GalleryRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds()) }()
	metrics.GalleryTotalRequests.Inc()
	traceID := c.MustGet("traceID").(string)
	h.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	maparesponse := make(map[string]string)
	code := c.Query("code")
	if code == "" {
		h.logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceID, "Required authorization code in query")
		maparesponse["ClientError"] = "Required authorization code in query"
		metrics.GalleryErrorsTotal.WithLabelValues("ClientError").Inc()
		response.SendResponse(c, http.StatusBadRequest, false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	serviceresp := h.authservice.Login(c.Request.Context(), code)
	if !serviceresp.Success {
		maparesponse[errorKey(serviceresp.Errors)] = serviceresp.Errors.Message
		metrics.GalleryErrorsTotal.WithLabelValues(errorKey(serviceresp.Errors)).Inc()
		response.SendResponse(c, statusFromError(serviceresp.Errors), false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	c.SetCookie("session", serviceresp.Data.SessionID, 24*60*60, "/", "", false, true)
	metrics.GalleryTotalSuccessfulRequests.Inc()
	h.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceID, "Succesfull login, redirecting to frontend")
	redirect := h.config.Koala.LoginCompleteRedirectURI + "?session_id=" + url.QueryEscape(serviceresp.Data.SessionID)
	c.Redirect(http.StatusFound, redirect)
}

func (h *Handler) logout(c *gin.Context) {
	const place = API_Logout
	start := time.Now()
	defer func() { metrics.GalleryRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds()) }()
	metrics.GalleryTotalRequests.Inc()
	traceID := c.MustGet("traceID").(string)
	h.logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceID, "New request has been received")
	maparesponse := make(map[string]string)
	sessionID := c.MustGet("sessionID").(string)
	serviceresp := h.authservice.Logout(c.Request.Context(), sessionID)
	if !serviceresp.Success {
		maparesponse[errorKey(serviceresp.Errors)] = serviceresp.Errors.Message
		metrics.GalleryErrorsTotal.WithLabelValues(errorKey(serviceresp.Errors)).Inc()
		response.SendResponse(c, statusFromError(serviceresp.Errors), false, nil, maparesponse, traceID, place, h.logproducer)
		return
	}
	c.SetCookie("session", "", -1, "/", "", false, true)
	metrics.GalleryTotalSuccessfulRequests.Inc()
	response.SendResponse(c, http.StatusOK, true, nil, nil, traceID, place, h.logproducer)
}
