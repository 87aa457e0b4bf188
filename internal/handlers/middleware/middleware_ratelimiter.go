package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/handlers/response"
	"github.com/SpookyBoy99/chroma/internal/metrics"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func (m *Middleware) RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		const place = RateLimiter
		traceID := c.MustGet("traceID").(string)
		ip := c.Request.RemoteAddr
		limiter := getLimit(m, ip)
		if !limiter.Allow() {
			m.logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceID, "Too many requests")
			response.SendResponse(c, http.StatusTooManyRequests, false, nil, map[string]string{"ClientError": "Too Many Requests"}, traceID, place, m.logproducer)
			c.Abort()
			metrics.GalleryErrorsTotal.WithLabelValues("ClientError").Inc()
			metrics.GalleryRateLimitExceededTotal.WithLabelValues(c.Request.URL.Path).Inc()
			return
		}
		c.Next()
	}
}

func (m *Middleware) Stop() {
	close(m.stopclean)
}

func getLimit(m *Middleware, ip string) *rate.Limiter {
	if entry, exist := m.rateLimiters.Load(ip); exist {
		e := entry.(*RateLimiterEntry)
		e.LastUsed = time.Now()
		return e.Limiter
	}
	limiter := rate.NewLimiter(0.25, 5)
	newEntry := &RateLimiterEntry{
		Limiter:  limiter,
		LastUsed: time.Now(),
	}
	m.rateLimiters.Store(ip, newEntry)
	return limiter
}

func cleanLimit(m *Middleware) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopclean:
			log.Println("[INFO] [Gallery-Service] [RateLimiter] Successful completion of RateLimiter")
			return
		case <-ticker.C:
			m.rateLimiters.Range(func(key, value any) bool {
				ip := key.(string)
				entry := value.(*RateLimiterEntry)
				if time.Since(entry.LastUsed) >= 5*time.Minute {
					m.rateLimiters.Delete(ip)
					log.Printf("[INFO] [Gallery-Service] [RateLimiter] Deleted IP: %s", ip)
				}
				return true
			})
		}
	}
}
