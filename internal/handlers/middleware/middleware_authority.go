package middleware

import (
	"net/http"
	"strings"

	"github.com/SpookyBoy99/chroma/internal/handlers/response"
	"github.com/gin-gonic/gin"
)

func (m *Middleware) Authority() gin.HandlerFunc {
	return func(c *gin.Context) {
		maparesponse := make(map[string]string)
		traceID := c.MustGet("traceID").(string)
		sessionID := sessionFromRequest(c)
		if sessionID == "" {
			logRequest(c.Request, Authority, traceID, true, "missing session credentials")
			maparesponse["ClientError"] = "Required Session in Cookie or Authorization header"
			response.SendResponse(c, http.StatusUnauthorized, false, nil, maparesponse, traceID, Authority, m.logproducer)
			c.Abort()
			return
		}
		serviceresp := m.authservice.ValidateSession(c.Request.Context(), sessionID)
		if !serviceresp.Success {
			logRequest(c.Request, Authority, traceID, true, serviceresp.Errors.Message)
			maparesponse["ClientError"] = "Invalid Session Data!"
			response.SendResponse(c, http.StatusUnauthorized, false, nil, maparesponse, traceID, Authority, m.logproducer)
			c.Abort()
			return
		}
		c.Set("userID", serviceresp.Data.UserID)
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

func sessionFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("session"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
