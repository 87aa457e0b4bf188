package response

import (
	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/gin-gonic/gin"
)

type HTTPResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    map[string]any    `json:"data,omitempty"`
	Status  int               `json:"status"`
}

func SendResponse(c *gin.Context, status int, success bool, data map[string]any, errors map[string]string, traceid string, place string, kafkaprod kafka.KafkaProducerService) {
	response := HTTPResponse{
		Success: success,
		Data:    data,
		Errors:  errors,
		Status:  status,
	}
	c.JSON(status, response)
	kafkaprod.NewGalleryLog(kafka.LogLevelInfo, place, traceid, "Succesfull send response to client")
}
