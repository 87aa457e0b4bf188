package handlers

import (
	"context"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/configs"
	"github.com/SpookyBoy99/chroma/internal/handlers/middleware"
	"github.com/SpookyBoy99/chroma/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const API_CreatePhoto = "API-CreatePhoto"
const API_GetPhoto = "API-GetPhoto"
const API_GetPhotos = "API-GetPhotos"
const API_Login = "API-Login"
const API_Logout = "API-Logout"

type PhotoService interface {
	CreatePhoto(ctx context.Context, albumid string, filedata []byte) *service.ServiceResponse
	GetPhoto(ctx context.Context, photoid string, quality string, format string) *service.ServiceResponse
	GetPhotos(ctx context.Context, albumid string) *service.ServiceResponse
}

type AuthService interface {
	Login(ctx context.Context, code string) *service.ServiceResponse
	Logout(ctx context.Context, sessionid string) *service.ServiceResponse
}

type Handler struct {
	photoservice PhotoService
	authservice  AuthService
	middleware   *middleware.Middleware
	logproducer  kafka.KafkaProducerService
	config       configs.Config
}

func NewHandler(photoservice PhotoService, authservice AuthService, midleware *middleware.Middleware, logproducer kafka.KafkaProducerService, config configs.Config) *Handler {
	return &Handler{
		photoservice: photoservice,
		authservice:  authservice,
		middleware:   midleware,
		logproducer:  logproducer,
		config:       config,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.middleware.Logging())
	router.Use(h.middleware.RateLimiter())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/login", h.login)
	v1 := router.Group("/v1", h.middleware.Authority())
	{
		v1.POST("/photo", h.createPhoto)
		v1.GET("/photo/:photoid", h.getPhoto)
		v1.GET("/photos", h.getPhotos)
		v1.POST("/logout", h.logout)
	}
	return router
}
