package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/service"
	"golang.org/x/time/rate"
)

type RateLimiterEntry struct {
	Limiter  *rate.Limiter
	LastUsed time.Time
}

type AuthService interface {
	ValidateSession(ctx context.Context, sessionid string) *service.ServiceResponse
}

type Middleware struct {
	authservice  AuthService
	logproducer  kafka.KafkaProducerService
	rateLimiters sync.Map
	stopclean    chan (struct{})
}

const RateLimiter = "Middleware-RateLimiter"
const Authority = "Middleware-Authority"
const Logging = "Middleware-Logging"

func NewMiddleware(authservice AuthService, logproducer kafka.KafkaProducerService) *Middleware {
	m := &Middleware{
		authservice:  authservice,
		logproducer:  logproducer,
		rateLimiters: sync.Map{},
		stopclean:    make(chan struct{}),
	}
	go cleanLimit(m)
	return m
}
