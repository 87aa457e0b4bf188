package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/brokers/rabbitmq"
	"github.com/SpookyBoy99/chroma/internal/client"
	"github.com/SpookyBoy99/chroma/internal/codec"
	"github.com/SpookyBoy99/chroma/internal/configs"
	"github.com/SpookyBoy99/chroma/internal/handlers"
	"github.com/SpookyBoy99/chroma/internal/handlers/middleware"
	"github.com/SpookyBoy99/chroma/internal/metrics"
	"github.com/SpookyBoy99/chroma/internal/repository/blob"
	"github.com/SpookyBoy99/chroma/internal/repository/cache"
	"github.com/SpookyBoy99/chroma/internal/repository/database"
	"github.com/SpookyBoy99/chroma/internal/server"
	"github.com/SpookyBoy99/chroma/internal/service"
)

type GalleryApplication struct {
	config configs.Config
	server *server.Server
}

func NewGalleryApplication(config configs.Config) *GalleryApplication {
	return &GalleryApplication{config: config}
}

func (a *GalleryApplication) Start() error {
	defer func() {
		buf := make([]byte, 1<<20)
		n := runtime.Stack(buf, true)
		log.Printf("[DEBUG] [Gallery-Service] Count of active goroutines: %v", runtime.NumGoroutine())
		log.Printf("[DEBUG] [Gallery-Service] Active goroutines:\n%s", buf[:n])
	}()
	metrics.Start()
	defer metrics.Stop()
	pg, err := database.NewPostgresConnection(a.config.Database)
	if err != nil {
		return err
	}
	defer pg.Close()
	blobstorage, err := blob.NewBlobStorage(a.config.Storage)
	if err != nil {
		return err
	}
	defer blobstorage.Close()
	redis, err := cache.NewRedisConnection(a.config.Redis)
	if err != nil {
		return err
	}
	defer redis.Close()
	kafkaProducer := kafka.NewKafkaProducer(a.config.Kafka)
	defer kafkaProducer.Close()
	defer kafkaProducer.LogClose()
	photodatabase := database.NewPhotoDatabase(pg)
	photocache := cache.NewPhotoCache(redis)
	sessioncache := cache.NewSessionCache(redis)
	imagecodec := codec.NewImageCodec()
	koala := client.NewKoalaClient(a.config.Koala)
	photoService := service.NewPhotoServiceImplement(photodatabase, blobstorage, photocache, imagecodec, kafkaProducer)
	defer photoService.Stop()
	authService := service.NewAuthServiceImplement(koala, photodatabase, sessioncache, kafkaProducer)
	rabbitConsumer, err := rabbitmq.NewRabbitConsumer(a.config.RabbitMQ, kafkaProducer, photodatabase)
	if err != nil {
		return err
	}
	defer rabbitConsumer.Close()
	midleware := middleware.NewMiddleware(authService, kafkaProducer)
	defer midleware.Stop()
	handler := handlers.NewHandler(photoService, authService, midleware, kafkaProducer, a.config)
	a.server = server.NewServer(a.config.Server, handler.InitRoutes())
	kafkaProducer.LogStart()
	serverError := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil {
			serverError <- fmt.Errorf("server run failed: %w", err)
			return
		}
		close(serverError)
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Printf("[DEBUG] [Gallery-Service] Server shutting down with signal: %v", sig)
	case err := <-serverError:
		log.Printf("[DEBUG] [Gallery-Service] Server startup failed: %v", err)
		return err
	}
	return a.Stop()
}

func (a *GalleryApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	log.Println("[DEBUG] [Gallery-Service] Server is shutting down...")
	if err := a.server.Shutdown(ctx); err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Server shutdown error: %v", err)
		return err
	}
	log.Println("[DEBUG] [Gallery-Service] Server has shutted down successfully")
	return nil
}
