package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/SpookyBoy99/chroma/internal/configs"
	"github.com/redis/go-redis/v9"
)

const AddPhotoCache = "Repository-AddPhotoCache"
const GetPhotoCache = "Repository-GetPhotoCache"
const DeletePhotoCache = "Repository-DeletePhotoCache"
const SetSession = "Repository-SetSession"
const GetSession = "Repository-GetSession"
const DeleteSession = "Repository-DeleteSession"

type CacheObject struct {
	connect *redis.Client
}

func NewRedisConnection(cfg configs.RedisConfig) (*CacheObject, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to connect to Redis-Client: %v", err)
		return nil, err
	}
	log.Println("[DEBUG] [Gallery-Service] Successful connect to Redis-Client")
	return &CacheObject{connect: client}, nil
}

func (c *CacheObject) Close() {
	c.connect.Close()
	log.Println("[DEBUG] [Gallery-Service] Successful close Redis-Client")
}
