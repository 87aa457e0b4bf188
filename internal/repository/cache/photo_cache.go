package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/repository"
	"github.com/redis/go-redis/v9"
)

type PhotoCache struct {
	cacheclient *CacheObject
}

func NewPhotoCache(red *CacheObject) *PhotoCache {
	return &PhotoCache{cacheclient: red}
}

const KeyPhoto = "photo:%s"

type cachedPhoto struct {
	ID        string    `json:"photo_id"`
	AlbumID   string    `json:"album_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (ph *PhotoCache) AddPhotoCache(ctx context.Context, photo *model.Photo) *repository.RepositoryResponse {
	const place = AddPhotoCache
	jsondata, err := json.Marshal(cachedPhoto{ID: photo.ID, AlbumID: photo.AlbumID, Status: photo.Status, CreatedAt: photo.CreatedAt})
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorMarshal, err)), place)
	}
	err = ph.cacheclient.connect.Set(ctx, fmt.Sprintf(KeyPhoto, photo.ID), jsondata, 1*time.Hour).Err()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorSetPhoto, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful add photo metadata in cache", Place: place}
}

func (ph *PhotoCache) GetPhotoCache(ctx context.Context, photoid string) *repository.RepositoryResponse {
	const place = GetPhotoCache
	result, err := ph.cacheclient.connect.Get(ctx, fmt.Sprintf(KeyPhoto, photoid)).Result()
	if err != nil {
		if err == redis.Nil {
			return &repository.RepositoryResponse{Success: false, SuccessMessage: "Photo metadata was not found in the cache", Place: place}
		}
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorGetPhoto, err)), place)
	}
	var cached cachedPhoto
	err = json.Unmarshal([]byte(result), &cached)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorUnmarshal, err)), place)
	}
	photo := &model.Photo{ID: cached.ID, AlbumID: cached.AlbumID, Status: cached.Status, CreatedAt: cached.CreatedAt}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photo: photo}, SuccessMessage: "Successful get photo metadata from cache", Place: place}
}

func (ph *PhotoCache) DeletePhotoCache(ctx context.Context, photoid string) *repository.RepositoryResponse {
	const place = DeletePhotoCache
	_, err := ph.cacheclient.connect.Del(ctx, fmt.Sprintf(KeyPhoto, photoid)).Result()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorDelPhoto, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, SuccessMessage: "Successful delete photo metadata from cache", Place: place}
}
