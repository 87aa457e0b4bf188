package service

import (
	"context"
	"log"
	"sync"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/repository"
)

type DBPhotoRepos interface {
	CreatePhoto(ctx context.Context, photo *model.Photo) *repository.RepositoryResponse
	CommitPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse
	DeletePhoto(ctx context.Context, photoid string) *repository.RepositoryResponse
	GetPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse
	GetPhotos(ctx context.Context, albumid string) *repository.RepositoryResponse
	GetAlbum(ctx context.Context, albumid string) *repository.RepositoryResponse
}

type BlobStorage interface {
	PutBlob(ctx context.Context, photoid string, tier string, data []byte) *repository.RepositoryResponse
	GetBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse
	DeleteBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse
}

type CachePhotoRepos interface {
	AddPhotoCache(ctx context.Context, photo *model.Photo) *repository.RepositoryResponse
	GetPhotoCache(ctx context.Context, photoid string) *repository.RepositoryResponse
	DeletePhotoCache(ctx context.Context, photoid string) *repository.RepositoryResponse
}

type ImageCodec interface {
	Convert(data []byte, format string) ([]byte, *erro.CustomError)
}

type LogProducer interface {
	NewGalleryLog(level, place, traceid, msg string)
}

const UseCase_CreatePhoto = "UseCase_CreatePhoto"
const UseCase_GetPhoto = "UseCase_GetPhoto"
const UseCase_GetPhotos = "UseCase_GetPhotos"
const CompensatePhoto = "CompensatePhoto"
const RollbackPhoto = "RollbackPhoto"

type ServiceResponse struct {
	Success bool
	Data    Data
	Errors  *erro.CustomError
}

type Data struct {
	PhotoID     string
	Photo       *model.Photo
	Photos      []*model.Photo
	ImageData   []byte
	UserID      string
	SessionID   string
}

type PhotoServiceImplement struct {
	Photorepo   DBPhotoRepos
	Blob        BlobStorage
	Cache       CachePhotoRepos
	Codec       ImageCodec
	Logproducer LogProducer
	Task_queue  chan func()
	wg          sync.WaitGroup
	closechan   chan struct{}
}

func NewPhotoServiceImplement(repo DBPhotoRepos, blob BlobStorage, cache CachePhotoRepos, codec ImageCodec, logproducer LogProducer) *PhotoServiceImplement {
	use := &PhotoServiceImplement{
		Photorepo:   repo,
		Blob:        blob,
		Cache:       cache,
		Codec:       codec,
		Logproducer: logproducer,
		Task_queue:  make(chan func(), 1000),
		closechan:   make(chan struct{}),
	}
	for i := 1; i <= 3; i++ {
		use.wg.Add(1)
		go use.taskWorker(i)
	}
	return use
}

func (use *PhotoServiceImplement) Stop() {
	close(use.closechan)
	close(use.Task_queue)
	use.wg.Wait()
	log.Printf("[DEBUG] [Gallery-Service] Successful stop task-workers")
}
