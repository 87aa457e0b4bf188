package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/repository"
	"github.com/google/uuid"
)

func (use *PhotoServiceImplement) requestToRepository(response *repository.RepositoryResponse, traceid string) (*repository.RepositoryResponse, *ServiceResponse) {
	if !response.Success && response.Errors != nil {
		switch response.Errors.Type {
		case erro.StorageUnavailableType:
			use.Logproducer.NewGalleryLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
			return response, &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
		default:
			use.Logproducer.NewGalleryLog(kafka.LogLevelWarn, response.Place, traceid, response.Errors.Message)
			return response, &ServiceResponse{Success: false, Errors: response.Errors}
		}
	}
	use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
	return response, nil
}

func (use *PhotoServiceImplement) parsingIDs(id string, traceid string, place string) error {
	_, err := uuid.Parse(id)
	if err != nil {
		fmterr := fmt.Sprintf("UUID-parse Error: %v", err)
		use.Logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceid, fmterr)
		return err
	}
	return nil
}

func (use *PhotoServiceImplement) newPhotoID() string {
	return uuid.New().String()
}

// resolvePhoto reads photo metadata from the cache first and falls back to
// the database. Cache failures only get logged, they never fail the read.
func (use *PhotoServiceImplement) resolvePhoto(ctx context.Context, photoid string, traceid string) (*model.Photo, *ServiceResponse) {
	cacheresp := use.Cache.GetPhotoCache(ctx, photoid)
	if cacheresp.Success {
		use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, cacheresp.Place, traceid, cacheresp.SuccessMessage)
		return cacheresp.Data.Photo, nil
	}
	if cacheresp.Errors != nil {
		use.Logproducer.NewGalleryLog(kafka.LogLevelWarn, cacheresp.Place, traceid, cacheresp.Errors.Message)
	}
	dbresp := use.Photorepo.GetPhoto(ctx, photoid)
	if _, serviceresp := use.requestToRepository(dbresp, traceid); serviceresp != nil {
		return nil, serviceresp
	}
	photo := dbresp.Data.Photo
	if photo.Status == model.PhotoStatusCommitted {
		use.enqueueTask(func() {
			taskctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			cacheresp := use.Cache.AddPhotoCache(taskctx, photo)
			if cacheresp.Errors != nil {
				use.Logproducer.NewGalleryLog(kafka.LogLevelWarn, cacheresp.Place, traceid, cacheresp.Errors.Message)
			}
		}, traceid)
	}
	return photo, nil
}

func (use *PhotoServiceImplement) enqueueTask(task func(), traceid string) {
	select {
	case use.Task_queue <- task:
	default:
		use.Logproducer.NewGalleryLog(kafka.LogLevelWarn, "TaskQueue", traceid, erro.ErrorOverflowTaskQ)
	}
}

// tierOrder resolves a quality preference into the ordered list of blob keys
// to try. The canonical tier always terminates the list, so a missing derived
// tier can never fail a read.
func tierOrder(quality string) []string {
	switch quality {
	case model.TierMedium, model.TierThumbnail:
		return []string{quality, model.TierOriginal}
	default:
		return []string{model.TierOriginal}
	}
}
