package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/metrics"
	"github.com/SpookyBoy99/chroma/internal/model"
)

const CompensationTimeout = 10 * time.Second

// CreatePhoto runs the ingestion pipeline: album check, pending metadata
// insert, canonical blob write, commit. The metadata insert is the durability
// point; if the blob write fails the metadata is deleted again on a detached
// context, so the outer request's cancellation cannot leave an orphan.
func (use *PhotoServiceImplement) CreatePhoto(ctx context.Context, albumid string, filedata []byte) *ServiceResponse {
	const place = UseCase_CreatePhoto
	traceid := ctx.Value("traceID").(string)
	if err := use.parsingIDs(albumid, traceid, place); err != nil {
		return &ServiceResponse{Success: false, Errors: erro.NotFoundError(erro.NonExistentAlbum)}
	}
	albumresp := use.Photorepo.GetAlbum(ctx, albumid)
	if _, serviceresp := use.requestToRepository(albumresp, traceid); serviceresp != nil {
		return serviceresp
	}
	photo := &model.Photo{
		ID:        use.newPhotoID(),
		AlbumID:   albumid,
		Status:    model.PhotoStatusPending,
		CreatedAt: time.Now(),
	}
	createresp := use.Photorepo.CreatePhoto(ctx, photo)
	if _, serviceresp := use.requestToRepository(createresp, traceid); serviceresp != nil {
		return serviceresp
	}
	blobresp := use.Blob.PutBlob(ctx, photo.ID, model.TierOriginal, filedata)
	if !blobresp.Success {
		use.Logproducer.NewGalleryLog(kafka.LogLevelError, blobresp.Place, traceid, blobresp.Errors.Message)
		return use.compensatePhoto(photo.ID, traceid)
	}
	use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, blobresp.Place, traceid, blobresp.SuccessMessage)
	commitresp := use.Photorepo.CommitPhoto(ctx, photo.ID)
	if !commitresp.Success {
		if commitresp.Errors != nil {
			use.Logproducer.NewGalleryLog(kafka.LogLevelError, commitresp.Place, traceid, commitresp.Errors.Message)
		}
		return use.rollbackPhoto(photo.ID, traceid)
	}
	use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, commitresp.Place, traceid, commitresp.SuccessMessage)
	use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo(id = %s) has been successfully ingested", photo.ID))
	return &ServiceResponse{Success: true, Data: Data{PhotoID: photo.ID}}
}

// GetPhoto runs the retrieval pipeline: metadata resolve (cache first), tier
// fallback against the blob store, format conversion.
func (use *PhotoServiceImplement) GetPhoto(ctx context.Context, photoid string, quality string, format string) *ServiceResponse {
	const place = UseCase_GetPhoto
	traceid := ctx.Value("traceID").(string)
	if err := use.parsingIDs(photoid, traceid, place); err != nil {
		return &ServiceResponse{Success: false, Errors: erro.NotFoundError(erro.NonExistentPhoto)}
	}
	photo, serviceresp := use.resolvePhoto(ctx, photoid, traceid)
	if serviceresp != nil {
		return serviceresp
	}
	if photo.Status != model.PhotoStatusCommitted {
		use.Logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Photo(id = %s) is still pending, read raced with an in-flight create", photoid))
		return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.PhotoNotReady)}
	}
	var blobdata []byte
	tiers := tierOrder(quality)
	for i, tier := range tiers {
		blobresp := use.Blob.GetBlob(ctx, photoid, tier)
		if blobresp.Success {
			blobdata = blobresp.Data.BlobData
			break
		}
		if i == len(tiers)-1 {
			if blobresp.Errors != nil {
				use.Logproducer.NewGalleryLog(kafka.LogLevelError, blobresp.Place, traceid, blobresp.Errors.Message)
			} else {
				use.Logproducer.NewGalleryLog(kafka.LogLevelError, blobresp.Place, traceid, fmt.Sprintf("Canonical blob is missing for photo(id = %s)", photoid))
			}
			return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
		}
		use.Logproducer.NewGalleryLog(kafka.LogLevelWarn, blobresp.Place, traceid, fmt.Sprintf("Tier %s is unavailable for photo(id = %s), falling back", tier, photoid))
		metrics.GalleryTierFallbacksTotal.WithLabelValues(tier).Inc()
	}
	converted, cerr := use.Codec.Convert(blobdata, format)
	if cerr != nil {
		use.Logproducer.NewGalleryLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Image conversion to %s failed for photo(id = %s)", format, photoid))
		return &ServiceResponse{Success: false, Errors: cerr}
	}
	use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo(id = %s) has been successfully retrieved", photoid))
	return &ServiceResponse{Success: true, Data: Data{Photo: photo, ImageData: converted}}
}

func (use *PhotoServiceImplement) GetPhotos(ctx context.Context, albumid string) *ServiceResponse {
	const place = UseCase_GetPhotos
	traceid := ctx.Value("traceID").(string)
	if err := use.parsingIDs(albumid, traceid, place); err != nil {
		return &ServiceResponse{Success: false, Errors: erro.NotFoundError(erro.NonExistentAlbum)}
	}
	albumresp := use.Photorepo.GetAlbum(ctx, albumid)
	if _, serviceresp := use.requestToRepository(albumresp, traceid); serviceresp != nil {
		return serviceresp
	}
	photosresp := use.Photorepo.GetPhotos(ctx, albumid)
	if _, serviceresp := use.requestToRepository(photosresp, traceid); serviceresp != nil {
		return serviceresp
	}
	return &ServiceResponse{Success: true, Data: Data{Photos: photosresp.Data.Photos}}
}

// compensatePhoto deletes the pending metadata record after a failed blob
// write. It runs on a fresh context: the compensation must complete even if
// the original request was canceled.
func (use *PhotoServiceImplement) compensatePhoto(photoid string, traceid string) *ServiceResponse {
	const place = CompensatePhoto
	compctx, cancel := context.WithTimeout(context.Background(), CompensationTimeout)
	defer cancel()
	delresp := use.Photorepo.DeletePhoto(compctx, photoid)
	if !delresp.Success {
		use.Logproducer.NewGalleryLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("FATAL: failed to delete metadata for photo(id = %s) after blob write failure: %s", photoid, delresp.Errors.Message))
		return &ServiceResponse{Success: false, Errors: erro.InconsistentError(erro.OrphanedPhotoMetadata)}
	}
	use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Successful compensating delete of metadata for photo(id = %s)", photoid))
	return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
}

// rollbackPhoto undoes both the blob and the metadata after a failed commit.
// Only a failed metadata delete is inconsistent: a stray blob without a
// metadata record is unreachable and gets logged for offline cleanup.
func (use *PhotoServiceImplement) rollbackPhoto(photoid string, traceid string) *ServiceResponse {
	const place = RollbackPhoto
	compctx, cancel := context.WithTimeout(context.Background(), CompensationTimeout)
	defer cancel()
	blobresp := use.Blob.DeleteBlob(compctx, photoid, model.TierOriginal)
	if blobresp.Errors != nil {
		use.Logproducer.NewGalleryLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to delete canonical blob for photo(id = %s) during rollback, blob is left stray: %s", photoid, blobresp.Errors.Message))
	}
	delresp := use.Photorepo.DeletePhoto(compctx, photoid)
	if !delresp.Success {
		use.Logproducer.NewGalleryLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("FATAL: failed to delete metadata for photo(id = %s) after commit failure", photoid))
		return &ServiceResponse{Success: false, Errors: erro.InconsistentError(erro.OrphanedPhotoMetadata)}
	}
	use.Logproducer.NewGalleryLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Successful rollback of photo(id = %s)", photoid))
	return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
}
