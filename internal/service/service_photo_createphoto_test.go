package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/repository"
	"github.com/SpookyBoy99/chroma/internal/service"
	mock_service "github.com/SpookyBoy99/chroma/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestCreatePhoto_Success(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedAlbumID := "123e4567-e89b-12d3-a456-426614174001"
	filedata := []byte("webp-bytes")
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotorepo := mock_service.NewMockDBPhotoRepos(ctrl)
	mockblob := mock_service.NewMockBlobStorage(ctrl)
	mockcache := mock_service.NewMockCachePhotoRepos(ctrl)
	mockcodec := mock_service.NewMockImageCodec(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.PhotoServiceImplement{
		Photorepo:   mockphotorepo,
		Blob:        mockblob,
		Cache:       mockcache,
		Codec:       mockcodec,
		Logproducer: mocklogproducer,
		Task_queue:  make(chan func(), 1000),
	}
	mockphotorepo.EXPECT().GetAlbum(ctx, fixedAlbumID).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful get album from database",
		Place:          "Repository-GetAlbum",
		Data:           repository.Data{Album: &model.Album{ID: fixedAlbumID}},
	})
	mockphotorepo.EXPECT().CreatePhoto(ctx, gomock.Any()).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful create photo metadata in database",
		Place:          "Repository-CreatePhoto",
	})
	mockblob.EXPECT().PutBlob(ctx, gomock.Any(), model.TierOriginal, filedata).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful put blob to storage",
		Place:          "Repository-PutBlob",
	})
	mockphotorepo.EXPECT().CommitPhoto(ctx, gomock.Any()).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful commit photo metadata in database",
		Place:          "Repository-CommitPhoto",
	})
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.CreatePhoto(ctx, fixedAlbumID, filedata)
	require.True(t, response.Success)
	require.Nil(t, response.Errors)
	require.NotEmpty(t, response.Data.PhotoID)
}

func TestCreatePhoto_NonExistentAlbum(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedAlbumID := "123e4567-e89b-12d3-a456-426614174001"
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotorepo := mock_service.NewMockDBPhotoRepos(ctrl)
	mockblob := mock_service.NewMockBlobStorage(ctrl)
	mockcache := mock_service.NewMockCachePhotoRepos(ctrl)
	mockcodec := mock_service.NewMockImageCodec(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.PhotoServiceImplement{
		Photorepo:   mockphotorepo,
		Blob:        mockblob,
		Cache:       mockcache,
		Codec:       mockcodec,
		Logproducer: mocklogproducer,
		Task_queue:  make(chan func(), 1000),
	}
	mockphotorepo.EXPECT().GetAlbum(ctx, fixedAlbumID).Return(repository.BadResponse(erro.NotFoundError(erro.NonExistentAlbum), "Repository-GetAlbum"))
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.CreatePhoto(ctx, fixedAlbumID, []byte("webp-bytes"))
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.NotFoundType, response.Errors.Type)
	require.Equal(t, erro.NonExistentAlbum, response.Errors.Message)
}

func TestCreatePhoto_InvalidAlbumID(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotorepo := mock_service.NewMockDBPhotoRepos(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.PhotoServiceImplement{
		Photorepo:   mockphotorepo,
		Logproducer: mocklogproducer,
		Task_queue:  make(chan func(), 1000),
	}
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.CreatePhoto(ctx, "not-a-uuid", []byte("webp-bytes"))
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.NotFoundType, response.Errors.Type)
}

func TestCreatePhoto_BlobFailure_CompensatesMetadata(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedAlbumID := "123e4567-e89b-12d3-a456-426614174001"
	filedata := []byte("webp-bytes")
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotorepo := mock_service.NewMockDBPhotoRepos(ctrl)
	mockblob := mock_service.NewMockBlobStorage(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.PhotoServiceImplement{
		Photorepo:   mockphotorepo,
		Blob:        mockblob,
		Logproducer: mocklogproducer,
		Task_queue:  make(chan func(), 1000),
	}
	mockphotorepo.EXPECT().GetAlbum(ctx, fixedAlbumID).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-GetAlbum",
		Data:    repository.Data{Album: &model.Album{ID: fixedAlbumID}},
	})
	mockphotorepo.EXPECT().CreatePhoto(ctx, gomock.Any()).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful create photo metadata in database",
		Place:          "Repository-CreatePhoto",
	})
	mockblob.EXPECT().PutBlob(ctx, gomock.Any(), model.TierOriginal, filedata).Return(repository.BadResponse(erro.StorageError("Put blob error: storage down"), "Repository-PutBlob"))
	// compensation runs on a detached context
	mockphotorepo.EXPECT().DeletePhoto(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful delete photo metadata from database",
		Place:          "Repository-DeletePhoto",
	})
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.CreatePhoto(ctx, fixedAlbumID, filedata)
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.StorageUnavailableType, response.Errors.Type)
}

func TestCreatePhoto_RollbackStrayBlob_StaysRetryable(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedAlbumID := "123e4567-e89b-12d3-a456-426614174001"
	filedata := []byte("webp-bytes")
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotorepo := mock_service.NewMockDBPhotoRepos(ctrl)
	mockblob := mock_service.NewMockBlobStorage(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.PhotoServiceImplement{
		Photorepo:   mockphotorepo,
		Blob:        mockblob,
		Logproducer: mocklogproducer,
		Task_queue:  make(chan func(), 1000),
	}
	mockphotorepo.EXPECT().GetAlbum(ctx, fixedAlbumID).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-GetAlbum",
		Data:    repository.Data{Album: &model.Album{ID: fixedAlbumID}},
	})
	mockphotorepo.EXPECT().CreatePhoto(ctx, gomock.Any()).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-CreatePhoto",
	})
	mockblob.EXPECT().PutBlob(ctx, gomock.Any(), model.TierOriginal, filedata).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful put blob to storage",
		Place:          "Repository-PutBlob",
	})
	mockphotorepo.EXPECT().CommitPhoto(ctx, gomock.Any()).Return(repository.BadResponse(erro.StorageError("Error after request into photos: connection refused"), "Repository-CommitPhoto"))
	// the stray blob alone must not escalate the failure to inconsistent
	mockblob.EXPECT().DeleteBlob(gomock.Any(), gomock.Any(), model.TierOriginal).Return(repository.BadResponse(erro.StorageError("Delete blob error: storage down"), "Repository-DeleteBlob"))
	mockphotorepo.EXPECT().DeletePhoto(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-DeletePhoto",
	})
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.CreatePhoto(ctx, fixedAlbumID, filedata)
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.StorageUnavailableType, response.Errors.Type)
	require.Equal(t, erro.GalleryServiceUnavalaible, response.Errors.Message)
}

func TestCreatePhoto_CompensationFailure_Inconsistent(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedAlbumID := "123e4567-e89b-12d3-a456-426614174001"
	filedata := []byte("webp-bytes")
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotorepo := mock_service.NewMockDBPhotoRepos(ctrl)
	mockblob := mock_service.NewMockBlobStorage(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.PhotoServiceImplement{
		Photorepo:   mockphotorepo,
		Blob:        mockblob,
		Logproducer: mocklogproducer,
		Task_queue:  make(chan func(), 1000),
	}
	mockphotorepo.EXPECT().GetAlbum(ctx, fixedAlbumID).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-GetAlbum",
		Data:    repository.Data{Album: &model.Album{ID: fixedAlbumID}},
	})
	mockphotorepo.EXPECT().CreatePhoto(ctx, gomock.Any()).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-CreatePhoto",
	})
	mockblob.EXPECT().PutBlob(ctx, gomock.Any(), model.TierOriginal, filedata).Return(repository.BadResponse(erro.StorageError("Put blob error: storage down"), "Repository-PutBlob"))
	mockphotorepo.EXPECT().DeletePhoto(gomock.Any(), gomock.Any()).Return(repository.BadResponse(erro.StorageError("Error after request into photos: connection refused"), "Repository-DeletePhoto"))
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.CreatePhoto(ctx, fixedAlbumID, filedata)
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.InconsistentType, response.Errors.Type)
	require.Equal(t, erro.OrphanedPhotoMetadata, response.Errors.Message)
}

func TestCreatePhoto_CommitFailure_RollsBack(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedAlbumID := "123e4567-e89b-12d3-a456-426614174001"
	filedata := []byte("webp-bytes")
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotorepo := mock_service.NewMockDBPhotoRepos(ctrl)
	mockblob := mock_service.NewMockBlobStorage(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.PhotoServiceImplement{
		Photorepo:   mockphotorepo,
		Blob:        mockblob,
		Logproducer: mocklogproducer,
		Task_queue:  make(chan func(), 1000),
	}
	mockphotorepo.EXPECT().GetAlbum(ctx, fixedAlbumID).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-GetAlbum",
		Data:    repository.Data{Album: &model.Album{ID: fixedAlbumID}},
	})
	mockphotorepo.EXPECT().CreatePhoto(ctx, gomock.Any()).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-CreatePhoto",
	})
	mockblob.EXPECT().PutBlob(ctx, gomock.Any(), model.TierOriginal, filedata).Return(&repository.RepositoryResponse{
		Success:        true,
		SuccessMessage: "Successful put blob to storage",
		Place:          "Repository-PutBlob",
	})
	mockphotorepo.EXPECT().CommitPhoto(ctx, gomock.Any()).Return(repository.BadResponse(erro.StorageError("Error after request into photos: connection refused"), "Repository-CommitPhoto"))
	mockblob.EXPECT().DeleteBlob(gomock.Any(), gomock.Any(), model.TierOriginal).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-DeleteBlob",
	})
	mockphotorepo.EXPECT().DeletePhoto(gomock.Any(), gomock.Any()).Return(&repository.RepositoryResponse{
		Success: true,
		Place:   "Repository-DeletePhoto",
	})
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.CreatePhoto(ctx, fixedAlbumID, filedata)
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.StorageUnavailableType, response.Errors.Type)
}
