package blob

import (
	"context"
	"fmt"

	"github.com/SpookyBoy99/chroma/internal/configs"
	"github.com/SpookyBoy99/chroma/internal/repository"
)

const PutBlob = "Repository-PutBlob"
const GetBlob = "Repository-GetBlob"
const DeleteBlob = "Repository-DeleteBlob"

// BlobStorage stores photo bytes addressed by photo identifier and quality tier.
// A miss (key absent) is reported as Success=false with no Errors; backend
// failures carry a StorageUnavailable error.
type BlobStorage interface {
	PutBlob(ctx context.Context, photoid string, tier string, data []byte) *repository.RepositoryResponse
	GetBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse
	DeleteBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse
	Close() error
}

func NewBlobStorage(cfg configs.StorageConfig) (BlobStorage, error) {
	switch cfg.Type {
	case "bolt":
		return NewBoltConnection(cfg.Bolt)
	case "mega":
		return NewMegaConnection(cfg.Mega)
	default:
		return nil, fmt.Errorf("unknown storage type: %s (must be 'bolt' or 'mega')", cfg.Type)
	}
}

func blobKey(photoid, tier string) []byte {
	return []byte(photoid + "/" + tier)
}

func blobFilename(photoid, tier string) string {
	return photoid + "_" + tier + ".webp"
}
