package blob

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/SpookyBoy99/chroma/internal/configs"
	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/repository"
	bolt "go.etcd.io/bbolt"
)

const blobBucket = "photo_blobs"

type BoltBlob struct {
	db *bolt.DB
}

func NewBoltConnection(cfg configs.BoltConfig) (*BoltBlob, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to create blob storage directory: %v", err)
		return nil, err
	}
	db, err := bolt.Open(cfg.Path, 0600, nil)
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to open Bolt-Client: %v", err)
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(blobBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Println("[DEBUG] [Gallery-Service] Successful connect to Bolt-Client")
	return &BoltBlob{db: db}, nil
}

func (b *BoltBlob) Close() error {
	err := b.db.Close()
	log.Println("[DEBUG] [Gallery-Service] Successful close Bolt-Client")
	return err
}

func (b *BoltBlob) PutBlob(ctx context.Context, photoid string, tier string, data []byte) *repository.RepositoryResponse {
	const place = PutBlob
	if ctx.Err() != nil {
		return repository.BadResponse(erro.StorageError(erro.ContextCanceled), place)
	}
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(blobBucket))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", blobBucket)
		}
		return bucket.Put(blobKey(photoid, tier), data)
	})
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorPutBlob, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful put blob to storage"}
}

func (b *BoltBlob) GetBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse {
	const place = GetBlob
	if ctx.Err() != nil {
		return repository.BadResponse(erro.StorageError(erro.ContextCanceled), place)
	}
	var blobData []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(blobBucket))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", blobBucket)
		}
		value := bucket.Get(blobKey(photoid, tier))
		if value == nil {
			return nil
		}
		blobData = make([]byte, len(value))
		copy(blobData, value)
		return nil
	})
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorGetBlob, err)), place)
	}
	if blobData == nil {
		return &repository.RepositoryResponse{Success: false, Place: place, SuccessMessage: "Blob was not found in storage", Data: repository.Data{Tier: tier}}
	}
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{BlobData: blobData, Tier: tier}, SuccessMessage: "Successful get blob from storage"}
}

func (b *BoltBlob) DeleteBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse {
	const place = DeleteBlob
	if ctx.Err() != nil {
		return repository.BadResponse(erro.StorageError(erro.ContextCanceled), place)
	}
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(blobBucket))
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", blobBucket)
		}
		return bucket.Delete(blobKey(photoid, tier))
	})
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorDelBlob, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful delete blob from storage"}
}
