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
	"github.com/t3rm1n4l/go-mega"
)

type MegaBlob struct {
	connect    *mega.Mega
	mainfolder *mega.Node
}

func NewMegaConnection(cfg configs.MegaConfig) (*MegaBlob, error) {
	client := mega.New()
	err := client.Login(cfg.Email, cfg.Password)
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to establish Mega-Client connection: %v", err)
		return nil, err
	}
	root := client.FS.GetRoot()
	children, err := client.FS.GetChildren(root)
	if err != nil {
		log.Printf("[DEBUG] [Gallery-Service] Failed to get the main directory: %v", err)
		return nil, err
	}
	var targetFolder *mega.Node
	for _, child := range children {
		if child.GetName() == cfg.MainDirectory {
			targetFolder = child
			break
		}
	}
	if targetFolder == nil {
		log.Printf("[DEBUG] [Gallery-Service] Main directory %s was not found in Mega root", cfg.MainDirectory)
		return nil, fmt.Errorf("main directory %s not found", cfg.MainDirectory)
	}
	log.Println("[DEBUG] [Gallery-Service] Successful connect to Mega-Client")
	return &MegaBlob{connect: client, mainfolder: targetFolder}, nil
}

func (m *MegaBlob) Close() error {
	log.Println("[DEBUG] [Gallery-Service] Successful close Mega-Client")
	return nil
}

func (m *MegaBlob) PutBlob(ctx context.Context, photoid string, tier string, data []byte) *repository.RepositoryResponse {
	const place = PutBlob
	if ctx.Err() != nil {
		return repository.BadResponse(erro.StorageError(erro.ContextCanceled), place)
	}
	filename := blobFilename(photoid, tier)
	tempFile := filepath.Join(os.TempDir(), filename)
	err := os.WriteFile(tempFile, data, 0644)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorPutBlob, err)), place)
	}
	defer os.Remove(tempFile)
	_, err = m.connect.UploadFile(tempFile, m.mainfolder, filename, nil)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorPutBlob, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful put blob to cloud storage"}
}

func (m *MegaBlob) GetBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse {
	const place = GetBlob
	if ctx.Err() != nil {
		return repository.BadResponse(erro.StorageError(erro.ContextCanceled), place)
	}
	filename := blobFilename(photoid, tier)
	node, err := m.findFileByName(filename)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorGetBlob, err)), place)
	}
	if node == nil {
		return &repository.RepositoryResponse{Success: false, Place: place, SuccessMessage: "Blob was not found in cloud storage", Data: repository.Data{Tier: tier}}
	}
	tempFile := filepath.Join(os.TempDir(), filename)
	err = m.connect.DownloadFile(node, tempFile, nil)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorGetBlob, err)), place)
	}
	defer os.Remove(tempFile)
	blobData, err := os.ReadFile(tempFile)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorGetBlob, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{BlobData: blobData, Tier: tier}, SuccessMessage: "Successful get blob from cloud storage"}
}

func (m *MegaBlob) DeleteBlob(ctx context.Context, photoid string, tier string) *repository.RepositoryResponse {
	const place = DeleteBlob
	if ctx.Err() != nil {
		return repository.BadResponse(erro.StorageError(erro.ContextCanceled), place)
	}
	filename := blobFilename(photoid, tier)
	node, err := m.findFileByName(filename)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorDelBlob, err)), place)
	}
	if node == nil {
		return &repository.RepositoryResponse{Success: false, Place: place, SuccessMessage: "Blob was not found in cloud storage", Data: repository.Data{Tier: tier}}
	}
	err = m.connect.Delete(node, true)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorDelBlob, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful delete blob from cloud storage"}
}

func (m *MegaBlob) findFileByName(name string) (*mega.Node, error) {
	children, err := m.connect.FS.GetChildren(m.mainfolder)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if child.GetName() == name {
			return child, nil
		}
	}
	return nil, nil
}
