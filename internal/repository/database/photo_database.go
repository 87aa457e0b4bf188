package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/repository"
)

type PhotoDatabase struct {
	databaseclient *DBObject
}

func NewPhotoDatabase(db *DBObject) *PhotoDatabase {
	return &PhotoDatabase{databaseclient: db}
}

const (
	insertPhotoQuery  = `INSERT INTO photos (photoid, albumid, status, created_at) VALUES ($1, $2, $3, $4)`
	commitPhotoQuery  = `UPDATE photos SET status = $2 WHERE photoid = $1`
	deletePhotoQuery  = `DELETE FROM photos WHERE photoid = $1`
	selectPhotoQuery  = `SELECT photoid, albumid, status, created_at FROM photos WHERE photoid = $1`
	selectPhotosQuery = `SELECT photoid, albumid, status, created_at FROM photos WHERE albumid = $1 AND status = 'committed'`
)

func (ph *PhotoDatabase) CreatePhoto(ctx context.Context, photo *model.Photo) *repository.RepositoryResponse {
	const place = CreatePhoto
	_, err := ph.databaseclient.mapstmt[insertPhotoQuery].ExecContext(ctx, photo.ID, photo.AlbumID, photo.Status, photo.CreatedAt)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful create photo metadata in database"}
}

func (ph *PhotoDatabase) CommitPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse {
	const place = CommitPhoto
	result, err := ph.databaseclient.mapstmt[commitPhotoQuery].ExecContext(ctx, photoid, model.PhotoStatusCommitted)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	if rowsAffected == 0 {
		return repository.BadResponse(erro.NotFoundError(erro.NonExistentPhoto), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful commit photo metadata in database"}
}

func (ph *PhotoDatabase) DeletePhoto(ctx context.Context, photoid string) *repository.RepositoryResponse {
	const place = DeletePhoto
	_, err := ph.databaseclient.mapstmt[deletePhotoQuery].ExecContext(ctx, photoid)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful delete photo metadata from database"}
}

func (ph *PhotoDatabase) GetPhoto(ctx context.Context, photoid string) *repository.RepositoryResponse {
	const place = GetPhoto
	var photo model.Photo
	err := ph.databaseclient.mapstmt[selectPhotoQuery].QueryRowContext(ctx, photoid).Scan(&photo.ID, &photo.AlbumID, &photo.Status, &photo.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.BadResponse(erro.NotFoundError(erro.NonExistentPhoto), place)
		}
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photo: &photo}, Place: place, SuccessMessage: "Successful get photo metadata from database"}
}

func (ph *PhotoDatabase) GetPhotos(ctx context.Context, albumid string) *repository.RepositoryResponse {
	const place = GetPhotos
	photoslice := make([]*model.Photo, 0)
	rows, err := ph.databaseclient.mapstmt[selectPhotosQuery].QueryContext(ctx, albumid)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	defer rows.Close()
	for rows.Next() {
		var photo model.Photo
		err := rows.Scan(&photo.ID, &photo.AlbumID, &photo.Status, &photo.CreatedAt)
		if err != nil {
			return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
		}
		photoslice = append(photoslice, &photo)
	}
	if err := rows.Err(); err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqPhotos, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Photos: photoslice}, Place: place, SuccessMessage: "Successful get photos metadata from database"}
}
