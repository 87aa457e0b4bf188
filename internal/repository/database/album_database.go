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

const (
	selectAlbumQuery = `SELECT albumid FROM albums WHERE albumid = $1`
	insertAlbumQuery = `INSERT INTO albums (albumid) VALUES ($1) ON CONFLICT (albumid) DO NOTHING`
	deleteAlbumQuery = `DELETE FROM albums WHERE albumid = $1`
	upsertUserQuery  = `INSERT INTO users (userid, access_token, refresh_token, expires_at, is_admin) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (userid) DO UPDATE SET access_token = $2, refresh_token = $3, expires_at = $4`
)

func (ph *PhotoDatabase) GetAlbum(ctx context.Context, albumid string) *repository.RepositoryResponse {
	const place = GetAlbum
	var album model.Album
	err := ph.databaseclient.mapstmt[selectAlbumQuery].QueryRowContext(ctx, albumid).Scan(&album.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.BadResponse(erro.NotFoundError(erro.NonExistentAlbum), place)
		}
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Data: repository.Data{Album: &album}, Place: place, SuccessMessage: "Successful get album metadata from database"}
}

func (ph *PhotoDatabase) AddAlbum(ctx context.Context, albumid string) *repository.RepositoryResponse {
	const place = AddAlbum
	result, err := ph.databaseclient.mapstmt[insertAlbumQuery].ExecContext(ctx, albumid)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	var message string
	if rowsAffected > 0 {
		message = "Successful add albumID to database after album creation event"
	} else {
		message = "AlbumID already exists (no changes made)"
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: message}
}

func (ph *PhotoDatabase) DeleteAlbumData(ctx context.Context, albumid string) *repository.RepositoryResponse {
	const place = DeleteAlbum
	result, err := ph.databaseclient.mapstmt[deleteAlbumQuery].ExecContext(ctx, albumid)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqAlbums, err)), place)
	}
	var message string
	if rowsAffected > 0 {
		message = "Successful delete albumID from database after album delete event"
	} else {
		message = "No album data found to delete"
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: message}
}

func (ph *PhotoDatabase) UpsertUser(ctx context.Context, user *model.User) *repository.RepositoryResponse {
	const place = UpsertUser
	_, err := ph.databaseclient.mapstmt[upsertUserQuery].ExecContext(ctx, user.ID, user.AccessToken, user.RefreshToken, user.ExpiresAt, user.IsAdmin)
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorAfterReqUsers, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful upsert user tokens in database"}
}
