package repository

import (
	"time"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
)

type RepositoryResponse struct {
	Success        bool
	SuccessMessage string
	Place          string
	Data           Data
	Errors         *erro.CustomError
}

type Data struct {
	Photo          *model.Photo
	Photos         []*model.Photo
	Album          *model.Album
	BlobData       []byte
	Tier           string
	UserID         string
	ExpirationTime time.Time
}

func BadResponse(err *erro.CustomError, place string) *RepositoryResponse {
	return &RepositoryResponse{
		Success: false,
		Errors:  err,
		Place:   place,
	}
}
