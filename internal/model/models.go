package model

import "time"

const (
	PhotoStatusPending   = "pending"
	PhotoStatusCommitted = "committed"
)

const (
	TierUnspecified = "unspecified"
	TierOriginal    = "original"
	TierMedium      = "medium"
	TierThumbnail   = "thumbnail"
)

const (
	FormatNative = "native"
	FormatWebp   = "webp"
	FormatPng    = "png"
	FormatJpeg   = "jpeg"
)

type Photo struct {
	ID        string    `json:"photo_id"`
	AlbumID   string    `json:"album_id"`
	Status    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Album struct {
	ID string `json:"album_id"`
}

type User struct {
	ID           string    `json:"user_id"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
}

type Session struct {
	SessionID      string
	UserID         string
	ExpirationTime time.Time
}
