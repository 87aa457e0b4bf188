package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SpookyBoy99/chroma/internal/erro"
	mock_handlers "github.com/SpookyBoy99/chroma/internal/handlers/mocks"
	"github.com/SpookyBoy99/chroma/internal/handlers/response"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/service"
	mock_service "github.com/SpookyBoy99/chroma/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestGetPhoto_ResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedAlbumID := "123e4567-e89b-12d3-a456-426614174001"
	fixedPhotoID := "123e4567-e89b-12d3-a456-426614174002"
	createdAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	imagedata := []byte("canonical-webp-bytes")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotoservice := mock_handlers.NewMockPhotoService(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	h := &Handler{photoservice: mockphotoservice, logproducer: mocklogproducer}
	mockphotoservice.EXPECT().GetPhoto(gomock.Any(), fixedPhotoID, model.TierUnspecified, model.FormatNative).Return(&service.ServiceResponse{
		Success: true,
		Data: service.Data{
			Photo: &model.Photo{
				ID:        fixedPhotoID,
				AlbumID:   fixedAlbumID,
				Status:    model.PhotoStatusCommitted,
				CreatedAt: createdAt,
			},
			ImageData: imagedata,
		},
	})
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/photo/"+fixedPhotoID+"?format=native&quality=unspecified", nil)
	c.Params = gin.Params{{Key: "photoid", Value: fixedPhotoID}}
	c.Set("traceID", fixedTraceID)
	h.getPhoto(c)
	require.Equal(t, http.StatusOK, w.Code)
	var httpresp response.HTTPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &httpresp))
	require.True(t, httpresp.Success)
	require.Empty(t, httpresp.Errors)
	require.Equal(t, fixedPhotoID, httpresp.Data["photo_id"])
	require.Equal(t, fixedAlbumID, httpresp.Data["album_id"])
	require.Equal(t, createdAt.Format(time.RFC3339), httpresp.Data["created_at"])
	encoded, ok := httpresp.Data["image_data"].(string)
	require.True(t, ok)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Equal(t, imagedata, decoded)
}

func TestGetPhoto_NonExistentPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedPhotoID := "123e4567-e89b-12d3-a456-426614174002"
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotoservice := mock_handlers.NewMockPhotoService(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	h := &Handler{photoservice: mockphotoservice, logproducer: mocklogproducer}
	mockphotoservice.EXPECT().GetPhoto(gomock.Any(), fixedPhotoID, model.TierUnspecified, model.FormatPng).Return(&service.ServiceResponse{
		Success: false,
		Errors:  erro.NotFoundError(erro.NonExistentPhoto),
	})
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/photo/"+fixedPhotoID, nil)
	c.Params = gin.Params{{Key: "photoid", Value: fixedPhotoID}}
	c.Set("traceID", fixedTraceID)
	h.getPhoto(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	var httpresp response.HTTPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &httpresp))
	require.False(t, httpresp.Success)
	require.Equal(t, erro.NonExistentPhoto, httpresp.Errors["ClientError"])
}

func TestGetPhoto_UnsupportedQuality(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedPhotoID := "123e4567-e89b-12d3-a456-426614174002"
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockphotoservice := mock_handlers.NewMockPhotoService(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	h := &Handler{photoservice: mockphotoservice, logproducer: mocklogproducer}
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/photo/"+fixedPhotoID+"?quality=gigantic", nil)
	c.Params = gin.Params{{Key: "photoid", Value: fixedPhotoID}}
	c.Set("traceID", fixedTraceID)
	h.getPhoto(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var httpresp response.HTTPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &httpresp))
	require.False(t, httpresp.Success)
	require.Equal(t, "Unsupported quality tier", httpresp.Errors["ClientError"])
}
