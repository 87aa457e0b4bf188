package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SpookyBoy99/chroma/internal/client"
	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/repository"
	"github.com/SpookyBoy99/chroma/internal/service"
	mock_service "github.com/SpookyBoy99/chroma/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func successResponse(place string, msg string) *repository.RepositoryResponse {
	return &repository.RepositoryResponse{Success: true, SuccessMessage: msg, Place: place}
}

func TestLogin_Success(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	fixedUserID := "42"
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockidp := mock_service.NewMockIdPClient(ctrl)
	mockuserrepo := mock_service.NewMockDBUserRepos(ctrl)
	mocksessions := mock_service.NewMockSessionRepos(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.AuthServiceImplement{
		Idp:         mockidp,
		Userrepo:    mockuserrepo,
		Sessions:    mocksessions,
		Logproducer: mocklogproducer,
	}
	mockidp.EXPECT().ExchangeCode(ctx, "authcode").Return(&client.OAuthTokens{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    7200,
		CreatedAt:    time.Now().Unix(),
		Member:       client.MemberInfo{ID: fixedUserID, IsAdmin: false},
	}, http.StatusOK, nil)
	mockuserrepo.EXPECT().UpsertUser(ctx, gomock.Any()).Return(successResponse("Repository-UpsertUser", "Successful upsert user in database"))
	mocksessions.EXPECT().SetSession(ctx, gomock.Any()).Return(successResponse("Repository-SetSession", "Successful set session in cache"))
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.Login(ctx, "authcode")
	require.True(t, response.Success)
	require.Nil(t, response.Errors)
	require.Equal(t, fixedUserID, response.Data.UserID)
	require.NotEmpty(t, response.Data.SessionID)
}

func TestLogin_RejectedCode(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockidp := mock_service.NewMockIdPClient(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.AuthServiceImplement{
		Idp:         mockidp,
		Logproducer: mocklogproducer,
	}
	mockidp.EXPECT().ExchangeCode(ctx, "badcode").Return(nil, http.StatusUnauthorized, errors.New("token exchange failed with status 401"))
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.Login(ctx, "badcode")
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.NotFoundType, response.Errors.Type)
	require.Equal(t, erro.InvalidAuthorizationCode, response.Errors.Message)
}

func TestLogin_IdPUnavailable(t *testing.T) {
	fixedTraceID := "123e4567-e89b-12d3-a456-426614174000"
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockidp := mock_service.NewMockIdPClient(ctrl)
	mocklogproducer := mock_service.NewMockLogProducer(ctrl)
	as := service.AuthServiceImplement{
		Idp:         mockidp,
		Logproducer: mocklogproducer,
	}
	mockidp.EXPECT().ExchangeCode(ctx, "authcode").Return(nil, 0, errors.New("connection refused"))
	mocklogproducer.EXPECT().NewGalleryLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	response := as.Login(ctx, "authcode")
	require.False(t, response.Success)
	require.NotNil(t, response.Errors)
	require.Equal(t, erro.StorageUnavailableType, response.Errors.Type)
}
