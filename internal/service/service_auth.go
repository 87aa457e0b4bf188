package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SpookyBoy99/chroma/internal/brokers/kafka"
	"github.com/SpookyBoy99/chroma/internal/client"
	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/repository"
	"github.com/google/uuid"
)

type IdPClient interface {
	ExchangeCode(ctx context.Context, code string) (*client.OAuthTokens, int, error)
}

type SessionRepos interface {
	SetSession(ctx context.Context, session model.Session) *repository.RepositoryResponse
	GetSession(ctx context.Context, sessionid string) *repository.RepositoryResponse
	DeleteSession(ctx context.Context, sessionid string) *repository.RepositoryResponse
}

type DBUserRepos interface {
	UpsertUser(ctx context.Context, user *model.User) *repository.RepositoryResponse
}

const UseCase_Login = "UseCase_Login"
const UseCase_ValidateSession = "UseCase_ValidateSession"
const UseCase_Logout = "UseCase_Logout"

type AuthServiceImplement struct {
	Idp         IdPClient
	Userrepo    DBUserRepos
	Sessions    SessionRepos
	Logproducer LogProducer
}

func NewAuthServiceImplement(idp IdPClient, userrepo DBUserRepos, sessions SessionRepos, logproducer LogProducer) *AuthServiceImplement {
	return &AuthServiceImplement{Idp: idp, Userrepo: userrepo, Sessions: sessions, Logproducer: logproducer}
}

// Login completes the IdP OAuth flow: exchange the code for a token pair and
// member record, store the tokens, create a session.
func (s *AuthServiceImplement) Login(ctx context.Context, code string) *ServiceResponse {
	const place = UseCase_Login
	traceid := ctx.Value("traceID").(string)
	tokens, status, err := s.Idp.ExchangeCode(ctx, code)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			s.Logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Code exchange rejected by IdP: %v", err))
			return &ServiceResponse{Success: false, Errors: erro.NotFoundError(erro.InvalidAuthorizationCode)}
		}
		s.Logproducer.NewGalleryLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Code exchange failed: %v", err))
		return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
	}
	user := &model.User{
		ID:           tokens.Member.ID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Unix(tokens.CreatedAt+tokens.ExpiresIn, 0),
		IsAdmin:      tokens.Member.IsAdmin,
	}
	upsertresp := s.Userrepo.UpsertUser(ctx, user)
	if !upsertresp.Success && upsertresp.Errors != nil {
		s.Logproducer.NewGalleryLog(kafka.LogLevelError, upsertresp.Place, traceid, upsertresp.Errors.Message)
		return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
	}
	s.Logproducer.NewGalleryLog(kafka.LogLevelInfo, upsertresp.Place, traceid, upsertresp.SuccessMessage)
	session := model.Session{
		SessionID:      uuid.New().String(),
		UserID:         user.ID,
		ExpirationTime: time.Now().Add(24 * time.Hour),
	}
	sessionresp := s.Sessions.SetSession(ctx, session)
	if !sessionresp.Success && sessionresp.Errors != nil {
		s.Logproducer.NewGalleryLog(kafka.LogLevelError, sessionresp.Place, traceid, sessionresp.Errors.Message)
		return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
	}
	s.Logproducer.NewGalleryLog(kafka.LogLevelInfo, sessionresp.Place, traceid, sessionresp.SuccessMessage)
	return &ServiceResponse{Success: true, Data: Data{UserID: user.ID, SessionID: session.SessionID}}
}

func (s *AuthServiceImplement) ValidateSession(ctx context.Context, sessionid string) *ServiceResponse {
	const place = UseCase_ValidateSession
	traceid := ctx.Value("traceID").(string)
	if _, err := uuid.Parse(sessionid); err != nil {
		s.Logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("UUID-parse sessionID Error: %v", err))
		return &ServiceResponse{Success: false, Errors: erro.NotFoundError(erro.InvalidSessionData)}
	}
	sessionresp := s.Sessions.GetSession(ctx, sessionid)
	if !sessionresp.Success && sessionresp.Errors != nil {
		switch sessionresp.Errors.Type {
		case erro.StorageUnavailableType:
			s.Logproducer.NewGalleryLog(kafka.LogLevelError, sessionresp.Place, traceid, sessionresp.Errors.Message)
			return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
		default:
			s.Logproducer.NewGalleryLog(kafka.LogLevelWarn, sessionresp.Place, traceid, sessionresp.Errors.Message)
			return &ServiceResponse{Success: false, Errors: sessionresp.Errors}
		}
	}
	return &ServiceResponse{Success: true, Data: Data{UserID: sessionresp.Data.UserID}}
}

func (s *AuthServiceImplement) Logout(ctx context.Context, sessionid string) *ServiceResponse {
	const place = UseCase_Logout
	traceid := ctx.Value("traceID").(string)
	if _, err := uuid.Parse(sessionid); err != nil {
		s.Logproducer.NewGalleryLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("UUID-parse sessionID Error: %v", err))
		return &ServiceResponse{Success: false, Errors: erro.NotFoundError(erro.InvalidSessionData)}
	}
	sessionresp := s.Sessions.DeleteSession(ctx, sessionid)
	if !sessionresp.Success && sessionresp.Errors != nil {
		s.Logproducer.NewGalleryLog(kafka.LogLevelError, sessionresp.Place, traceid, sessionresp.Errors.Message)
		return &ServiceResponse{Success: false, Errors: erro.StorageError(erro.GalleryServiceUnavalaible)}
	}
	s.Logproducer.NewGalleryLog(kafka.LogLevelInfo, sessionresp.Place, traceid, sessionresp.SuccessMessage)
	return &ServiceResponse{Success: true}
}
