package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/SpookyBoy99/chroma/internal/erro"
	"github.com/SpookyBoy99/chroma/internal/model"
	"github.com/SpookyBoy99/chroma/internal/repository"
)

type SessionCache struct {
	cacheclient *CacheObject
}

func NewSessionCache(red *CacheObject) *SessionCache {
	return &SessionCache{cacheclient: red}
}

const KeySession = "session:%s"

func (sc *SessionCache) SetSession(ctx context.Context, session model.Session) *repository.RepositoryResponse {
	const place = SetSession
	key := fmt.Sprintf(KeySession, session.SessionID)
	err := sc.cacheclient.connect.HSet(ctx, key, map[string]interface{}{
		"UserID":         session.UserID,
		"ExpirationTime": session.ExpirationTime.Format(time.RFC3339),
	}).Err()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorSetSession, err)), place)
	}
	err = sc.cacheclient.connect.Expire(ctx, key, time.Until(session.ExpirationTime)).Err()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorSetSession, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful session installation"}
}

func (sc *SessionCache) GetSession(ctx context.Context, sessionid string) *repository.RepositoryResponse {
	const place = GetSession
	result, err := sc.cacheclient.connect.HGetAll(ctx, fmt.Sprintf(KeySession, sessionid)).Result()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorGetSession, err)), place)
	}
	if len(result) == 0 {
		return repository.BadResponse(erro.NotFoundError(erro.InvalidSessionData), place)
	}
	userID, ok := result["UserID"]
	if !ok {
		return repository.BadResponse(erro.NotFoundError(erro.InvalidSessionData), place)
	}
	expirationTime, err := time.Parse(time.RFC3339, result["ExpirationTime"])
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorGetSession, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, Data: repository.Data{UserID: userID, ExpirationTime: expirationTime}, SuccessMessage: "Successful session receiving"}
}

func (sc *SessionCache) DeleteSession(ctx context.Context, sessionid string) *repository.RepositoryResponse {
	const place = DeleteSession
	err := sc.cacheclient.connect.Del(ctx, fmt.Sprintf(KeySession, sessionid)).Err()
	if err != nil {
		return repository.BadResponse(erro.StorageError(fmt.Sprintf(erro.ErrorDelSession, err)), place)
	}
	return &repository.RepositoryResponse{Success: true, Place: place, SuccessMessage: "Successful session deleted"}
}
