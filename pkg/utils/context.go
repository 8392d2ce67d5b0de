package utils

import (
	"context"

	"movie-ticketing/internal/data/entity"
)

type contextKey string

const (
	UserKey      contextKey = "user"
	RequestIDKey contextKey = "request_id"
)

// SetUserContext stores the authenticated user resolved by the basic-auth
// middleware. Downstream handlers receive the full record, not the raw
// username.
func SetUserContext(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}
