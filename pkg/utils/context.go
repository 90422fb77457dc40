package utils

import (
	"context"
	"strings"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	TokenKey  contextKey = "token"
	CookieKey contextKey = "cookie"
)

// GetUserIDFromContext returns the caller's user id. Blank ids count as absent.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || strings.TrimSpace(userID) == "" {
		return "", false
	}

	return userID, true
}

func SetUserContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetTokenFromContext mendapatkan token dari context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok && token != ""
}

// SetTokenContext menambahkan token ke context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

// GetCookieFromContext returns the raw Cookie header forwarded from the caller.
func GetCookieFromContext(ctx context.Context) (string, bool) {
	cookie, ok := ctx.Value(CookieKey).(string)
	return cookie, ok && cookie != ""
}

func SetCookieContext(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, CookieKey, cookie)
}
