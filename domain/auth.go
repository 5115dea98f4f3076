package domain

import (
	"context"
	"time"
)

// TokenPair is what a successful login hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// refreshTokenFromPayload validates a payload carrying only a refresh token.
// The entity distinguishes refresh from logout so the translated messages
// keep their original codes.
func refreshTokenFromPayload(payload Payload, entity ValidationEntity) (string, error) {
	raw, ok := payload["refreshToken"]
	if !ok || raw == nil {
		return "", ValidationError{entity, MissingRefreshToken}
	}
	token, ok := raw.(string)
	if !ok {
		return "", ValidationError{entity, PayloadWrongDataType}
	}
	if token == "" {
		return "", ValidationError{entity, MissingRefreshToken}
	}
	return token, nil
}

// RefreshTokenForRotation validates the PUT /authentications payload.
func RefreshTokenForRotation(payload Payload) (string, error) {
	return refreshTokenFromPayload(payload, EntityRefreshAuth)
}

// RefreshTokenForLogout validates the DELETE /authentications payload.
func RefreshTokenForLogout(payload Payload) (string, error) {
	return refreshTokenFromPayload(payload, EntityDeleteAuth)
}

// RefreshTokenStore persists refresh-token sessions.
type RefreshTokenStore interface {
	// Save registers the token for userID with the given lifetime.
	Save(ctx context.Context, token, userID string, ttl time.Duration) error

	// Verify returns the user id the token belongs to, or a wrapped
	// ErrBadParamInput when the token is unknown or expired.
	Verify(ctx context.Context, token string) (string, error)

	// Delete revokes the token. Returns a wrapped ErrBadParamInput when the
	// token is unknown.
	Delete(ctx context.Context, token string) error
}

// UserUsecase defines the business logic contract for accounts and sessions.
type UserUsecase interface {
	Register(ctx context.Context, payload Payload) (AddedUser, error)

	// Login verifies the credential and opens a session.
	// Returns ErrAuthentication when the password doesn't match.
	Login(ctx context.Context, payload Payload) (TokenPair, error)

	// Refresh rotates the access token for a live refresh token.
	Refresh(ctx context.Context, payload Payload) (string, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, payload Payload) error
}
