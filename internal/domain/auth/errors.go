package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid employee code or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrAccountInactive     = errors.New("account is deactivated")
	ErrAccountNotVerified  = errors.New("account email is not verified")
)
