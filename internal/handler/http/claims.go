package http

import (
	"net/http"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// currentUserID extracts the authenticated user's ID from the verified
// token claims.
func currentUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
