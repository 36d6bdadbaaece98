package jwttoken

import (
	"strconv"

	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
)

// Principal is what the auth middleware learns from a verified access token.
type Principal struct {
	UserID       id.UserID
	Username     string
	SessionToken id.SessionToken
	JTI          string
}

// ToPrincipal checks the custom claims and converts them to typed ids.
func ToPrincipal(claims *Claims) (Principal, error) {
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil || userID <= 0 || claims.Subject != claims.UserID {
		return Principal{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	token, err := id.ParseSessionToken(claims.SessionID)
	if err != nil {
		return Principal{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return Principal{
		UserID:       id.UserID(userID),
		Username:     claims.Username,
		SessionToken: token,
		JTI:          claims.ID,
	}, nil
}

// JWTServiceAdapter exposes a JWTService as the auth middleware's validator.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(raw string) (Principal, error) {
	claims, err := a.service.ValidateToken(raw)
	if err != nil {
		return Principal{}, err
	}
	return ToPrincipal(claims)
}
