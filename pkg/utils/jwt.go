package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtKey reads the secret on every call; package init runs before main has
// loaded the .env file, so the key must not be captured at init time.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = time.Minute * 60
	refreshTokenTTL = time.Hour * 24 * 7
)

type Claims struct {
	TokenType string `json:"type"`
	// Snapshot of the user row at issue time; set on access tokens only.
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func CreateToken(userID uuid.UUID, tokenType, email, role string, ttl time.Duration) (string, error) {
	claims := &Claims{
		TokenType: tokenType,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// CreateTokenPair issues an access token carrying the user's email and role
// plus a refresh token carrying only the subject.
func CreateTokenPair(userID uuid.UUID, email, role string) (*TokenPair, error) {
	access, err := CreateToken(userID, TokenTypeAccess, email, role, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := CreateToken(userID, TokenTypeRefresh, "", "", refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func ValidateToken(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
