package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const tokenDataKey = "token_data"

var (
	ErrBadToken     = errors.New("invalid token")
	ErrNoTokenData  = errors.New("no token data in context")
	ErrEmptySubject = errors.New("token subject is empty")
)

// TokenData is the claim set carried by access tokens.
type TokenData struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenSigner issues HS256 access tokens bound to an email.
type TokenSigner struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	return &TokenSigner{Secret: []byte(secret), TTL: ttl}
}

func (s *TokenSigner) Issue(email string) (string, error) {
	if email == "" {
		return "", ErrEmptySubject
	}

	now := time.Now()
	claims := TokenData{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Parse verifies signature and expiry and returns the embedded claims.
func (s *TokenSigner) Parse(raw string) (*TokenData, error) {
	return ParseToken(raw, s.Secret)
}

func ParseToken(raw string, secret []byte) (*TokenData, error) {
	tok, err := jwt.ParseWithClaims(raw, &TokenData{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		// block alg confusion
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	data, ok := tok.Claims.(*TokenData)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return data, nil
}

func SetTokenDataCtx(c echo.Context, data *TokenData) {
	c.Set(tokenDataKey, data)
}

// ParseTokenDataCtx returns the claims the token gate stored on c.
func ParseTokenDataCtx(c echo.Context) (*TokenData, error) {
	data, ok := c.Get(tokenDataKey).(*TokenData)
	if !ok || data == nil {
		return nil, ErrNoTokenData
	}
	return data, nil
}
