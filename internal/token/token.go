package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

// Claims is the identity carried by a verified token.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

// Provider signs and verifies HS256 tokens with a key fixed for the
// lifetime of the process.
type Provider struct {
	secret []byte
	ttl    time.Duration
}

// NewProvider builds a Provider from a base64-encoded secret. When the
// secret is empty a random 256-bit key is generated instead; tokens signed
// with it become unverifiable after a restart.
func NewProvider(base64Secret string, ttl time.Duration) (*Provider, error) {
	var secret []byte

	if base64Secret == "" {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generating signing key: %w", err)
		}
		slog.Warn("JWT_SECRET is not set, generated an ephemeral signing key; issued tokens will not survive a restart")
	} else {
		decoded, err := base64.StdEncoding.DecodeString(base64Secret)
		if err != nil {
			return nil, fmt.Errorf("decoding JWT_SECRET: %w", err)
		}
		secret = decoded
	}

	return &Provider{secret: secret, ttl: ttl}, nil
}

func (p *Provider) Generate(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    email,
		"userId": userID.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(p.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *Provider) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["userId"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := claims["sub"].(string)

	return &Claims{UserID: userID, Email: email}, nil
}
