package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"study-analysis/internal/config"
	"study-analysis/internal/dto"
	"study-analysis/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const tokenTypeAccess = "access"

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// TokenService issues and validates the HS256 access tokens the API accepts.
// Users are authenticated elsewhere; only the token boundary lives here.
type TokenService interface {
	CreateAccessToken(ctx context.Context, userID string) (string, error)
	CreateAdminToken(ctx context.Context, userID string) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type tokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg config.JWTConfig) (TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &tokenServiceImpl{secret: []byte(cfg.SecretKey), ttl: ttl, now: time.Now}, nil
}

func (s *tokenServiceImpl) CreateAccessToken(ctx context.Context, userID string) (string, error) {
	return s.createToken(userID, "")
}

func (s *tokenServiceImpl) CreateAdminToken(ctx context.Context, userID string) (string, error) {
	return s.createToken(userID, dto.RoleAdmin)
}

func (s *tokenServiceImpl) createToken(userID, role string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	now := s.now()
	claims := dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenTypeAccess,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		msg := "JWT validation failed"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "JWT token expired"
		}
		logger.Get().Warn(msg, zap.Error(err), zap.String("token_snippet", snippet(tokenString)))
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" || claims.TokenType != tokenTypeAccess {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

func snippet(token string) string {
	return token[:min(len(token), 20)] + "..."
}
