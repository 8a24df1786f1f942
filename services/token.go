package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"paju/errors"
)

// UserInfo là thông tin user nằm trong token
type UserInfo struct {
	UserId   uint   `json:"userid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// TokenService ký và kiểm tra JWT HS256
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL là thời gian sống của token, dùng cho max-age của cookie
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) GenerateToken(userInfo UserInfo) (string, error) {
	now := s.now()
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken kiểm tra chữ ký, hạn dùng và trả về thông tin user
func (s *TokenService) ParseToken(tokenString string) (*UserInfo, error) {
	if tokenString == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Missing token", nil)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if claims.UserInfo.UserId == 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token has no user", nil)
	}
	return &claims.UserInfo, nil
}
