package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

// tokenTTL — время жизни токена, после которого требуется повторный вход
const tokenTTL = 7 * 24 * time.Hour

// UserClaims — данные, зашитые в JWT: внутренний id и Steam ID пользователя
type UserClaims struct {
	UserID  string `json:"user_id"`
	SteamID string `json:"steam_id"`
	jwt.RegisteredClaims
}

// JWTService отвечает за создание и валидацию JWT токенов
type JWTService struct {
	secretKey string
}

// NewJWTService создаёт новый экземпляр JWTService
func NewJWTService(secretKey string) *JWTService {
	return &JWTService{secretKey: secretKey}
}

// GenerateToken создаёт JWT токен для пользователя
func (s *JWTService) GenerateToken(user *domain.User) (string, error) {
	claims := &UserClaims{
		UserID:  user.ID().Value(),
		SteamID: user.SteamID().Value(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseToken проверяет JWT токен и возвращает его claims
func (s *JWTService) ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, domain.ErrInvalidCredential
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, domain.ErrInvalidCredential
}
