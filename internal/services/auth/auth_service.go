package auth

import (
	"context"
	"errors"

	"github.com/rajivgeraev/steam-trade-api/internal/config"
	"github.com/rajivgeraev/steam-trade-api/internal/domain"
	"github.com/rajivgeraev/steam-trade-api/internal/steam"
	"github.com/rajivgeraev/steam-trade-api/internal/utils"
)

// AuthService – обработка входа через Steam и выдача JWT
type AuthService struct {
	cfg        *config.Config
	users      domain.UserRepository
	jwtService *utils.JWTService
	openID     *steam.OpenIDClient
	webAPI     *steam.WebAPIClient
}

// NewAuthService – конструктор AuthService
func NewAuthService(cfg *config.Config, users domain.UserRepository) *AuthService {
	return &AuthService{
		cfg:        cfg,
		users:      users,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
		openID:     steam.NewOpenIDClient(cfg.BackendURL),
		webAPI:     steam.NewWebAPIClient(cfg.SteamAPIKey),
	}
}

// GetJWTService возвращает JWT-сервис для middleware других модулей
func (s *AuthService) GetJWTService() *utils.JWTService {
	return s.jwtService
}

// HandleSteamLogin находит пользователя по Steam ID или создаёт нового.
// При повторном входе профиль обновляется данными из Steam; пустые значения
// не затирают сохранённые.
func (s *AuthService) HandleSteamLogin(ctx context.Context, steamID, username, avatar string) (*domain.User, error) {
	sid, err := domain.NewSteamID(steamID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindBySteamID(ctx, sid)
	var nferr *domain.NotFoundError
	if errors.As(err, &nferr) {
		if username == "" {
			username = "Unknown"
		}
		return s.users.CreateNew(ctx, sid, username, avatar)
	}
	if err != nil {
		return nil, err
	}

	if username == "" {
		username = user.Username()
	}
	if avatar == "" {
		avatar = user.Avatar()
	}
	if err := user.UpdateProfile(username, avatar); err != nil {
		return nil, err
	}
	return s.users.Save(ctx, user)
}

// VerifyToken проверяет токен и возвращает пользователя, которому он выдан
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwtService.ParseToken(token)
	if err != nil {
		return nil, err
	}
	userID, err := domain.NewUserID(claims.UserID)
	if err != nil {
		return nil, domain.ErrInvalidCredential
	}
	return s.users.FindByID(ctx, userID)
}
