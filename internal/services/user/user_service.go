package user

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

// UserService отдаёт публичные профили пользователей
type UserService struct {
	users domain.UserRepository
}

// NewUserService – конструктор UserService
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// SetupRoutes настраивает маршруты для работы с пользователями
func (s *UserService) SetupRoutes(app *fiber.App) {
	app.Get("/api/users/by-steam-id/:steamId", s.GetUserBySteamIDHandler)
}

// GetUserBySteamIDHandler возвращает публичный профиль по Steam ID.
// Маршрут открытый: фронтенд ищет партнёра по обмену до входа
func (s *UserService) GetUserBySteamIDHandler(c fiber.Ctx) error {
	steamID, err := domain.NewSteamID(c.Params("steamId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := s.users.FindBySteamID(ctx, steamID)
	if err != nil {
		var nferr *domain.NotFoundError
		if errors.As(err, &nferr) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"id":        user.ID().Value(),
		"steamId":   user.SteamID().Value(),
		"username":  user.Username(),
		"avatar":    user.Avatar(),
		"createdAt": user.CreatedAt(),
	})
}
