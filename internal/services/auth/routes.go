package auth

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
	"github.com/rajivgeraev/steam-trade-api/internal/middleware"
)

// SetupRoutes настраивает маршруты для аутентификации
func (s *AuthService) SetupRoutes(app *fiber.App) {
	app.Get("/api/auth/steam", s.SteamLoginHandler)
	app.Get("/api/auth/steam/return", s.SteamReturnHandler)
	app.Post("/api/auth/logout", s.LogoutHandler)

	protected := app.Group("/api/auth")
	protected.Use(middleware.AuthMiddleware(s.jwtService))
	protected.Get("/me", s.MeHandler)
}

// SteamLoginHandler перенаправляет пользователя на страницу входа Steam
func (s *AuthService) SteamLoginHandler(c fiber.Ctx) error {
	return c.Redirect().To(s.openID.AuthURL())
}

// SteamReturnHandler обрабатывает возврат со страницы входа Steam.
// Проверяем OpenID-ответ, подтягиваем профиль из Steam Web API,
// находим или создаём пользователя и ставим cookie с JWT.
// При любой ошибке возвращаем пользователя на фронтенд без cookie
func (s *AuthService) SteamReturnHandler(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	query := url.Values{}
	for key, value := range c.Queries() {
		query.Set(key, value)
	}

	steamID, err := s.openID.VerifyCallback(ctx, query)
	if err != nil {
		log.Printf("Ошибка проверки OpenID ответа Steam: %v", err)
		return c.Redirect().To(s.cfg.FrontendURL)
	}

	var username, avatar string
	summary, err := s.webAPI.GetPlayerSummary(ctx, steamID)
	if err != nil {
		// Профиль не обязателен для входа, создадим пользователя без него
		log.Printf("Ошибка получения профиля Steam %s: %v", steamID, err)
	} else {
		username = summary.PersonaName
		avatar = summary.AvatarFull
	}

	user, err := s.HandleSteamLogin(ctx, steamID, username, avatar)
	if err != nil {
		log.Printf("Ошибка входа пользователя Steam %s: %v", steamID, err)
		return c.Redirect().To(s.cfg.FrontendURL)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("Ошибка создания токена: %v", err)
		return c.Redirect().To(s.cfg.FrontendURL)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HTTPOnly: true,
		Secure:   s.cfg.AppEnv == "production",
		SameSite: "Lax",
	})

	return c.Redirect().To(s.cfg.FrontendURL)
}

// MeHandler возвращает профиль текущего пользователя
func (s *AuthService) MeHandler(c fiber.Ctx) error {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID, err := domain.NewUserID(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
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

// LogoutHandler очищает cookie с токеном
func (s *AuthService) LogoutHandler(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.cfg.AppEnv == "production",
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}
