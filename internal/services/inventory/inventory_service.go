package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
	"github.com/rajivgeraev/steam-trade-api/internal/steam"
)

// Инвентарь CS2 по умолчанию
const (
	defaultAppID     = 730
	defaultContextID = 2
)

// InventoryService отдаёт инвентарь Steam пользователя
type InventoryService struct {
	provider domain.InventoryProvider
}

// NewInventoryService – конструктор InventoryService
func NewInventoryService(provider domain.InventoryProvider) *InventoryService {
	return &InventoryService{provider: provider}
}

// SetupRoutes настраивает маршруты для работы с инвентарём
func (s *InventoryService) SetupRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	api := app.Group("/api/inventory")
	api.Use(authMiddleware)
	api.Get("/:steamId", s.GetInventoryHandler)
}

// GetInventoryHandler возвращает список обмениваемых предметов пользователя.
// Steam отвечает медленно, поэтому таймаут здесь больше обычного
func (s *InventoryService) GetInventoryHandler(c fiber.Ctx) error {
	steamID := c.Params("steamId")
	if steamID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Steam ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := s.provider.GetInventory(ctx, steamID, defaultAppID, defaultContextID)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": verr.Error(),
			})
		}
		var apiErr *steam.APIError
		if errors.As(err, &apiErr) {
			return c.Status(apiErr.StatusCode).JSON(fiber.Map{
				"error": apiErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load inventory",
		})
	}

	return c.JSON(fiber.Map{
		"items": items,
		"count": len(items),
	})
}
