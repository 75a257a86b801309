package trade

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

var validate = validator.New()

// SetupRoutes настраивает маршруты для работы с обменами
func (s *TradeService) SetupRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	api := app.Group("/api/trade-offers")
	api.Use(authMiddleware)

	api.Post("/", s.CreateTradeOfferHandler)
	api.Get("/", s.GetMyTradeOffersHandler)
	api.Get("/:id", s.GetTradeOfferHandler)
	api.Put("/:id/accept", s.AcceptTradeOfferHandler)
	api.Put("/:id/decline", s.DeclineTradeOfferHandler)
	api.Put("/:id/cancel", s.CancelTradeOfferHandler)
}

type tradeItemRequest struct {
	AssetID   string `json:"assetId" validate:"required"`
	AppID     int    `json:"appId" validate:"required,gt=0"`
	ContextID string `json:"contextId" validate:"required"`
	Amount    *int   `json:"amount" validate:"omitempty,gt=0"`
}

type createTradeOfferRequest struct {
	ToUserID  string             `json:"toUserId" validate:"required"`
	ItemsFrom []tradeItemRequest `json:"itemsFrom" validate:"dive"`
	ItemsTo   []tradeItemRequest `json:"itemsTo" validate:"dive"`
}

type tradeItemResponse struct {
	AssetID   string `json:"assetId"`
	AppID     int    `json:"appId"`
	ContextID string `json:"contextId"`
	Amount    int    `json:"amount"`
}

type tradeOfferResponse struct {
	ID         string              `json:"id"`
	FromUserID string              `json:"fromUserId"`
	ToUserID   string              `json:"toUserId"`
	Status     string              `json:"status"`
	ItemsFrom  []tradeItemResponse `json:"itemsFrom"`
	ItemsTo    []tradeItemResponse `json:"itemsTo"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// CreateTradeOfferHandler создаёт новое предложение обмена
func (s *TradeService) CreateTradeOfferHandler(c fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req createTradeOfferRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	offer, err := s.CreateTradeOffer(ctx, CreateTradeOfferCommand{
		FromUserID: userID,
		ToUserID:   req.ToUserID,
		ItemsFrom:  toItemInputs(req.ItemsFrom),
		ItemsTo:    toItemInputs(req.ItemsTo),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTradeOfferResponse(offer))
}

// GetMyTradeOffersHandler возвращает обмены текущего пользователя
func (s *TradeService) GetMyTradeOffersHandler(c fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	offers, err := s.GetTradeOffers(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"tradeOffers": lo.Map(offers, func(offer *domain.TradeOffer, _ int) tradeOfferResponse {
			return toTradeOfferResponse(offer)
		}),
		"count": len(offers),
	})
}

// GetTradeOfferHandler возвращает обмен по id.
// Чужие обмены не показываем, даже что они существуют
func (s *TradeService) GetTradeOfferHandler(c fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	offer, err := s.GetTradeOfferByID(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	actorID, err := domain.NewUserID(userID)
	if err != nil || !offer.IsOwnedBy(actorID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trade offer not found",
		})
	}

	return c.JSON(toTradeOfferResponse(offer))
}

// AcceptTradeOfferHandler принимает обмен
func (s *TradeService) AcceptTradeOfferHandler(c fiber.Ctx) error {
	return s.transitionHandler(c, s.AcceptTradeOffer)
}

// DeclineTradeOfferHandler отклоняет обмен
func (s *TradeService) DeclineTradeOfferHandler(c fiber.Ctx) error {
	return s.transitionHandler(c, s.DeclineTradeOffer)
}

// CancelTradeOfferHandler отменяет обмен
func (s *TradeService) CancelTradeOfferHandler(c fiber.Ctx) error {
	return s.transitionHandler(c, s.CancelTradeOffer)
}

func (s *TradeService) transitionHandler(c fiber.Ctx,
	apply func(context.Context, string, string) (*domain.TradeOffer, error)) error {

	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	offer, err := apply(ctx, c.Params("id"), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toTradeOfferResponse(offer))
}

// respondError переводит доменные ошибки в HTTP-статусы
func respondError(c fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	var nferr *domain.NotFoundError
	var uerr *domain.UnauthorizedActionError
	var serr *domain.InvalidStateTransitionError

	switch {
	case errors.Is(err, domain.ErrSelfTrade), errors.Is(err, domain.ErrEmptyTrade), errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &nferr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &uerr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &serr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

func toItemInputs(items []tradeItemRequest) []ItemInput {
	return lo.Map(items, func(item tradeItemRequest, _ int) ItemInput {
		// Количество по умолчанию — один предмет
		amount := 1
		if item.Amount != nil {
			amount = *item.Amount
		}
		return ItemInput{
			AssetID:   item.AssetID,
			AppID:     item.AppID,
			ContextID: item.ContextID,
			Amount:    amount,
		}
	})
}

func toTradeOfferResponse(offer *domain.TradeOffer) tradeOfferResponse {
	return tradeOfferResponse{
		ID:         offer.ID().Value(),
		FromUserID: offer.FromUserID().Value(),
		ToUserID:   offer.ToUserID().Value(),
		Status:     offer.Status().String(),
		ItemsFrom:  toItemResponses(offer.ItemsFrom()),
		ItemsTo:    toItemResponses(offer.ItemsTo()),
		CreatedAt:  offer.CreatedAt(),
		UpdatedAt:  offer.UpdatedAt(),
	}
}

func toItemResponses(items []domain.TradeOfferItem) []tradeItemResponse {
	return lo.Map(items, func(item domain.TradeOfferItem, _ int) tradeItemResponse {
		return tradeItemResponse{
			AssetID:   item.AssetID(),
			AppID:     item.AppID(),
			ContextID: item.ContextID(),
			Amount:    item.Amount(),
		}
	})
}
