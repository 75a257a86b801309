package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

// TradeService – сценарии работы с обменами между пользователями
type TradeService struct {
	offers domain.TradeOfferRepository
	users  domain.UserRepository
}

// NewTradeService – конструктор TradeService
func NewTradeService(offers domain.TradeOfferRepository, users domain.UserRepository) *TradeService {
	return &TradeService{offers: offers, users: users}
}

// ItemInput — предмет обмена, как его прислал клиент
type ItemInput struct {
	AssetID   string
	AppID     int
	ContextID string
	Amount    int
}

// CreateTradeOfferCommand — данные для создания обмена
type CreateTradeOfferCommand struct {
	FromUserID string
	ToUserID   string
	ItemsFrom  []ItemInput
	ItemsTo    []ItemInput
}

// CreateTradeOffer создаёт новое предложение обмена.
// Оба участника должны существовать; правила самого обмена
// (нельзя себе, нельзя пустой) проверяет доменная модель
func (s *TradeService) CreateTradeOffer(ctx context.Context, cmd CreateTradeOfferCommand) (*domain.TradeOffer, error) {
	fromID, err := domain.NewUserID(cmd.FromUserID)
	if err != nil {
		return nil, err
	}
	toID, err := domain.NewUserID(cmd.ToUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, fromID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, toID); err != nil {
		return nil, err
	}

	itemsFrom, err := buildItems(cmd.ItemsFrom)
	if err != nil {
		return nil, err
	}
	itemsTo, err := buildItems(cmd.ItemsTo)
	if err != nil {
		return nil, err
	}

	offerID, err := domain.NewTradeOfferID(uuid.NewString())
	if err != nil {
		return nil, err
	}

	offer, err := domain.NewTradeOffer(offerID, fromID, toID, itemsFrom, itemsTo)
	if err != nil {
		return nil, err
	}

	return s.offers.Save(ctx, offer)
}

// GetTradeOffers возвращает все обмены, где пользователь является стороной
func (s *TradeService) GetTradeOffers(ctx context.Context, userID string) ([]*domain.TradeOffer, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.offers.FindByUserID(ctx, id)
}

// GetTradeOfferByID возвращает обмен по его идентификатору
func (s *TradeService) GetTradeOfferByID(ctx context.Context, offerID string) (*domain.TradeOffer, error) {
	id, err := domain.NewTradeOfferID(offerID)
	if err != nil {
		return nil, err
	}
	return s.offers.FindByID(ctx, id)
}

// AcceptTradeOffer принимает обмен от имени actor
func (s *TradeService) AcceptTradeOffer(ctx context.Context, offerID, actor string) (*domain.TradeOffer, error) {
	return s.transition(ctx, offerID, actor, (*domain.TradeOffer).Accept)
}

// DeclineTradeOffer отклоняет обмен от имени actor
func (s *TradeService) DeclineTradeOffer(ctx context.Context, offerID, actor string) (*domain.TradeOffer, error) {
	return s.transition(ctx, offerID, actor, (*domain.TradeOffer).Decline)
}

// CancelTradeOffer отменяет обмен от имени actor
func (s *TradeService) CancelTradeOffer(ctx context.Context, offerID, actor string) (*domain.TradeOffer, error) {
	return s.transition(ctx, offerID, actor, (*domain.TradeOffer).Cancel)
}

func (s *TradeService) transition(ctx context.Context, offerID, actor string,
	apply func(*domain.TradeOffer, domain.UserID) error) (*domain.TradeOffer, error) {

	id, err := domain.NewTradeOfferID(offerID)
	if err != nil {
		return nil, err
	}
	actorID, err := domain.NewUserID(actor)
	if err != nil {
		return nil, err
	}

	offer, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(offer, actorID); err != nil {
		return nil, err
	}

	return s.offers.Save(ctx, offer)
}

func buildItems(inputs []ItemInput) ([]domain.TradeOfferItem, error) {
	items := make([]domain.TradeOfferItem, 0, len(inputs))
	for _, input := range inputs {
		item, err := domain.NewTradeOfferItem(input.AssetID, input.AppID, input.ContextID, input.Amount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
