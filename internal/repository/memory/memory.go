// Package memory содержит потокобезопасные in-memory реализации портов
// хранилища. Используются в тестах сервисов и как замена PostgreSQL
// при локальной разработке.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

// UserRepository — in-memory реализация domain.UserRepository
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // ключ — внутренний id пользователя
}

// NewUserRepository создаёт пустое in-memory хранилище пользователей
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id.Value()]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "user", ID: id.Value()}
	}
	return cloneUser(user), nil
}

func (r *UserRepository) FindBySteamID(ctx context.Context, steamID domain.SteamID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.SteamID().Equals(steamID) {
			return cloneUser(user), nil
		}
	}
	return nil, &domain.NotFoundError{Resource: "user", ID: steamID.Value()}
}

func (r *UserRepository) CreateNew(ctx context.Context, steamID domain.SteamID, username, avatar string) (*domain.User, error) {
	id, err := domain.NewUserID(uuid.NewString())
	if err != nil {
		return nil, err
	}
	user, err := domain.NewUser(id, steamID, username, avatar)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.users[id.Value()] = cloneUser(user)
	r.mu.Unlock()
	return user, nil
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, existing := range r.users {
		if existing.SteamID().Equals(user.SteamID()) {
			r.users[key] = cloneUser(user)
			return cloneUser(user), nil
		}
	}
	r.users[user.ID().Value()] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *UserRepository) Exists(ctx context.Context, id domain.UserID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id.Value()]
	return ok, nil
}

// TradeOfferRepository — in-memory реализация domain.TradeOfferRepository.
// Повторяет compare-and-swap семантику PostgreSQL-реализации: обновление
// статуса существующего предложения проходит только из PENDING.
type TradeOfferRepository struct {
	mu     sync.RWMutex
	offers map[string]*domain.TradeOffer
}

// NewTradeOfferRepository создаёт пустое in-memory хранилище предложений
func NewTradeOfferRepository() *TradeOfferRepository {
	return &TradeOfferRepository{offers: make(map[string]*domain.TradeOffer)}
}

func (r *TradeOfferRepository) FindByID(ctx context.Context, id domain.TradeOfferID) (*domain.TradeOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[id.Value()]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "trade offer", ID: id.Value()}
	}
	return cloneOffer(offer), nil
}

func (r *TradeOfferRepository) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.TradeOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var offers []*domain.TradeOffer
	for _, offer := range r.offers {
		if offer.IsOwnedBy(userID) {
			offers = append(offers, cloneOffer(offer))
		}
	}
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].CreatedAt().After(offers[j].CreatedAt())
	})
	return offers, nil
}

func (r *TradeOfferRepository) Save(ctx context.Context, offer *domain.TradeOffer) (*domain.TradeOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.offers[offer.ID().Value()]; ok {
		if existing.Status() != domain.StatusPending && existing.Status() != offer.Status() {
			return nil, &domain.InvalidStateTransitionError{Action: "save", Status: existing.Status()}
		}
	}
	r.offers[offer.ID().Value()] = cloneOffer(offer)
	return cloneOffer(offer), nil
}

func (r *TradeOfferRepository) Delete(ctx context.Context, id domain.TradeOfferID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.offers[id.Value()]; !ok {
		return &domain.NotFoundError{Resource: "trade offer", ID: id.Value()}
	}
	delete(r.offers, id.Value())
	return nil
}

// Хранилище отдаёт и принимает копии, чтобы вызывающий код не мог
// изменить внутреннее состояние мимо Save
func cloneUser(user *domain.User) *domain.User {
	return domain.ReconstituteUser(user.ID(), user.SteamID(), user.Username(), user.Avatar(), user.CreatedAt(), user.UpdatedAt())
}

func cloneOffer(offer *domain.TradeOffer) *domain.TradeOffer {
	return domain.ReconstituteTradeOffer(offer.ID(), offer.FromUserID(), offer.ToUserID(), offer.Status(),
		offer.ItemsFrom(), offer.ItemsTo(), offer.CreatedAt(), offer.UpdatedAt())
}
