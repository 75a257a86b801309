package domain

import "context"

// UserRepository — порт хранилища пользователей.
// Отсутствие записи реализации возвращают как *NotFoundError.
type UserRepository interface {
	FindByID(ctx context.Context, id UserID) (*User, error)
	FindBySteamID(ctx context.Context, steamID SteamID) (*User, error)
	CreateNew(ctx context.Context, steamID SteamID, username, avatar string) (*User, error)
	Save(ctx context.Context, user *User) (*User, error)
	Exists(ctx context.Context, id UserID) (bool, error)
}

// TradeOfferRepository — порт хранилища предложений обмена.
// Save выполняет вставку нового предложения либо обновление статуса
// существующего; FindByUserID возвращает предложения обеих сторон,
// новые первыми.
type TradeOfferRepository interface {
	FindByID(ctx context.Context, id TradeOfferID) (*TradeOffer, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*TradeOffer, error)
	Save(ctx context.Context, offer *TradeOffer) (*TradeOffer, error)
	Delete(ctx context.Context, id TradeOfferID) error
}

// InventoryProvider — порт провайдера инвентаря Steam
type InventoryProvider interface {
	GetInventory(ctx context.Context, steamID string, appID, contextID int) ([]InventoryItem, error)
}
