package domain

import "strings"

// UserID — идентификатор пользователя внутри системы
type UserID struct {
	value string
}

// NewUserID создаёт UserID, отклоняя пустые значения
func NewUserID(value string) (UserID, error) {
	if strings.TrimSpace(value) == "" {
		return UserID{}, &ValidationError{Field: "userId", Reason: "cannot be empty"}
	}
	return UserID{value: value}, nil
}

func (id UserID) Value() string { return id.value }

func (id UserID) Equals(other UserID) bool { return id.value == other.value }

func (id UserID) String() string { return id.value }

// SteamID — идентификатор Steam64 пользователя
type SteamID struct {
	value string
}

// NewSteamID создаёт SteamID, отклоняя пустые значения
func NewSteamID(value string) (SteamID, error) {
	if strings.TrimSpace(value) == "" {
		return SteamID{}, &ValidationError{Field: "steamId", Reason: "cannot be empty"}
	}
	return SteamID{value: value}, nil
}

func (id SteamID) Value() string { return id.value }

func (id SteamID) Equals(other SteamID) bool { return id.value == other.value }

func (id SteamID) String() string { return id.value }

// TradeOfferID — идентификатор предложения обмена
type TradeOfferID struct {
	value string
}

// NewTradeOfferID создаёт TradeOfferID, отклоняя пустые значения
func NewTradeOfferID(value string) (TradeOfferID, error) {
	if strings.TrimSpace(value) == "" {
		return TradeOfferID{}, &ValidationError{Field: "tradeOfferId", Reason: "cannot be empty"}
	}
	return TradeOfferID{value: value}, nil
}

func (id TradeOfferID) Value() string { return id.value }

func (id TradeOfferID) Equals(other TradeOfferID) bool { return id.value == other.value }

func (id TradeOfferID) String() string { return id.value }
