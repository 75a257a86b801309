package domain

import "strings"

// TradeOfferItem — предмет инвентаря, участвующий в обмене.
// Неизменяем после создания, сравнивается по значению всех полей.
type TradeOfferItem struct {
	assetID   string
	appID     int
	contextID string
	amount    int
}

// NewTradeOfferItem проверяет идентификаторы предмета и положительное количество
func NewTradeOfferItem(assetID string, appID int, contextID string, amount int) (TradeOfferItem, error) {
	if strings.TrimSpace(assetID) == "" {
		return TradeOfferItem{}, &ValidationError{Field: "assetId", Reason: "cannot be empty"}
	}
	if appID <= 0 {
		return TradeOfferItem{}, &ValidationError{Field: "appId", Reason: "must be positive"}
	}
	if strings.TrimSpace(contextID) == "" {
		return TradeOfferItem{}, &ValidationError{Field: "contextId", Reason: "cannot be empty"}
	}
	if amount <= 0 {
		return TradeOfferItem{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	return TradeOfferItem{assetID: assetID, appID: appID, contextID: contextID, amount: amount}, nil
}

func (i TradeOfferItem) AssetID() string { return i.assetID }

func (i TradeOfferItem) AppID() int { return i.appID }

func (i TradeOfferItem) ContextID() string { return i.contextID }

func (i TradeOfferItem) Amount() int { return i.amount }

func (i TradeOfferItem) Equals(other TradeOfferItem) bool {
	return i.assetID == other.assetID &&
		i.appID == other.appID &&
		i.contextID == other.contextID &&
		i.amount == other.amount
}
