package domain

import "time"

// TradeOffer — агрегат предложения обмена между двумя пользователями.
// Авторизация и проверка статуса выполняются внутри агрегата: принять или
// отклонить может только получатель, отменить — только создатель, и только
// пока предложение в статусе PENDING.
type TradeOffer struct {
	id         TradeOfferID
	fromUserID UserID
	toUserID   UserID
	status     TradeOfferStatus
	itemsFrom  []TradeOfferItem
	itemsTo    []TradeOfferItem
	createdAt  time.Time
	updatedAt  time.Time
}

// NewTradeOffer создаёт предложение в статусе PENDING
func NewTradeOffer(id TradeOfferID, fromUserID, toUserID UserID, itemsFrom, itemsTo []TradeOfferItem) (*TradeOffer, error) {
	if fromUserID.Equals(toUserID) {
		return nil, ErrSelfTrade
	}
	if len(itemsFrom) == 0 && len(itemsTo) == 0 {
		return nil, ErrEmptyTrade
	}
	now := time.Now()
	return &TradeOffer{
		id:         id,
		fromUserID: fromUserID,
		toUserID:   toUserID,
		status:     StatusPending,
		itemsFrom:  copyItems(itemsFrom),
		itemsTo:    copyItems(itemsTo),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstituteTradeOffer восстанавливает предложение из хранилища без повторной валидации
func ReconstituteTradeOffer(id TradeOfferID, fromUserID, toUserID UserID, status TradeOfferStatus,
	itemsFrom, itemsTo []TradeOfferItem, createdAt, updatedAt time.Time) *TradeOffer {
	return &TradeOffer{
		id:         id,
		fromUserID: fromUserID,
		toUserID:   toUserID,
		status:     status,
		itemsFrom:  copyItems(itemsFrom),
		itemsTo:    copyItems(itemsTo),
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Accept переводит предложение в ACCEPTED; доступно только получателю
func (t *TradeOffer) Accept(actor UserID) error {
	if !t.toUserID.Equals(actor) {
		return &UnauthorizedActionError{Action: "accept", Reason: "only the recipient can accept a trade offer"}
	}
	if !t.status.CanBeModified() {
		return &InvalidStateTransitionError{Action: "accept", Status: t.status}
	}
	t.status = StatusAccepted
	t.updatedAt = time.Now()
	return nil
}

// Decline переводит предложение в DECLINED; доступно только получателю
func (t *TradeOffer) Decline(actor UserID) error {
	if !t.toUserID.Equals(actor) {
		return &UnauthorizedActionError{Action: "decline", Reason: "only the recipient can decline a trade offer"}
	}
	if !t.status.CanBeModified() {
		return &InvalidStateTransitionError{Action: "decline", Status: t.status}
	}
	t.status = StatusDeclined
	t.updatedAt = time.Now()
	return nil
}

// Cancel переводит предложение в CANCELLED; доступно только создателю
func (t *TradeOffer) Cancel(actor UserID) error {
	if !t.fromUserID.Equals(actor) {
		return &UnauthorizedActionError{Action: "cancel", Reason: "only the creator can cancel a trade offer"}
	}
	if !t.status.CanBeModified() {
		return &InvalidStateTransitionError{Action: "cancel", Status: t.status}
	}
	t.status = StatusCancelled
	t.updatedAt = time.Now()
	return nil
}

func (t *TradeOffer) ID() TradeOfferID { return t.id }

func (t *TradeOffer) FromUserID() UserID { return t.fromUserID }

func (t *TradeOffer) ToUserID() UserID { return t.toUserID }

func (t *TradeOffer) Status() TradeOfferStatus { return t.status }

// ItemsFrom возвращает копию списка предметов создателя
func (t *TradeOffer) ItemsFrom() []TradeOfferItem { return copyItems(t.itemsFrom) }

// ItemsTo возвращает копию списка предметов получателя
func (t *TradeOffer) ItemsTo() []TradeOfferItem { return copyItems(t.itemsTo) }

func (t *TradeOffer) CreatedAt() time.Time { return t.createdAt }

func (t *TradeOffer) UpdatedAt() time.Time { return t.updatedAt }

// IsOwnedBy — является ли пользователь одной из сторон сделки
func (t *TradeOffer) IsOwnedBy(userID UserID) bool {
	return t.fromUserID.Equals(userID) || t.toUserID.Equals(userID)
}

func copyItems(items []TradeOfferItem) []TradeOfferItem {
	if items == nil {
		return nil
	}
	out := make([]TradeOfferItem, len(items))
	copy(out, items)
	return out
}
