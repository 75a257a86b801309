package domain

import (
	"errors"
	"fmt"
)

// Ошибки доменных инвариантов, возникающие при создании предложения обмена
var (
	ErrSelfTrade         = errors.New("cannot create trade offer to yourself")
	ErrEmptyTrade        = errors.New("trade offer must have at least one item")
	ErrInvalidCredential = errors.New("invalid or expired credential")
)

// ValidationError описывает нарушение инварианта при создании value object
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError возвращается, когда сущность не найдена в хранилище
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// UnauthorizedActionError возвращается, когда операцию выполняет не та сторона сделки
type UnauthorizedActionError struct {
	Action string
	Reason string
}

func (e *UnauthorizedActionError) Error() string {
	return fmt.Sprintf("cannot %s trade offer: %s", e.Action, e.Reason)
}

// InvalidStateTransitionError возвращается при попытке изменить предложение,
// которое уже покинуло статус PENDING
type InvalidStateTransitionError struct {
	Action string
	Status TradeOfferStatus
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s trade offer with status: %s", e.Action, e.Status)
}
