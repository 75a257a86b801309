package domain

// TradeOfferStatus — замкнутое множество статусов предложения обмена.
// EXPIRED достижим только внешним механизмом истечения срока, ни одна
// операция в этом репозитории его не выставляет.
type TradeOfferStatus string

const (
	StatusPending   TradeOfferStatus = "PENDING"
	StatusAccepted  TradeOfferStatus = "ACCEPTED"
	StatusDeclined  TradeOfferStatus = "DECLINED"
	StatusCancelled TradeOfferStatus = "CANCELLED"
	StatusExpired   TradeOfferStatus = "EXPIRED"
)

// ParseStatus преобразует строку в статус, отклоняя всё вне множества
func ParseStatus(value string) (TradeOfferStatus, error) {
	switch TradeOfferStatus(value) {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCancelled, StatusExpired:
		return TradeOfferStatus(value), nil
	}
	return "", &ValidationError{Field: "status", Reason: "invalid trade offer status: " + value}
}

// CanBeModified — перейти из статуса можно только пока предложение в ожидании
func (s TradeOfferStatus) CanBeModified() bool {
	return s == StatusPending
}

func (s TradeOfferStatus) IsPending() bool { return s == StatusPending }

func (s TradeOfferStatus) IsAccepted() bool { return s == StatusAccepted }

func (s TradeOfferStatus) IsDeclined() bool { return s == StatusDeclined }

func (s TradeOfferStatus) String() string { return string(s) }
