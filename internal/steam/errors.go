package steam

// APIError — классифицированная ошибка Steam API. StatusCode — HTTP-статус,
// с которым её следует отдать клиенту, Message — готовое сообщение.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
