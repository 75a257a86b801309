package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const playerSummariesURL = "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v0002/"

// PlayerSummary — профиль пользователя из Steam Web API
type PlayerSummary struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	ProfileURL  string `json:"profileurl"`
	Avatar      string `json:"avatar"`
	AvatarFull  string `json:"avatarfull"`
}

// WebAPIClient запрашивает профили пользователей в Steam Web API
type WebAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWebAPIClient создаёт клиент Steam Web API
func NewWebAPIClient(apiKey string) *WebAPIClient {
	return &WebAPIClient{
		apiKey:     apiKey,
		baseURL:    playerSummariesURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// GetPlayerSummary возвращает профиль пользователя по Steam64 ID
func (c *WebAPIClient) GetPlayerSummary(ctx context.Context, steamID string) (*PlayerSummary, error) {
	params := url.Values{
		"key":      {c.apiKey},
		"steamids": {steamID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании запроса профиля: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{StatusCode: http.StatusServiceUnavailable, Message: "Steam API is temporarily unavailable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode)
	}

	var payload struct {
		Response struct {
			Players []PlayerSummary `json:"players"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("ошибка при разборе ответа Steam Web API: %w", err)
	}
	if len(payload.Response.Players) == 0 {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: "User not found or inventory does not exist"}
	}

	return &payload.Response.Players[0], nil
}

// classifyStatus переводит статус Steam API в сообщение для клиента
func classifyStatus(status int) *APIError {
	switch status {
	case http.StatusBadRequest:
		return &APIError{StatusCode: status, Message: "Invalid Steam ID or request parameters. Please check that your inventory is set to public in Steam privacy settings."}
	case http.StatusForbidden:
		return &APIError{StatusCode: status, Message: "Inventory is private or access denied"}
	case http.StatusNotFound:
		return &APIError{StatusCode: status, Message: "User not found or inventory does not exist"}
	case http.StatusTooManyRequests:
		return &APIError{StatusCode: status, Message: "Rate limit exceeded. Please try again later"}
	default:
		return &APIError{StatusCode: http.StatusServiceUnavailable, Message: fmt.Sprintf("Steam API error: %d", status)}
	}
}
