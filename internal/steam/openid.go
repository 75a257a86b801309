package steam

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const openIDLoginURL = "https://steamcommunity.com/openid/login"

// steamIDPattern — Steam64 ID состоит ровно из 17 цифр
var steamIDPattern = regexp.MustCompile(`^\d{17}$`)

var errAssertionRejected = errors.New("steam openid: assertion rejected")

// OpenIDClient выполняет вход через Steam OpenID 2.0: редирект на
// steamcommunity.com и проверку подписи ответа через check_authentication
type OpenIDClient struct {
	realm      string
	returnURL  string
	loginURL   string
	httpClient *http.Client
}

// NewOpenIDClient создаёт клиент OpenID для указанного backend URL
func NewOpenIDClient(backendURL string) *OpenIDClient {
	return &OpenIDClient{
		realm:      backendURL,
		returnURL:  backendURL + "/api/auth/steam/return",
		loginURL:   openIDLoginURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthURL возвращает адрес страницы входа Steam для редиректа
func (c *OpenIDClient) AuthURL() string {
	params := url.Values{
		"openid.ns":         {"http://specs.openid.net/auth/2.0"},
		"openid.mode":       {"checkid_setup"},
		"openid.return_to":  {c.returnURL},
		"openid.realm":      {c.realm},
		"openid.identity":   {"http://specs.openid.net/auth/2.0/identifier_select"},
		"openid.claimed_id": {"http://specs.openid.net/auth/2.0/identifier_select"},
	}
	return c.loginURL + "?" + params.Encode()
}

// VerifyCallback проверяет подпись OpenID-ответа у Steam и извлекает Steam64 ID
func (c *OpenIDClient) VerifyCallback(ctx context.Context, query url.Values) (string, error) {
	if query.Get("openid.mode") != "id_res" {
		return "", errAssertionRejected
	}

	// Возвращаем Steam все openid-параметры, меняя режим на check_authentication
	form := url.Values{}
	for key, values := range query {
		if strings.HasPrefix(key, "openid.") {
			form[key] = values
		}
	}
	form.Set("openid.mode", "check_authentication")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании запроса проверки OpenID: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка при проверке OpenID-ответа: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ошибка при чтении ответа Steam: %w", err)
	}
	if !strings.Contains(string(body), "is_valid:true") {
		return "", errAssertionRejected
	}

	return extractSteamID(query.Get("openid.claimed_id"))
}

// extractSteamID выделяет Steam64 ID из claimed_id вида
// https://steamcommunity.com/openid/id/7656119...
func extractSteamID(claimedID string) (string, error) {
	steamID := claimedID
	if idx := strings.LastIndex(claimedID, "/"); idx >= 0 {
		steamID = claimedID[idx+1:]
	}
	if strings.HasPrefix(claimedID, "7656119") {
		steamID = claimedID
	}

	if !steamIDPattern.MatchString(steamID) {
		return "", fmt.Errorf("invalid Steam ID format: %s", steamID)
	}
	return steamID, nil
}
