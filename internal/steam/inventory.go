package steam

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

const communityBaseURL = "https://steamcommunity.com"

// InventoryClient запрашивает публичный инвентарь пользователя в Steam
// Community API. Steam отдаёт сжатые ответы, поэтому клиент выставляет
// Accept-Encoding сам и распаковывает тело вручную.
type InventoryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewInventoryClient создаёт клиент инвентаря Steam
func NewInventoryClient() *InventoryClient {
	return &InventoryClient{
		baseURL:    communityBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type inventoryAsset struct {
	AssetID    string `json:"assetid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Amount     string `json:"amount"`
	AppID      int    `json:"appid"`
	ContextID  string `json:"contextid"`
}

type inventoryDescription struct {
	ClassID        string `json:"classid"`
	InstanceID     string `json:"instanceid"`
	IconURL        string `json:"icon_url"`
	IconURLLarge   string `json:"icon_url_large"`
	Name           string `json:"name"`
	MarketHashName string `json:"market_hash_name"`
	Tradable       int    `json:"tradable"`
	Marketable     int    `json:"marketable"`
}

type inventoryResponse struct {
	Assets       []inventoryAsset       `json:"assets"`
	Descriptions []inventoryDescription `json:"descriptions"`
}

// GetInventory возвращает предметы инвентаря, доступные для обмена,
// в порядке, в котором их отдаёт Steam
func (c *InventoryClient) GetInventory(ctx context.Context, steamID string, appID, contextID int) ([]domain.InventoryItem, error) {
	if !steamIDPattern.MatchString(steamID) {
		return nil, &domain.ValidationError{Field: "steamId", Reason: "must be a numeric Steam64 ID (17 digits)"}
	}
	if appID <= 0 {
		return nil, &domain.ValidationError{Field: "appId", Reason: "must be positive"}
	}
	if contextID < 0 {
		return nil, &domain.ValidationError{Field: "contextId", Reason: "must be non-negative"}
	}

	url := fmt.Sprintf("%s/inventory/%s/%d/%d?l=english&count=5000", c.baseURL, steamID, appID, contextID)
	log.Printf("Запрос инвентаря Steam: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании запроса инвентаря: %w", err)
	}
	c.setBrowserHeaders(req, steamID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{StatusCode: http.StatusServiceUnavailable, Message: "Steam API is temporarily unavailable"}
	}
	defer resp.Body.Close()

	body, err := decompressBody(resp)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении ответа Steam: %w", err)
	}

	if resp.StatusCode >= 400 {
		log.Printf("Steam API вернул %d: %.200s", resp.StatusCode, string(body))
		return nil, classifyStatus(resp.StatusCode)
	}

	var payload inventoryResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("ошибка при разборе ответа инвентаря: %w", err)
	}

	if len(payload.Assets) == 0 || len(payload.Descriptions) == 0 {
		log.Printf("Ответ Steam без assets или descriptions: assets=%d descriptions=%d",
			len(payload.Assets), len(payload.Descriptions))
		return []domain.InventoryItem{}, nil
	}

	// Склеиваем assets с descriptions по паре classid_instanceid
	descriptions := lo.KeyBy(payload.Descriptions, func(d inventoryDescription) string {
		return d.ClassID + "_" + d.InstanceID
	})

	items := lo.Map(payload.Assets, func(asset inventoryAsset, _ int) domain.InventoryItem {
		desc := descriptions[asset.ClassID+"_"+asset.InstanceID]
		item := domain.InventoryItem{
			AssetID:        asset.AssetID,
			ClassID:        asset.ClassID,
			InstanceID:     asset.InstanceID,
			Amount:         asset.Amount,
			AppID:          asset.AppID,
			ContextID:      asset.ContextID,
			IconURL:        desc.IconURL,
			IconURLLarge:   desc.IconURLLarge,
			Name:           desc.Name,
			MarketHashName: desc.MarketHashName,
			Tradable:       desc.Tradable,
			Marketable:     desc.Marketable,
		}
		if item.Amount == "" {
			item.Amount = "1"
		}
		if item.AppID == 0 {
			item.AppID = appID
		}
		if item.ContextID == "" {
			item.ContextID = strconv.Itoa(contextID)
		}
		return item
	})

	// Ядру нужны только предметы, доступные для обмена
	return lo.Filter(items, func(item domain.InventoryItem, _ int) bool {
		return item.Tradable == 1
	}), nil
}

func (c *InventoryClient) setBrowserHeaders(req *http.Request, steamID string) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("Referer", fmt.Sprintf("%s/profiles/%s/inventory/", c.baseURL, steamID))
	req.Header.Set("Cache-Control", "no-cache")
}

// decompressBody распаковывает тело ответа по Content-Encoding
func decompressBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	}
	return io.ReadAll(reader)
}
