package steam

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/steam-trade-api/internal/domain"
)

const testSteamID = "76561198000000001"

const inventoryFixture = `{
	"assets": [
		{"assetid": "a1", "classid": "c1", "instanceid": "i1", "amount": "1", "appid": 730, "contextid": "2"},
		{"assetid": "a2", "classid": "c2", "instanceid": "i2", "amount": "1", "appid": 730, "contextid": "2"},
		{"assetid": "a3", "classid": "c3", "instanceid": "i3", "amount": "1", "appid": 730, "contextid": "2"},
		{"assetid": "a4", "classid": "c4", "instanceid": "i4", "amount": "1", "appid": 730, "contextid": "2"},
		{"assetid": "a5", "classid": "c5", "instanceid": "i5", "amount": "1", "appid": 730, "contextid": "2"}
	],
	"descriptions": [
		{"classid": "c1", "instanceid": "i1", "name": "AK-47", "tradable": 1, "marketable": 1},
		{"classid": "c2", "instanceid": "i2", "name": "Souvenir", "tradable": 0, "marketable": 1},
		{"classid": "c3", "instanceid": "i3", "name": "AWP", "tradable": 1, "marketable": 1},
		{"classid": "c4", "instanceid": "i4", "name": "Graffiti", "tradable": 0, "marketable": 0},
		{"classid": "c5", "instanceid": "i5", "name": "Glock-18", "tradable": 1, "marketable": 0}
	]
}`

func testClient(srv *httptest.Server) *InventoryClient {
	return &InventoryClient{
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGetInventory_KeepsOnlyTradableItemsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inventory/"+testSteamID+"/730/2", r.URL.Path)
		require.Equal(t, "english", r.URL.Query().Get("l"))
		w.Write([]byte(inventoryFixture))
	}))
	defer srv.Close()

	items, err := testClient(srv).GetInventory(context.Background(), testSteamID, 730, 2)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "a1", items[0].AssetID)
	require.Equal(t, "a3", items[1].AssetID)
	require.Equal(t, "a5", items[2].AssetID)
	require.Equal(t, "AK-47", items[0].Name)
}

func TestGetInventory_DecompressesGzipResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte(inventoryFixture))
		gz.Close()
	}))
	defer srv.Close()

	items, err := testClient(srv).GetInventory(context.Background(), testSteamID, 730, 2)
	require.NoError(t, err)
	require.Len(t, items, 3)
}

func TestGetInventory_ValidatesSteamID(t *testing.T) {
	client := NewInventoryClient()

	for _, steamID := range []string{"", "abc", "123", "7656119800000000"} {
		_, err := client.GetInventory(context.Background(), steamID, 730, 2)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "steamID %q", steamID)
		require.Equal(t, "steamId", verr.Field)
	}

	_, err := client.GetInventory(context.Background(), testSteamID, 0, 2)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "appId", verr.Field)
}

func TestGetInventory_ClassifiesUpstreamStatuses(t *testing.T) {
	tests := []struct {
		upstream   int
		wantStatus int
	}{
		{http.StatusBadRequest, http.StatusBadRequest},
		{http.StatusForbidden, http.StatusForbidden},
		{http.StatusNotFound, http.StatusNotFound},
		{http.StatusTooManyRequests, http.StatusTooManyRequests},
		{http.StatusInternalServerError, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.upstream)
		}))

		_, err := testClient(srv).GetInventory(context.Background(), testSteamID, 730, 2)
		var aerr *APIError
		require.ErrorAs(t, err, &aerr, "upstream %d", tt.upstream)
		require.Equal(t, tt.wantStatus, aerr.StatusCode)
		srv.Close()
	}
}

func TestGetInventory_EmptyResponseYieldsNoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_inventory_count": 0}`))
	}))
	defer srv.Close()

	items, err := testClient(srv).GetInventory(context.Background(), testSteamID, 730, 2)
	require.NoError(t, err)
	require.Empty(t, items)
}
