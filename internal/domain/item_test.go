package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTradeOfferItem_Validation(t *testing.T) {
	tests := []struct {
		name      string
		assetID   string
		appID     int
		contextID string
		amount    int
		wantField string
	}{
		{"valid", "asset-1", 730, "2", 1, ""},
		{"empty asset id", "", 730, "2", 1, "assetId"},
		{"whitespace asset id", "  ", 730, "2", 1, "assetId"},
		{"zero app id", "asset-1", 0, "2", 1, "appId"},
		{"negative app id", "asset-1", -5, "2", 1, "appId"},
		{"empty context id", "asset-1", 730, "", 1, "contextId"},
		{"zero amount", "asset-1", 730, "2", 0, "amount"},
		{"negative amount", "asset-1", 730, "2", -1, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewTradeOfferItem(tt.assetID, tt.appID, tt.contextID, tt.amount)
			if tt.wantField != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				require.Equal(t, tt.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.assetID, item.AssetID())
			require.Equal(t, tt.appID, item.AppID())
			require.Equal(t, tt.contextID, item.ContextID())
			require.Equal(t, tt.amount, item.Amount())
		})
	}
}

func TestTradeOfferItem_Equals(t *testing.T) {
	a, err := NewTradeOfferItem("asset-1", 730, "2", 1)
	require.NoError(t, err)
	b, err := NewTradeOfferItem("asset-1", 730, "2", 1)
	require.NoError(t, err)
	require.True(t, a.Equals(b))

	variants := []struct {
		assetID   string
		appID     int
		contextID string
		amount    int
	}{
		{"asset-2", 730, "2", 1},
		{"asset-1", 440, "2", 1},
		{"asset-1", 730, "6", 1},
		{"asset-1", 730, "2", 2},
	}
	for _, v := range variants {
		other, err := NewTradeOfferItem(v.assetID, v.appID, v.contextID, v.amount)
		require.NoError(t, err)
		require.False(t, a.Equals(other))
	}
}
