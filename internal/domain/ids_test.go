package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSteamID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid steam64 id", "76561198000000001", false},
		{"arbitrary non-empty value", "abc", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewSteamID(tt.value)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				require.Equal(t, "steamId", verr.Field)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.value, id.Value())
			require.Equal(t, tt.value, id.String())
		})
	}
}

func TestIDEquality(t *testing.T) {
	a, err := NewUserID("u-1")
	require.NoError(t, err)
	b, err := NewUserID("u-1")
	require.NoError(t, err)
	c, err := NewUserID("u-2")
	require.NoError(t, err)

	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}

func TestNewTradeOfferID_Empty(t *testing.T) {
	_, err := NewTradeOfferID(" ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "tradeOfferId", verr.Field)
}

func TestNewUserID_Empty(t *testing.T) {
	_, err := NewUserID("")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "userId", verr.Field)
}
