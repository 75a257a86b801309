package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAuthURL(t *testing.T) {
	client := NewOpenIDClient("http://localhost:3001")
	authURL := client.AuthURL()

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	require.Equal(t, "steamcommunity.com", parsed.Host)
	require.Equal(t, "checkid_setup", parsed.Query().Get("openid.mode"))
	require.Equal(t, "http://localhost:3001/api/auth/steam/return", parsed.Query().Get("openid.return_to"))
	require.Equal(t, "http://localhost:3001", parsed.Query().Get("openid.realm"))
}

func TestExtractSteamID(t *testing.T) {
	tests := []struct {
		claimedID string
		want      string
		wantErr   bool
	}{
		{"https://steamcommunity.com/openid/id/76561198000000001", "76561198000000001", false},
		{"76561198000000001", "76561198000000001", false},
		{"https://steamcommunity.com/openid/id/notanid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := extractSteamID(tt.claimedID)
		if tt.wantErr {
			require.Error(t, err, "claimedID %q", tt.claimedID)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func verifyClient(srv *httptest.Server) *OpenIDClient {
	return &OpenIDClient{
		realm:      "http://localhost:3001",
		returnURL:  "http://localhost:3001/api/auth/steam/return",
		loginURL:   srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func callbackQuery() url.Values {
	return url.Values{
		"openid.mode":       {"id_res"},
		"openid.claimed_id": {"https://steamcommunity.com/openid/id/76561198000000001"},
		"openid.sig":        {"signature"},
	}
}

func TestVerifyCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "check_authentication", r.PostForm.Get("openid.mode"))
		w.Write([]byte("ns:http://specs.openid.net/auth/2.0\nis_valid:true\n"))
	}))
	defer srv.Close()

	steamID, err := verifyClient(srv).VerifyCallback(context.Background(), callbackQuery())
	require.NoError(t, err)
	require.Equal(t, "76561198000000001", steamID)
}

func TestVerifyCallback_RejectedAssertion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ns:http://specs.openid.net/auth/2.0\nis_valid:false\n"))
	}))
	defer srv.Close()

	_, err := verifyClient(srv).VerifyCallback(context.Background(), callbackQuery())
	require.ErrorIs(t, err, errAssertionRejected)
}

func TestVerifyCallback_WrongMode(t *testing.T) {
	query := callbackQuery()
	query.Set("openid.mode", "cancel")

	_, err := NewOpenIDClient("http://localhost:3001").VerifyCallback(context.Background(), query)
	require.ErrorIs(t, err, errAssertionRejected)
}
