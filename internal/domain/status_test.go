package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, value := range []string{"PENDING", "ACCEPTED", "DECLINED", "CANCELLED", "EXPIRED"} {
		status, err := ParseStatus(value)
		require.NoError(t, err)
		require.Equal(t, value, status.String())
	}

	for _, value := range []string{"", "pending", "REJECTED", "DONE"} {
		_, err := ParseStatus(value)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "value %q", value)
	}
}

func TestStatus_CanBeModified(t *testing.T) {
	require.True(t, StatusPending.CanBeModified())

	for _, status := range []TradeOfferStatus{StatusAccepted, StatusDeclined, StatusCancelled, StatusExpired} {
		require.False(t, status.CanBeModified(), "status %s", status)
	}
}
