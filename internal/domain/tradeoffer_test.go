package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustUserID(t *testing.T, value string) UserID {
	t.Helper()
	id, err := NewUserID(value)
	require.NoError(t, err)
	return id
}

func mustItem(t *testing.T, assetID string) TradeOfferItem {
	t.Helper()
	item, err := NewTradeOfferItem(assetID, 730, "2", 1)
	require.NoError(t, err)
	return item
}

func newTestOffer(t *testing.T) *TradeOffer {
	t.Helper()
	id, err := NewTradeOfferID("offer-1")
	require.NoError(t, err)
	offer, err := NewTradeOffer(id,
		mustUserID(t, "u1"), mustUserID(t, "u2"),
		[]TradeOfferItem{mustItem(t, "A1")},
		[]TradeOfferItem{mustItem(t, "A2")},
	)
	require.NoError(t, err)
	return offer
}

func TestNewTradeOffer(t *testing.T) {
	offer := newTestOffer(t)

	require.Equal(t, StatusPending, offer.Status())
	require.Equal(t, offer.CreatedAt(), offer.UpdatedAt())
	require.True(t, offer.IsOwnedBy(mustUserID(t, "u1")))
	require.True(t, offer.IsOwnedBy(mustUserID(t, "u2")))
	require.False(t, offer.IsOwnedBy(mustUserID(t, "u3")))
}

func TestNewTradeOffer_SelfTrade(t *testing.T) {
	id, err := NewTradeOfferID("offer-1")
	require.NoError(t, err)
	_, err = NewTradeOffer(id,
		mustUserID(t, "u1"), mustUserID(t, "u1"),
		[]TradeOfferItem{mustItem(t, "A1")}, nil,
	)
	require.ErrorIs(t, err, ErrSelfTrade)
}

func TestNewTradeOffer_EmptyTrade(t *testing.T) {
	id, err := NewTradeOfferID("offer-1")
	require.NoError(t, err)
	_, err = NewTradeOffer(id, mustUserID(t, "u1"), mustUserID(t, "u2"), nil, nil)
	require.ErrorIs(t, err, ErrEmptyTrade)
}

func TestNewTradeOffer_OneSidedIsAllowed(t *testing.T) {
	id, err := NewTradeOfferID("offer-1")
	require.NoError(t, err)
	offer, err := NewTradeOffer(id,
		mustUserID(t, "u1"), mustUserID(t, "u2"),
		nil, []TradeOfferItem{mustItem(t, "A2")},
	)
	require.NoError(t, err)
	require.Empty(t, offer.ItemsFrom())
	require.Len(t, offer.ItemsTo(), 1)
}

func TestTradeOffer_Accept(t *testing.T) {
	offer := newTestOffer(t)
	before := offer.UpdatedAt()

	require.NoError(t, offer.Accept(mustUserID(t, "u2")))
	require.Equal(t, StatusAccepted, offer.Status())
	require.False(t, offer.UpdatedAt().Before(before))
}

func TestTradeOffer_AcceptByCreatorFails(t *testing.T) {
	offer := newTestOffer(t)

	err := offer.Accept(mustUserID(t, "u1"))
	var uerr *UnauthorizedActionError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, StatusPending, offer.Status())
}

func TestTradeOffer_DeclineByCreatorFails(t *testing.T) {
	offer := newTestOffer(t)

	err := offer.Decline(mustUserID(t, "u1"))
	var uerr *UnauthorizedActionError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, StatusPending, offer.Status())
}

func TestTradeOffer_CancelByRecipientFails(t *testing.T) {
	offer := newTestOffer(t)

	err := offer.Cancel(mustUserID(t, "u2"))
	var uerr *UnauthorizedActionError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, StatusPending, offer.Status())
}

func TestTradeOffer_Cancel(t *testing.T) {
	offer := newTestOffer(t)

	require.NoError(t, offer.Cancel(mustUserID(t, "u1")))
	require.Equal(t, StatusCancelled, offer.Status())
}

func TestTradeOffer_AcceptThenDeclineFails(t *testing.T) {
	offer := newTestOffer(t)

	require.NoError(t, offer.Accept(mustUserID(t, "u2")))

	err := offer.Decline(mustUserID(t, "u2"))
	var serr *InvalidStateTransitionError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, StatusAccepted, serr.Status)
	require.Equal(t, StatusAccepted, offer.Status())
}

func TestTradeOffer_TerminalStatusesRejectEveryTransition(t *testing.T) {
	for _, status := range []TradeOfferStatus{StatusAccepted, StatusDeclined, StatusCancelled, StatusExpired} {
		id, err := NewTradeOfferID("offer-1")
		require.NoError(t, err)
		offer := ReconstituteTradeOffer(id,
			mustUserID(t, "u1"), mustUserID(t, "u2"), status,
			[]TradeOfferItem{mustItem(t, "A1")}, nil,
			time.Now(), time.Now(),
		)

		var serr *InvalidStateTransitionError
		require.ErrorAs(t, offer.Accept(mustUserID(t, "u2")), &serr, "accept in %s", status)
		require.ErrorAs(t, offer.Decline(mustUserID(t, "u2")), &serr, "decline in %s", status)
		require.ErrorAs(t, offer.Cancel(mustUserID(t, "u1")), &serr, "cancel in %s", status)
		require.Equal(t, status, offer.Status())
	}
}

func TestTradeOffer_ItemAccessorsReturnCopies(t *testing.T) {
	offer := newTestOffer(t)

	items := offer.ItemsFrom()
	items[0] = mustItem(t, "tampered")

	require.Equal(t, "A1", offer.ItemsFrom()[0].AssetID())
}
