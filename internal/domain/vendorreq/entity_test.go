//go:build unit

package vendorreq_test

import (
	"testing"
	"time"

	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVendorRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewVendorRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, vendorreq.StatusSent, req.Status())
		assert.Equal(t, b.Now.AddDate(0, 0, 30), req.ExpiresAt())
		assert.Nil(t, req.RespondedAt())
		assert.Equal(t, "Vendor A", req.DisplayName())
	})

	t.Run("display name falls back to email", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithVendor("sales@vendor-a.example.com", "").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "sales@vendor-a.example.com", req.DisplayName())
	})

	t.Run("missing email is rejected", func(t *testing.T) {
		_, err := builder.NewVendorRequestBuilder().WithVendor("", "Vendor A").BuildDomain()
		assert.ErrorIs(t, err, vendorreq.ErrMissingEmail)
	})

	t.Run("non-positive expiry is rejected", func(t *testing.T) {
		_, err := builder.NewVendorRequestBuilder().WithExpiresInDays(0).BuildDomain()
		assert.ErrorIs(t, err, vendorreq.ErrInvalidExpiry)
	})

	t.Run("requests built from one snapshot hold independent copies", func(t *testing.T) {
		b := builder.NewVendorRequestBuilder()
		snapshot, err := b.BuildSnapshot()
		require.NoError(t, err)

		first, err := vendorreq.NewVendorRequest(b.QuoteID, "a@example.com", "A", snapshot, "tok-a", b.Now, 30)
		require.NoError(t, err)
		second, err := vendorreq.NewVendorRequest(b.QuoteID, "b@example.com", "B", snapshot, "tok-b", b.Now, 30)
		require.NoError(t, err)

		snapshot.Lines[0].ProductName = "mutated after send"

		assert.Equal(t, "Human IL-6 ELISA Kit", first.Snapshot().Lines[0].ProductName)
		assert.Equal(t, "Human IL-6 ELISA Kit", second.Snapshot().Lines[0].ProductName)
		assert.Equal(t, first.Snapshot().Lines[0].LineID, second.Snapshot().Lines[0].LineID)
	})
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("sent before expiry stays sent", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, vendorreq.StatusSent, req.EffectiveStatus(now.AddDate(0, 0, 29)))
	})

	t.Run("sent past expiry reads as expired without any write", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, vendorreq.StatusExpired, req.EffectiveStatus(now.AddDate(0, 0, 31)))
		// stored status is untouched
		assert.Equal(t, vendorreq.StatusSent, req.Status())
	})

	t.Run("terminal statuses are never reinterpreted by expiry", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)

		item, err := builder.NewResponseItemBuilder(req.Snapshot().Lines[0].LineID).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.MarkResponded([]vendorreq.ResponseItem{item}, now.AddDate(0, 0, 1)))

		assert.Equal(t, vendorreq.StatusResponded, req.EffectiveStatus(now.AddDate(0, 0, 100)))
	})

	t.Run("exact expiry instant is still pending", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, vendorreq.StatusSent, req.EffectiveStatus(req.ExpiresAt()))
	})
}

func TestMarkResponded(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) *vendorreq.VendorRequest {
		t.Helper()
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		return req
	}

	respond := func(t *testing.T, req *vendorreq.VendorRequest, at time.Time) error {
		t.Helper()
		item, err := builder.NewResponseItemBuilder(req.Snapshot().Lines[0].LineID).BuildDomain()
		require.NoError(t, err)
		return req.MarkResponded([]vendorreq.ResponseItem{item}, at)
	}

	t.Run("records items and responded time", func(t *testing.T) {
		req := newPending(t)
		respondedAt := now.AddDate(0, 0, 3)
		require.NoError(t, respond(t, req, respondedAt))

		assert.Equal(t, vendorreq.StatusResponded, req.Status())
		require.NotNil(t, req.RespondedAt())
		assert.Equal(t, respondedAt, *req.RespondedAt())
		require.Len(t, req.ResponseItems(), 1)
		assert.True(t, req.ResponseItems()[0].UnitPrice().Equal(decimal.NewFromInt(420000)))
	})

	t.Run("second response is rejected and does not overwrite", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, respond(t, req, now.AddDate(0, 0, 1)))

		cheap, err := builder.NewResponseItemBuilder(req.Snapshot().Lines[0].LineID).
			WithUnitPrice(decimal.NewFromInt(1)).
			BuildDomain()
		require.NoError(t, err)

		err = req.MarkResponded([]vendorreq.ResponseItem{cheap}, now.AddDate(0, 0, 2))
		assert.ErrorIs(t, err, vendorreq.ErrAlreadyResponded)
		assert.True(t, req.ResponseItems()[0].UnitPrice().Equal(decimal.NewFromInt(420000)))
	})

	t.Run("response after expiry is rejected", func(t *testing.T) {
		req := newPending(t)
		err := respond(t, req, now.AddDate(0, 0, 31))
		assert.ErrorIs(t, err, vendorreq.ErrRequestExpired)
		assert.Equal(t, vendorreq.StatusSent, req.Status())
	})

	t.Run("response after cancellation is rejected", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Cancel(now.AddDate(0, 0, 1)))

		err := respond(t, req, now.AddDate(0, 0, 2))
		assert.ErrorIs(t, err, vendorreq.ErrRequestCancelled)
	})

	t.Run("items referencing unknown lines are rejected", func(t *testing.T) {
		req := newPending(t)
		stray, err := builder.NewResponseItemBuilder(uuid.New()).BuildDomain()
		require.NoError(t, err)

		err = req.MarkResponded([]vendorreq.ResponseItem{stray}, now.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, vendorreq.ErrUnknownLine)
		assert.Equal(t, vendorreq.StatusSent, req.Status())
	})

	t.Run("duplicate line references are rejected", func(t *testing.T) {
		req := newPending(t)
		lineID := req.Snapshot().Lines[0].LineID
		first, err := builder.NewResponseItemBuilder(lineID).BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewResponseItemBuilder(lineID).BuildDomain()
		require.NoError(t, err)

		err = req.MarkResponded([]vendorreq.ResponseItem{first, second}, now.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, vendorreq.ErrDuplicateLine)
	})

	t.Run("empty submission is rejected", func(t *testing.T) {
		req := newPending(t)
		err := req.MarkResponded(nil, now.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, vendorreq.ErrEmptyResponse)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("pending request can be cancelled", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.Cancel(now.AddDate(0, 0, 1)))
		assert.Equal(t, vendorreq.StatusCancelled, req.Status())
	})

	t.Run("responded request cannot be cancelled", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)

		item, err := builder.NewResponseItemBuilder(req.Snapshot().Lines[0].LineID).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, req.MarkResponded([]vendorreq.ResponseItem{item}, now.AddDate(0, 0, 1)))

		assert.ErrorIs(t, req.Cancel(now.AddDate(0, 0, 2)), vendorreq.ErrAlreadyResponded)
	})

	t.Run("expired request cannot be cancelled", func(t *testing.T) {
		req, err := builder.NewVendorRequestBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, req.Cancel(now.AddDate(0, 0, 31)), vendorreq.ErrRequestExpired)
	})
}
