package status_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/status"
)

func newQuote(stat string) *document.Quote {
	return &document.Quote{
		Meta:     document.Meta{ID: uuid.New()},
		ClientID: uuid.New(),
		Number:   "Q-0001",
		Status:   stat,
		Currency: "EUR",
		Amount:   document.Cents(10000),
	}
}

func TestQuoteStatusesFollowStatusField(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   status.Key
	}{
		{name: "Draft", status: "draft", want: status.Draft},
		{name: "Pending", status: "pending", want: status.Pending},
		{name: "Sent", status: "sent", want: status.Sent},
		{name: "Viewed", status: "viewed", want: status.Viewed},
		{name: "Approved", status: "approved", want: status.Approved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newQuote(tt.status)

			assert.True(t, status.Is(document.TypeQuote, q, tt.want))

			d, found := status.Primary(document.TypeQuote, q)
			require.True(t, found)
			assert.Equal(t, tt.want, d.Key)
		})
	}
}

func TestApplyPendingOnMailedQuoteConflicts(t *testing.T) {
	// No expectations registered: a conflicted transition must not persist.
	engine, _ := newEngine(t)

	q := newQuote("sent")
	mailed := time.Now().Add(-24 * time.Hour)
	q.MailedAt = &mailed

	res := engine.Apply(document.TypeQuote, q, status.Pending)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t,
		"A quote that has already been e-mailed cannot be set to Pending.",
		res.Conflicts[0].Message)
	assert.Nil(t, res.Conflicts[0].Solution, "mailing cannot be undone")

	_, err := res.Solve(context.Background())
	assert.ErrorIs(t, err, status.ErrConflicted)
	assert.Equal(t, "sent", q.Status)
}

func TestApplyPendingOnUnmailedQuotePatches(t *testing.T) {
	engine, actions := newEngine(t)

	q := newQuote("draft")

	actions.EXPECT().
		Patch(gomock.Any(), q, document.Patch{"status": "pending"}).
		Return(nil)

	res := engine.Apply(document.TypeQuote, q, status.Pending)
	require.Empty(t, res.Conflicts)

	solution, err := res.Solve(context.Background())
	require.NoError(t, err)
	assert.Nil(t, solution)
	assert.Equal(t, "pending", q.Status)
}

func TestApplySentOnMailedQuotePatches(t *testing.T) {
	// The mailing rule guards pending only; sent is where a mailed
	// quote belongs.
	engine, actions := newEngine(t)

	q := newQuote("pending")
	mailed := time.Now().Add(-24 * time.Hour)
	q.MailedAt = &mailed

	actions.EXPECT().
		Patch(gomock.Any(), q, document.Patch{"status": "sent"}).
		Return(nil)

	res := engine.Apply(document.TypeQuote, q, status.Sent)
	require.Empty(t, res.Conflicts)

	_, err := res.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sent", q.Status)
}

func TestClientVATStatuses(t *testing.T) {
	verified := document.VATVerified
	invalid := document.VATInvalid

	tests := []struct {
		name      string
		vatStatus *string
		want      status.Key
	}{
		{name: "PendingWhileUnverified", vatStatus: nil, want: status.VATPending},
		{name: "Verified", vatStatus: &verified, want: status.VATVerified},
		{name: "Invalid", vatStatus: &invalid, want: status.VATInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &document.Client{
				Meta:      document.Meta{ID: uuid.New()},
				Name:      "Acme Ltd",
				VATStatus: tt.vatStatus,
			}

			for _, d := range status.All(document.TypeClient) {
				assert.Equal(t, d.Key == tt.want, d.MeetsCondition(c), "key %s", d.Key)
			}
		})
	}
}

func TestProductStockStatuses(t *testing.T) {
	tests := []struct {
		name string
		qty  *int64
		want status.Key
	}{
		{name: "InStock", qty: new(int64(3)), want: status.InStock},
		{name: "OutOfStock", qty: new(int64(0)), want: status.OutOfStock},
		{name: "ServiceHasNoStock", qty: nil, want: status.IsAService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &document.Product{
				Meta: document.Meta{ID: uuid.New()},
				Name: "Widget",
				Qty:  tt.qty,
			}

			for _, d := range status.All(document.TypeProduct) {
				assert.Equal(t, d.Key == tt.want, d.MeetsCondition(p), "key %s", d.Key)
			}
		})
	}
}
