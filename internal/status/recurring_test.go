package status_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/status"
)

func newRecurringInvoice(stat string, last *document.Invoice) *document.RecurringInvoice {
	return &document.RecurringInvoice{
		Meta:        document.Meta{ID: uuid.New()},
		ClientID:    uuid.New(),
		Status:      stat,
		Amount:      document.Cents(10000),
		Currency:    "EUR",
		Frequency:   "monthly",
		LastInvoice: last,
	}
}

func TestRecurringInvoiceDerivesFromLastInvoice(t *testing.T) {
	t.Run("OverdueLastInvoice", func(t *testing.T) {
		last := newInvoice(10000, 0, "sent")
		last.DueDate = past(t)

		ri := newRecurringInvoice("active", last)

		assert.True(t, status.Is(document.TypeRecurringInvoice, ri, status.Overdue))
	})

	t.Run("PendingLastInvoice", func(t *testing.T) {
		last := newInvoice(10000, 0, "pending")

		ri := newRecurringInvoice("active", last)

		assert.True(t, status.Is(document.TypeRecurringInvoice, ri, status.Pending))
		assert.False(t, status.Is(document.TypeRecurringInvoice, ri, status.Overdue))
	})

	t.Run("NoLastInvoice", func(t *testing.T) {
		ri := newRecurringInvoice("active", nil)

		assert.False(t, status.Is(document.TypeRecurringInvoice, ri, status.Pending))
		assert.False(t, status.Is(document.TypeRecurringInvoice, ri, status.Overdue))

		d := status.Describe(document.TypeRecurringInvoice, status.Overdue)
		assert.False(t, d.CanBeApplied(ri))
	})
}

func TestApplyActiveOnRecurringInvoice(t *testing.T) {
	t.Run("PatchesStatus", func(t *testing.T) {
		engine, actions := newEngine(t)

		ri := newRecurringInvoice("draft", nil)

		actions.EXPECT().
			Patch(gomock.Any(), ri, document.Patch{"status": "active"}).
			Return(nil)

		res := engine.Apply(document.TypeRecurringInvoice, ri, status.Active)
		require.Empty(t, res.Conflicts)

		solution, err := res.Solve(context.Background())
		require.NoError(t, err)
		assert.Nil(t, solution)
		assert.Equal(t, "active", ri.Status)
	})

	t.Run("ConflictsWhileLastInvoiceIsOverdue", func(t *testing.T) {
		engine, _ := newEngine(t)

		last := newInvoice(10000, 0, "sent")
		last.DueDate = past(t)

		ri := newRecurringInvoice("draft", last)

		res := engine.Apply(document.TypeRecurringInvoice, ri, status.Active)
		require.NotEmpty(t, res.Conflicts)
	})
}

func TestApplyOverdueOnRecurringInvoiceSuggestsDelayingDueDate(t *testing.T) {
	engine, actions := newEngine(t)

	last := newInvoice(10000, 0, "sent")
	last.DueDate = future(t)

	ri := newRecurringInvoice("active", last)

	res := engine.Apply(document.TypeRecurringInvoice, ri, status.Overdue)
	require.Empty(t, res.Conflicts)

	solution, err := res.Solve(context.Background())
	require.NoError(t, err)
	require.NotNil(t, solution)

	actions.EXPECT().
		Edit(gomock.Any(), last, document.FormOptions{TabIndex: 1}).
		Return(nil)

	require.NoError(t, solution.Solve(context.Background()))
}
