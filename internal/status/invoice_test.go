package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/status"
)

func TestInvoicePaidDerivesFromMoneyFlow(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		paidIn   int64
		status   string
		wantPaid bool
	}{
		{name: "NothingPaid", amount: 10000, paidIn: 0, status: "sent", wantPaid: false},
		{name: "PartiallyPaid", amount: 10000, paidIn: 5000, status: "sent", wantPaid: false},
		{name: "FullyPaid", amount: 10000, paidIn: 10000, status: "sent", wantPaid: true},
		{name: "Overpaid", amount: 10000, paidIn: 12000, status: "sent", wantPaid: true},
		// The persisted status string has no say in paid-ness.
		{name: "FullyPaidButStatusStillDraft", amount: 10000, paidIn: 10000, status: "draft", wantPaid: true},
		{name: "UnpaidButStatusSaysPaid", amount: 10000, paidIn: 0, status: "paid", wantPaid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newInvoice(tt.amount, tt.paidIn, tt.status)

			assert.Equal(t, tt.wantPaid, status.Is(document.TypeInvoice, inv, status.Paid))
			assert.Equal(t, !tt.wantPaid, status.Is(document.TypeInvoice, inv, status.Unpaid))
		})
	}
}

func TestInvoicePartial(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		paidIn      int64
		status      string
		wantPartial bool
	}{
		{name: "HalfPaid", amount: 10000, paidIn: 5000, status: "sent", wantPartial: true},
		{name: "NothingPaid", amount: 10000, paidIn: 0, status: "sent", wantPartial: false},
		{name: "FullyPaid", amount: 10000, paidIn: 10000, status: "sent", wantPartial: false},
		// A draft invoice is never partial, whatever the money says.
		{name: "HalfPaidDraft", amount: 10000, paidIn: 5000, status: "draft", wantPartial: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newInvoice(tt.amount, tt.paidIn, tt.status)

			assert.Equal(t, tt.wantPartial, status.Is(document.TypeInvoice, inv, status.Partial))
		})
	}
}

func TestInvoiceOverdue(t *testing.T) {
	t.Run("NoDueDate", func(t *testing.T) {
		inv := newInvoice(10000, 0, "sent")
		assert.False(t, status.Is(document.TypeInvoice, inv, status.Overdue))
	})

	t.Run("DueDateInThePast", func(t *testing.T) {
		inv := newInvoice(10000, 0, "sent")
		inv.DueDate = past(t)
		assert.True(t, status.Is(document.TypeInvoice, inv, status.Overdue))
	})

	t.Run("DueDateInTheFuture", func(t *testing.T) {
		inv := newInvoice(10000, 0, "sent")
		inv.DueDate = future(t)
		assert.False(t, status.Is(document.TypeInvoice, inv, status.Overdue))
	})

	t.Run("PredicateIgnoresPaymentState", func(t *testing.T) {
		// The raw predicate stays true on a paid invoice; the apply
		// path is where the paid conflict kicks in.
		inv := newInvoice(10000, 10000, "sent")
		inv.DueDate = past(t)
		assert.True(t, status.Is(document.TypeInvoice, inv, status.Overdue))
	})
}

func TestFreshDraftInvoice(t *testing.T) {
	inv := newInvoice(10000, 0, "draft")

	assert.True(t, status.Is(document.TypeInvoice, inv, status.Draft))
	assert.False(t, status.Is(document.TypeInvoice, inv, status.Overdue))
	assert.False(t, status.Is(document.TypeInvoice, inv, status.Paid))
	assert.False(t, status.Is(document.TypeInvoice, inv, status.Partial))
}
