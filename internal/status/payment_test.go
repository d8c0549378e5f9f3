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

func newPayment(amount, refunded int64) *document.Payment {
	invoiceID := uuid.New()

	return &document.Payment{
		Meta:      document.Meta{ID: uuid.New()},
		ClientID:  uuid.New(),
		InvoiceID: &invoiceID,
		Amount:    document.Cents(amount),
		Refunded:  document.Cents(refunded),
		Currency:  "EUR",
	}
}

func TestPaymentCompletedAndRefundedAreExclusive(t *testing.T) {
	tests := []struct {
		name          string
		refunded      int64
		wantCompleted bool
	}{
		{name: "NoRefund", refunded: 0, wantCompleted: true},
		{name: "PartialRefund", refunded: 5000, wantCompleted: false},
		{name: "FullRefund", refunded: 10000, wantCompleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPayment(10000, tt.refunded)

			completed := status.Is(document.TypePayment, p, status.Completed)
			refunded := status.Is(document.TypePayment, p, status.Refunded)

			assert.Equal(t, tt.wantCompleted, completed)
			assert.Equal(t, !tt.wantCompleted, refunded)
		})
	}
}

func TestApplyCompletedOnRefundedPaymentConflicts(t *testing.T) {
	engine, _ := newEngine(t)

	p := newPayment(10000, 5000)

	res := engine.Apply(document.TypePayment, p, status.Completed)
	require.NotEmpty(t, res.Conflicts)
	assert.False(t, res.Solvable())
}

func TestApplyRefundedOnCompletedPaymentSuggestsRefund(t *testing.T) {
	engine, actions := newEngine(t)

	p := newPayment(10000, 0)

	res := engine.Apply(document.TypePayment, p, status.Refunded)
	require.NotEmpty(t, res.Conflicts)

	solution := res.Resolution()
	require.NotNil(t, solution)

	actions.EXPECT().
		Edit(gomock.Any(), p, document.FormOptions{TabIndex: 1}).
		Return(nil)

	require.NoError(t, solution.Solve(context.Background()))
}

func TestApplyCompletedOnCompletedPaymentIsANoOp(t *testing.T) {
	engine, _ := newEngine(t)

	p := newPayment(10000, 0)

	res := engine.Apply(document.TypePayment, p, status.Completed)
	require.Empty(t, res.Conflicts)
	require.True(t, res.Solvable())

	solution, err := res.Solve(context.Background())
	require.NoError(t, err)
	assert.Nil(t, solution)
}
