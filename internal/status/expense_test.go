package status_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/status"
)

func newExpense(inv *document.Invoice) *document.Expense {
	return &document.Expense{
		Meta:        document.Meta{ID: uuid.New()},
		Amount:      document.Cents(4500),
		Currency:    "EUR",
		Category:    "travel",
		ExpenseDate: time.Now(),
		Invoice:     inv,
	}
}

func TestExpenseWithoutInvoiceIsLogged(t *testing.T) {
	exp := newExpense(nil)

	assert.True(t, status.Is(document.TypeExpense, exp, status.Logged))
	assert.False(t, status.Is(document.TypeExpense, exp, status.Invoiced))

	for _, k := range []status.Key{status.Pending, status.Sent, status.Viewed, status.Partial, status.Paid, status.Overdue} {
		assert.False(t, status.Is(document.TypeExpense, exp, k), "expense without invoice must not be %s", k)
	}
}

func TestExpenseFollowsItsInvoice(t *testing.T) {
	t.Run("Pending", func(t *testing.T) {
		exp := newExpense(newInvoice(4500, 0, "pending"))

		assert.True(t, status.Is(document.TypeExpense, exp, status.Invoiced))
		assert.True(t, status.Is(document.TypeExpense, exp, status.Pending))
		assert.False(t, status.Is(document.TypeExpense, exp, status.Logged))
	})

	t.Run("Paid", func(t *testing.T) {
		exp := newExpense(newInvoice(4500, 4500, "sent"))

		assert.True(t, status.Is(document.TypeExpense, exp, status.Paid))
		assert.False(t, status.Is(document.TypeExpense, exp, status.Partial))
	})

	t.Run("Overdue", func(t *testing.T) {
		inv := newInvoice(4500, 0, "sent")
		inv.DueDate = past(t)
		exp := newExpense(inv)

		assert.True(t, status.Is(document.TypeExpense, exp, status.Overdue))
	})
}

func TestExpensePrimaryStatus(t *testing.T) {
	d, ok := status.Primary(document.TypeExpense, newExpense(nil))
	require.True(t, ok)
	assert.Equal(t, status.Logged, d.Key)

	d, ok = status.Primary(document.TypeExpense, newExpense(newInvoice(4500, 0, "draft")))
	require.True(t, ok)
	assert.Equal(t, status.Invoiced, d.Key)
}
