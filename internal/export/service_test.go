package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ruimartins/billow/internal/document"
)

func newService(t *testing.T) (*Service, *document.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := document.NewMockRepository(ctrl)

	return NewService(document.NewService(repo, document.ContextNavigator{})), repo
}

func TestWriteCSVInvoices(t *testing.T) {
	svc, repo := newService(t)

	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	inv := &document.Invoice{
		Meta:      document.Meta{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111")},
		Number:    "INV-0001",
		Currency:  "EUR",
		Amount:    document.Cents(150000),
		PaidIn:    document.Cents(50000),
		IssueDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   &due,
		Client:    &document.Client{Name: "Acme Ltd"},
	}

	repo.EXPECT().
		ListInvoices(gomock.Any(), gomock.Any()).
		Return([]*document.Invoice{inv}, nil)

	var buf bytes.Buffer

	n, err := svc.WriteCSV(context.Background(), &buf, document.TypeInvoice, document.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t,
		"id,number,client,issue_date,due_date,amount,paid_in,currency\n"+
			"11111111-1111-1111-1111-111111111111,INV-0001,Acme Ltd,2026-02-01,2026-03-15,1500.00,500.00,EUR\n",
		buf.String())
}

func TestWriteCSVExpensesWithoutOptionalFields(t *testing.T) {
	svc, repo := newService(t)

	exp := &document.Expense{
		Meta:        document.Meta{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222")},
		Currency:    "EUR",
		Amount:      document.Cents(1250),
		Description: "Domain renewal",
		ExpenseDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().
		ListExpenses(gomock.Any(), gomock.Any()).
		Return([]*document.Expense{exp}, nil)

	var buf bytes.Buffer

	n, err := svc.WriteCSV(context.Background(), &buf, document.TypeExpense, document.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t,
		"id,expense_date,category,description,amount,currency\n"+
			"22222222-2222-2222-2222-222222222222,2026-01-10,,Domain renewal,12.50,EUR\n",
		buf.String())
}

func TestWriteCSVForwardsFilter(t *testing.T) {
	svc, repo := newService(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListPayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter document.ListFilter) ([]*document.Payment, error) {
			assert.True(t, filter.IncludeArchived)
			require.NotNil(t, filter.StartDate)
			assert.Equal(t, start, *filter.StartDate)

			return nil, nil
		})

	var buf bytes.Buffer

	n, err := svc.WriteCSV(context.Background(), &buf, document.TypePayment, document.ListFilter{
		IncludeArchived: true,
		StartDate:       &start,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.Equal(t, "id,reference,payment_date,method,amount,refunded,currency\n", buf.String())
}
