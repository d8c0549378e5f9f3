package status_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/status"
)

func newEngine(t *testing.T) (*status.Engine, *document.MockActions) {
	t.Helper()

	ctrl := gomock.NewController(t)
	actions := document.NewMockActions(ctrl)

	return status.NewEngine(actions, nil), actions
}

func TestApplyStatusPatchesDocument(t *testing.T) {
	engine, actions := newEngine(t)

	inv := newInvoice(10000, 0, "pending")

	actions.EXPECT().
		Patch(gomock.Any(), inv, document.Patch{"status": "draft"}).
		Return(nil)

	res := engine.Apply(document.TypeInvoice, inv, status.Draft)
	require.Empty(t, res.Conflicts)
	require.True(t, res.Solvable())

	solution, err := res.Solve(context.Background())
	require.NoError(t, err)
	assert.Nil(t, solution)

	// The in-memory snapshot is mutated ahead of persistence.
	assert.Equal(t, "draft", inv.Status)
}

func TestApplyIsIdempotent(t *testing.T) {
	// No expectations registered: any persistence or form call fails the test.
	engine, _ := newEngine(t)

	t.Run("PaidInvoiceStaysUntouched", func(t *testing.T) {
		inv := newInvoice(10000, 10000, "sent")

		res := engine.Apply(document.TypeInvoice, inv, status.Paid)
		require.True(t, res.Solvable())

		solution, err := res.Solve(context.Background())
		require.NoError(t, err)
		assert.Nil(t, solution)
	})

	t.Run("DraftInvoiceStaysUntouched", func(t *testing.T) {
		inv := newInvoice(10000, 0, "draft")

		res := engine.Apply(document.TypeInvoice, inv, status.Draft)
		require.True(t, res.Solvable())

		solution, err := res.Solve(context.Background())
		require.NoError(t, err)
		assert.Nil(t, solution)
		assert.Equal(t, "draft", inv.Status)
	})
}

func TestApplyPaidSuggestsPayment(t *testing.T) {
	engine, actions := newEngine(t)

	inv := newInvoice(10000, 5000, "sent")

	res := engine.Apply(document.TypeInvoice, inv, status.Paid)
	require.Empty(t, res.Conflicts)
	require.True(t, res.Solvable())

	solution, err := res.Solve(context.Background())
	require.NoError(t, err)
	require.NotNil(t, solution)

	// The message carries the outstanding amount.
	assert.Contains(t, solution.Message, "50.00")

	actions.EXPECT().
		Create(gomock.Any(), document.TypePayment, gomock.Any(), document.FormOptions{TabIndex: 2}).
		DoAndReturn(func(_ context.Context, _ document.Type, prefill document.Prefill, _ document.FormOptions) error {
			assert.Equal(t, inv.ID, prefill["invoice_uuid"])
			assert.Equal(t, inv.ClientID, prefill["client_uuid"])
			assert.Equal(t, int64(5000), prefill["amount"])
			assert.Equal(t, "EUR", prefill["currency_code"])
			return nil
		})

	require.NoError(t, solution.Solve(context.Background()))
}

func TestApplyOverdueOnPaidInvoiceConflicts(t *testing.T) {
	engine, _ := newEngine(t)

	inv := newInvoice(10000, 10000, "sent")
	inv.DueDate = past(t)

	res := engine.Apply(document.TypeInvoice, inv, status.Overdue)
	require.NotEmpty(t, res.Conflicts)
	assert.False(t, res.Solvable())

	_, err := res.Solve(context.Background())
	assert.ErrorIs(t, err, status.ErrConflicted)
}

func TestApplyOverdueOnDraftInvoiceConflicts(t *testing.T) {
	engine, _ := newEngine(t)

	inv := newInvoice(10000, 0, "draft")
	inv.DueDate = past(t)

	res := engine.Apply(document.TypeInvoice, inv, status.Overdue)
	require.NotEmpty(t, res.Conflicts)
}

func TestApplyDraftWithRecordedPaymentsConflicts(t *testing.T) {
	engine, _ := newEngine(t)

	inv := newInvoice(10000, 2500, "sent")

	res := engine.Apply(document.TypeInvoice, inv, status.Draft)
	require.Len(t, res.Conflicts, 1)
	assert.Nil(t, res.Resolution())
}

func TestApplyPendingOnMailedInvoiceConflicts(t *testing.T) {
	engine, _ := newEngine(t)

	inv := newInvoice(10000, 0, "sent")
	mailed := time.Now().Add(-time.Hour)
	inv.MailedAt = &mailed

	res := engine.Apply(document.TypeInvoice, inv, status.Pending)
	require.NotEmpty(t, res.Conflicts)
}

func TestApplyOverdueSuggestsDueDateEdit(t *testing.T) {
	engine, actions := newEngine(t)

	inv := newInvoice(10000, 0, "sent")

	res := engine.Apply(document.TypeInvoice, inv, status.Overdue)
	require.Empty(t, res.Conflicts)

	solution, err := res.Solve(context.Background())
	require.NoError(t, err)
	require.NotNil(t, solution)

	actions.EXPECT().
		Edit(gomock.Any(), inv, document.FormOptions{TabIndex: 1}).
		Return(nil)

	require.NoError(t, solution.Solve(context.Background()))
}

func TestApplyOnDeletedDocumentConflicts(t *testing.T) {
	engine, _ := newEngine(t)

	inv := newInvoice(10000, 0, "sent")
	now := time.Now()
	inv.DeletedAt = &now

	res := engine.Apply(document.TypeInvoice, inv, status.Draft)
	require.NotEmpty(t, res.Conflicts)
	assert.Nil(t, res.Resolution())
}

func TestApplyOnArchivedDocumentSuggestsRestore(t *testing.T) {
	engine, actions := newEngine(t)

	inv := newInvoice(10000, 0, "sent")
	now := time.Now()
	inv.ArchivedAt = &now

	res := engine.Apply(document.TypeInvoice, inv, status.Draft)
	require.NotEmpty(t, res.Conflicts)

	solution := res.Resolution()
	require.NotNil(t, solution)

	actions.EXPECT().
		Patch(gomock.Any(), inv, document.Patch{"archived_at": nil}).
		Return(nil)

	require.NoError(t, solution.Solve(context.Background()))
	assert.Nil(t, inv.ArchivedAt)
}

func TestApplyArchivedInvokesArchiveAction(t *testing.T) {
	engine, actions := newEngine(t)

	inv := newInvoice(10000, 0, "sent")

	actions.EXPECT().Archive(gomock.Any(), inv).Return(nil)

	res := engine.Apply(status.Generic, inv, status.Archived)
	require.Empty(t, res.Conflicts)

	solution, err := res.Solve(context.Background())
	require.NoError(t, err)
	assert.Nil(t, solution)
}
