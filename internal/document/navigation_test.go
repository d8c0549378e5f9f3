package document_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruimartins/billow/internal/document"
)

func TestContextNavigatorRecordsCreateForm(t *testing.T) {
	var cmd document.FormCommand
	ctx := document.WithFormSink(context.Background(), &cmd)

	prefill := document.Prefill{"invoice_uuid": uuid.New().String()}

	nav := document.ContextNavigator{}
	require.NoError(t, nav.OpenCreateForm(ctx, document.TypePayment, prefill, document.FormOptions{TabIndex: 2}))

	assert.Equal(t, "create", cmd.Action)
	assert.Equal(t, document.TypePayment, cmd.Type)
	assert.Equal(t, prefill, cmd.Prefill)
	assert.Equal(t, 2, cmd.TabIndex)
}

func TestContextNavigatorRecordsEditForm(t *testing.T) {
	var cmd document.FormCommand
	ctx := document.WithFormSink(context.Background(), &cmd)

	inv := &document.Invoice{Meta: document.Meta{ID: uuid.New()}}

	nav := document.ContextNavigator{}
	require.NoError(t, nav.OpenEditForm(ctx, inv, document.FormOptions{TabIndex: 1}))

	assert.Equal(t, "edit", cmd.Action)
	assert.Equal(t, document.TypeInvoice, cmd.Type)
	assert.Equal(t, inv.ID, cmd.DocumentID)
	assert.Equal(t, 1, cmd.TabIndex)
}

func TestContextNavigatorWithoutSinkIsANoOp(t *testing.T) {
	nav := document.ContextNavigator{}

	require.NoError(t, nav.OpenCreateForm(context.Background(), document.TypeInvoice, nil, document.FormOptions{}))
	require.NoError(t, nav.OpenEditForm(context.Background(), &document.Invoice{}, document.FormOptions{}))
}
