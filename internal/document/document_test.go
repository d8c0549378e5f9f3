package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruimartins/billow/internal/document"
)

func TestParseType(t *testing.T) {
	typ, err := document.ParseType("recurring_invoice")
	require.NoError(t, err)
	assert.Equal(t, document.TypeRecurringInvoice, typ)

	_, err = document.ParseType("ledger")
	require.Error(t, err)
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{150, "1.50"},
		{15000, "150.00"},
		{-15000, "-150.00"},
		{-5, "-0.05"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, document.Cents(tc.cents).String())
	}
}
