package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ruimartins/billow/internal/document"
	"github.com/ruimartins/billow/internal/importer"
)

func TestServiceImportSkipsDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := document.NewMockRepository(ctrl)

	csv := `Data mov.;Descrição;Montante
30-01-2026;COWORK RENT;-350,00
31-01-2026;SERVER BILL;-12,00
`

	existing := []*document.Expense{
		{
			Meta:        document.Meta{ID: uuid.New()},
			Amount:      document.Cents(35000),
			Description: "COWORK RENT",
			ExpenseDate: date(2026, 1, 30),
		},
	}

	repo.EXPECT().
		ListExpenses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter document.ListFilter) ([]*document.Expense, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, date(2026, 1, 30), *filter.StartDate)
			assert.Equal(t, date(2026, 1, 31), *filter.EndDate)
			return existing, nil
		})

	repo.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, exp *document.Expense) error {
			exp.ID = uuid.New()
			return nil
		})

	svc := importer.NewService(repo, "EUR")

	result, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, result.Created, 1)
	assert.Equal(t, "SERVER BILL", result.Created[0].Description)
	assert.Equal(t, int64(1200), result.Created[0].Amount.Get())
	assert.Equal(t, "EUR", result.Created[0].Currency)

	require.Len(t, result.Duplicates, 1)
	assert.Equal(t, "COWORK RENT", result.Duplicates[0].Description)
}

func TestServiceImportEmptyFileIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := document.NewMockRepository(ctrl)

	csv := `Data mov.;Descrição;Montante
`

	svc := importer.NewService(repo, "EUR")

	result, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Duplicates)
}
