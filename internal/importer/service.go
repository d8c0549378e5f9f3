package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ruimartins/billow/internal/document"
)

// expenseStore is the slice of the document layer the importer needs.
type expenseStore interface {
	ListExpenses(ctx context.Context, filter document.ListFilter) ([]*document.Expense, error)
	CreateExpense(ctx context.Context, exp *document.Expense) error
}

type Service struct {
	parser *Parser
	store  expenseStore

	// Currency stamped on imported expenses; bank exports don't carry one.
	currency string
}

func NewService(store expenseStore, currency string) *Service {
	return &Service{
		parser:   NewParser(),
		store:    store,
		currency: currency,
	}
}

// Result reports what an import run did.
type Result struct {
	Created    []*document.Expense
	Duplicates []CreateParams
}

// Import parses the CSV, skips rows already present as expenses, and
// persists the rest. A row is a duplicate when an existing expense in
// the same date range matches its date, amount, and description.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Result, error) {
	params, err := s.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing import: %w", err)
	}

	if len(params) == 0 {
		return &Result{}, nil
	}

	minDate, maxDate := dateRange(params)

	existing, err := s.store.ListExpenses(ctx, document.ListFilter{
		IncludeArchived: true,
		StartDate:       &minDate,
		EndDate:         &maxDate,
	})
	if err != nil {
		return nil, fmt.Errorf("listing existing expenses: %w", err)
	}

	type lookupKey struct {
		Date        string
		Amount      int64
		Description string
	}

	seen := make(map[lookupKey]struct{}, len(existing))
	for _, exp := range existing {
		seen[lookupKey{
			Date:        exp.ExpenseDate.Format("2006-01-02"),
			Amount:      exp.Amount.Get(),
			Description: exp.Description,
		}] = struct{}{}
	}

	result := &Result{}

	for _, p := range params {
		k := lookupKey{
			Date:        p.Date.Format("2006-01-02"),
			Amount:      p.Amount,
			Description: p.Description,
		}

		if _, dup := seen[k]; dup {
			result.Duplicates = append(result.Duplicates, p)
			continue
		}

		exp := &document.Expense{
			Amount:      document.Cents(p.Amount),
			Currency:    s.currency,
			Category:    p.Category,
			Description: p.Description,
			ExpenseDate: p.Date,
		}

		if err := s.store.CreateExpense(ctx, exp); err != nil {
			return nil, fmt.Errorf("creating expense: %w", err)
		}

		seen[k] = struct{}{}
		result.Created = append(result.Created, exp)
	}

	return result, nil
}

func dateRange(params []CreateParams) (minDate, maxDate time.Time) {
	minDate = params[0].Date
	maxDate = params[0].Date

	for _, p := range params {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	return minDate, maxDate
}
