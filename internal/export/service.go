package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ruimartins/billow/internal/document"
)

// Service renders document listings as CSV for accounting handoff.
type Service struct {
	documents *document.Service
}

func NewService(docService *document.Service) *Service {
	return &Service{documents: docService}
}

// WriteCSV lists documents of the given type and writes them to w as
// CSV with a header row. It returns the number of data rows written.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, typ document.Type, filter document.ListFilter) (int, error) {
	docs, err := s.documents.List(ctx, typ, filter)
	if err != nil {
		return 0, fmt.Errorf("listing %s documents: %w", typ, err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(headerFor(typ)); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, doc := range docs {
		if err := cw.Write(rowFor(doc)); err != nil {
			return 0, fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return len(docs), cw.Error()
}

func headerFor(typ document.Type) []string {
	switch typ {
	case document.TypeInvoice:
		return []string{"id", "number", "client", "issue_date", "due_date", "amount", "paid_in", "currency"}
	case document.TypeQuote:
		return []string{"id", "number", "client", "issue_date", "expiry_date", "amount", "currency"}
	case document.TypePayment:
		return []string{"id", "reference", "payment_date", "method", "amount", "refunded", "currency"}
	case document.TypeRecurringInvoice:
		return []string{"id", "client", "start_date", "frequency", "amount", "currency"}
	case document.TypeExpense:
		return []string{"id", "expense_date", "category", "description", "amount", "currency"}
	case document.TypeClient:
		return []string{"id", "name", "email", "currency", "vat_number"}
	case document.TypeProduct:
		return []string{"id", "name", "price", "qty", "currency"}
	}

	return []string{"id"}
}

func rowFor(doc document.Document) []string {
	switch d := doc.(type) {
	case *document.Invoice:
		return []string{
			d.ID.String(), d.Number, clientName(d.Client),
			formatDate(d.IssueDate), formatDatePtr(d.DueDate),
			d.Amount.String(), d.PaidIn.String(), d.Currency,
		}
	case *document.Quote:
		return []string{
			d.ID.String(), d.Number, clientName(d.Client),
			formatDate(d.IssueDate), formatDatePtr(d.ExpiryDate),
			d.Amount.String(), d.Currency,
		}
	case *document.Payment:
		return []string{
			d.ID.String(), d.Reference, formatDate(d.PaymentDate), d.Method,
			d.Amount.String(), d.Refunded.String(), d.Currency,
		}
	case *document.RecurringInvoice:
		return []string{
			d.ID.String(), clientName(d.Client),
			formatDate(d.StartDate), d.Frequency,
			d.Amount.String(), d.Currency,
		}
	case *document.Expense:
		return []string{
			d.ID.String(), formatDate(d.ExpenseDate), d.Category, d.Description,
			d.Amount.String(), d.Currency,
		}
	case *document.Client:
		return []string{d.ID.String(), d.Name, d.Email, d.Currency, d.VATNumber}
	case *document.Product:
		qty := ""
		if d.Qty != nil {
			qty = strconv.FormatInt(*d.Qty, 10)
		}

		return []string{d.ID.String(), d.Name, d.Price.String(), qty, d.Currency}
	}

	return []string{doc.Lifecycle().ID.String()}
}

func clientName(c *document.Client) string {
	if c == nil {
		return ""
	}

	return c.Name
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return formatDate(*t)
}
