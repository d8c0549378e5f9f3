package view

import (
	"context"
	"time"

	"github.com/ruimartins/billow/internal/document"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders a monetary value with its currency code.
func FormatAmount(m document.Money, currency string) string {
	if currency == "" {
		return m.String()
	}

	return m.String() + " " + currency
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
