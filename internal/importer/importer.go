// Package importer turns CSV exports into expense records. Bank and
// card statements come in a handful of layouts; each is described by a
// Profile and auto-detected from the header row.
package importer

import (
	"time"
)

// CreateParams is a parsed expense row, not yet persisted.
type CreateParams struct {
	Amount      int64 // cents, always positive
	Currency    string
	Category    string
	Description string
	Date        time.Time
}
