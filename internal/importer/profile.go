package importer

// amountMode determines how the expense amount is extracted from a row.
type amountMode int

const (
	// amountSigned means one signed column where expenses are negative
	// (bank statement convention). Positive rows are income and skipped.
	amountSigned amountMode = iota
	// amountSplit means separate debit and credit columns; only the
	// debit side is an expense.
	amountSplit
	// amountPlain means one unsigned cost column (expense-tracker
	// exports).
	amountPlain
)

// Profile describes the column layout of a supported CSV export.
// Adding a new source is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DateLayout  string
	DescCol     string
	CategoryCol string // optional
	AmountMode  amountMode
	AmountCol   string // used when AmountMode is amountSigned or amountPlain
	DebitCol    string // used when AmountMode == amountSplit
	CreditCol   string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSigned, amountPlain:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles come first to avoid false
// matches.
var profiles = []Profile{
	{
		Name:       "card",
		DateCol:    "Data",
		DateLayout: "02-01-2006",
		DescCol:    "Descrição",
		AmountMode: amountSplit,
		DebitCol:   "Débito",
		CreditCol:  "Crédito",
	},
	{
		Name:       "statement",
		DateCol:    "Data mov.",
		DateLayout: "02-01-2006",
		DescCol:    "Descrição",
		AmountMode: amountSigned,
		AmountCol:  "Montante",
	},
	{
		Name:        "expenses",
		DateCol:     "Date",
		DateLayout:  "2006-01-02",
		DescCol:     "Description",
		CategoryCol: "Category",
		AmountMode:  amountPlain,
		AmountCol:   "Amount",
	},
}
