package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/ruimartins/billow/internal/encoding"
)

// Parser reads CSV exports and produces expense params. It auto-detects
// which layout is being used by matching column headers against known
// profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	// Sniff the delimiter before handing the reader to encoding/csv:
	// detectComma swaps utf8r for one that replays the sniffed bytes.
	comma := detectComma(&utf8r)

	reader := csv.NewReader(utf8r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching export format found")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// detectComma sniffs the delimiter from the first line: semicolon for
// the Portuguese bank exports, comma otherwise. The reader is replaced
// with one that replays the sniffed bytes.
func detectComma(r *io.Reader) rune {
	buf := make([]byte, 4096)

	n, _ := io.ReadFull(*r, buf)
	head := buf[:n]

	*r = io.MultiReader(strings.NewReader(string(head)), *r)

	line, _, _ := strings.Cut(string(head), "\n")
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}

	return ','
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts expenses from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]CreateParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	categoryIdx := -1
	if p.CategoryCol != "" {
		if idx, ok := cols[p.CategoryCol]; ok {
			categoryIdx = idx
		}
	}

	var expenses []CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(p, row, dateIdx)
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		expenses = append(expenses, CreateParams{
			Amount:      amount,
			Category:    cellValue(row, categoryIdx),
			Description: desc,
			Date:        date,
		})
	}

	return expenses, nil
}

// parseDate tries to parse a date from the given cell index.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseDate(p *Profile, row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(p.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseAmount extracts the expense amount from a row based on the
// profile's amount mode. Rows that are not expenses (income, zero
// amounts) report false.
func parseAmount(p *Profile, cols colIndex, row []string) (int64, bool) {
	switch p.AmountMode {
	case amountSigned:
		s := cellValue(row, cols[p.AmountCol])
		if s == "" {
			return 0, false
		}

		cents, err := parseEuropeanAmount(s)
		if err != nil || cents >= 0 {
			return 0, false
		}

		return -cents, true

	case amountSplit:
		s := cellValue(row, cols[p.DebitCol])
		if s == "" {
			return 0, false
		}

		cents, err := parseEuropeanAmount(s)
		if err != nil || cents == 0 {
			return 0, false
		}

		return abs(cents), true

	case amountPlain:
		s := cellValue(row, cols[p.AmountCol])
		if s == "" {
			return 0, false
		}

		cents, err := parsePlainAmount(s)
		if err != nil || cents <= 0 {
			return 0, false
		}

		return cents, true
	}

	return 0, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
