// Package importer parses bank statement CSV exports into transaction
// create params, for backfilling history from before the feed sync existed.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mlcarter/housetab/internal/encoding"
	"github.com/mlcarter/housetab/internal/transaction"
)

// Columns recognized in the header row, case-insensitively. Date,
// description, and amount are required; category is optional.
var columnAliases = map[string]string{
	"date":          "date",
	"description":   "description",
	"payee":         "description",
	"amount":        "amount",
	"category":      "category",
	"bank category": "category",
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Parse reads a statement export. The header row locates the columns, so
// column order does not matter; rows without a parseable date (footers,
// pending sections) are skipped.
func (s *Service) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	decoded, err := encoding.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding statement: %w", err)
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row found: need date, description, and amount columns")
	}

	return parseRows(cols, rows[headerIdx+1:])
}

// colIndex maps canonical column names to their position in the row.
type colIndex map[string]int

func findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name, known := columnAliases[strings.ToLower(strings.TrimSpace(cell))]
			if !known {
				continue
			}

			if _, taken := cols[name]; !taken {
				cols[name] = i
			}
		}

		_, hasDate := cols["date"]
		_, hasDesc := cols["description"]
		_, hasAmount := cols["amount"]

		if hasDate && hasDesc && hasAmount {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func parseRows(cols colIndex, rows [][]string) ([]transaction.CreateParams, error) {
	categoryIdx, hasCategory := cols["category"]

	var params []transaction.CreateParams

	for _, row := range rows {
		date, ok := parseDate(cell(row, cols["date"]))
		if !ok {
			continue
		}

		desc := cell(row, cols["description"])

		amount, ok := parseAmount(cell(row, cols["amount"]))
		if !ok {
			continue
		}

		p := transaction.CreateParams{
			Date:        date,
			Description: desc,
			Amount:      amount,
		}

		if hasCategory {
			p.BankCategory = cell(row, categoryIdx)
		}

		params = append(params, p)
	}

	return params, nil
}

func parseDate(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	return "", false
}

// parseAmount accepts plain decimals plus the usual statement decorations:
// thousands separators, a leading currency symbol, parentheses for negatives.
func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	negative := false

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.TrimLeft(s, "$€£ ")
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	if negative {
		f = -f
	}

	return f, true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
