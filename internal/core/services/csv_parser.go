package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Ommishra2/Dataintellect/internal/apperrors"
	"github.com/Ommishra2/Dataintellect/internal/core/domain"
)

// requiredColumns is the exact column set an upload must carry. Extra columns
// are ignored.
var requiredColumns = []string{
	"account_id",
	"date",
	"revenue",
	"expense",
	"balance",
	"transaction_count",
	"overdue_amount",
	"payment_delay_days",
}

// dateLayouts accepted for the date column, tried in order.
var dateLayouts = []string{time.DateOnly, time.RFC3339}

// ParseFinancialCSV validates and normalizes raw CSV content into typed rows.
// Column names are matched case- and whitespace-insensitively. Any missing
// required column fails with a *apperrors.ValidationError naming the missing
// columns; any malformed value fails the whole batch with a
// *apperrors.ParseError. The function has no side effects and preserves input
// row order.
func ParseFinancialCSV(content []byte) ([]domain.NormalizedRow, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &apperrors.ValidationError{MissingColumns: append([]string(nil), requiredColumns...)}
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &apperrors.ValidationError{MissingColumns: missing}
	}

	var rows []domain.NormalizedRow
	line := 1 // header
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "", Err: err}
		}

		date, err := parseDate(record[colIndex["date"]])
		if err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "date", Err: err}
		}

		row := domain.NormalizedRow{
			AccountID: strings.TrimSpace(record[colIndex["account_id"]]),
			Date:      date,
			Month:     date.Format("2006-01"),
		}

		if row.Revenue, err = parseFloat(record[colIndex["revenue"]]); err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "revenue", Err: err}
		}
		if row.Expense, err = parseFloat(record[colIndex["expense"]]); err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "expense", Err: err}
		}
		if row.Balance, err = parseFloat(record[colIndex["balance"]]); err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "balance", Err: err}
		}
		if row.OverdueAmount, err = parseFloat(record[colIndex["overdue_amount"]]); err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "overdue_amount", Err: err}
		}
		if row.TransactionCount, err = parseInt(record[colIndex["transaction_count"]]); err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "transaction_count", Err: err}
		}
		if row.PaymentDelayDays, err = parseInt(record[colIndex["payment_delay_days"]]); err != nil {
			return nil, &apperrors.ParseError{Line: line, Column: "payment_delay_days", Err: err}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a valid date", value)
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}
