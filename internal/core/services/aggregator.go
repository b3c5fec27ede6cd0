package services

import (
	"math"
	"sort"
	"time"

	"github.com/Ommishra2/Dataintellect/internal/core/domain"
)

type groupKey struct {
	accountID string
	month     string
}

type groupAccumulator struct {
	revenues     []float64
	totalRevenue float64
	totalExpense float64
}

// AggregateByAccountMonth groups normalized rows by (account_id, month) and
// computes the derived financial metrics per group. One aggregate is produced
// per distinct pair present in the batch; aggregates from earlier uploads are
// never merged in. Output is sorted by (account_id, month).
func AggregateByAccountMonth(rows []domain.NormalizedRow, now time.Time) []domain.FinancialAggregate {
	groups := make(map[groupKey]*groupAccumulator)
	for _, row := range rows {
		key := groupKey{accountID: row.AccountID, month: row.Month}
		acc, ok := groups[key]
		if !ok {
			acc = &groupAccumulator{}
			groups[key] = acc
		}
		acc.revenues = append(acc.revenues, row.Revenue)
		acc.totalRevenue += row.Revenue
		acc.totalExpense += row.Expense
	}

	aggregates := make([]domain.FinancialAggregate, 0, len(groups))
	for key, acc := range groups {
		n := float64(len(acc.revenues))

		expenseRatio := 0.0
		if acc.totalRevenue > 0 {
			expenseRatio = acc.totalExpense / acc.totalRevenue
		}

		aggregates = append(aggregates, domain.FinancialAggregate{
			AccountID:          key.accountID,
			Month:              key.month,
			AvgRevenue:         acc.totalRevenue / n,
			AvgExpense:         acc.totalExpense / n,
			Profit:             acc.totalRevenue - acc.totalExpense,
			ExpenseRatio:       expenseRatio,
			CashflowVolatility: sampleStdDev(acc.revenues),
			CreatedAt:          now,
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].AccountID != aggregates[j].AccountID {
			return aggregates[i].AccountID < aggregates[j].AccountID
		}
		return aggregates[i].Month < aggregates[j].Month
	})

	return aggregates
}

// sampleStdDev returns the sample standard deviation, or 0 for groups with
// fewer than 2 values.
func sampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, v := range values {
		d := v - mean
		sqDiff += d * d
	}

	return math.Sqrt(sqDiff / float64(n-1))
}
