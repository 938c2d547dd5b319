package sphere

import (
	"time"
)

// NetWorth aggregates the balance sheet from raw account and liability
// lists. All accounts count toward assets regardless of type; credit and
// loan accounts carry signed balances from the data layer.
func NetWorth(accounts []*Account, liabilities []*Liability) *NetWorthSummary {
	summary := &NetWorthSummary{}

	for _, a := range accounts {
		summary.Assets += a.CurrentBalance
	}

	for _, l := range liabilities {
		summary.Liabilities += l.CurrentBalance
	}

	summary.NetWorth = summary.Assets - summary.Liabilities
	return summary
}

// DailySpendOn totals the outflows posted on the given calendar day,
// broken down by category. Inflows and transactions on other days are
// excluded. An empty input produces a zero-valued result, not an error.
func DailySpendOn(transactions []*Transaction, day time.Time) *DailySpend {
	spend := &DailySpend{
		Date:       startOfDay(day),
		ByCategory: make(map[string]float64),
	}

	for _, tx := range transactions {
		if tx.Amount >= 0 {
			continue
		}
		if !sameDay(tx.Date, day) {
			continue
		}
		amount := -tx.Amount
		spend.TotalSpend += amount
		spend.ByCategory[tx.Category] += amount
	}

	return spend
}

// FilterByDayWindow returns the transactions whose whole-day age relative
// to now falls in [startOffsetDays, endOffsetDays] inclusive. Offset 0 is
// today; [0, 7] is the trailing week, [8, 14] the week before.
func FilterByDayWindow(transactions []*Transaction, now time.Time, startOffsetDays, endOffsetDays int) []*Transaction {
	var out []*Transaction
	for _, tx := range transactions {
		age := wholeDaysBefore(now, tx.Date)
		if age >= startOffsetDays && age <= endOffsetDays {
			out = append(out, tx)
		}
	}
	return out
}
