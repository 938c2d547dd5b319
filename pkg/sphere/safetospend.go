package sphere

import (
	"time"
)

const (
	// DefaultSafetyBuffer is the fallback user buffer, in currency units,
	// held back from the safe-to-spend figure.
	DefaultSafetyBuffer = 200.0

	// essentialsWindowDays is the look-ahead window for near-term
	// recurring obligations.
	essentialsWindowDays = 7
)

// SafeToSpendParams are the inputs to ComputeSafeToSpend. Now must be
// supplied by the caller; the engine never reads the wall clock.
type SafeToSpendParams struct {
	Accounts     []*Account
	Transactions []*Transaction
	Recurring    []*RecurringCharge
	Buffer       float64
	Now          time.Time
}

// ComputeSafeToSpend derives a conservative disposable-spend figure:
// liquid checking balances, less pending outflows, less recurring charges
// due within the next seven days, less the user's buffer. The headline
// Amount is clamped at zero; the raw terms are returned unclamped so the
// caller can show why the figure bottomed out.
func ComputeSafeToSpend(p *SafeToSpendParams) *SafeToSpendResult {
	result := &SafeToSpendResult{Buffer: p.Buffer}

	// Only checking accounts count as liquid. Savings and investment
	// balances are deliberately excluded from the spendable base.
	for _, a := range p.Accounts {
		if a.Type == AccountTypeChecking {
			result.LiquidAvailable += a.AvailableBalance
		}
	}

	for _, tx := range p.Transactions {
		if tx.Pending && tx.Amount < 0 {
			result.PendingOutflows += -tx.Amount
		}
	}

	for _, rc := range p.Recurring {
		days := daysUntilCeil(p.Now, rc.NextDate.Time)
		if days >= 0 && days <= essentialsWindowDays {
			result.UpcomingEssentials += rc.AvgAmount
		}
	}

	amount := result.LiquidAvailable - result.PendingOutflows - result.UpcomingEssentials - result.Buffer
	if amount < 0 {
		amount = 0
	}
	result.Amount = amount

	return result
}
