package sphere

import (
	"math"
	"time"
)

const (
	// MaxPayoffMonths is a safety ceiling on the amortization loop (50
	// years). It guards against APR/payment combinations that converge
	// pathologically slowly through floating-point residue; it is not a
	// business rule.
	MaxPayoffMonths = 600

	monthsPerYear = 12
	daysPerYear   = 365
)

// payoffNever is the tagged "never pays off" outcome.
func payoffNever() PayoffResult {
	return PayoffResult{Never: true}
}

// ProjectPayoff simulates paying a balance down at a fixed monthly payment
// and APR (percent units, e.g. 24.99). A payment that can not retire the
// debt yields the Never outcome rather than an error: "this debt never
// pays off" is a legitimate answer, not a fault.
//
// Interest is accumulated unrounded across iterations and rounded to two
// decimals only on return.
func ProjectPayoff(balance, aprPercent, monthlyPayment float64) PayoffResult {
	if monthlyPayment <= 0 {
		return payoffNever()
	}

	monthlyRate := aprPercent / 100 / monthsPerYear

	// Single-month case: the payment clears the whole balance, so one
	// month of interest accrues and the loop is unnecessary.
	if monthlyPayment >= balance {
		return PayoffResult{
			Months:        1,
			TotalInterest: round2(balance * monthlyRate),
		}
	}

	// If the payment does not cover even one month's interest the
	// balance can only grow.
	if monthlyRate > 0 && monthlyPayment <= balance*monthlyRate {
		return payoffNever()
	}

	remaining := balance
	totalInterest := 0.0
	months := 0

	for remaining > 0 && months < MaxPayoffMonths {
		interest := remaining * monthlyRate
		totalInterest += interest
		remaining += interest - monthlyPayment
		if remaining < 0 {
			remaining = 0
		}
		months++
	}

	return PayoffResult{
		Months:        months,
		TotalInterest: round2(totalInterest),
	}
}

// CostOfWaiting estimates the marginal cost of delaying payment on a
// liability by daysToWait days: simple (non-compounded) daily interest,
// plus the flat late fee when the wait overshoots the due date. Returns
// nil when the liability carries no APR, signaling "not applicable".
func CostOfWaiting(l *Liability, daysToWait int, now time.Time) *WaitingCost {
	if l.APR == nil {
		return nil
	}

	dailyRate := *l.APR / 100 / daysPerYear
	interest := l.CurrentBalance * dailyRate * float64(daysToWait)

	lateFee := 0.0
	if l.LateFee != nil && l.DueDate != nil && !l.DueDate.IsZero() {
		if daysToWait > daysUntilCeil(now, l.DueDate.Time) {
			lateFee = *l.LateFee
		}
	}

	return &WaitingCost{
		Interest: round2(interest),
		LateFee:  lateFee,
		Total:    round2(interest + lateFee),
	}
}

// round2 rounds a monetary figure to two decimal places. Applied only at
// output boundaries; intermediate amortization math stays unrounded to
// avoid compounding rounding error.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
