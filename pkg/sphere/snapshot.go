package sphere

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Snapshot is one consistent read of a user's entities, stamped with the
// reference instant every derived figure is computed against. The
// computation functions never retain it; each method call is a fresh
// transform of the snapshot's lists.
type Snapshot struct {
	Accounts     []*Account
	Transactions []*Transaction
	Liabilities  []*Liability
	Recurring    []*RecurringCharge
	AsOf         time.Time
}

// Snapshot fetches all entity lists and stamps the result with the
// client's reference clock.
func (c *Client) Snapshot(ctx context.Context) (*Snapshot, error) {
	accounts, err := c.Accounts.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: accounts")
	}

	transactions, err := c.Transactions.List(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: transactions")
	}

	liabilities, err := c.Liabilities.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: liabilities")
	}

	recurring, err := c.Recurring.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: recurring")
	}

	return &Snapshot{
		Accounts:     accounts,
		Transactions: transactions,
		Liabilities:  liabilities,
		Recurring:    recurring,
		AsOf:         c.now(),
	}, nil
}

// NetWorth computes the balance-sheet aggregate for the snapshot
func (s *Snapshot) NetWorth() *NetWorthSummary {
	return NetWorth(s.Accounts, s.Liabilities)
}

// SafeToSpend computes the disposable-spend figure against the
// snapshot's reference instant
func (s *Snapshot) SafeToSpend(buffer float64) *SafeToSpendResult {
	return ComputeSafeToSpend(&SafeToSpendParams{
		Accounts:     s.Accounts,
		Transactions: s.Transactions,
		Recurring:    s.Recurring,
		Buffer:       buffer,
		Now:          s.AsOf,
	})
}

// DailySpend totals the snapshot's outflows for one calendar day
func (s *Snapshot) DailySpend(day time.Time) *DailySpend {
	return DailySpendOn(s.Transactions, day)
}

// MonthSeries produces the cumulative spend series for the month
// containing the snapshot's reference instant
func (s *Snapshot) MonthSeries() []*TrendPoint {
	return CumulativeMonthSeries(s.Transactions, s.AsOf, s.AsOf)
}

// WeekOverWeek compares the trailing week of spend against the week
// before it
func (s *Snapshot) WeekOverWeek() *WeekDelta {
	var series []*DailySpend
	for offset := 0; offset <= 14; offset++ {
		day := s.AsOf.AddDate(0, 0, -offset)
		series = append(series, DailySpendOn(s.Transactions, day))
	}
	return WeekOverWeekDelta(series, s.AsOf)
}
