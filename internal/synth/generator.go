// Package synth generates deterministic synthetic financial data for
// demos and the report CLI. The same seed and reference instant always
// produce the same entity set, identifiers included.
package synth

import (
	"math/rand"
	"time"

	"github.com/alexnham/sphere-engine/pkg/sphere"
	"github.com/google/uuid"
)

var merchants = []struct {
	name     string
	category string
	min, max float64
}{
	{"Whole Foods", "Groceries", 18, 140},
	{"Trader Joe's", "Groceries", 12, 90},
	{"Shell", "Transport", 25, 70},
	{"Uber", "Transport", 8, 45},
	{"Blue Bottle", "Coffee", 4, 14},
	{"Chipotle", "Dining", 9, 28},
	{"Amazon", "Shopping", 10, 180},
	{"Target", "Shopping", 15, 120},
	{"AMC Theatres", "Entertainment", 12, 48},
}

// Generator produces synthetic entity sets from a seeded source
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a generator for the given seed and reference instant
func New(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// id draws a UUID from the generator's own randomness so identifiers
// are reproducible across runs.
func (g *Generator) id() string {
	u, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand's Read never fails
		panic(err)
	}
	return u.String()
}

// Accounts returns a small realistic account mix: two checking, one
// savings, one investment.
func (g *Generator) Accounts() []*sphere.Account {
	build := func(name, institution string, typ sphere.AccountType, balance float64) *sphere.Account {
		// Available lags current by a small hold amount on checking
		available := balance
		if typ == sphere.AccountTypeChecking {
			available -= float64(g.rng.Intn(80))
		}
		return &sphere.Account{
			ID:               g.id(),
			InstitutionName:  institution,
			Type:             typ,
			DisplayName:      name,
			AvailableBalance: available,
			CurrentBalance:   balance,
			CurrencyCode:     "USD",
			LastSyncedAt:     g.now,
		}
	}

	return []*sphere.Account{
		build("Everyday Checking", "First National", sphere.AccountTypeChecking, 1200+g.rng.Float64()*1800),
		build("Joint Checking", "First National", sphere.AccountTypeChecking, 400+g.rng.Float64()*900),
		build("Rainy Day", "First National", sphere.AccountTypeSavings, 5000+g.rng.Float64()*10000),
		build("Index Funds", "Vanguard", sphere.AccountTypeInvestment, 15000+g.rng.Float64()*40000),
	}
}

// Transactions returns a spread of outflows over the trailing days
// window plus a biweekly payroll inflow, newest first.
func (g *Generator) Transactions(accounts []*sphere.Account, days int) []*sphere.Transaction {
	var checkingID string
	for _, a := range accounts {
		if a.Type == sphere.AccountTypeChecking {
			checkingID = a.ID
			break
		}
	}

	var txns []*sphere.Transaction
	for offset := 0; offset < days; offset++ {
		day := g.now.AddDate(0, 0, -offset)

		// 1-4 purchases per day
		for i := 0; i < 1+g.rng.Intn(4); i++ {
			m := merchants[g.rng.Intn(len(merchants))]
			amount := m.min + g.rng.Float64()*(m.max-m.min)
			txns = append(txns, &sphere.Transaction{
				ID:             g.id(),
				AccountID:      checkingID,
				Date:           day.Add(-time.Duration(g.rng.Intn(12)) * time.Hour),
				Amount:         -round2(amount),
				Merchant:       m.name,
				Category:       m.category,
				Pending:        offset == 0 && g.rng.Intn(3) == 0,
				PaymentChannel: "in_store",
			})
		}

		// Payroll every 14 days
		if offset%14 == 1 {
			txns = append(txns, &sphere.Transaction{
				ID:             g.id(),
				AccountID:      checkingID,
				Date:           day,
				Amount:         2150,
				Merchant:       "Acme Corp Payroll",
				Category:       "Income",
				PaymentChannel: "ach",
			})
		}
	}

	return txns
}

// Liabilities returns a credit card with a full financing profile and a
// BNPL balance with no APR, so both cost-of-waiting branches appear in
// demos.
func (g *Generator) Liabilities() []*sphere.Liability {
	apr := 19.99 + g.rng.Float64()*10
	minPayment := 35.0
	lateFee := 35.0
	statement := 800 + g.rng.Float64()*2500
	due := sphere.NewDate(g.now.AddDate(0, 0, 5+g.rng.Intn(20)))

	return []*sphere.Liability{
		{
			ID:               g.id(),
			LenderName:       "Visa Platinum",
			Type:             sphere.LiabilityTypeCreditCard,
			CurrentBalance:   round2(statement * (1 + g.rng.Float64()*0.3)),
			StatementBalance: &statement,
			MinimumPayment:   &minPayment,
			DueDate:          &due,
			APR:              &apr,
			LateFee:          &lateFee,
			Status:           sphere.LiabilityStatusDueSoon,
		},
		{
			ID:             g.id(),
			LenderName:     "AfterPay",
			Type:           sphere.LiabilityTypeBNPL,
			CurrentBalance: round2(60 + g.rng.Float64()*240),
			Status:         sphere.LiabilityStatusCurrent,
		},
	}
}

// RecurringCharges returns a subscription set with next occurrences
// both inside and outside the seven-day essentials window.
func (g *Generator) RecurringCharges() []*sphere.RecurringCharge {
	charges := []struct {
		merchant string
		cadence  sphere.Cadence
		amount   float64
		category string
		inDays   int
	}{
		{"Netflix", sphere.CadenceMonthly, 15.99, "Entertainment", 3},
		{"Spotify", sphere.CadenceMonthly, 11.99, "Entertainment", 6},
		{"City Power & Light", sphere.CadenceMonthly, 120, "Utilities", 5},
		{"State Farm", sphere.CadenceMonthly, 160, "Insurance", 12},
		{"Planet Fitness", sphere.CadenceMonthly, 24.99, "Health", 19},
		{"Amazon Prime", sphere.CadenceYearly, 139, "Shopping", 90},
	}

	var out []*sphere.RecurringCharge
	for _, c := range charges {
		out = append(out, &sphere.RecurringCharge{
			ID:        g.id(),
			Merchant:  c.merchant,
			Cadence:   c.cadence,
			NextDate:  sphere.NewDate(g.now.AddDate(0, 0, c.inDays)),
			AvgAmount: c.amount,
			Category:  c.category,
		})
	}
	return out
}

// Snapshot bundles a full synthetic entity set stamped with the
// generator's reference instant.
func (g *Generator) Snapshot() *sphere.Snapshot {
	accounts := g.Accounts()
	return &sphere.Snapshot{
		Accounts:     accounts,
		Transactions: g.Transactions(accounts, 30),
		Liabilities:  g.Liabilities(),
		Recurring:    g.RecurringCharges(),
		AsOf:         g.now,
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
