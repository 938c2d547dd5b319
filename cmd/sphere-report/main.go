// Command sphere-report renders a dashboard report — net worth,
// safe-to-spend, debt payoff projections, and the spend trend — from
// either synthetic data or a live backend snapshot.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alexnham/sphere-engine/internal/synth"
	"github.com/alexnham/sphere-engine/pkg/sphere"
)

// ReportConfig holds configuration for the report
type ReportConfig struct {
	Seed    int64
	Buffer  float64
	Payment float64
	BaseURL string
	Token   string
	JSON    bool
}

// PayoffLine is one liability's projection in the report
type PayoffLine struct {
	Lender        string   `json:"lender"`
	Balance       float64  `json:"balance"`
	Payment       float64  `json:"payment"`
	Months        *int     `json:"months,omitempty"`
	TotalInterest *float64 `json:"totalInterest,omitempty"`
	Never         bool     `json:"never"`
}

// DashboardReport is the full report payload
type DashboardReport struct {
	AsOf        time.Time                 `json:"asOf"`
	NetWorth    *sphere.NetWorthSummary   `json:"netWorth"`
	SafeToSpend *sphere.SafeToSpendResult `json:"safeToSpend"`
	Payoffs     []PayoffLine              `json:"payoffs"`
	WeekDelta   *sphere.WeekDelta         `json:"weekDelta"`
	Direction   sphere.SpendDirection     `json:"direction"`
}

func main() {
	config := parseFlags()

	snapshot, err := loadSnapshot(config)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	report := buildReport(snapshot, config)

	if config.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
		return
	}

	printReport(report)
}

func parseFlags() *ReportConfig {
	config := &ReportConfig{}

	flag.Int64Var(&config.Seed, "seed", 1, "Seed for synthetic data")
	flag.Float64Var(&config.Buffer, "buffer", sphere.DefaultSafetyBuffer, "Safety buffer held back from safe-to-spend")
	flag.Float64Var(&config.Payment, "payment", 0, "Monthly payment for payoff projections (0 uses each liability's minimum)")
	flag.StringVar(&config.BaseURL, "base-url", "", "Backend base URL (omit for synthetic data)")
	flag.StringVar(&config.Token, "token", os.Getenv("SPHERE_TOKEN"), "Backend auth token")
	flag.BoolVar(&config.JSON, "json", false, "Emit the report as JSON")
	flag.Parse()

	return config
}

// loadSnapshot fetches from the backend when configured, otherwise
// generates a synthetic snapshot.
func loadSnapshot(config *ReportConfig) (*sphere.Snapshot, error) {
	if config.BaseURL == "" {
		return synth.New(config.Seed, time.Now()).Snapshot(), nil
	}

	client, err := sphere.NewClient(&sphere.ClientOptions{
		BaseURL: config.BaseURL,
		Token:   config.Token,
	})
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.Snapshot(context.Background())
}

func buildReport(snapshot *sphere.Snapshot, config *ReportConfig) *DashboardReport {
	report := &DashboardReport{
		AsOf:        snapshot.AsOf,
		NetWorth:    snapshot.NetWorth(),
		SafeToSpend: snapshot.SafeToSpend(config.Buffer),
		WeekDelta:   snapshot.WeekOverWeek(),
		Direction:   sphere.TrendDirection(snapshot.MonthSeries()),
	}

	for _, l := range snapshot.Liabilities {
		if l.APR == nil {
			continue
		}

		payment := config.Payment
		if payment == 0 && l.MinimumPayment != nil {
			payment = *l.MinimumPayment
		}

		line := PayoffLine{
			Lender:  l.LenderName,
			Balance: l.CurrentBalance,
			Payment: payment,
		}

		result := sphere.ProjectPayoff(l.CurrentBalance, *l.APR, payment)
		if result.Never {
			line.Never = true
		} else {
			line.Months = &result.Months
			line.TotalInterest = &result.TotalInterest
		}

		report.Payoffs = append(report.Payoffs, line)
	}

	return report
}

func printReport(report *DashboardReport) {
	fmt.Printf("Sphere dashboard — as of %s\n\n", report.AsOf.Format("2006-01-02 15:04"))

	fmt.Println("Net worth")
	fmt.Printf("  Assets:      $%.2f\n", report.NetWorth.Assets)
	fmt.Printf("  Liabilities: $%.2f\n", report.NetWorth.Liabilities)
	fmt.Printf("  Net worth:   $%.2f\n\n", report.NetWorth.NetWorth)

	sts := report.SafeToSpend
	fmt.Println("Safe to spend")
	fmt.Printf("  Liquid available:    $%.2f\n", sts.LiquidAvailable)
	fmt.Printf("  Pending outflows:   -$%.2f\n", sts.PendingOutflows)
	fmt.Printf("  Upcoming (7 days):  -$%.2f\n", sts.UpcomingEssentials)
	fmt.Printf("  Buffer:             -$%.2f\n", sts.Buffer)
	fmt.Printf("  Safe to spend:       $%.2f\n\n", sts.Amount)

	if len(report.Payoffs) > 0 {
		fmt.Println("Debt payoff")
		for _, p := range report.Payoffs {
			if p.Never {
				fmt.Printf("  %s: $%.2f at $%.2f/mo — never pays off\n", p.Lender, p.Balance, p.Payment)
				continue
			}
			fmt.Printf("  %s: $%.2f at $%.2f/mo — %d months, $%.2f interest\n",
				p.Lender, p.Balance, p.Payment, *p.Months, *p.TotalInterest)
		}
		fmt.Println()
	}

	fmt.Println("Spend trend")
	fmt.Printf("  This week: $%.2f\n", report.WeekDelta.ThisWeekTotal)
	fmt.Printf("  Last week: $%.2f\n", report.WeekDelta.LastWeekTotal)
	fmt.Printf("  Change:    %.1f%%\n", report.WeekDelta.PercentChange)
	fmt.Printf("  Direction: %s\n", report.Direction)
}
