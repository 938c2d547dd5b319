package sphere

import (
	"time"
)

// AccountType classifies a linked account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeLoan       AccountType = "loan"
)

// Account represents a linked financial account
type Account struct {
	ID               string      `json:"id"`
	InstitutionName  string      `json:"institutionName"`
	Type             AccountType `json:"type"`
	DisplayName      string      `json:"displayName"`
	AvailableBalance float64     `json:"availableBalance"`
	CurrentBalance   float64     `json:"currentBalance"`
	CurrencyCode     string      `json:"currencyCode"`
	LastSyncedAt     time.Time   `json:"lastSyncedAt"`
}

// Transaction represents a single posted or pending transaction.
// Amount is signed: negative is an outflow, positive an inflow.
type Transaction struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	Date           time.Time `json:"date"`
	Amount         float64   `json:"amount"`
	Merchant       string    `json:"merchant"`
	Category       string    `json:"category"`
	Pending        bool      `json:"pending"`
	PaymentChannel string    `json:"paymentChannel"`
}

// LiabilityType classifies a tracked debt
type LiabilityType string

const (
	LiabilityTypeCreditCard LiabilityType = "credit_card"
	LiabilityTypeLoan       LiabilityType = "loan"
	LiabilityTypeBNPL       LiabilityType = "bnpl"
	LiabilityTypeMortgage   LiabilityType = "mortgage"
)

// LiabilityStatus describes how close a liability is to its due date
type LiabilityStatus string

const (
	LiabilityStatusCurrent LiabilityStatus = "current"
	LiabilityStatusDueSoon LiabilityStatus = "due_soon"
	LiabilityStatusOverdue LiabilityStatus = "overdue"
)

// Liability represents a tracked debt. Optional fields are pointers;
// a nil APR means the lender does not report one and financing-cost
// calculations are not applicable.
type Liability struct {
	ID               string          `json:"id"`
	LenderName       string          `json:"lenderName"`
	Type             LiabilityType   `json:"type"`
	CurrentBalance   float64         `json:"currentBalance"`
	StatementBalance *float64        `json:"statementBalance,omitempty"`
	MinimumPayment   *float64        `json:"minimumPayment,omitempty"`
	DueDate          *Date           `json:"dueDate,omitempty"`
	APR              *float64        `json:"apr,omitempty"`
	LateFee          *float64        `json:"lateFee,omitempty"`
	Status           LiabilityStatus `json:"status"`
}

// Cadence is the repeat interval of a recurring charge
type Cadence string

const (
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
	CadenceYearly   Cadence = "yearly"
)

// RecurringCharge represents a detected subscription or recurring bill
type RecurringCharge struct {
	ID        string  `json:"id"`
	Merchant  string  `json:"merchant"`
	Cadence   Cadence `json:"cadence"`
	NextDate  Date    `json:"nextDate"`
	AvgAmount float64 `json:"avgAmount"`
	Category  string  `json:"category"`
}

// NetWorthSummary is the aggregate balance-sheet view
type NetWorthSummary struct {
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	NetWorth    float64 `json:"netWorth"`
}

// DailySpend is one day's outflow total with a per-category breakdown.
// The sum of ByCategory equals TotalSpend within floating-point tolerance.
type DailySpend struct {
	Date       time.Time          `json:"date"`
	TotalSpend float64            `json:"totalSpend"`
	ByCategory map[string]float64 `json:"byCategory"`
}

// SafeToSpendResult carries the clamped safe-to-spend figure plus the
// four unclamped contributing terms so a caller can show why the figure
// reached zero.
type SafeToSpendResult struct {
	Amount             float64 `json:"amount"`
	LiquidAvailable    float64 `json:"liquidAvailable"`
	PendingOutflows    float64 `json:"pendingOutflows"`
	UpcomingEssentials float64 `json:"upcomingEssentials"`
	Buffer             float64 `json:"buffer"`
}

// PayoffResult is the outcome of a payoff projection. When Never is set
// the payment can not retire the balance and Months/TotalInterest are
// meaningless.
type PayoffResult struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
	Never         bool    `json:"never"`
}

// WaitingCost is the marginal cost of delaying a liability payment
type WaitingCost struct {
	Interest float64 `json:"interest"`
	LateFee  float64 `json:"lateFee"`
	Total    float64 `json:"total"`
}

// TrendPoint is one day of a cumulative spend series
type TrendPoint struct {
	Day             time.Time `json:"day"`
	DailySpend      float64   `json:"dailySpend"`
	CumulativeSpend float64   `json:"cumulativeSpend"`
}

// WeekDelta compares this week's spend against last week's
type WeekDelta struct {
	ThisWeekTotal float64 `json:"thisWeekTotal"`
	LastWeekTotal float64 `json:"lastWeekTotal"`
	PercentChange float64 `json:"percentChange"`
}
