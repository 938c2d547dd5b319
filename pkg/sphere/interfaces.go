package sphere

import (
	"context"
	"time"
)

// AccountService handles account retrieval
type AccountService interface {
	// List retrieves all linked accounts
	List(ctx context.Context) ([]*Account, error)

	// Get retrieves a single account by ID
	Get(ctx context.Context, accountID string) (*Account, error)
}

// TransactionService handles transaction retrieval
type TransactionService interface {
	// List retrieves transactions, newest first
	List(ctx context.Context, params *TransactionListParams) ([]*Transaction, error)

	// Get retrieves a single transaction
	Get(ctx context.Context, transactionID string) (*Transaction, error)

	// ListPending retrieves pending transactions only
	ListPending(ctx context.Context) ([]*Transaction, error)
}

// LiabilityService handles liability retrieval
type LiabilityService interface {
	// List retrieves all tracked liabilities
	List(ctx context.Context) ([]*Liability, error)

	// Get retrieves a single liability by ID
	Get(ctx context.Context, liabilityID string) (*Liability, error)
}

// RecurringService handles recurring charge retrieval
type RecurringService interface {
	// List retrieves all detected recurring charges
	List(ctx context.Context) ([]*RecurringCharge, error)

	// ListUpcoming retrieves charges with a next occurrence inside the
	// given date range
	ListUpcoming(ctx context.Context, startDate, endDate time.Time) ([]*RecurringCharge, error)
}

// TransactionListParams filters a transaction listing
type TransactionListParams struct {
	AccountID string
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Limit     int
}
