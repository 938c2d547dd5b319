package sphere

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// List retrieves transactions matching params, newest first
func (s *transactionService) List(ctx context.Context, params *TransactionListParams) ([]*Transaction, error) {
	query := url.Values{}
	if params != nil {
		if params.AccountID != "" {
			query.Set("accountId", params.AccountID)
		}
		if params.StartDate != nil {
			query.Set("startDate", params.StartDate.Format("2006-01-02"))
		}
		if params.EndDate != nil {
			query.Set("endDate", params.EndDate.Format("2006-01-02"))
		}
		if params.Category != "" {
			query.Set("category", params.Category)
		}
		if params.Limit > 0 {
			query.Set("limit", strconv.Itoa(params.Limit))
		}
	}

	var result struct {
		Transactions []*Transaction `json:"transactions"`
	}

	if err := s.client.get(ctx, "/v1/transactions", query, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return result.Transactions, nil
}

// Get retrieves a single transaction
func (s *transactionService) Get(ctx context.Context, transactionID string) (*Transaction, error) {
	var result struct {
		Transaction *Transaction `json:"transaction"`
	}

	if err := s.client.get(ctx, "/v1/transactions/"+transactionID, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to get transaction %s", transactionID)
	}

	if result.Transaction == nil {
		return nil, ErrNotFound
	}

	return result.Transaction, nil
}

// ListPending retrieves pending transactions only
func (s *transactionService) ListPending(ctx context.Context) ([]*Transaction, error) {
	query := url.Values{}
	query.Set("pending", "true")

	var result struct {
		Transactions []*Transaction `json:"transactions"`
	}

	if err := s.client.get(ctx, "/v1/transactions", query, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list pending transactions")
	}

	return result.Transactions, nil
}
