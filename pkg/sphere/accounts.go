package sphere

import (
	"context"

	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves all linked accounts
func (s *accountService) List(ctx context.Context) ([]*Account, error) {
	var result struct {
		Accounts []*Account `json:"accounts"`
	}

	if err := s.client.get(ctx, "/v1/accounts", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return result.Accounts, nil
}

// Get retrieves a single account by ID
func (s *accountService) Get(ctx context.Context, accountID string) (*Account, error) {
	var result struct {
		Account *Account `json:"account"`
	}

	if err := s.client.get(ctx, "/v1/accounts/"+accountID, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to get account %s", accountID)
	}

	if result.Account == nil {
		return nil, ErrNotFound
	}

	return result.Account, nil
}
