package sphere

import (
	"context"

	"github.com/pkg/errors"
)

// liabilityService implements the LiabilityService interface
type liabilityService struct {
	client *Client
}

// List retrieves all tracked liabilities
func (s *liabilityService) List(ctx context.Context) ([]*Liability, error) {
	var result struct {
		Liabilities []*Liability `json:"liabilities"`
	}

	if err := s.client.get(ctx, "/v1/liabilities", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list liabilities")
	}

	return result.Liabilities, nil
}

// Get retrieves a single liability by ID
func (s *liabilityService) Get(ctx context.Context, liabilityID string) (*Liability, error) {
	var result struct {
		Liability *Liability `json:"liability"`
	}

	if err := s.client.get(ctx, "/v1/liabilities/"+liabilityID, nil, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to get liability %s", liabilityID)
	}

	if result.Liability == nil {
		return nil, ErrNotFound
	}

	return result.Liability, nil
}
