package sphere

import (
	"context"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// recurringService implements the RecurringService interface
type recurringService struct {
	client *Client
}

// List retrieves all detected recurring charges
func (s *recurringService) List(ctx context.Context) ([]*RecurringCharge, error) {
	var result struct {
		RecurringCharges []*RecurringCharge `json:"recurringCharges"`
	}

	if err := s.client.get(ctx, "/v1/recurring", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list recurring charges")
	}

	return result.RecurringCharges, nil
}

// ListUpcoming retrieves charges with a next occurrence inside the range
func (s *recurringService) ListUpcoming(ctx context.Context, startDate, endDate time.Time) ([]*RecurringCharge, error) {
	query := url.Values{}
	query.Set("startDate", startDate.Format("2006-01-02"))
	query.Set("endDate", endDate.Format("2006-01-02"))

	var result struct {
		RecurringCharges []*RecurringCharge `json:"recurringCharges"`
	}

	if err := s.client.get(ctx, "/v1/recurring", query, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming recurring charges")
	}

	return result.RecurringCharges, nil
}
