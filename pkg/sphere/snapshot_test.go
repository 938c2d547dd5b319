package sphere

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_Snapshot(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get", mock.Anything, "/v1/accounts", mock.Anything, mock.Anything).Return(`{
		"accounts": [
			{"id": "a1", "type": "checking", "availableBalance": 900, "currentBalance": 1000},
			{"id": "a2", "type": "savings", "availableBalance": 4000, "currentBalance": 4000}
		]
	}`, nil)
	mockTransport.On("Get", mock.Anything, "/v1/transactions", mock.Anything, mock.Anything).Return(`{
		"transactions": [
			{"id": "t1", "date": "2025-08-15T09:00:00Z", "amount": -25, "category": "Food", "pending": true},
			{"id": "t2", "date": "2025-08-14T10:00:00Z", "amount": -60, "category": "Fuel"}
		]
	}`, nil)
	mockTransport.On("Get", mock.Anything, "/v1/liabilities", mock.Anything, mock.Anything).Return(`{
		"liabilities": [
			{"id": "l1", "type": "credit_card", "currentBalance": 1200}
		]
	}`, nil)
	mockTransport.On("Get", mock.Anything, "/v1/recurring", mock.Anything, mock.Anything).Return(`{
		"recurringCharges": [
			{"id": "r1", "merchant": "Netflix", "cadence": "monthly", "nextDate": "2025-08-18", "avgAmount": 15.99}
		]
	}`, nil)

	snapshot, err := client.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC), snapshot.AsOf)

	// Derived views come straight off the one consistent read
	nw := snapshot.NetWorth()
	assert.InDelta(t, 5000, nw.Assets, 0.001)
	assert.InDelta(t, 1200, nw.Liabilities, 0.001)
	assert.InDelta(t, 3800, nw.NetWorth, 0.001)

	sts := snapshot.SafeToSpend(DefaultSafetyBuffer)
	assert.InDelta(t, 900, sts.LiquidAvailable, 0.001)
	assert.InDelta(t, 25, sts.PendingOutflows, 0.001)
	assert.InDelta(t, 15.99, sts.UpcomingEssentials, 0.001)
	assert.InDelta(t, 900-25-15.99-200, sts.Amount, 0.001)

	spend := snapshot.DailySpend(snapshot.AsOf)
	assert.InDelta(t, 25, spend.TotalSpend, 0.001)

	series := snapshot.MonthSeries()
	require.Len(t, series, 15)
	assert.InDelta(t, 85, series[len(series)-1].CumulativeSpend, 0.001)

	wow := snapshot.WeekOverWeek()
	assert.InDelta(t, 85, wow.ThisWeekTotal, 0.001)
	assert.Equal(t, 0.0, wow.PercentChange)

	mockTransport.AssertExpectations(t)
}

func TestClient_Snapshot_PropagatesFetchError(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get", mock.Anything, "/v1/accounts", mock.Anything, mock.Anything).Return(nil, ErrNotAuthenticated)

	_, err := client.Snapshot(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
