package sphere

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	internalTypes "github.com/alexnham/sphere-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport is a mock implementation of the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, path string, query url.Values, result interface{}) error {
	args := m.Called(ctx, path, query, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil {
		resultJSON := args.Get(0).(string)
		if err := json.Unmarshal([]byte(resultJSON), result); err != nil {
			return err
		}
	}

	return args.Error(1)
}

func (m *MockTransport) SetAuth(token string) {
	m.Called(token)
}

func (m *MockTransport) SetSession(session *internalTypes.Session) {
	m.Called(session)
}

// newTestClient wires a client onto a mock transport with a fixed clock
func newTestClient(t *MockTransport) *Client {
	client := &Client{
		transport: t,
		options:   &ClientOptions{},
		baseURL:   "https://api.test.com",
		now: func() time.Time {
			return time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
		},
	}
	client.initServices()
	return client
}

func TestAccountService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"accounts": [
			{
				"id": "acc-123",
				"institutionName": "First National",
				"type": "checking",
				"displayName": "Everyday Checking",
				"availableBalance": 1435.20,
				"currentBalance": 1500.50,
				"currencyCode": "USD"
			},
			{
				"id": "acc-456",
				"institutionName": "First National",
				"type": "savings",
				"displayName": "Rainy Day",
				"availableBalance": 8000,
				"currentBalance": 8000,
				"currencyCode": "USD"
			}
		]
	}`

	mockTransport.On("Get", mock.Anything, "/v1/accounts", mock.Anything, mock.Anything).Return(mockResponse, nil)

	accounts, err := client.Accounts.List(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "acc-123", accounts[0].ID)
	assert.Equal(t, AccountTypeChecking, accounts[0].Type)
	assert.Equal(t, 1435.20, accounts[0].AvailableBalance)
	assert.Equal(t, 1500.50, accounts[0].CurrentBalance)
	assert.Equal(t, AccountTypeSavings, accounts[1].Type)

	mockTransport.AssertExpectations(t)
}

func TestAccountService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"account": {
			"id": "acc-123",
			"type": "checking",
			"displayName": "Everyday Checking",
			"currentBalance": 1500.50
		}
	}`

	mockTransport.On("Get", mock.Anything, "/v1/accounts/acc-123", mock.Anything, mock.Anything).Return(mockResponse, nil)

	account, err := client.Accounts.Get(context.Background(), "acc-123")

	require.NoError(t, err)
	assert.Equal(t, "acc-123", account.ID)
	assert.Equal(t, "Everyday Checking", account.DisplayName)

	mockTransport.AssertExpectations(t)
}

func TestAccountService_Get_NotFound(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Get", mock.Anything, "/v1/accounts/missing", mock.Anything, mock.Anything).Return(`{"account": null}`, nil)

	_, err := client.Accounts.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
