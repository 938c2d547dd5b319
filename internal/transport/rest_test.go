package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alexnham/sphere-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHTTPError_StatusMapping(t *testing.T) {
	transport := &RESTTransport{}

	tests := []struct {
		name       string
		statusCode int
		body       []byte
		wantErr    error
	}{
		{
			name:       "401 maps to not authenticated",
			statusCode: 401,
			wantErr:    types.ErrNotAuthenticated,
		},
		{
			name:       "403 maps to not authenticated",
			statusCode: 403,
			wantErr:    types.ErrNotAuthenticated,
		},
		{
			name:       "404 maps to not found",
			statusCode: 404,
			wantErr:    types.ErrNotFound,
		},
		{
			name:       "429 maps to rate limited",
			statusCode: 429,
			wantErr:    types.ErrRateLimited,
		},
		{
			name:       "504 maps to timeout",
			statusCode: 504,
			wantErr:    types.ErrTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transport.handleHTTPError(tt.statusCode, tt.body)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHandleHTTPError_ServerError_IncludesResponseBody(t *testing.T) {
	transport := &RESTTransport{}

	err := transport.handleHTTPError(500, []byte(`{"error": "Internal server error", "message": "Database connection failed"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Database connection failed")
	assert.ErrorIs(t, err, types.ErrServerError)
}

func TestRESTTransport_Get(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accounts": [{"id": "a1"}]}`))
	}))
	defer server.Close()

	transport := NewRESTTransport(&Options{BaseURL: server.URL})
	transport.SetAuth("test-token")

	query := url.Values{}
	query.Set("pending", "true")

	var result struct {
		Accounts []struct {
			ID string `json:"id"`
		} `json:"accounts"`
	}
	err := transport.Get(context.Background(), "/v1/accounts", query, &result)

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "/v1/accounts", gotPath)
	assert.Equal(t, "pending=true", gotQuery)
	require.Len(t, result.Accounts, 1)
	assert.Equal(t, "a1", result.Accounts[0].ID)
}

func TestRESTTransport_Get_RequiresAuth(t *testing.T) {
	transport := NewRESTTransport(nil)

	err := transport.Get(context.Background(), "/v1/accounts", nil, nil)

	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestRESTTransport_Get_ExpiredSession(t *testing.T) {
	transport := NewRESTTransport(nil)
	transport.SetSession(&types.Session{
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	})

	err := transport.Get(context.Background(), "/v1/accounts", nil, nil)

	assert.ErrorIs(t, err, types.ErrSessionExpired)
}
