package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/hydrantlabs/nocodb-go/internal/http"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

func TestVerifyConnection_FirstSchemeWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/meta/bases", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("xc-token"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list": []}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, "test-token")
	check := verifyConnection(context.Background(), httpClient, "test-token")

	assert.True(t, check.Success)
	assert.Equal(t, "xc-token", check.AuthMethod)
	assert.Empty(t, check.LastError)
}

func TestVerifyConnection_FallsBackThroughSchemes(t *testing.T) {
	var seen []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Header.Get("xc-token") != "":
			seen = append(seen, "xc-token")
			w.WriteHeader(http.StatusUnauthorized)
		case r.Header.Get("Authorization") != "":
			seen = append(seen, "bearer")
			w.WriteHeader(http.StatusUnauthorized)
		case r.Header.Get("xc-auth") != "":
			seen = append(seen, "xc-auth")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"list": []}`))
		default:
			seen = append(seen, "other")
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, "test-token")
	check := verifyConnection(context.Background(), httpClient, "test-token")

	assert.True(t, check.Success)
	assert.Equal(t, "xc-auth", check.AuthMethod)
	assert.Equal(t, []string{"xc-token", "bearer", "xc-auth"}, seen)
}

func TestVerifyConnection_SuccessFlagInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, "test-token")
	check := verifyConnection(context.Background(), httpClient, "test-token")

	assert.True(t, check.Success)
	assert.Equal(t, "xc-token", check.AuthMethod)
}

func TestVerifyConnection_AllSchemesFail(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++

		// The last attempt's status must be the one diagnosed.
		if attempts < 4 {
			w.WriteHeader(http.StatusUnauthorized)
		} else {
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, "test-token")
	check := verifyConnection(context.Background(), httpClient, "test-token")

	assert.False(t, check.Success)
	assert.Equal(t, 4, attempts)
	assert.Contains(t, check.Message, "Forbidden")
	assert.Empty(t, check.AuthMethod)
}

func TestVerifyConnection_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	httpClient := internalhttp.NewClient(server.URL, "test-token")
	check := verifyConnection(context.Background(), httpClient, "test-token")

	assert.False(t, check.Success)
	assert.NotEmpty(t, check.LastError)
	assert.Contains(t, check.Message, "Connection Error")
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestConnectionErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		failure  *probeFailure
		expected string
	}{
		{
			name:     "nil failure",
			failure:  nil,
			expected: "Connection failed - All authentication methods failed",
		},
		{
			name:     "unauthorized",
			failure:  &probeFailure{status: 401},
			expected: "Unauthorized - API token is invalid or expired",
		},
		{
			name:     "forbidden",
			failure:  &probeFailure{status: 403},
			expected: "Forbidden - API token has no permission to access this resource",
		},
		{
			name:     "not found",
			failure:  &probeFailure{status: 404},
			expected: "Not Found - resource not found or base URL incorrect",
		},
		{
			name:     "server error",
			failure:  &probeFailure{status: 503},
			expected: "Server Error (503) - NocoDB instance returned an error",
		},
		{
			name:     "other status",
			failure:  &probeFailure{status: 418},
			expected: "Connection failed - HTTP 418",
		},
		{
			name:     "timeout text",
			failure:  &probeFailure{errText: "Timeout while connecting"},
			expected: "Connection Timeout - NocoDB instance did not respond in time",
		},
		{
			name:     "network text",
			failure:  &probeFailure{errText: "Network is unreachable"},
			expected: "Network Error - could not reach the NocoDB instance",
		},
		{
			name:     "generic text",
			failure:  &probeFailure{errText: "something odd"},
			expected: "Connection Error: something odd",
		},
		{
			name:     "empty failure",
			failure:  &probeFailure{},
			expected: "Connection failed - All authentication methods failed",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, connectionErrorMessage(testCase.failure))
		})
	}
}

func TestRecordFailure(t *testing.T) {
	t.Run("status from API error", func(t *testing.T) {
		failure := recordFailure(nil, nocodb.NewAPIError(404, "gone"))
		require.NotNil(t, failure)
		assert.Equal(t, 404, failure.status)
		assert.Empty(t, failure.errText)
	})

	t.Run("text from connection error", func(t *testing.T) {
		failure := recordFailure(nil, &nocodb.ConnectionError{
			Op:  "GET",
			URL: "https://h",
			Err: assert.AnError,
		})
		require.NotNil(t, failure)
		assert.Zero(t, failure.status)
		assert.Equal(t, assert.AnError.Error(), failure.errText)
	})

	t.Run("status from non-200 response", func(t *testing.T) {
		failure := recordFailure(&internalhttp.Response{StatusCode: 204}, nil)
		require.NotNil(t, failure)
		assert.Equal(t, 204, failure.status)
	})
}
