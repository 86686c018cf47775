package nococlient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
	"github.com/hydrantlabs/nocodb-go/pkg/nococlient"
)

func TestNew_ConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		config       *nocodb.Config
		missingField string
	}{
		{
			name:         "nil config",
			config:       nil,
			missingField: "base_url",
		},
		{
			name:         "missing base URL",
			config:       &nocodb.Config{APIToken: "tok"},
			missingField: "base_url",
		},
		{
			name:         "missing token",
			config:       &nocodb.Config{BaseURL: "https://h"},
			missingField: "api_token",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := nococlient.New(testCase.config)
			require.Error(t, err)

			configErr := &nocodb.ConfigError{}
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, testCase.missingField, configErr.Field)
		})
	}
}

func TestNew_TrailingSlashEquivalence(t *testing.T) {
	t.Parallel()

	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list": []}`))
	}))
	defer server.Close()

	for _, baseURL := range []string{server.URL, server.URL + "/"} {
		client, err := nococlient.NewWithToken(baseURL, "tok")
		require.NoError(t, err)

		_, err = client.Bases().List(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, paths, 2)
	assert.Equal(t, paths[0], paths[1])
}

func TestWithSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list": [{"id": "b1", "title": "One"}]}`))
	}))
	t.Cleanup(server.Close)

	cfg := &nocodb.Config{BaseURL: server.URL, APIToken: "tok"}

	t.Run("installs client for the block", func(t *testing.T) {
		t.Parallel()

		var inside nocodb.Client

		err := nococlient.WithSession(context.Background(), cfg, func(ctx context.Context) error {
			resolved, err := nocodb.FromContext(ctx)
			if err != nil {
				return err
			}

			inside = resolved

			bases, err := nocodb.BasesFrom(ctx)
			if err != nil {
				return err
			}

			all, err := bases.List(ctx)
			if err != nil {
				return err
			}

			assert.Len(t, all, 1)

			return nil
		})
		require.NoError(t, err)
		assert.NotNil(t, inside)
	})

	t.Run("parent context never sees the session", func(t *testing.T) {
		t.Parallel()

		parent := context.Background()

		err := nococlient.WithSession(parent, cfg, func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, err)

		_, err = nocodb.FromContext(parent)
		assert.ErrorIs(t, err, nocodb.ErrNoSession)
	})

	t.Run("block errors propagate", func(t *testing.T) {
		t.Parallel()

		blockErr := errors.New("boom")

		err := nococlient.WithSession(context.Background(), cfg, func(ctx context.Context) error {
			return blockErr
		})
		assert.ErrorIs(t, err, blockErr)
	})

	t.Run("config errors surface before the block runs", func(t *testing.T) {
		t.Parallel()

		ran := false

		err := nococlient.WithSession(context.Background(), &nocodb.Config{}, func(ctx context.Context) error {
			ran = true

			return nil
		})
		require.Error(t, err)
		assert.True(t, nocodb.IsConfig(err))
		assert.False(t, ran)
	})

	t.Run("nested sessions shadow and restore", func(t *testing.T) {
		t.Parallel()

		err := nococlient.WithSession(context.Background(), cfg, func(outerCtx context.Context) error {
			outer, err := nocodb.FromContext(outerCtx)
			require.NoError(t, err)

			err = nococlient.WithSession(outerCtx, cfg, func(innerCtx context.Context) error {
				inner, err := nocodb.FromContext(innerCtx)
				require.NoError(t, err)
				assert.NotSame(t, outer, inner)

				return nil
			})
			require.NoError(t, err)

			// Outer session still resolves after the inner one ended.
			resolved, err := nocodb.FromContext(outerCtx)
			require.NoError(t, err)
			assert.Same(t, outer, resolved)

			return nil
		})
		require.NoError(t, err)
	})
}

func TestVerifyConnection_ThroughPublicAPI(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("xc-token") == "good-token" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"list": []}`))

			return
		}

		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		client, err := nococlient.NewWithToken(server.URL, "good-token")
		require.NoError(t, err)

		check := client.VerifyConnection(context.Background())
		assert.True(t, check.Success)
		assert.Equal(t, "xc-token", check.AuthMethod)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		client, err := nococlient.NewWithToken(server.URL, "bad-token")
		require.NoError(t, err)

		check := client.VerifyConnection(context.Background())
		assert.False(t, check.Success)
		assert.Contains(t, check.Message, "Unauthorized")
	})
}
