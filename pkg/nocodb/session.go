package nocodb

import (
	"context"
)

type sessionKey struct{}

// NewContext returns a context carrying client as the active session. An
// inner NewContext shadows an outer one for the derived context only; the
// outer context keeps resolving the outer client, so nested sessions compose
// safely and separate goroutines with separate contexts are isolated.
func NewContext(ctx context.Context, client Client) context.Context {
	return context.WithValue(ctx, sessionKey{}, client)
}

// FromContext resolves the active session client, or ErrNoSession.
func FromContext(ctx context.Context) (Client, error) {
	client, ok := ctx.Value(sessionKey{}).(Client)
	if !ok || client == nil {
		return nil, ErrNoSession
	}

	return client, nil
}

// BasesFrom resolves the active session's bases client, or ErrNoSession.
func BasesFrom(ctx context.Context) (BasesClient, error) {
	client, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return client.Bases(), nil
}

// TablesFrom resolves the active session's tables client, or ErrNoSession.
func TablesFrom(ctx context.Context) (TablesClient, error) {
	client, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return client.Tables(), nil
}
