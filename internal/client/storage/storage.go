// Package storage provides the client's durable key-value store, the
// terminal-app counterpart of the browser localStorage the backend's web
// client relies on. State written here survives process restarts.
//
// Exactly two keys are reserved by the rest of the client:
//
//   - KeyAuthToken: the bare bearer token, read independently by the
//     HTTP transport on every request.
//   - KeySession: the session store's versioned JSON envelope.
package storage

import "context"

const (
	// KeyAuthToken holds the bare bearer token.
	KeyAuthToken = "authToken"
	// KeySession holds the serialized session envelope.
	KeySession = "auth-storage"
)

// Repository is a durable string-keyed blob store.
//
// Contract:
//   - Get returns (nil, nil) when the key does not exist.
//   - Set upserts.
//   - Delete of a missing key is a no-op, not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
