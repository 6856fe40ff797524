package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/povreview/povcli/internal/client/storage"
)

// TokenSource yields the current bearer token, or "" when the client is
// not authenticated. Reads happen at request time, so a token written
// between two requests is picked up by the second one.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// CredentialStore extends TokenSource with the writes the auth service
// performs on login/logout. The durable store is the single source of
// truth; nothing caches the token in memory.
type CredentialStore interface {
	TokenSource
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// storageCredentials is a CredentialStore over the durable kv repository,
// using the reserved bare-token key.
type storageCredentials struct {
	repo storage.Repository
}

// NewStorageCredentials binds a CredentialStore to the durable storage.
func NewStorageCredentials(repo storage.Repository) CredentialStore {
	return &storageCredentials{repo: repo}
}

func (s *storageCredentials) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, storage.KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *storageCredentials) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, storage.KeyAuthToken, []byte(token))
}

func (s *storageCredentials) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, storage.KeyAuthToken)
}

// AttachAuth injects the bearer credential into req.
//
// Contract: the same *http.Request it was given is returned, mutated in
// place; callers may rely on referential identity. When the source has no
// token (or fails to read one), the request is returned untouched.
func AttachAuth(req *http.Request, tokens TokenSource) *http.Request {
	token, err := tokens.Token(req.Context())
	if err != nil || token == "" {
		return req
	}
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// authTransport decorates a RoundTripper with credential injection and a
// per-request id. Responses and errors pass through unchanged: no retries,
// no recovery. Error translation belongs to the resource services.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

// RoundTrip must not mutate the caller's request, so the credential and
// request id go onto a clone.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	AttachAuth(clone, t.tokens)
	if clone.Header.Get("X-Request-Id") == "" {
		clone.Header.Set("X-Request-Id", uuid.NewString())
	}
	return t.base.RoundTrip(clone)
}
