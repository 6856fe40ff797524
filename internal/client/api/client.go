// Package api is the typed HTTP client for the POV-Review backend: a thin
// adapter over net/http that attaches the bearer credential to every
// outbound request, plus one method group per backend resource (auth,
// movies, reviews, users).
//
// The adapter never retries and never recovers: every non-2xx response
// surfaces as an *Error carrying the backend's status and message, and
// transport failures surface as ErrUnavailable.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/povreview/povcli/internal/logging"
)

// Client is the backend API client. It is stateless apart from the
// credential store it reads tokens from; it is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore
	log     logging.Logger
}

// New builds a Client against baseURL. The credential store backs both the
// request interceptor (reads) and the auth operations (writes). A trailing
// slash is added to baseURL if missing, so resource paths stay relative.
func New(baseURL string, creds CredentialStore, timeout time.Duration, log logging.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: http.DefaultTransport, tokens: creds},
		},
		creds: creds,
		log:   log,
	}
}

// do performs one HTTP exchange: marshal body (if any), issue the request,
// map non-2xx to *Error, decode the response body into out (if any).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api call", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: parseErrorMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
