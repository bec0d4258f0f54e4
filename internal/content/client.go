// Copyright (c) 2026 Folio. All rights reserved.
// Author: jon@theijon.online

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/theijon/folio/internal/platform/apperr"
)

// Client is the typed JSON transport to the content service.
//
// All calls resolve their URL through the configured [Resolver] using a
// server-side [Origin], carry a context, and map failures onto the three-way
// upstream taxonomy in [apperr]: Unreachable, UpstreamRejected, UpstreamDecode.
//
// The client performs no retries and no caching. Failures are terminal until
// the caller explicitly tries again, which keeps every editing operation a
// plain request/response pair.
type Client struct {
	httpClient *http.Client
	resolver   Resolver
	logger     *slog.Logger
}

// NewClient constructs a [Client] with the given resolver and request timeout.
func NewClient(resolver Resolver, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		resolver:   resolver,
		logger:     logger,
	}
}

// upstreamErrorBody is the error shape the content service returns on non-2xx.
// Both field spellings occur in the wild, so decode tolerates either.
type upstreamErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Get fetches and decodes a document at the given logical path.
func Get[T any](ctx context.Context, client *Client, path string) (T, error) {
	return do[T](ctx, client, http.MethodGet, path, nil)
}

// Post sends body to the given logical path and decodes the response.
// Used both for creating collection members and for replacing singletons.
func Post[T any](ctx context.Context, client *Client, path string, body any) (T, error) {
	return do[T](ctx, client, http.MethodPost, path, body)
}

// Put sends a full document replacement and decodes the response.
func Put[T any](ctx context.Context, client *Client, path string, body any) (T, error) {
	return do[T](ctx, client, http.MethodPut, path, body)
}

// Delete issues a delete for the given logical path. The response body is
// discarded; only the status matters.
func (client *Client) Delete(ctx context.Context, path string) error {
	response, err := client.send(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return rejection(response)
	}

	// Drain so the underlying connection can be reused.
	_, _ = io.Copy(io.Discard, response.Body)
	return nil
}

// Ping probes the content service for the readiness endpoint. Any response,
// even a rejection, proves the service is reachable.
func (client *Client) Ping(ctx context.Context) error {
	response, err := client.send(ctx, http.MethodGet, "/hero", nil)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()
	_, _ = io.Copy(io.Discard, response.Body)
	return nil
}

// do executes a request and decodes a typed response body.
func do[T any](ctx context.Context, client *Client, method, path string, body any) (T, error) {
	var zero T

	response, err := client.send(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return zero, rejection(response)
	}

	var decoded T
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return zero, apperr.UpstreamDecode(fmt.Errorf("content: decoding %s %s: %w", method, path, err))
	}

	return decoded, nil
}

// send resolves, encodes, and executes one HTTP exchange.
func (client *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	url := client.resolver.Resolve(path, Origin{ServerSide: true})

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("content: encoding %s %s: %w", method, path, err))
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("content: building %s %s: %w", method, path, err))
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Warn("content_request_failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, apperr.Unreachable(err)
	}

	return response, nil
}

// rejection converts a non-2xx upstream response into an [apperr.AppError],
// surfacing the upstream's human-readable message verbatim when present.
func rejection(response *http.Response) error {
	var payload upstreamErrorBody
	_ = json.NewDecoder(io.LimitReader(response.Body, 4096)).Decode(&payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	return apperr.UpstreamRejected(response.StatusCode, message)
}
