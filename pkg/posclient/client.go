// Package posclient is the front-desk side of the POS API: it fetches the
// resource collections and derives the filtered, sorted and paginated views
// shown to staff.
package posclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New targets an API mounted at baseURL, e.g. http://localhost:3000/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is any non-2xx answer from the API.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Resource is one CRUD collection of the API, such as /customers.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](c *Client, path string) Resource[T] {
	return Resource[T]{client: c, path: "/" + strings.Trim(path, "/")}
}

func (r Resource[T]) item(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var row T
	if err := r.client.do(ctx, http.MethodGet, r.item(id), nil, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Create returns the identifier assigned by the server.
func (r Resource[T]) Create(ctx context.Context, row T) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := r.client.do(ctx, http.MethodPost, r.path, row, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (r Resource[T]) Update(ctx context.Context, id string, row T) error {
	return r.client.do(ctx, http.MethodPut, r.item(id), row, nil)
}

func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.item(id), nil, nil)
}
