// Package remote implements the REST client for the user backend and owns
// error classification: transport failures map to ErrUnavailable, non-2xx
// responses to *APIError.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Client describes the CRUD operations the backend exposes.
type Client interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, fields models.Fields) (*models.User, error)
	Update(ctx context.Context, id string, fields models.Fields) (*models.User, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// HTTPClient talks to the backend over HTTP/JSON. One call per operation,
// no retries; the transport timeout is the only timeout applied.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type listResponse struct {
	Data []models.User `json:"data"`
}

type userResponse struct {
	Data models.User `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) List(ctx context.Context) ([]models.User, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) Create(ctx context.Context, fields models.Fields) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPost, "/users", fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) Update(ctx context.Context, id string, fields models.Fields) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), fields, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// do issues a single request and decodes the {data:...} envelope into out.
// A nil out discards the response body (delete has none to speak of).
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.mapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.Unmarshal(raw, &er)
		msg := er.Message
		if msg == "" {
			msg = "request failed"
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// mapError classifies transport failures. A context cancelled by the caller
// propagates as-is; everything else the transport can produce (DNS,
// connection refused, timeout) means the server is unreachable.
func (c *HTTPClient) mapError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
