// Package clickup is a client for the ClickUp v2 REST API. Responses are
// decoded into the records of package model.
package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/roksva123/go-clickup/model"
)

const DefaultBaseURL = "https://api.clickup.com/api/v2/"

// Client issues authenticated requests to ClickUp. It holds no mutable state
// and may be shared between goroutines.
type Client struct {
	Token   string
	BaseURL string
	HTTP    *http.Client

	// Logger receives one line per request when set.
	Logger *log.Logger
}

// NewClient creates a client for a personal API token or OAuth access token.
func NewClient(token string) *Client {
	return &Client{
		Token:   token,
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 20 * time.Second},
	}
}

// Millis renders t as the millisecond epoch ClickUp expects in request bodies.
func Millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}

func (c *Client) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// path joins escaped segments into a request path, e.g. path("task", id, "comment").
func path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

func (c *Client) get(ctx context.Context, p string, query url.Values) (map[string]any, error) {
	return c.doRequest(ctx, http.MethodGet, p, query, nil)
}

func (c *Client) post(ctx context.Context, p string, body any) (map[string]any, error) {
	return c.doRequest(ctx, http.MethodPost, p, nil, body)
}

func (c *Client) put(ctx context.Context, p string, body any) (map[string]any, error) {
	return c.doRequest(ctx, http.MethodPut, p, nil, body)
}

func (c *Client) delete(ctx context.Context, p string, query url.Values) error {
	_, err := c.doRequest(ctx, http.MethodDelete, p, query, nil)
	return err
}

// doRequest sends body as JSON and returns the decoded response object.
func (c *Client) doRequest(ctx context.Context, method, p string, query url.Values, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, p, err)
		}
		reader = bytes.NewReader(b)
	}
	return c.send(ctx, method, p, query, reader, "application/json")
}

func (c *Client) send(ctx context.Context, method, p string, query url.Values, body io.Reader, contentType string) (map[string]any, error) {
	u := c.endpoint(p, query)
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.Token)
	req.Header.Set("Content-Type", contentType)

	c.logf("[REQUEST] %s %s", method, u)

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clickup %s %s: %w", method, p, err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, p, err)
	}
	if res.StatusCode >= 400 {
		c.logf("[RESPONSE] %s %s: %d", method, u, res.StatusCode)
		return nil, newError(res.StatusCode, b)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return map[string]any{}, nil
	}
	return model.DecodeBody(b)
}

// unwrap decodes the object ClickUp nests under key, as in {"goal": {...}}.
func unwrap[T any](raw map[string]any, key string, decode model.Factory[T]) (T, error) {
	inner, ok := raw[key].(map[string]any)
	if !ok {
		var zero T
		return zero, &model.SchemaValidationError{Resource: key, Reason: fmt.Sprintf("expected object under %q", key)}
	}
	return decode(inner)
}
