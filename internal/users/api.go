package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/charmbracelet/x/ansi"

	"github.com/turkosaurus/userview/internal/types"
)

// DefaultEndpoint is where the reference users API listens during development.
const DefaultEndpoint = "http://localhost:8080/api/users"

// maxErrorBody caps how much of a non-2xx body is kept for the error message.
const maxErrorBody = 512

// Lister fetches the full user collection.
type Lister interface {
	ListUsers(ctx context.Context) ([]types.User, error)
}

// Client talks to the users HTTP API.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for endpoint. A nil httpClient uses http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
	}
}

// Endpoint returns the URL the client fetches from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ListUsers sends a single GET to the endpoint and decodes the JSON array body.
// Every failure is reported as a *FetchError.
func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, c.fail(0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("fetching users", "endpoint", c.endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, c.fail(resp.StatusCode, fmt.Errorf("unexpected status %s: %s", resp.Status, body))
	}

	var users []types.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, c.fail(resp.StatusCode, fmt.Errorf("failed to parse response: %w", err))
	}
	if users == nil {
		// a literal null body is treated as an empty collection
		users = []types.User{}
	}
	slog.Debug("fetched users", "endpoint", c.endpoint, "count", len(users))
	return users, nil
}

func (c *Client) fail(status int, err error) error {
	return &FetchError{Endpoint: c.endpoint, StatusCode: status, Err: err}
}

// FetchError is the single failure kind for retrieving users: transport
// errors, non-2xx responses and undecodable bodies all surface as one.
// StatusCode is 0 when no response was received.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Endpoint == "" {
		return fmt.Sprintf("fetch users: %v", e.Err)
	}
	return fmt.Sprintf("fetch users from %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchFailure reports whether err is (or wraps) a *FetchError.
func IsFetchFailure(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// TruncateString shortens s to at most maxLen terminal cells, ending in
// "..." when there is room for it. Runes are never split.
func TruncateString(s string, maxLen int) string {
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return ansi.Truncate(s, maxLen, "")
	}
	return ansi.Truncate(s, maxLen, "...")
}
