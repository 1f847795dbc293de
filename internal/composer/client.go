package composer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/AMGSoya/lmu-setup-generator-sub000/internal/setup"
)

// ErrPending is returned when a submission is attempted while another
// one is still in flight. One generation request at a time.
var ErrPending = errors.New("a setup request is already pending")

// ErrServerUnreachable signals a transport failure: the server could
// not be reached at all, as opposed to the server answering with an
// application error.
var ErrServerUnreachable = errors.New("setup server unreachable, check your connection")

// ServerError is an application-level failure returned by the server.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// GeneratedSetup is the server's success payload.
type GeneratedSetup struct {
	Setup string `json:"setup"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client submits validated setup requests to the generation endpoint.
// It tracks an explicit Idle/Pending state and refuses a second
// submission while one is pending.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex
	pending bool
}

// NewClient creates a client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// Pending reports whether a submission is currently in flight.
func (c *Client) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Submit posts the request and returns the generated setup. Transport
// failures map to ErrServerUnreachable; non-2xx responses map to a
// ServerError carrying the server's message.
func (c *Client) Submit(ctx context.Context, req *setup.SetupRequest) (*GeneratedSetup, error) {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return nil, ErrPending
	}
	c.pending = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.pending = false
		c.mu.Unlock()
	}()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/generate-setup", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Join(ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return nil, &ServerError{Status: resp.StatusCode, Message: errResp.Error}
	}

	var result GeneratedSetup
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}
