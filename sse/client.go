package sse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/viant/afs/url"
)

// Client talks to the remote peer: one long-lived GET for the inbound event
// stream and one POST per outbound message, addressed by session id.
type Client struct {
	endpoint    string
	messagesURL string
	httpClient  *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the given event stream endpoint URL. Outbound
// messages go to <origin>/messages/ on the same host.
func New(endpoint string, options ...Option) *Client {
	origin, _ := url.Base(endpoint, "http")
	client := &Client{
		endpoint:    endpoint,
		messagesURL: url.Join(origin, "messages") + "/",
		httpClient:  http.DefaultClient,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// Endpoint returns the configured event stream URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Open issues the long-lived GET and returns the response body stream. A
// failure here is fatal to the bridge; no retry is attempted.
func (c *Client) Open(ctx context.Context) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "text/event-stream")
	request.Header.Set("Cache-Control", "no-cache")
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %v: %w", c.endpoint, err)
	}
	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()
		return nil, fmt.Errorf("failed to connect to %v: status %v", c.endpoint, response.StatusCode)
	}
	return response.Body, nil
}

// Post delivers one message to the remote message endpoint. Any status other
// than 202 Accepted is returned as an error; the caller logs it and moves on
// to the next message.
func (c *Client) Post(ctx context.Context, sessionID, message string) error {
	target := c.messagesURL + "?session_id=" + neturl.QueryEscape(sessionID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(message))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusAccepted {
		excerpt, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("message rejected with status %v: %s", response.StatusCode, excerpt)
	}
	return nil
}
