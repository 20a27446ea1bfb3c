package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"planter/communication"
)

// Client talks to the advisor's JSON API.
type Client struct {
	serverURL string
	http      *http.Client
}

type Option func(c *Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient initializes and returns a new Client.
func NewClient(serverURL string, options ...Option) *Client {
	c := &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		http:      &http.Client{Timeout: 10 * time.Second},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Recommend ranks an arbitrary state without touching the server session.
func (c *Client) Recommend(ctx context.Context, state communication.StateJSON, count int) ([]communication.CandidateJSON, error) {
	path := "/recommend"
	if count > 0 {
		path += "?" + url.Values{"count": {strconv.Itoa(count)}}.Encode()
	}
	var out []communication.CandidateJSON
	err := c.do(ctx, http.MethodPost, path, state, &out)
	return out, err
}

func (c *Client) Session(ctx context.Context) (communication.SessionView, error) {
	var out communication.SessionView
	err := c.do(ctx, http.MethodGet, "/session", nil, &out)
	return out, err
}

func (c *Client) Apply(ctx context.Context, cmd communication.MoveCommand) (communication.ApplyResult, error) {
	var out communication.ApplyResult
	err := c.do(ctx, http.MethodPost, "/session/apply", cmd, &out)
	return out, err
}

func (c *Client) Opponent(ctx context.Context, cmd communication.MoveCommand) (communication.ApplyResult, error) {
	var out communication.ApplyResult
	err := c.do(ctx, http.MethodPost, "/session/opponent", cmd, &out)
	return out, err
}

func (c *Client) Affirm(ctx context.Context, cmd communication.MoveCommand) (int, error) {
	var out communication.AffirmResult
	err := c.do(ctx, http.MethodPost, "/session/affirm", cmd, &out)
	return out.Count, err
}

func (c *Client) Reset(ctx context.Context, firstPlayer string) (communication.SessionView, error) {
	var out communication.SessionView
	err := c.do(ctx, http.MethodPost, "/session/reset", communication.ResetCommand{FirstPlayer: firstPlayer}, &out)
	return out, err
}

func (c *Client) StartRound(ctx context.Context, faceUp []string) (communication.SessionView, error) {
	var out communication.SessionView
	err := c.do(ctx, http.MethodPost, "/session/round", communication.RoundCommand{FaceUp: faceUp}, &out)
	return out, err
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e communication.ErrorJSON
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, e.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// URL is the server base URL the client was created with.
func (c *Client) URL() string {
	return c.serverURL
}
