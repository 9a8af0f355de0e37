// Package api is a Go client for the calendar REST API.
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

	"github.com/google/uuid"
)

// Error is a non-2xx answer from the server.
type Error struct {
	Status  int
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server answered %d", e.Status)
	}
	return e.Message
}

// User is the public part of an account.
type User struct {
	ID            uuid.UUID   `json:"id"`
	Email         string      `json:"email"`
	LoginHistory  []time.Time `json:"loginHistory,omitempty"`
	LogoutHistory []time.Time `json:"logoutHistory,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Entry is a calendar entry as served by the API.
type Entry struct {
	ID          uuid.UUID `json:"_id"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EntryInput carries the editable fields of an entry. Date is YYYY-MM-DD or RFC 3339.
type EntryInput struct {
	Email       string `json:"email"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Client talks to one server. It is safe for concurrent use once the token is set.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient creates a client for the server at baseURL, e.g. http://localhost:5000.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SetToken sets the bearer token used by protected calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) Register(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{"email": email, "password": password}, &out)
	if err == nil {
		c.token = out.Token
	}
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, &out)
	if err == nil {
		c.token = out.Token
	}
	return out, err
}

// Logout records the logout on the server and forgets the token locally
// even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	c.token = ""
	return err
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out)
	return out.User, err
}

func (c *Client) List(ctx context.Context) ([]Entry, error) {
	var out struct {
		Entries []Entry `json:"entries"`
	}
	err := c.do(ctx, http.MethodGet, "/api/calendar", nil, &out)
	return out.Entries, err
}

func (c *Client) Create(ctx context.Context, in EntryInput) (Entry, error) {
	var out struct {
		Entry Entry `json:"entry"`
	}
	err := c.do(ctx, http.MethodPost, "/api/calendar", in, &out)
	return out.Entry, err
}

func (c *Client) Update(ctx context.Context, id uuid.UUID, in EntryInput) (Entry, error) {
	var out struct {
		Entry Entry `json:"entry"`
	}
	err := c.do(ctx, http.MethodPut, "/api/calendar/"+id.String(), in, &out)
	return out.Entry, err
}

func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/calendar/"+id.String(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
