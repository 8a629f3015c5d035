package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the budget server's account API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the budget server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(cfg),
	}
}

// List returns every account, newest first.
func (c *Client) List(ctx context.Context) ([]Account, error) {
	var resp listAccountsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/accounts", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	if resp.Accounts == nil {
		return []Account{}, nil
	}
	return resp.Accounts, nil
}

// Insert creates an account. The server assigns its ID and creation time.
func (c *Client) Insert(ctx context.Context, name string, accountType AccountType) (Account, error) {
	var created Account
	req := createAccountRequest{Name: name, Type: accountType}
	if err := c.do(ctx, http.MethodPost, "/v1/account", req, http.StatusCreated, &created); err != nil {
		return Account{}, err
	}
	return created, nil
}

// Delete removes the account with the given ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/account/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		reqBodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(reqBodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return decodeError(resp.StatusCode, respBodyBytes)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBodyBytes, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
