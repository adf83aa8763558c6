// Package hyperliquid wraps the read-only Hyperliquid info API. Every
// dataset is a single POST to the same endpoint with a request-type
// discriminator; there is no authentication and no retry.
package hyperliquid

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quotewatch/internal/api"
)

// Client handles info API interactions for one account
type Client struct {
	api     *api.Client
	account string
}

// NewClient creates a new info API client
func NewClient(baseURL, account string, timeout time.Duration) *Client {
	return &Client{
		api: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithTimeout(timeout),
		),
		account: account,
	}
}

// Account returns the account address the client queries for
func (c *Client) Account() string {
	return c.account
}

type infoRequest struct {
	Type string `json:"type"`
	User string `json:"user,omitempty"`
}

func (c *Client) info(ctx context.Context, reqType string, withUser bool, out interface{}) error {
	body := infoRequest{Type: reqType}
	if withUser {
		body.User = c.account
	}

	resp, err := c.api.POST(ctx, "", body)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", reqType, err)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", reqType, err)
	}
	return nil
}

// OpenOrders fetches the account's resting orders
func (c *Client) OpenOrders(ctx context.Context) ([]OpenOrder, error) {
	var orders []OpenOrder
	if err := c.info(ctx, "openOrders", true, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllMids fetches the current mid price for every market
func (c *Client) AllMids(ctx context.Context) (map[string]Number, error) {
	var mids map[string]Number
	if err := c.info(ctx, "allMids", false, &mids); err != nil {
		return nil, err
	}
	return mids, nil
}

// ClearinghouseState fetches the perpetual account state including positions
func (c *Client) ClearinghouseState(ctx context.Context) (*ClearinghouseState, error) {
	var state ClearinghouseState
	if err := c.info(ctx, "clearinghouseState", true, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SpotClearinghouseState fetches the spot account state including balances
func (c *Client) SpotClearinghouseState(ctx context.Context) (*SpotClearinghouseState, error) {
	var state SpotClearinghouseState
	if err := c.info(ctx, "spotClearinghouseState", true, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
