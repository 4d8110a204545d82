// Package paypal is a minimal PayPal REST client: client-credentials OAuth
// plus subscription verification. It fails closed — any transport or token
// failure surfaces as ErrUnavailable so callers never mutate state on an
// unverified subscription.
package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrUnavailable means PayPal could not be reached or refused the OAuth
	// exchange. Treat as a hard abort.
	ErrUnavailable = errors.New("paypal unavailable")
	// ErrVerificationFailed means PayPal answered but does not vouch for the
	// subscription id.
	ErrVerificationFailed = errors.New("paypal subscription verification failed")
)

// Subscription states reported by the billing API.
const (
	StatusApprovalPending = "APPROVAL_PENDING"
	StatusActive          = "ACTIVE"
	StatusSuspended       = "SUSPENDED"
	StatusCancelled       = "CANCELLED"
)

type Subscriber struct {
	EmailAddress string `json:"email_address"`
}

type Subscription struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	PlanID     string     `json:"plan_id"`
	Subscriber Subscriber `json:"subscriber"`
}

type IClient interface {
	GetSubscription(ctx context.Context, subscriptionId string) (*Subscription, error)
}

type Client struct {
	apiBase    string
	clientID   string
	secret     string
	httpClient *http.Client
}

func NewClient(apiBase, clientID, secret string) *Client {
	return &Client{
		apiBase:  strings.TrimRight(apiBase, "/"),
		clientID: clientID,
		secret:   secret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBase+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token endpoint returned %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: decoding token response: %v", ErrUnavailable, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrUnavailable)
	}
	return token.AccessToken, nil
}

// GetSubscription verifies a subscription id against the billing API.
func (c *Client) GetSubscription(ctx context.Context, subscriptionId string) (*Subscription, error) {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiBase+"/v1/billing/subscriptions/"+url.PathEscape(subscriptionId), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: subscription request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrVerificationFailed, resp.StatusCode, string(body))
	}

	var sub Subscription
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, fmt.Errorf("%w: decoding subscription: %v", ErrVerificationFailed, err)
	}
	return &sub, nil
}
