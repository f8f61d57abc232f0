package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider/providerutils"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/ratelimit"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/retry"
)

const (
	ProviderName   = "duffel"
	DefaultBaseURL = "https://api.duffel.com"
	DefaultVersion = "v2"

	// MaxConnections is sent on every offer request.
	MaxConnections = 2
	offersPageSize = 50
)

type Config struct {
	BaseURL    string
	APIKey     string
	Version    string
	Timeout    time.Duration
	MaxRetries int
	Limiter    ratelimit.Limiter
}

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("duffel error (%d): %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	apiKey     string
	version    string
	maxRetries int
	backoff    time.Duration
	limiter    ratelimit.Limiter
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}

	var limiter ratelimit.Limiter = ratelimit.Unlimited{}
	if cfg.Limiter != nil {
		limiter = cfg.Limiter
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		version:    version,
		maxRetries: cfg.MaxRetries,
		backoff:    retry.DefaultBaseDelay,
		limiter:    limiter,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether the key looks like a duffel access token.
func (c *Client) Configured() bool {
	return strings.HasPrefix(c.apiKey, "duffel_")
}

func (c *Client) Version() string {
	return c.version
}

// CreateOfferRequest posts an offer request and returns its id.
func (c *Client) CreateOfferRequest(ctx context.Context, req OfferRequest) (string, error) {
	if req.MaxConnections == 0 {
		req.MaxConnections = MaxConnections
	}

	payload, err := json.Marshal(envelope[OfferRequest]{Data: req})
	if err != nil {
		return "", fmt.Errorf("failed to marshal offer request: %w", err)
	}

	query := url.Values{}
	query.Set("return_offers", "false")

	var resp envelope[struct {
		ID string `json:"id"`
	}]
	if err := c.call(ctx, http.MethodPost, "/air/offer_requests", query, payload, &resp); err != nil {
		return "", fmt.Errorf("offer request failed: %w", err)
	}

	return resp.Data.ID, nil
}

// ListOffers returns the cheapest offers of an offer request first.
func (c *Client) ListOffers(ctx context.Context, offerRequestID string) ([]Offer, error) {
	query := url.Values{}
	query.Set("offer_request_id", offerRequestID)
	query.Set("limit", strconv.Itoa(offersPageSize))
	query.Set("sort", "total_amount")

	var resp envelope[[]Offer]
	if err := c.call(ctx, http.MethodGet, "/air/offers", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("list offers failed: %w", err)
	}

	return resp.Data, nil
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload []byte, out any) error {
	if !c.Configured() {
		return providerutils.ErrProviderNotConfigured
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	policy := retry.Policy{MaxRetries: c.maxRetries, BaseDelay: c.backoff, Name: ProviderName}

	return retry.Do(ctx, policy, func(ctx context.Context) error {
		allowed, err := c.limiter.Allow(ctx, ProviderName)
		if err != nil {
			return retry.Permanent(err)
		}

		if !allowed {
			return retry.Permanent(providerutils.ErrProviderRateLimitExceeded)
		}

		body, err := c.do(ctx, method, endpoint, payload)
		if err != nil {
			return classify(err)
		}

		if err := json.Unmarshal(body, out); err != nil {
			return retry.Permanent(fmt.Errorf("failed to parse duffel response: %w", err))
		}

		return nil
	})
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Duffel-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

func classify(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return retry.Permanent(providerutils.ErrProviderRateLimitExceeded.Wrap(err))
	case apiErr.StatusCode >= http.StatusInternalServerError:
		return providerutils.ErrProviderInternalError.Wrap(err)
	default:
		return retry.Permanent(err)
	}
}
