package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider/providerutils"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/ratelimit"
	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/retry"
)

const (
	ProviderName   = "amadeus"
	DefaultBaseURL = "https://test.api.amadeus.com"

	// tokenLeeway refreshes the token a little before amadeus expires it.
	tokenLeeway = 30 * time.Second
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	MaxRetries   int
	Limiter      ratelimit.Limiter
}

// APIError is a non 2xx answer from amadeus.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus error (%d): %s", e.StatusCode, e.Body)
}

// Client talks to the amadeus self-service APIs. It is safe for concurrent use.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	maxRetries   int
	backoff      time.Duration
	limiter      ratelimit.Limiter
	httpClient   *http.Client
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var limiter ratelimit.Limiter = ratelimit.Unlimited{}
	if cfg.Limiter != nil {
		limiter = cfg.Limiter
	}

	return &Client{
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		maxRetries:   cfg.MaxRetries,
		backoff:      retry.DefaultBaseDelay,
		limiter:      limiter,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		now:          time.Now,
	}
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

func (c *Client) refreshToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	if result.ExpiresIn <= 0 {
		result.ExpiresIn = 1800
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenLeeway)
	c.mu.Unlock()

	return result.AccessToken, nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.accessToken
	expired := !c.now().Before(c.tokenExpiry)
	c.mu.Unlock()

	if token != "" && !expired {
		return token, nil
	}

	return c.refreshToken(ctx)
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

// get performs an authenticated GET with rate limiting and retries, decoding the body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
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

		body, err := c.do(ctx, endpoint)
		if err != nil {
			return c.classify(err)
		}

		if err := json.Unmarshal(body, out); err != nil {
			return retry.Permanent(fmt.Errorf("failed to parse amadeus response: %w", err))
		}

		return nil
	})
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// classify decides which failures are worth another attempt.
func (c *Client) classify(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.StatusCode == http.StatusUnauthorized:
		c.invalidateToken()
		return err
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return retry.Permanent(providerutils.ErrProviderRateLimitExceeded.Wrap(err))
	case apiErr.StatusCode >= http.StatusInternalServerError:
		return providerutils.ErrProviderInternalError.Wrap(err)
	default:
		return retry.Permanent(err)
	}
}
