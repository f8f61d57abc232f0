package fx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/utils"
)

const (
	BaseCurrency      = "USD"
	DefaultBaseURL    = "https://api.exchangerate.host"
	DefaultExpiration = 12 * time.Hour
)

// Rates maps a currency to units per USD.
type Rates map[string]float64

// Rate returns the rate of currency, 1 when unknown.
func (r Rates) Rate(currency string) float64 {
	if rate, ok := r[strings.ToUpper(currency)]; ok && rate > 0 {
		return rate
	}

	return 1
}

type RateStore interface {
	GetRates(ctx context.Context) (Rates, error)
	SetRates(ctx context.Context, rates Rates) error
}

type Config struct {
	BaseURL         string
	Timeout         time.Duration
	CacheExpiration time.Duration
}

// Converter converts amounts with USD based rates refreshed at most once per expiration.
type Converter struct {
	baseURL    string
	httpClient *http.Client
	store      RateStore
	expiration time.Duration
	now        func() time.Time

	mu        sync.Mutex
	rates     Rates
	fetchedAt time.Time
}

// NewConverter builds a converter. store may be nil to keep rates in process only.
func NewConverter(cfg Config, store RateStore) *Converter {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	expiration := cfg.CacheExpiration
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	return &Converter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		store:      store,
		expiration: expiration,
		now:        time.Now,
	}
}

// Rates returns fresh rates, falling back to stale ones when the upstream fails.
func (c *Converter) Rates(ctx context.Context) (Rates, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates != nil && c.now().Sub(c.fetchedAt) < c.expiration {
		return c.rates, nil
	}

	if c.store != nil {
		rates, err := c.store.GetRates(ctx)
		if err == nil && len(rates) > 0 {
			c.remember(rates)
			return rates, nil
		}

		if err != nil && !errors.Is(err, ErrCacheMiss) {
			slog.WarnContext(ctx, "failed to read cached fx rates", slog.Any("error", err))
		}
	}

	rates, err := c.fetch(ctx)
	if err != nil {
		if c.rates != nil {
			slog.WarnContext(ctx, "fx refresh failed, using stale rates", slog.Any("error", err))
			return c.rates, nil
		}

		return Rates{BaseCurrency: 1}, err
	}

	c.remember(rates)
	if c.store != nil {
		if err := c.store.SetRates(ctx, rates); err != nil {
			slog.WarnContext(ctx, "failed to cache fx rates", slog.Any("error", err))
		}
	}

	return rates, nil
}

func (c *Converter) remember(rates Rates) {
	c.rates = rates
	c.fetchedAt = c.now()
}

// ConvertUSD converts a USD amount to currency, rounded to cents. Unknown currencies use rate 1.
func (c *Converter) ConvertUSD(ctx context.Context, amountUSD float64, currency string) (float64, error) {
	rates, err := c.Rates(ctx)
	return utils.RoundCents(amountUSD * rates.Rate(currency)), err
}

// Convert converts between any two currencies through USD and returns the converted amount and rate.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, float64, error) {
	rates, err := c.Rates(ctx)
	if err != nil {
		return 0, 0, err
	}

	rate := rates.Rate(to) / rates.Rate(from)
	return utils.RoundCents(amount * rate), rate, nil
}

func (c *Converter) fetch(ctx context.Context) (Rates, error) {
	query := url.Values{}
	query.Set("base", BaseCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fx upstream failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fx upstream failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Rates Rates `json:"rates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse fx response: %w", err)
	}

	if len(result.Rates) == 0 {
		return nil, errors.New("fx upstream returned no rates")
	}

	result.Rates[BaseCurrency] = 1
	return result.Rates, nil
}
