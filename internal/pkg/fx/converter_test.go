//go:build unit

package fx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRatesServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.URL.Path != "/latest" || r.URL.Query().Get("base") != "USD" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestConverter_ConvertUSD(t *testing.T) {
	var calls int32
	server := newRatesServer(t, http.StatusOK, `{"base":"USD","rates":{"EUR":0.9,"IDR":15500}}`, &calls)
	converter := NewConverter(Config{BaseURL: server.URL, Timeout: time.Second}, nil)

	convert := func(amount float64, currency string, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := converter.ConvertUSD(context.Background(), amount, currency)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("eur", convert(100, "EUR", 90))
	t.Run("lowercase currency", convert(100, "idr", 1550000))
	t.Run("usd", convert(12.344, "USD", 12.34))
	t.Run("unknown currency keeps amount", convert(100, "XYZ", 100))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestConverter_Convert(t *testing.T) {
	var calls int32
	server := newRatesServer(t, http.StatusOK, `{"rates":{"EUR":0.8,"GBP":0.5}}`, &calls)
	converter := NewConverter(Config{BaseURL: server.URL}, nil)

	converted, rate, err := converter.Convert(context.Background(), 100, "EUR", "GBP")
	require.NoError(t, err)
	assert.Equal(t, 0.625, rate)
	assert.Equal(t, 62.5, converted)
}

func TestConverter_Rates(t *testing.T) {
	t.Run("upstream failure without cache", func(t *testing.T) {
		var calls int32
		server := newRatesServer(t, http.StatusBadGateway, `down`, &calls)
		converter := NewConverter(Config{BaseURL: server.URL}, nil)

		got, err := converter.ConvertUSD(context.Background(), 100, "EUR")
		require.Error(t, err)
		assert.Equal(t, 100.0, got)

		_, _, err = converter.Convert(context.Background(), 1, "USD", "EUR")
		require.Error(t, err)
	})

	t.Run("stale rates survive refresh failure", func(t *testing.T) {
		var calls int32
		var fail atomic.Bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			if fail.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"rates":{"EUR":0.9}}`))
		}))
		defer server.Close()

		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		converter := NewConverter(Config{BaseURL: server.URL, CacheExpiration: time.Hour}, nil)
		converter.now = func() time.Time { return now }

		_, err := converter.Rates(context.Background())
		require.NoError(t, err)

		fail.Store(true)
		now = now.Add(2 * time.Hour)

		rates, err := converter.Rates(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0.9, rates["EUR"])
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("store hit skips upstream", func(t *testing.T) {
		var calls int32
		server := newRatesServer(t, http.StatusOK, `{"rates":{"EUR":0.9}}`, &calls)

		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, ratesCacheKey).Return(redis.NewStringResult(`{"EUR":0.7,"USD":1}`, nil))

		converter := NewConverter(Config{BaseURL: server.URL}, NewRateCache(m, time.Hour))
		rates, err := converter.Rates(context.Background())
		require.NoError(t, err)

		if diff := cmp.Diff(Rates{"EUR": 0.7, "USD": 1}, rates); diff != "" {
			t.Fatalf("Rates mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("store miss fetches and caches", func(t *testing.T) {
		var calls int32
		server := newRatesServer(t, http.StatusOK, `{"rates":{"EUR":0.9}}`, &calls)

		m := NewMockRedisClient(t)
		m.On("Get", mock.Anything, ratesCacheKey).Return(redis.NewStringResult("", redis.Nil))
		m.On("Set", mock.Anything, ratesCacheKey, mock.Anything, time.Hour).Return(redis.NewStatusResult("OK", nil))

		converter := NewConverter(Config{BaseURL: server.URL}, NewRateCache(m, time.Hour))
		rates, err := converter.Rates(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Rates{"EUR": 0.9, "USD": 1}, rates)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestRateCache_GetRates(t *testing.T) {
	getRates := func(mockSetup func(m *MockRedisClient), want Rates, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewRateCache(m, time.Hour)

			got, err := c.GetRates(context.Background())
			if wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, wantErr))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("GetRates mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("success", getRates(func(m *MockRedisClient) {
		m.On("Get", mock.Anything, ratesCacheKey).Return(redis.NewStringResult(`{"EUR":0.9}`, nil))
	}, Rates{"EUR": 0.9}, nil))

	t.Run("cache miss", getRates(func(m *MockRedisClient) {
		m.On("Get", mock.Anything, ratesCacheKey).Return(redis.NewStringResult("", redis.Nil))
	}, nil, ErrCacheMiss))
}
