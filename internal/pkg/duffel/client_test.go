//go:build unit

package duffel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ijalalfrz/trip-package-aggregation-service/internal/pkg/flightprovider/providerutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_OfferFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer duffel_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "v2", r.Header.Get("Duffel-Version"))

		switch r.URL.Path {
		case "/air/offer_requests":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "false", r.URL.Query().Get("return_offers"))

			var body struct {
				Data OfferRequest `json:"data"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, MaxConnections, body.Data.MaxConnections)
			assert.Len(t, body.Data.Passengers, 1)

			_, _ = w.Write([]byte(`{"data":{"id":"orq_123"}}`))
		case "/air/offers":
			assert.Equal(t, "orq_123", r.URL.Query().Get("offer_request_id"))
			assert.Equal(t, "total_amount", r.URL.Query().Get("sort"))
			_, _ = w.Write([]byte(`{"data":[{"id":"off_1","total_amount":"99.00","total_currency":"USD","owner":{"iata_code":"B6","name":"JetBlue"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "duffel_test_key", Timeout: time.Second})
	require.True(t, c.Configured())

	id, err := c.CreateOfferRequest(context.Background(), OfferRequest{
		Slices:     []Slice{{Origin: "JFK", Destination: "BOS", DepartureDate: "2025-06-10"}},
		Passengers: Adults(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "orq_123", id)

	offers, err := c.ListOffers(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "B6", offers[0].Owner.IATACode)
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{APIKey: "not-a-duffel-key"})

	assert.False(t, c.Configured())
	assert.Equal(t, DefaultVersion, c.Version())

	_, err := c.ListOffers(context.Background(), "orq_1")
	assert.ErrorIs(t, err, providerutils.ErrProviderNotConfigured)
}

func TestClient_TooManyRequests(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "duffel_test_key", MaxRetries: 3})

	_, err := c.ListOffers(context.Background(), "orq_1")
	assert.ErrorIs(t, err, providerutils.ErrProviderRateLimitExceeded)
	assert.Equal(t, 1, calls)
}
