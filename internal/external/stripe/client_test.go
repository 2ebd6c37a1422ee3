//go:build !integration

package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/internal/provider/card"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var params = card.PaymentMethodParams{
	CardToken: "tok_visa",
	Billing: checkout.BillingDetails{
		Name:       "John Doe",
		Email:      "john@example.com",
		Address:    "1 Main St",
		City:       "Springfield",
		Country:    "US",
		PostalCode: "12345",
	},
}

func newClient(url string) *Client {
	return New(ClientConfig{
		BaseURL:        url,
		PublishableKey: "pk_test_123",
		Timeout:        5 * time.Second,
	})
}

func TestClient_CreatePaymentMethod(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment_methods", r.URL.Path)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer pk_test_123", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "card", r.PostForm.Get("type"))
			assert.Equal(t, "tok_visa", r.PostForm.Get("card[token]"))
			assert.Equal(t, "John Doe", r.PostForm.Get("billing_details[name]"))
			assert.Equal(t, "john@example.com", r.PostForm.Get("billing_details[email]"))
			assert.Equal(t, "1 Main St", r.PostForm.Get("billing_details[address][line1]"))
			assert.Equal(t, "Springfield", r.PostForm.Get("billing_details[address][city]"))
			assert.Equal(t, "US", r.PostForm.Get("billing_details[address][country]"))
			assert.Equal(t, "12345", r.PostForm.Get("billing_details[address][postal_code]"))
			assert.False(t, r.PostForm.Has("billing_details[phone]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pm_123","object":"payment_method","card":{"brand":"visa","last4":"4242"}}`))
		}))
		defer server.Close()

		pm, err := newClient(server.URL).CreatePaymentMethod(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, card.PaymentMethod{ID: "pm_123", Brand: "visa", Last4: "4242"}, pm)
	})

	t.Run("returns ProviderError on card error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreatePaymentMethod(context.Background(), params)

		var providerErr *checkout.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "card_declined", providerErr.Code)
		assert.Equal(t, "Your card was declined.", providerErr.Message)
	})

	t.Run("falls back to error type when code is missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such token: 'tok_x'","param":"card[token]"}}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreatePaymentMethod(context.Background(), params)

		var providerErr *checkout.ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "invalid_request_error", providerErr.Code)
	})

	t.Run("returns ErrSDKNotReady on 401", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreatePaymentMethod(context.Background(), params)

		assert.ErrorIs(t, err, checkout.ErrSDKNotReady)
	})

	t.Run("returns ErrProviderUnavailable on 500", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreatePaymentMethod(context.Background(), params)

		assert.ErrorIs(t, err, checkout.ErrProviderUnavailable)
		assert.Equal(t, 1, attempts, "should not retry")
	})

	t.Run("returns ErrUnknown on unexpected body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).CreatePaymentMethod(context.Background(), params)

		assert.ErrorIs(t, err, checkout.ErrUnknown)
	})

	t.Run("returns ErrSDKNotReady without key and skips the call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := New(ClientConfig{BaseURL: server.URL})
		_, err := client.CreatePaymentMethod(context.Background(), params)

		assert.ErrorIs(t, err, checkout.ErrSDKNotReady)
		assert.False(t, called)
		assert.False(t, client.Ready())
	})
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1 * time.Second) // Slow response
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newClient(server.URL).CreatePaymentMethod(ctx, params)

	assert.ErrorIs(t, err, checkout.ErrProviderUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
