//go:build !integration

package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"PaymentGatewayPractice/config"
	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(stripeURL string) config.Config {
	return config.Config{
		SessionTTL:                time.Minute,
		StripePublishableKey:      "pk_test_123",
		StripeAPIBaseURL:          stripeURL,
		StripeJSURL:               "https://js.stripe.com/v3/",
		HTTPStripeClientTimeout:   5 * time.Second,
		CardFormLayout:            "full",
		RazorpayKeyID:             "rzp_test_123",
		RazorpayCheckoutScriptURL: "https://checkout.razorpay.com/v1/checkout.js",
		RazorpayAmount:            50000,
		RazorpayCurrency:          "INR",
		RazorpayCheckoutTimeout:   time.Minute,
		RazorpayCheckoutGrace:     time.Second,
	}
}

func newTestEngine(t *testing.T, cfg config.Config) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, store, err := NewEngine(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return engine, store
}

func TestNewEngine_CardPayment(t *testing.T) {
	// given
	stripeAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "tok_visa", r.PostForm.Get("card[token]"))
		assert.Equal(t, "Springfield", r.PostForm.Get("billing_details[address][city]"))
		_, _ = w.Write([]byte(`{"id":"pm_123","card":{"brand":"visa","last4":"4242"}}`))
	}))
	defer stripeAPI.Close()

	engine, store := newTestEngine(t, testConfig(stripeAPI.URL))
	form := url.Values{
		"name":       {"John Doe"},
		"email":      {"john@example.com"},
		"address":    {"1 Main St"},
		"city":       {"Springfield"},
		"country":    {"US"},
		"postalCode": {"12345"},
		"card_token": {"tok_visa"},
	}

	// when
	req := httptest.NewRequest(http.MethodPost, "/stripe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	// then
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status  checkout.Status         `json:"status"`
		Details checkout.BillingDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, checkout.Succeeded("pm_123"), resp.Status)
	assert.Equal(t, checkout.BillingDetails{}, resp.Details)
	assert.Equal(t, 1, store.Len())
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestNewEngine_Pages(t *testing.T) {
	engine, _ := newTestEngine(t, testConfig("http://127.0.0.1:1"))

	testCases := []struct {
		path     string
		code     int
		contains string
	}{
		{path: "/", code: http.StatusOK, contains: "Payment Gateway Practice"},
		{path: "/stripe", code: http.StatusOK, contains: "Select a country"},
		{path: "/razorpay", code: http.StatusOK, contains: "500.00 INR"},
		{path: "/health/live", code: http.StatusOK, contains: `"up"`},
		{path: "/health/ready", code: http.StatusOK, contains: `"stripe"`},
		{path: "/metrics", code: http.StatusOK, contains: "pgp_http_requests_total"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), tc.contains)
		})
	}
}

func TestNewEngine_MinimalLayout(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.CardFormLayout = "minimal"
	engine, _ := newTestEngine(t, cfg)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stripe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Select a country")
}

func TestNewEngine_InvalidLayout(t *testing.T) {
	cfg := testConfig("")
	cfg.CardFormLayout = "compact"

	_, _, err := NewEngine(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}

func TestNewEngine_NotReadyWithoutKeys(t *testing.T) {
	cfg := testConfig("")
	cfg.StripePublishableKey = ""
	cfg.RazorpayKeyID = ""
	engine, _ := newTestEngine(t, cfg)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
