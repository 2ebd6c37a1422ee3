//go:build !integration

package popup

import (
	"context"
	"testing"
	"time"

	"PaymentGatewayPractice/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var merchant = Merchant{
	Key:         "rzp_test_123",
	Amount:      50000,
	Currency:    "INR",
	Name:        "Your Company Name",
	Description: "Test Transaction",
	ThemeColor:  "#3399cc",
	Timeout:     5 * time.Minute,
}

func TestAdapter_Submit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	details := checkout.BillingDetails{Name: "John Doe", Email: "johndoe@example.com", Contact: "9999999999"}
	expectedOptions := Options{
		Key:         "rzp_test_123",
		Amount:      50000,
		Currency:    "INR",
		Name:        "Your Company Name",
		Description: "Test Transaction",
		Timeout:     300,
		Prefill:     Prefill{Name: "John Doe", Email: "johndoe@example.com", Contact: "9999999999"},
		Theme:       Theme{Color: "#3399cc"},
	}

	t.Run("should return payment id from handler as token", func(t *testing.T) {
		// given
		c := NewMockCheckout(gomock.NewController(t))
		c.EXPECT().Open(ctx, expectedOptions).Return(Response{PaymentID: "pay_29QQoUBi66xm2f"}, nil)

		// when
		outcome := NewAdapter(c, merchant).Submit(ctx, details)

		// then
		require.True(t, outcome.Succeeded())
		assert.Equal(t, "pay_29QQoUBi66xm2f", outcome.Token())
	})

	t.Run("should report generic message when checkout times out", func(t *testing.T) {
		c := NewMockCheckout(gomock.NewController(t))
		c.EXPECT().Open(ctx, gomock.Any()).Return(Response{}, ErrCheckoutTimedOut)

		outcome := NewAdapter(c, merchant).Submit(ctx, details)

		assert.Equal(t, checkout.ProviderUnavailableMessage, outcome.Message())
	})

	t.Run("should fail immediately without key", func(t *testing.T) {
		c := NewMockCheckout(gomock.NewController(t))
		c.EXPECT().Open(gomock.Any(), gomock.Any()).Times(0)
		m := merchant
		m.Key = ""

		outcome := NewAdapter(c, m).Submit(ctx, details)

		assert.ErrorIs(t, outcome.Err(), checkout.ErrSDKNotReady)
	})

	t.Run("should fail immediately without checkout", func(t *testing.T) {
		outcome := NewAdapter(nil, merchant).Submit(ctx, details)

		assert.ErrorIs(t, outcome.Err(), checkout.ErrSDKNotReady)
	})

	t.Run("should treat empty payment id as unknown error", func(t *testing.T) {
		c := NewMockCheckout(gomock.NewController(t))
		c.EXPECT().Open(ctx, gomock.Any()).Return(Response{}, nil)

		outcome := NewAdapter(c, merchant).Submit(ctx, details)

		assert.Equal(t, checkout.UnknownErrorMessage, outcome.Message())
	})
}

func waitOpen(t *testing.T, m *Modal) (string, Options) {
	t.Helper()

	var (
		id      string
		options Options
	)
	require.Eventually(t, func() bool {
		var ok bool
		id, options, ok = m.Current()
		return ok
	}, time.Second, 5*time.Millisecond)
	return id, options
}

func TestModal(t *testing.T) {
	t.Parallel()

	t.Run("delivers handler payload to Open", func(t *testing.T) {
		// given
		modal := NewModal(time.Second)
		result := make(chan Response, 1)
		go func() {
			resp, err := modal.Open(context.Background(), Options{Key: "rzp_test_123", Amount: 50000})
			assert.NoError(t, err)
			result <- resp
		}()
		id, options := waitOpen(t, modal)
		assert.Equal(t, int64(50000), options.Amount)

		// when
		err := modal.Complete(id, Response{PaymentID: "pay_1"})

		// then
		require.NoError(t, err)
		assert.Equal(t, Response{PaymentID: "pay_1"}, <-result)
		_, _, ok := modal.Current()
		assert.False(t, ok)
	})

	t.Run("rejects payload for another checkout", func(t *testing.T) {
		modal := NewModal(time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _, _ = modal.Open(ctx, Options{}) }()
		waitOpen(t, modal)

		err := modal.Complete("stale-id", Response{PaymentID: "pay_1"})

		assert.ErrorIs(t, err, ErrNoOpenCheckout)
	})

	t.Run("refuses a second open", func(t *testing.T) {
		modal := NewModal(time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _, _ = modal.Open(ctx, Options{}) }()
		waitOpen(t, modal)

		_, err := modal.Open(ctx, Options{})

		assert.ErrorIs(t, err, ErrModalBusy)
	})

	t.Run("resolves with the failure reported by the page", func(t *testing.T) {
		// given
		modal := NewModal(time.Second)
		errs := make(chan error, 1)
		go func() {
			_, err := modal.Open(context.Background(), Options{Key: "rzp_test_123", Timeout: 900})
			errs <- err
		}()
		id, _ := waitOpen(t, modal)

		// when
		err := modal.Fail(id, checkout.ErrSDKNotReady)

		// then
		require.NoError(t, err)
		select {
		case openErr := <-errs:
			assert.ErrorIs(t, openErr, checkout.ErrSDKNotReady)
		case <-time.After(time.Second):
			t.Fatal("Open did not return after Fail")
		}
		assert.ErrorIs(t, modal.Fail(id, checkout.ErrSDKNotReady), ErrNoOpenCheckout)
	})

	t.Run("gives up after provider timeout and grace", func(t *testing.T) {
		modal := NewModal(10 * time.Millisecond)

		_, err := modal.Open(context.Background(), Options{Timeout: 1})

		assert.ErrorIs(t, err, ErrCheckoutTimedOut)
		_, _, ok := modal.Current()
		assert.False(t, ok)
	})

	t.Run("bounds a checkout without provider timeout", func(t *testing.T) {
		modal := NewModal(0)
		modal.fallback = 20 * time.Millisecond

		_, err := modal.Open(context.WithoutCancel(context.Background()), Options{Timeout: 0})

		assert.ErrorIs(t, err, ErrCheckoutTimedOut)
	})

	t.Run("stops waiting when context is done", func(t *testing.T) {
		modal := NewModal(time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := modal.Open(ctx, Options{})

		assert.ErrorIs(t, err, checkout.ErrProviderUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
