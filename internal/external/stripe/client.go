package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/internal/provider/card"

	"github.com/google/go-querystring/query"
)

const paymentMethodsPath = "/v1/payment_methods"

// Client creates card payment methods with a publishable key, the same call
// the provider's browser SDK makes.
type Client struct {
	baseURL        string
	publishableKey string
	httpClient     *http.Client
}

type ClientConfig struct {
	BaseURL        string
	PublishableKey string
	Timeout        time.Duration
}

func New(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		publishableKey: cfg.PublishableKey,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

// Ready reports whether the client has a key to talk to the provider with.
func (c *Client) Ready() bool {
	return c.publishableKey != ""
}

func (c *Client) PublishableKey() string {
	return c.publishableKey
}

type createPaymentMethodReq struct {
	Type       string `url:"type"`
	CardToken  string `url:"card[token]"`
	Name       string `url:"billing_details[name],omitempty"`
	Email      string `url:"billing_details[email],omitempty"`
	Phone      string `url:"billing_details[phone],omitempty"`
	Line1      string `url:"billing_details[address][line1],omitempty"`
	City       string `url:"billing_details[address][city],omitempty"`
	Country    string `url:"billing_details[address][country],omitempty"`
	PostalCode string `url:"billing_details[address][postal_code],omitempty"`
}

type paymentMethodResp struct {
	ID   string `json:"id"`
	Card struct {
		Brand string `json:"brand"`
		Last4 string `json:"last4"`
	} `json:"card"`
}

type errorResp struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Param   string `json:"param"`
	} `json:"error"`
}

func (c *Client) CreatePaymentMethod(ctx context.Context, params card.PaymentMethodParams) (card.PaymentMethod, error) {
	if !c.Ready() {
		return card.PaymentMethod{}, checkout.ErrSDKNotReady
	}

	billing := params.Billing
	form, err := query.Values(createPaymentMethodReq{
		Type:       "card",
		CardToken:  params.CardToken,
		Name:       billing.Name,
		Email:      billing.Email,
		Phone:      billing.Contact,
		Line1:      billing.Address,
		City:       billing.City,
		Country:    string(billing.Country),
		PostalCode: billing.PostalCode,
	})
	if err != nil {
		return card.PaymentMethod{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+paymentMethodsPath,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return card.PaymentMethod{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.publishableKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return card.PaymentMethod{}, fmt.Errorf("%w: %w", checkout.ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) (card.PaymentMethod, error) {
	raw, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var out paymentMethodResp
		if err := json.Unmarshal(raw, &out); err != nil {
			return card.PaymentMethod{}, fmt.Errorf("%w: decode response: %v", checkout.ErrUnknown, err)
		}
		return card.PaymentMethod{ID: out.ID, Brand: out.Card.Brand, Last4: out.Card.Last4}, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return card.PaymentMethod{}, fmt.Errorf("%w: provider rejected publishable key", checkout.ErrSDKNotReady)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return card.PaymentMethod{}, fmt.Errorf("%w: status %d, body: %s", checkout.ErrProviderUnavailable, resp.StatusCode, string(raw))
	}

	var out errorResp
	if err := json.Unmarshal(raw, &out); err != nil || out.Error.Message == "" {
		return card.PaymentMethod{}, fmt.Errorf("%w: status %d, body: %s", checkout.ErrUnknown, resp.StatusCode, string(raw))
	}

	code := out.Error.Code
	if code == "" {
		code = out.Error.Type
	}
	return card.PaymentMethod{}, &checkout.ProviderError{Code: code, Message: out.Error.Message}
}
