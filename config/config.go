package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read once at startup and never changes afterwards. Provider keys
// are publishable and end up in the rendered pages.
type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	SecureCookies        bool          `env:"SECURE_COOKIES" envDefault:"false"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Card form (Stripe)
	StripePublishableKey    string        `env:"STRIPE_PUBLISHABLE_KEY"`
	StripeAPIBaseURL        string        `env:"STRIPE_API_BASE_URL" envDefault:"https://api.stripe.com"`
	StripeJSURL             string        `env:"STRIPE_JS_URL" envDefault:"https://js.stripe.com/v3/"`
	HTTPStripeClientTimeout time.Duration `env:"HTTP_STRIPE_CLIENT_TIMEOUT" envDefault:"20s"`
	// "full" asks for the whole billing address, "minimal" only for name and email.
	CardFormLayout string `env:"CARD_FORM_LAYOUT" envDefault:"full"`

	// Popup checkout (Razorpay)
	RazorpayKeyID             string        `env:"RAZORPAY_KEY_ID"`
	RazorpayCheckoutScriptURL string        `env:"RAZORPAY_CHECKOUT_SCRIPT_URL" envDefault:"https://checkout.razorpay.com/v1/checkout.js"`
	RazorpayAmount            int64         `env:"RAZORPAY_AMOUNT" envDefault:"50000"`
	RazorpayCurrency          string        `env:"RAZORPAY_CURRENCY" envDefault:"INR"`
	RazorpayMerchantName      string        `env:"RAZORPAY_MERCHANT_NAME" envDefault:"Your Company Name"`
	RazorpayDescription       string        `env:"RAZORPAY_DESCRIPTION" envDefault:"Test Transaction"`
	RazorpayThemeColor        string        `env:"RAZORPAY_THEME_COLOR" envDefault:"#3399cc"`
	RazorpayCheckoutTimeout   time.Duration `env:"RAZORPAY_CHECKOUT_TIMEOUT" envDefault:"15m"`
	RazorpayCheckoutGrace     time.Duration `env:"RAZORPAY_CHECKOUT_GRACE" envDefault:"30s"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// validate rejects durations that would leave a checkout or the session
// sweeper without an upper bound. The provider timeout is sent in whole
// seconds, so anything below one second would disable it.
func (c Config) validate() error {
	var errs []error
	if c.RazorpayCheckoutTimeout < time.Second {
		errs = append(errs, fmt.Errorf("RAZORPAY_CHECKOUT_TIMEOUT must be at least 1s, got %s", c.RazorpayCheckoutTimeout))
	}
	if c.RazorpayCheckoutGrace < 0 {
		errs = append(errs, fmt.Errorf("RAZORPAY_CHECKOUT_GRACE must not be negative, got %s", c.RazorpayCheckoutGrace))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if c.SessionSweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", c.SessionSweepInterval))
	}
	return errors.Join(errs...)
}
