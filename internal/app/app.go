package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"PaymentGatewayPractice/config"
	httpcontroller "PaymentGatewayPractice/internal/controller/http"
	"PaymentGatewayPractice/internal/controller/http/handlers"
	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/internal/external/stripe"
	"PaymentGatewayPractice/internal/provider"
	"PaymentGatewayPractice/internal/provider/card"
	"PaymentGatewayPractice/internal/provider/popup"
	"PaymentGatewayPractice/internal/session"
	"PaymentGatewayPractice/pkg/health"
	"PaymentGatewayPractice/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func Run(cfg config.Config) error {
	l := logger.New(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})
	slog.SetDefault(l)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine, store, err := NewEngine(cfg, l)
	if err != nil {
		return fmt.Errorf("app - Run - NewEngine: %w", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return store.Run(ctx, cfg.SessionSweepInterval)
	})

	g.Go(func() error {
		<-ctx.Done()
		l.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewEngine builds the gin engine with every route of the site and the
// session store behind the checkout pages.
func NewEngine(cfg config.Config, l *slog.Logger) (*gin.Engine, *session.Store, error) {
	engine, err := NewGinEngine(l)
	if err != nil {
		return nil, nil, err
	}

	layout, err := checkout.NewLayout(cfg.CardFormLayout)
	if err != nil {
		return nil, nil, err
	}

	stripeClient := stripe.New(stripe.ClientConfig{
		BaseURL:        cfg.StripeAPIBaseURL,
		PublishableKey: cfg.StripePublishableKey,
		Timeout:        cfg.HTTPStripeClientTimeout,
	})
	if !stripeClient.Ready() {
		l.Warn("Stripe publishable key not set; card payments will fail as not ready")
	}
	if cfg.RazorpayKeyID == "" {
		l.Warn("Razorpay key id not set; popup checkout will fail as not ready")
	}

	store := session.NewStore(NewSessionFactory(cfg, stripeClient, layout, l), cfg.SessionTTL)

	healthRegistry := health.NewRegistry(
		health.NewProviderChecker(card.ProviderName, stripeClient.Ready),
		health.NewProviderChecker(popup.ProviderName, func() bool { return cfg.RazorpayKeyID != "" }),
	)

	router := httpcontroller.NewRouter(
		handlers.NewHomeHandler(),
		handlers.NewCardHandler(handlers.CardPage{
			PublishableKey: cfg.StripePublishableKey,
			ScriptURL:      cfg.StripeJSURL,
		}),
		handlers.NewPopupHandler(handlers.PopupPage{
			KeyID:     cfg.RazorpayKeyID,
			ScriptURL: cfg.RazorpayCheckoutScriptURL,
			Amount:    cfg.RazorpayAmount,
			Currency:  cfg.RazorpayCurrency,
		}),
		store,
		healthRegistry,
		httpcontroller.RouterConfig{
			SessionTTL:    cfg.SessionTTL,
			SecureCookies: cfg.SecureCookies,
		},
	)
	router.SetUp(engine)

	return engine, store, nil
}

// NewSessionFactory wires a fresh pair of forms for every browser session.
// The Stripe client is shared; the card element and checkout modal belong to
// the session.
func NewSessionFactory(cfg config.Config, sdk card.SDK, layout checkout.Layout, l *slog.Logger) session.Factory {
	merchant := popup.Merchant{
		Key:         cfg.RazorpayKeyID,
		Amount:      cfg.RazorpayAmount,
		Currency:    cfg.RazorpayCurrency,
		Name:        cfg.RazorpayMerchantName,
		Description: cfg.RazorpayDescription,
		ThemeColor:  cfg.RazorpayThemeColor,
		Timeout:     cfg.RazorpayCheckoutTimeout,
	}

	return func(id string) *session.Session {
		element := card.NewHostedElement()
		modal := popup.NewModal(cfg.RazorpayCheckoutGrace)

		cardAdapter := provider.Instrument(card.NewAdapter(sdk, element), l)
		popupAdapter := provider.Instrument(popup.NewAdapter(modal, merchant), l)

		return &session.Session{
			ID:          id,
			Card:        checkout.NewForm(cardAdapter, checkout.WithLayout(layout)),
			CardElement: element,
			Popup:       checkout.NewForm(popupAdapter, checkout.WithLayout(checkout.LayoutPrefill)),
			Modal:       modal,
		}
	}
}
