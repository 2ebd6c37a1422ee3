package http

import (
	"time"

	"PaymentGatewayPractice/internal/controller/http/handlers"
	"PaymentGatewayPractice/internal/provider/card"
	"PaymentGatewayPractice/internal/provider/popup"
	"PaymentGatewayPractice/internal/session"
	"PaymentGatewayPractice/pkg/health"
	"PaymentGatewayPractice/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Router struct {
	home           *handlers.HomeHandler
	card           *handlers.CardHandler
	popup          *handlers.PopupHandler
	sessions       *session.Store
	sessionTTL     time.Duration
	secureCookies  bool
	healthRegistry *health.Registry
}

type RouterConfig struct {
	SessionTTL    time.Duration
	SecureCookies bool
}

func (r *Router) SetUp(engine *gin.Engine) {
	health.Register(engine, r.healthRegistry, health.DefaultTimeout)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.GET("/", r.home.Show)

	pages := engine.Group("/", session.Middleware(r.sessions, r.sessionTTL, r.secureCookies))

	stripe := pages.Group("/stripe", metrics.Provider(card.ProviderName))
	stripe.GET("", r.card.Show)
	stripe.POST("", r.card.Submit)
	stripe.POST("/fields", r.card.UpdateField)
	stripe.GET("/status", r.card.Status)

	razorpay := pages.Group("/razorpay", metrics.Provider(popup.ProviderName))
	razorpay.GET("", r.popup.Show)
	razorpay.POST("", r.popup.Submit)
	razorpay.POST("/fields", r.popup.UpdateField)
	razorpay.GET("/status", r.popup.Status)
	razorpay.POST("/checkout", r.popup.Complete)
	razorpay.POST("/checkout/unavailable", r.popup.Unavailable)
}

func NewRouter(
	home *handlers.HomeHandler,
	card *handlers.CardHandler,
	popup *handlers.PopupHandler,
	sessions *session.Store,
	healthRegistry *health.Registry,
	cfg RouterConfig,
) *Router {
	return &Router{
		home:           home,
		card:           card,
		popup:          popup,
		sessions:       sessions,
		sessionTTL:     cfg.SessionTTL,
		secureCookies:  cfg.SecureCookies,
		healthRegistry: healthRegistry,
	}
}
