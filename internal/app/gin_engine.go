package app

import (
	"fmt"
	"log/slog"

	"PaymentGatewayPractice/internal/controller/http/templates"
	"PaymentGatewayPractice/pkg/logger"
	"PaymentGatewayPractice/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *slog.Logger) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	engine := gin.New()
	engine.Use(metrics.GinMiddleware("/metrics", "/health/live", "/health/ready"), logger.CorrelationMiddleware(), logger.RequestLogger(l), gin.Recovery())
	engine.SetHTMLTemplate(tmpl)
	return engine, nil
}
