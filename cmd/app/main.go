package main

import (
	"log"

	"PaymentGatewayPractice/config"
	"PaymentGatewayPractice/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("App error: %s", err)
	}
}
