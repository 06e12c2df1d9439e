package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/mumcuarda/debit/internal/config"
	"github.com/mumcuarda/debit/internal/docio"
	"github.com/mumcuarda/debit/internal/handler"
	"github.com/mumcuarda/debit/internal/render"
	"github.com/mumcuarda/debit/internal/router"
	"github.com/mumcuarda/debit/internal/service"
	"github.com/mumcuarda/debit/internal/slip"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize document I/O
	reader := docio.NewReader()
	renderer := docio.NewRenderer()

	// Initialize extraction pipeline
	parser := slip.NewParser(slip.DefaultLabels, slip.Options{
		DefaultTermDays: cfg.Parse.DefaultTermDays,
		DefaultCurrency: cfg.Parse.DefaultCurrency,
		AmountPolicy:    slip.AmountPolicyFromString(cfg.Parse.AmountPolicy),
	})
	assembler := render.NewAssembler(&cfg.Banking)

	// Initialize services
	slipSvc := service.NewSlipService(reader, renderer, parser, assembler, cfg)

	// Initialize handlers
	slipH := handler.NewSlipHandler(slipSvc)
	healthH := handler.NewHealthHandler(&cfg.Templates)

	// Setup router
	r := router.Setup(cfg, slipH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
