package main

import (
	"context"
	"fmt"
	"os"

	"smart-parking/internal/console"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/handler/middleware"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/config"
	"smart-parking/internal/pkg/idgen"
	"smart-parking/internal/usecase/parking"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	// Logs go to stderr so stdout carries only the walkthrough.
	logger := middleware.NewLoggerTo(os.Stderr, cfg.Log).GetSlogLogger()

	m, err := parking.NewManager(parking.Deps{
		Clock:  clock.NewRealClock(),
		IDs:    idgen.NewUUIDGenerator(),
		Logger: logger,
	}, parking.LayoutFromConfig(cfg.Parking))
	if err != nil {
		return err
	}

	driver := user.NewUser("u1", "Alice", "alice@example.com")
	return console.Run(context.Background(), os.Stdout, m, driver)
}
