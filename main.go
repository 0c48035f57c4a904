package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "catalog-backend/docs"
	"catalog-backend/internal/catalog/validation"
	"catalog-backend/internal/cli"
)

func main() {
	// Ctrl+C / SIGTERM で graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := validation.NewEngine(nil)
	if err := cli.NewRootCommand(engine).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrInvalidRecord) {
			log.Printf("[ERROR] %v", err)
		}
		stop()
		os.Exit(1)
	}
}
