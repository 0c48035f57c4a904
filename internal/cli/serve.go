package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"catalog-backend/internal/catalog/books"
	"catalog-backend/internal/catalog/inventory"
	"catalog-backend/internal/catalog/loans"
	"catalog-backend/internal/catalog/validation"
	"catalog-backend/internal/platform/config"
	"catalog-backend/internal/platform/httpserver"
)

func newServeCommand(configPath *string, engine *validation.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath, engine)
		},
	}
}

// NewRouter は API ルートを登録済みの gin.Engine を返す。
func NewRouter(ctx context.Context, cfg *config.Config, engine *validation.Engine) (*gin.Engine, error) {
	ledger := inventory.NewLedger()
	bookSvc := books.NewService(ledger, engine)

	if cfg.Library.Seed {
		if err := bookSvc.Seed(ctx, books.DefaultSeed()); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		log.Printf("[INFO] seeded %d books", len(books.DefaultSeed()))
	}

	r := httpserver.NewEngine(cfg)

	// /api
	api := r.Group("/api")
	books.RegisterRoutes(api, bookSvc)
	loans.RegisterRoutes(api, loans.NewService(ledger, cfg.Library.DefaultCaller))
	return r, nil
}

func runServe(ctx context.Context, configPath string, engine *validation.Engine) error {
	// 設定読み込み
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Printf("[INFO] mode:%s", cfg.Mode)

	gin.SetMode(gin.ReleaseMode)
	r, err := NewRouter(ctx, cfg, engine)
	if err != nil {
		return err
	}
	return httpserver.Run(ctx, cfg, r)
}
