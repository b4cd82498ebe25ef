package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/pr-warden/internal/analysis"
	"github.com/sevigo/pr-warden/internal/app"
	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/db"
	"github.com/sevigo/pr-warden/internal/github"
	"github.com/sevigo/pr-warden/internal/ledger"
	"github.com/sevigo/pr-warden/internal/llm"
	"github.com/sevigo/pr-warden/internal/logger"
	"github.com/sevigo/pr-warden/internal/review"
	"github.com/sevigo/pr-warden/internal/server"
	"github.com/sevigo/pr-warden/internal/standards"
	"github.com/sevigo/pr-warden/internal/storage"
)

var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	llm.NewPromptManager,
	provideLogger,
	provideSource,
	provideOracle,
	provideAnalyzer,
	provideArchive,
	provideLedger,
	provideOrchestrator,
	provideServer,
	wire.Bind(new(core.ChangeRequestSource), new(*github.Client)),
	wire.Bind(new(review.Analyzer), new(*analysis.Dispatcher)),
)

func provideLogger(cfg *config.Config) *slog.Logger {
	l := logger.NewLogger(cfg.Logging, nil)
	slog.SetDefault(l)
	return l
}

func provideSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*github.Client, error) {
	client, err := github.NewClient(ctx, cfg.GitHub, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return client, nil
}

func provideOracle(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.GenerationOracle, error) {
	logger.Info("connecting to generation oracle", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	return llm.NewOracle(ctx, cfg.LLM, logger)
}

func provideAnalyzer(cfg *config.Config, oracle core.GenerationOracle, prompts *llm.PromptManager, logger *slog.Logger) *analysis.Dispatcher {
	return analysis.NewDispatcher(oracle, prompts, cfg.LLM.Provider, cfg.LLM.MaxTokens, logger)
}

// provideArchive returns a nil Store when the database is disabled.
func provideArchive(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Store, func(), error) {
	if !cfg.Database.Enabled {
		return nil, func() {}, nil
	}
	conn, cleanup, err := db.NewDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return storage.NewStore(conn.DB), cleanup, nil
}

func provideLedger(cfg *config.Config, archive storage.Store, logger *slog.Logger) *ledger.Ledger {
	registry := standards.NewRegistry()
	registry.Update(standards.Defaults())

	opts := []ledger.Option{ledger.WithLogger(logger)}
	if archive != nil {
		opts = append(opts, ledger.WithArchive(archive))
	}
	l := ledger.New(registry, opts...)

	app.LoadCustomStandards(l, cfg.Review.StandardsPath, cfg.Review.StandardsPathExplicit, logger)
	return l
}

func provideOrchestrator(cfg *config.Config, source core.ChangeRequestSource, analyzer review.Analyzer, l *ledger.Ledger, logger *slog.Logger) *review.Orchestrator {
	return review.New(cfg.GitHub.Org, source, analyzer, l,
		review.WithReviewEvent(core.ReviewEvent(cfg.Review.Event)),
		review.WithLogger(logger),
	)
}

// provideServer returns nil when the status API is disabled.
func provideServer(cfg *config.Config, l *ledger.Ledger, archive storage.Store, logger *slog.Logger) *server.Server {
	if !cfg.Server.Enabled {
		return nil
	}
	return server.NewServer(cfg.Server, l, archive, logger)
}
