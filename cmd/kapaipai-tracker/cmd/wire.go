package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mong0520/kapaipai-api/internal/config"
	"github.com/mong0520/kapaipai-api/internal/engine"
	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	"github.com/mong0520/kapaipai-api/internal/notify"
	"github.com/mong0520/kapaipai-api/internal/store"
	"github.com/mong0520/kapaipai-api/pkg/logger"
)

// loadConfig reads the config file and builds the process logger from it.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}

func openStore(ctx context.Context, cfg *config.Config) (*store.PostgresStore, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return st, nil
}

// newCatalog builds the marketplace client and returns its limiter so the
// readiness probe can report the remaining call budget.
func newCatalog(cfg *config.KapaipaiConfig) (*kapaipai.Client, *kapaipai.RateLimiter) {
	limiter := kapaipai.NewRateLimiter(
		cfg.RateLimit.PerSecond,
		cfg.RateLimit.Burst,
		cfg.RateLimit.DailyLimit,
	)
	client := kapaipai.NewClient(
		kapaipai.WithSearchURL(cfg.SearchURL),
		kapaipai.WithListingsURL(cfg.ListingsURL),
		kapaipai.WithGame(cfg.Game),
		kapaipai.WithTimeout(cfg.Timeout),
		kapaipai.WithRateLimiter(limiter),
	)
	return client, limiter
}

// newNotifier returns the enabled backends, or nil when none is enabled so
// the engine falls back to logging alerts.
func newNotifier(cfg *config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	var backends notify.Multi

	if cfg.Line.Enabled {
		opts := []notify.LineOption{notify.WithDefaultRecipient(cfg.Line.DefaultUserID)}
		if cfg.Line.PushURL != "" {
			opts = append(opts, notify.WithLinePushURL(cfg.Line.PushURL))
		}
		backends = append(backends, notify.NewLineNotifier(cfg.Line.ChannelAccessToken, opts...))
		log.Info("notifier enabled", "backend", "line")
	}

	if cfg.Discord.Enabled {
		backends = append(backends, notify.NewDiscordNotifier(cfg.Discord.WebhookURL))
		log.Info("notifier enabled", "backend", "discord")
	}

	switch len(backends) {
	case 0:
		log.Warn("no notifier enabled, alerts will only be logged")
		return nil
	case 1:
		return backends[0]
	default:
		return backends
	}
}

func newEngine(
	cfg *config.Config,
	catalog kapaipai.Catalog,
	st store.Store,
	log *slog.Logger,
) *engine.Engine {
	eng := engine.NewEngine(catalog, st, newNotifier(&cfg.Notifications, log),
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithWorkers(cfg.Kapaipai.Workers),
		engine.WithIncludeFlawed(cfg.Kapaipai.IncludeFlawed),
		engine.WithLeaseTTL(cfg.Schedule.LeaseTTL),
		engine.WithURLBuilder(kapaipai.URLBuilder{
			Game:          cfg.Kapaipai.Game,
			ProductURLTpl: cfg.Kapaipai.ProductURLTpl,
			ImageURLTpl:   cfg.Kapaipai.ImageURLTpl,
		}),
	)
	log.Info("engine configured",
		"workers", eng.Workers(),
		"include_flawed", cfg.Kapaipai.IncludeFlawed,
	)
	return eng
}
