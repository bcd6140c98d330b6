package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/tbeaudouin05/stripe-relay/api/config"
	"github.com/tbeaudouin05/stripe-relay/api/database"
	"github.com/tbeaudouin05/stripe-relay/api/logging"
	stripeapp "github.com/tbeaudouin05/stripe-relay/api/services/stripe/app"
	stripedb "github.com/tbeaudouin05/stripe-relay/api/services/stripe/db"
	stripegw "github.com/tbeaudouin05/stripe-relay/api/services/stripe/gateway/stripe"
)

var (
	mu            sync.RWMutex
	stripeService stripeapp.Service
	logger        = zap.NewNop()
	journalDB     *sql.DB

	initOnce sync.Once
	initErr  error
)

// Init loads config, builds the logger and the Stripe gateway, opens the event
// journal when DATABASE_URL is set, and wires the service.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if stripeService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l

	g, err := stripegw.New(stripegw.Options{
		SecretKey:                cfg.StripeSecretKey,
		WebhookSecret:            cfg.StripeWebhookSecret,
		APIURL:                   cfg.StripeAPIURL,
		IgnoreAPIVersionMismatch: cfg.StripeIgnoreAPIVersion,
		Logger:                   logger.Named("stripe"),
	})
	if err != nil {
		return fmt.Errorf("failed to build stripe gateway: %w", err)
	}

	// nil interface when the journal is disabled, not a typed nil
	var journal stripeapp.EventJournal
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		db, err := database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		j := stripedb.NewEventJournal(db)
		if err := j.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to initialize event journal: %w", err)
		}
		journalDB = db
		journal = j
		logger.Info("webhook event journal enabled")
	} else {
		logger.Info("DATABASE_URL not set; webhook event journal disabled")
	}

	stripeService = stripeapp.NewService(g, journal, logger.Named("app"))
	return nil
}

func GetStripeService() stripeapp.Service {
	mu.RLock()
	defer mu.RUnlock()
	return stripeService
}

// SetStripeService allows tests to inject a stub implementation.
func SetStripeService(s stripeapp.Service) {
	mu.Lock()
	defer mu.Unlock()
	stripeService = s
}

// Logger returns the process logger, a no-op logger before Init.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}

// Close releases the journal connection pool and flushes the logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	if journalDB == nil {
		return nil
	}
	err := journalDB.Close()
	journalDB = nil
	return err
}
