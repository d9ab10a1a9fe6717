package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vango-dev/vango-ui/internal/auth"
	"github.com/vango-dev/vango-ui/internal/handlers"
	"github.com/vango-dev/vango-ui/internal/users"
)

// connectTimeout bounds how long startup waits for the database.
const connectTimeout = 30 * time.Second

// openStore connects to $DATABASE_URL and ensures the users table exists.
func openStore(ctx context.Context) (*users.PgStore, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := users.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := users.NewPgStore(pool)
	if err := store.Init(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	logger.Info("database ready")
	return store, pool.Close, nil
}

func openAccounts(ctx context.Context) (*handlers.Accounts, func(), error) {
	store, closeDB, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	return &handlers.Accounts{
		Users:    users.NewService(store, 0),
		Sessions: auth.NewSessionStore(cfg.SessionSecret, cfg.SessionMaxAge, cfg.IsProduction()),
		Tokens:   auth.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL),
		DB:       store,
	}, closeDB, nil
}
