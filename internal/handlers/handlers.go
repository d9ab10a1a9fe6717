package handlers

import (
	"context"
	"log/slog"

	"github.com/vango-dev/vango-ui/internal/auth"
	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/metrics"
	"github.com/vango-dev/vango-ui/internal/site"
	"github.com/vango-dev/vango-ui/internal/users"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Accounts holds the dependencies of the user account routes.
type Accounts struct {
	Users    *users.Service
	Sessions *auth.SessionStore
	Tokens   *auth.TokenIssuer
	DB       Pinger
}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	site     *site.Builder
	metrics  *metrics.Metrics
	accounts *Accounts
	logger   *slog.Logger
}

// New creates a new Handlers instance with all dependencies. A nil accounts
// leaves the account routes unmounted.
func New(cfg *config.Config, builder *site.Builder, m *metrics.Metrics, accounts *Accounts, logger *slog.Logger) *Handlers {
	return &Handlers{
		config:   cfg,
		site:     builder,
		metrics:  m,
		accounts: accounts,
		logger:   logger,
	}
}
