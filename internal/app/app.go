package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/zdenekh/club-fines/internal/config"
	"github.com/zdenekh/club-fines/internal/domain/cashbox"
	"github.com/zdenekh/club-fines/internal/domain/category"
	"github.com/zdenekh/club-fines/internal/domain/expense"
	"github.com/zdenekh/club-fines/internal/domain/fine"
	"github.com/zdenekh/club-fines/internal/domain/finetype"
	"github.com/zdenekh/club-fines/internal/domain/payment"
	"github.com/zdenekh/club-fines/internal/domain/player"
	"github.com/zdenekh/club-fines/internal/domain/session"
	"github.com/zdenekh/club-fines/internal/domain/user"
	"github.com/zdenekh/club-fines/internal/infrastructure/repository/memory"
	"github.com/zdenekh/club-fines/internal/infrastructure/repository/postgres"
	"github.com/zdenekh/club-fines/internal/interfaces/httpapi"
	idgen "github.com/zdenekh/club-fines/internal/platform/id"
	"github.com/zdenekh/club-fines/internal/platform/logging"
	"github.com/zdenekh/club-fines/internal/usecase"
)

type repositories struct {
	categories category.Repository
	players    player.Repository
	fineTypes  finetype.Repository
	fines      fine.Repository
	payments   payment.Repository
	cashBoxes  cashbox.Repository
	expenses   expense.Repository
	users      user.Repository
	sessions   session.Repository
}

// App wires configuration, storage, services and the HTTP server together.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	server *http.Server
	auth   *usecase.AuthService
	db     *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, db, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	idGen := idgen.NewRandomGenerator()

	ledgerSvc := usecase.NewLedgerService(
		repos.categories,
		repos.players,
		repos.fines,
		repos.payments,
		repos.cashBoxes,
		repos.expenses,
	)
	authSvc := usecase.NewAuthService(repos.users, repos.sessions, logger)

	handler := httpapi.NewHandler(
		usecase.NewCategoryService(repos.categories, idGen, logger),
		usecase.NewPlayerService(repos.categories, repos.players, idGen, logger),
		usecase.NewFineTypeService(repos.categories, repos.fineTypes, idGen, logger),
		usecase.NewFineService(repos.players, repos.fineTypes, repos.fines, idGen, logger),
		usecase.NewPaymentService(repos.players, repos.payments, ledgerSvc, idGen, logger),
		usecase.NewTreasuryService(repos.categories, repos.cashBoxes, repos.expenses, idGen, logger),
		ledgerSvc,
		authSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		server: server,
		auth:   authSvc,
		db:     db,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting",
			"addr", a.cfg.HTTPAddr,
			"storage", a.cfg.StorageMode,
			"env", a.cfg.AppEnv,
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	purgeCtx, stopPurge := context.WithCancel(ctx)
	defer stopPurge()
	go a.runSessionPurge(purgeCtx)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	a.logger.Info("http server stopped")
	return nil
}

// Close releases storage resources. Call after Run returns.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) runSessionPurge(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.SessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := a.auth.PurgeExpiredSessions(ctx)
			if err != nil {
				a.logger.WarnContext(ctx, "session purge failed", "error", err)
				continue
			}
			if purged > 0 {
				a.logger.InfoContext(ctx, "expired sessions purged", "count", purged)
			}
		}
	}
}

func buildRepositories(cfg config.Config) (repositories, *sqlx.DB, error) {
	switch cfg.StorageMode {
	case config.StoragePostgres:
		db, err := sqlx.Connect("postgres", cfg.DBURL)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("connect postgres: %w", err)
		}
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)

		return repositories{
			categories: postgres.NewCategoryRepository(db),
			players:    postgres.NewPlayerRepository(db),
			fineTypes:  postgres.NewFineTypeRepository(db),
			fines:      postgres.NewFineRepository(db),
			payments:   postgres.NewPaymentRepository(db),
			cashBoxes:  postgres.NewCashBoxRepository(db),
			expenses:   postgres.NewExpenseRepository(db),
			users:      postgres.NewUserRepository(db),
			sessions:   postgres.NewSessionRepository(db),
		}, db, nil
	default:
		return repositories{
			categories: memory.NewCategoryRepository(memory.SeedCategories()),
			players:    memory.NewPlayerRepository(memory.SeedPlayers()),
			fineTypes:  memory.NewFineTypeRepository(memory.SeedFineTypes()),
			fines:      memory.NewFineRepository(nil),
			payments:   memory.NewPaymentRepository(nil),
			cashBoxes:  memory.NewCashBoxRepository(nil),
			expenses:   memory.NewExpenseRepository(nil),
			users:      memory.NewUserRepository(memory.SeedUsers()),
			sessions:   memory.NewSessionRepository(),
		}, nil, nil
	}
}
