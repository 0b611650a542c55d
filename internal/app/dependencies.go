package app

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vladislavdragonenkov/restock/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/restock/internal/health"
	"github.com/vladislavdragonenkov/restock/internal/service/catalog"
	"github.com/vladislavdragonenkov/restock/internal/service/identity"
	"github.com/vladislavdragonenkov/restock/internal/service/notify"
	"github.com/vladislavdragonenkov/restock/internal/storage/memory"
	"github.com/vladislavdragonenkov/restock/internal/storage/postgres"
)

// storageDependencies: репозитории выбранного хранилища.
type storageDependencies struct {
	tables          domain.TableRepository
	orders          domain.OrderRepository
	sales           domain.SaleRepository
	outboxRepo      domain.OutboxRepository
	idempotencyRepo domain.IdempotencyRepository
	// storageChecker равен nil для in-memory хранилища.
	storageChecker healthcheck.Checker
	closeFn        func() error
}

func initStorage(ctx context.Context, cfg Config, logger *log.Entry) (*storageDependencies, error) {
	switch cfg.StorageDriver {
	case "", StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return &storageDependencies{
			tables:          memory.NewTableRepository(),
			orders:          memory.NewOrderRepository(),
			sales:           memory.NewSaleRepository(),
			outboxRepo:      memory.NewOutboxRepository(),
			idempotencyRepo: memory.NewIdempotencyRepository(),
		}, nil
	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is required for postgres storage driver")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			state, err := store.MigrationStatus(ctx)
			if err == nil {
				logger.WithFields(log.Fields{
					"version": state.Version,
					"applied": state.Applied,
				}).Info("postgres migrations applied")
			}
		}
		return &storageDependencies{
			tables:          postgres.NewTableRepository(store),
			orders:          postgres.NewOrderRepository(store),
			sales:           postgres.NewSaleRepository(store),
			outboxRepo:      postgres.NewOutboxRepository(store),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			storageChecker:  healthcheck.NewPingChecker("postgres", store),
			closeFn:         store.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// collaborators содержит внешние сервисы: каталог, пользователи и почта.
type collaborators struct {
	catalog  domain.CatalogService
	identity domain.IdentityService
	notifier domain.Notifier
	conns    []*grpc.ClientConn
}

func initCollaborators(cfg Config, logger *log.Entry) (*collaborators, error) {
	c := &collaborators{}

	if cfg.CatalogAddr != "" {
		conn, err := dial(cfg.CatalogAddr)
		if err != nil {
			return nil, fmt.Errorf("dial catalog %s: %w", cfg.CatalogAddr, err)
		}
		c.conns = append(c.conns, conn)
		c.catalog = catalog.NewClient(conn, cfg.ResolverTimeout, logger.WithField("component", "catalog-client"))
	} else {
		logger.Warn("catalog address is not set, using built-in demo catalog")
		c.catalog = demoCatalog()
	}

	if cfg.IdentityAddr != "" {
		conn, err := dial(cfg.IdentityAddr)
		if err != nil {
			c.close(logger)
			return nil, fmt.Errorf("dial identity %s: %w", cfg.IdentityAddr, err)
		}
		c.conns = append(c.conns, conn)
		c.identity = identity.NewClient(conn, cfg.ResolverTimeout, logger.WithField("component", "identity-client"))
	} else {
		logger.Warn("identity address is not set, using built-in demo users")
		c.identity = demoIdentity()
	}

	if cfg.SMTPAddr != "" {
		c.notifier = notify.NewSMTPNotifier(notify.SMTPConfig{
			Addr:     cfg.SMTPAddr,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}, logger.WithField("component", "smtp-notifier"))
	} else {
		c.notifier = notify.NewLogNotifier(logger.WithField("component", "log-notifier"))
	}
	return c, nil
}

func (c *collaborators) close(logger *log.Entry) {
	for _, conn := range c.conns {
		if err := conn.Close(); err != nil {
			logger.WithError(err).Warn("failed to close upstream connection")
		}
	}
}

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func demoCatalog() *catalog.MockService {
	return catalog.NewMockService(
		domain.Product{ID: 1, Name: "Margherita", SKU: "PZ-001", Category: "pizza", Price: 950, Stock: 50},
		domain.Product{ID: 2, Name: "Carbonara", SKU: "PS-002", Category: "pasta", Price: 1200, Stock: 40},
		domain.Product{ID: 3, Name: "Lemonade", SKU: "DR-003", Category: "drinks", Price: 350, Stock: 100},
	)
}

func demoIdentity() *identity.MockService {
	return identity.NewMockService(
		domain.User{ID: 1, Email: "alice@restock.local", Name: "Alice"},
		domain.User{ID: 2, Email: "bob@restock.local", Name: "Bob"},
	)
}
