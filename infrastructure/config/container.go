package config

import (
	"fmt"

	"github.com/ngmachado/web3-hooks/application/services"
	"github.com/ngmachado/web3-hooks/application/usecases"
	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"github.com/ngmachado/web3-hooks/infrastructure/logger"
	"github.com/ngmachado/web3-hooks/infrastructure/metrics"
	"github.com/ngmachado/web3-hooks/infrastructure/notifier"
	"github.com/ngmachado/web3-hooks/infrastructure/queue"
	"github.com/ngmachado/web3-hooks/infrastructure/repository"
	"github.com/ngmachado/web3-hooks/infrastructure/subgraph"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// Infrastructure
	Logger      interfaces.Logger
	Metrics     *metrics.Metrics
	DB          *gorm.DB
	Queue       *queue.MemoryQueue
	QueryClient interfaces.EventQueryClient
	Notifier    interfaces.Notifier

	// Repositories
	DeliveryRepository interfaces.DeliveryRepository

	// Services
	EventFetcher     interfaces.EventFetcher
	MessageFormatter interfaces.MessageFormatter
	DrainLoop        *services.DrainLoop

	// Use Cases
	WebhookIntakeUseCase interfaces.WebhookIntakeUseCase
	JobProcessor         interfaces.JobProcessor
}

// NewContainer creates a new dependency injection container
func NewContainer(config *Config) (*Container, error) {
	container := &Container{
		Config: config,
	}

	// Initialize logger
	container.Logger = logger.New(logger.Options{Level: config.LogLevel, Format: config.LogFormat})
	container.Metrics = metrics.NewMetrics()

	// Initialize database (optional)
	if config.HasDatabase() {
		if err := container.initDatabase(); err != nil {
			container.Logger.Warn("Failed to initialize database, delivery history disabled", "error", err)
		}
	}

	if err := container.initNotifier(); err != nil {
		return nil, fmt.Errorf("failed to initialize notifier: %w", err)
	}

	// Initialize services
	container.initServices()

	// Initialize use cases
	container.initUseCases()

	return container, nil
}

// initDatabase initializes the database connection
func (c *Container) initDatabase() error {
	dsn := c.Config.Database.GetDatabaseDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)

	if err := repository.Migrate(db); err != nil {
		_ = sqlDB.Close()
		return err
	}

	c.DB = db
	c.DeliveryRepository = repository.NewDeliveryRepository(db)

	return nil
}

// initNotifier selects the chat channel
func (c *Container) initNotifier() error {
	cfg := c.Config.Notifier

	switch cfg.Kind {
	case NotifierTelegram:
		n, err := notifier.NewTelegramNotifier(notifier.TelegramOptions{
			Token:         cfg.TelegramToken,
			ChatID:        cfg.TelegramChatID,
			RatePerSecond: cfg.RatePerSecond,
			APIURL:        cfg.TelegramAPIURL,
		}, c.Logger)
		if err != nil {
			return err
		}
		c.Notifier = n
	default:
		c.Notifier = notifier.NewSlackNotifier(cfg.SlackWebhookURL, cfg.SlackChannel, cfg.RatePerSecond, c.Logger)
	}

	if !c.Notifier.IsConfigured() {
		c.Logger.Warn("Notifier is not configured, messages will fail to send", "kind", cfg.Kind)
	}

	return nil
}

// initServices initializes domain services
func (c *Container) initServices() {
	c.Queue = queue.NewMemoryQueue()
	c.QueryClient = subgraph.NewGraphQLClient(c.Config.SubgraphURL, c.Config.QueryTimeout, c.Logger)
	c.EventFetcher = subgraph.NewEventFetcher(c.QueryClient, c.Logger)
	c.MessageFormatter = services.NewMessageFormatter(c.Config.ExplorerURL)
}

// initUseCases initializes use cases and the drain loop
func (c *Container) initUseCases() {
	c.WebhookIntakeUseCase = usecases.NewWebhookIntakeUseCase(c.Queue, c.Metrics, c.Logger)

	c.JobProcessor = usecases.NewProcessJobUseCase(
		c.EventFetcher,
		c.MessageFormatter,
		c.Notifier,
		c.DeliveryRepository,
		c.Metrics,
		c.Config.MinAmount,
		c.Logger,
	)

	c.DrainLoop = services.NewDrainLoop(
		c.Queue,
		c.JobProcessor,
		c.Config.ProcessingDelay,
		c.Metrics,
		c.Logger,
	)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				c.Logger.Error("Failed to close database", "error", err)
				return err
			}
		}
	}

	return nil
}
