package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	backend_api_client "listing-lifecycle-service/internal/adapters/backend_client"
	logger_adapter "listing-lifecycle-service/internal/adapters/logger"
	postgres_adapter "listing-lifecycle-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-lifecycle-service/internal/adapters/rabbitmq"
	"listing-lifecycle-service/internal/adapters/rest"
	"listing-lifecycle-service/internal/configs"
	"listing-lifecycle-service/internal/constants"
	"listing-lifecycle-service/internal/core/port"
	"listing-lifecycle-service/internal/core/usecase"
	fluentlogger "listing-lifecycle-service/pkg/fluent_logger"
	"listing-lifecycle-service/pkg/postgres"
	"listing-lifecycle-service/pkg/rabbitmq/rabbitmq_common"
	"listing-lifecycle-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config        *configs.AppConfig
	dbPool        *pgxpool.Pool
	apiServer     *rest.Server
	eventProducer *rabbitmq_producer.Publisher

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger)
	connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, connManagerBridge)
	if err != nil {
		appLogger.Error("Failed to create connection manager", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	producerCfg := rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		ExchangeName:             constants.ListingEventsExchange,
		ExchangeType:             constants.ListingEventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
	}
	eventProducer, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		appLogger.Error("Failed to create event producer", err, port.Fields{"url": appConfig.RabbitMQ.URL})
		dbPool.Close()
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	appLogger.Info("RabbitMQ Event Producer initialized.", nil)

	// --- 4. АДАПТЕРЫ ---
	draftStoreAdapter, err := postgres_adapter.NewPostgresDraftStore(dbPool)
	if err != nil {
		appLogger.Error("Failed to create postgres draft store", err, nil)
		eventProducer.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres draft store: %w", err)
	}

	backendClient := backend_api_client.NewBackendAPIClient(
		appConfig.BackendAPI.BaseURL,
		appConfig.BackendAPI.AuthToken,
		appConfig.BackendAPI.RequestTimeout,
	)

	listingEventsAdapter, err := rabbitmq_adapter.NewRabbitMQListingEventsAdapter(eventProducer)
	if err != nil {
		appLogger.Error("Failed to create listing events adapter", err, nil)
		eventProducer.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing events adapter: %w", err)
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 5. USE CASES (ядро бизнес-логики) ---
	aggregateListingsUseCase := usecase.NewAggregateListingsUseCase(draftStoreAdapter, backendClient, appConfig.FetchTimeout)
	createListingUseCase := usecase.NewCreateListingUseCase(draftStoreAdapter)
	getListingUseCase := usecase.NewGetListingUseCase(draftStoreAdapter, backendClient)
	updateBasicInfoUseCase := usecase.NewUpdateBasicInfoUseCase(draftStoreAdapter)
	updateImagesUseCase := usecase.NewUpdateImagesUseCase(draftStoreAdapter)
	updateCoordinatesUseCase := usecase.NewUpdateCoordinatesUseCase(draftStoreAdapter)
	updateFeaturesUseCase := usecase.NewUpdateFeaturesUseCase(draftStoreAdapter)
	publishListingUseCase := usecase.NewPublishListingUseCase(draftStoreAdapter, listingEventsAdapter)
	removeListingUseCase := usecase.NewRemoveListingUseCase(draftStoreAdapter, backendClient, listingEventsAdapter)

	// --- 6. REST API Server ---
	apiHandlers := rest.NewListingsHandler(
		aggregateListingsUseCase,
		createListingUseCase,
		getListingUseCase,
		updateBasicInfoUseCase,
		updateImagesUseCase,
		updateCoordinatesUseCase,
		updateFeaturesUseCase,
		publishListingUseCase,
		removeListingUseCase,
	)
	apiServer := rest.NewServer(appConfig.Rest.PORT, apiHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// Собираем приложение
	application := &App{
		config:        appConfig,
		dbPool:        dbPool,
		apiServer:     apiServer,
		eventProducer: eventProducer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventProducer != nil {
			if err := a.eventProducer.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
