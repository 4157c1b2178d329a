package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	projectUseCase "github.com/lucasferrari/taskboard/internal/domain/usecase/project"
	todoUseCase "github.com/lucasferrari/taskboard/internal/domain/usecase/todo"
	userUseCase "github.com/lucasferrari/taskboard/internal/domain/usecase/user"

	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/handler"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/routes"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/dynamo"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/logger"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/repository"
	timeProvider "github.com/lucasferrari/taskboard/internal/infrastructure/adapter/time"
	"github.com/lucasferrari/taskboard/internal/infrastructure/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Build the DynamoDB client
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Dynamo.Region),
	)
	if err != nil {
		appLogger.Error("Failed to load AWS configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		// A custom endpoint points the client at dynamodb-local
		if cfg.Dynamo.Endpoint != "" {
			o.BaseEndpoint = &cfg.Dynamo.Endpoint
		}
	})

	tables := repository.Tables{
		Todos:          cfg.Dynamo.Tables.Todos,
		Projects:       cfg.Dynamo.Tables.Projects,
		ProjectMembers: cfg.Dynamo.Tables.ProjectMembers,
		Users:          cfg.Dynamo.Tables.Users,
	}

	// Standalone repositories run each write as its own transaction
	todoRepo := repository.NewTodoRepository(client, tables.Todos, nil, appLogger)
	projectRepo := repository.NewProjectRepository(client, tables.Projects, tables.ProjectMembers, nil, appLogger)
	userRepo := repository.NewUserRepository(client, tables.Users, nil, appLogger)

	// The runner builds buffered repository sets for multi-item commits
	factory := repository.NewUnitOfWorkFactory(client, tables, appLogger)
	runner := dynamo.NewRunner(client, factory, cfg.Dynamo.MaxTransactItems, appLogger)

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	projectUseCaseImpl := projectUseCase.NewProjectUseCase(runner, projectRepo, userRepo, tp, appLogger)
	todoUseCaseImpl := todoUseCase.NewTodoUseCase(todoRepo, projectRepo, tp, appLogger)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	projectHandler := handler.NewProjectHandler(projectUseCaseImpl, appLogger)
	todoHandler := handler.NewTodoHandler(todoUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, userHandler, projectHandler, todoHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Dynamo.Region == "" {
		missingConfigs = append(missingConfigs, "dynamo.region (or TB_DYNAMO_REGION environment variable)")
	}
	if cfg.Dynamo.Tables.Todos == "" {
		missingConfigs = append(missingConfigs, "dynamo.tables.todos")
	}
	if cfg.Dynamo.Tables.Projects == "" {
		missingConfigs = append(missingConfigs, "dynamo.tables.projects")
	}
	if cfg.Dynamo.Tables.ProjectMembers == "" {
		missingConfigs = append(missingConfigs, "dynamo.tables.projectMembers")
	}
	if cfg.Dynamo.Tables.Users == "" {
		missingConfigs = append(missingConfigs, "dynamo.tables.users")
	}
	if cfg.Dynamo.MaxTransactItems <= 0 {
		missingConfigs = append(missingConfigs, "dynamo.maxTransactItems")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
