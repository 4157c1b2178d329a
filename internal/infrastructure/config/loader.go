package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		// Not fatal, the config file and environment can still provide everything
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override config file values
	v.SetEnvPrefix("TB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// DynamoDB defaults
	v.SetDefault("dynamo.region", "us-east-1")
	v.SetDefault("dynamo.endpoint", "")
	v.SetDefault("dynamo.tables.todos", "taskboard-todos")
	v.SetDefault("dynamo.tables.projects", "taskboard-projects")
	v.SetDefault("dynamo.tables.projectMembers", "taskboard-project-members")
	v.SetDefault("dynamo.tables.users", "taskboard-users")
	v.SetDefault("dynamo.maxTransactItems", 100) // provider ceiling per transaction
	v.SetDefault("dynamo.requestTimeout", 5)     // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)
}

// getEnvironment determines the environment to use based on TB_ENV
func getEnvironment() string {
	env := os.Getenv("TB_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	// DynamoDB connection settings
	if region := os.Getenv("TB_DYNAMO_REGION"); region != "" {
		v.Set("dynamo.region", region)
	}
	if endpoint := os.Getenv("TB_DYNAMO_ENDPOINT"); endpoint != "" {
		v.Set("dynamo.endpoint", endpoint)
	}

	// Table names
	if todos := os.Getenv("TB_DYNAMO_TABLE_TODOS"); todos != "" {
		v.Set("dynamo.tables.todos", todos)
	}
	if projects := os.Getenv("TB_DYNAMO_TABLE_PROJECTS"); projects != "" {
		v.Set("dynamo.tables.projects", projects)
	}
	if members := os.Getenv("TB_DYNAMO_TABLE_PROJECT_MEMBERS"); members != "" {
		v.Set("dynamo.tables.projectMembers", members)
	}
	if users := os.Getenv("TB_DYNAMO_TABLE_USERS"); users != "" {
		v.Set("dynamo.tables.users", users)
	}

	// Transaction settings
	if maxItems := getEnvInt("TB_DYNAMO_MAX_TRANSACT_ITEMS", 0); maxItems > 0 {
		v.Set("dynamo.maxTransactItems", maxItems)
	}
	if requestTimeout := getEnvInt("TB_DYNAMO_REQUEST_TIMEOUT_SECONDS", 0); requestTimeout > 0 {
		v.Set("dynamo.requestTimeout", requestTimeout)
	}

	// Server settings
	if serverHost := os.Getenv("TB_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := os.Getenv("TB_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}

	// Logger settings
	if logLevel := os.Getenv("TB_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Dynamo.RequestTimeout = time.Duration(config.Dynamo.RequestTimeout) * time.Second
}
