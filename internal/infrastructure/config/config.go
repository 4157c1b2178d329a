package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	Dynamo      DynamoConfig `mapstructure:"dynamo"`
	Logger      LoggerConfig `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DynamoConfig contains DynamoDB connection and table settings
type DynamoConfig struct {
	Region           string        `mapstructure:"region"`
	Endpoint         string        `mapstructure:"endpoint"` // set for dynamodb-local, empty for AWS
	Tables           TableConfig   `mapstructure:"tables"`
	MaxTransactItems int           `mapstructure:"maxTransactItems"`
	RequestTimeout   time.Duration `mapstructure:"requestTimeout"` // seconds
}

// TableConfig names the DynamoDB tables used by the application
type TableConfig struct {
	Todos          string `mapstructure:"todos"`
	Projects       string `mapstructure:"projects"`
	ProjectMembers string `mapstructure:"projectMembers"`
	Users          string `mapstructure:"users"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}
