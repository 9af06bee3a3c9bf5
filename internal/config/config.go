package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	GraphQL  GraphQLConfig
}

type AppConfig struct {
	Host               string `validate:"required"`
	Port               string `validate:"required,numeric"`
	Environment        string
	LogFilePath        string `validate:"required"`
	CorsAllowedOrigins string
	MetricsAddr        string // empty disables the metrics listener
}

type DatabaseConfig struct {
	Driver     string `validate:"oneof=mongo postgres memory"`
	MongoURI   string `validate:"required_if=Driver mongo"`
	Name       string `validate:"required_if=Driver mongo"`
	Connection string `validate:"required_if=Driver postgres"` // PostgreSQL DSN
	SeedFile   string // memory driver only
}

type GraphQLConfig struct {
	MaxDepth       int `validate:"gte=0"`
	MaxParallelism int `validate:"gte=0"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Host:               getEnv("APP_HOST", "127.0.0.1"),
			Port:               getEnv("APP_PORT", "3030"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			MetricsAddr:        getEnv("METRICS_ADDR", ""),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", DriverMongo),
			MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Name:       getEnv("DB_NAME", "zeppelin"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			SeedFile:   getEnv("SEED_FILE", ""),
		},
		GraphQL: GraphQLConfig{
			MaxDepth:       getEnvAsInt("GRAPHQL_MAX_DEPTH", 10),
			MaxParallelism: getEnvAsInt("GRAPHQL_MAX_PARALLELISM", 10),
		},
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) ListenAddr() string {
	return c.App.Host + ":" + c.App.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
