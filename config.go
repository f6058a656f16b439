package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/hasanmehediii/CSE-2211-Project/database"
	aws_pkg "github.com/hasanmehediii/CSE-2211-Project/pkg/aws"
	"github.com/joho/godotenv"
)

const dbSecretName = "carshop/DB_CREDENTIALS"

// Config holds all configuration for the API.
type Config struct {
	Port              string
	Env               string
	PostgresUser      string
	PostgresPassword  string
	PostgresDB        string
	PostgresHost      string
	PostgresPort      string
	PostgresSSLMode   string
	PostgresTimeZone  string
	CORSAllowedOrigin string
	MetricsPrefix     string
	ImageBucket       string
	ImagePublicBase   string
	TopListLimit      int
}

// DatabaseSettings converts the Postgres values for database.Connect.
func (c *Config) DatabaseSettings() database.Settings {
	return database.Settings{
		Host:     c.PostgresHost,
		Port:     c.PostgresPort,
		User:     c.PostgresUser,
		Password: c.PostgresPassword,
		Name:     c.PostgresDB,
		SSLMode:  c.PostgresSSLMode,
		TimeZone: c.PostgresTimeZone,
		Debug:    c.Env == "development",
	}
}

// secretMapGetter is satisfied by aws_pkg.SecretsClient.
type secretMapGetter interface {
	GetSecretMap(ctx context.Context, name string) (map[string]string, error)
}

// LoadConfig reads configuration from the environment (and .env when present)
// with an optional Secrets Manager override for database credentials.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := configFromEnv()
	if err != nil {
		return nil, err
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			cfg.applySecrets(context.Background(), aws_pkg.NewSecretsClient(awsCfg))
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFromEnv() (*Config, error) {
	limit, err := strconv.Atoi(getEnv("TOP_LIST_LIMIT", "6"))
	if err != nil || limit < 1 || limit > 100 {
		return nil, fmt.Errorf("TOP_LIST_LIMIT must be an integer between 1 and 100")
	}
	return &Config{
		Port:              getEnv("PORT", "8000"),
		Env:               getEnv("APP_ENV", "development"),
		PostgresUser:      os.Getenv("POSTGRES_USER"),
		PostgresPassword:  os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:        os.Getenv("POSTGRES_DB"),
		PostgresHost:      os.Getenv("POSTGRES_HOST"),
		PostgresPort:      getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:   getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone:  getEnv("POSTGRES_TIMEZONE", "UTC"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		MetricsPrefix:     getEnv("METRICS_PREFIX", "carshop"),
		ImageBucket:       os.Getenv("S3_BUCKET_IMAGES"),
		ImagePublicBase:   os.Getenv("S3_PUBLIC_BASE_URL"),
		TopListLimit:      limit,
	}, nil
}

// applySecrets overrides database credentials with any non-empty values in
// the secret. A missing secret leaves the environment values in place.
func (c *Config) applySecrets(ctx context.Context, sm secretMapGetter) {
	values, err := sm.GetSecretMap(ctx, dbSecretName)
	if err != nil {
		return
	}
	for key, dst := range map[string]*string{
		"POSTGRES_USER":     &c.PostgresUser,
		"POSTGRES_PASSWORD": &c.PostgresPassword,
		"POSTGRES_DB":       &c.PostgresDB,
		"POSTGRES_HOST":     &c.PostgresHost,
		"POSTGRES_PORT":     &c.PostgresPort,
	} {
		if v := values[key]; v != "" {
			*dst = v
		}
	}
}

func (c *Config) validate() error {
	if c.PostgresUser == "" || c.PostgresPassword == "" || c.PostgresDB == "" || c.PostgresHost == "" {
		return fmt.Errorf("database config incomplete")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
