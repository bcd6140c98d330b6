package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tbeaudouin05/stripe-relay/api/errs"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	// Optional: override of the Stripe API base URL (e.g. a stripe-mock instance)
	StripeAPIURL string
	// Optional: accept webhook events whose api_version differs from the SDK's
	StripeIgnoreAPIVersion bool
	// Optional: enables the webhook event journal
	DatabaseURL string
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server ports
	HTTPPort string
	GRPCPort string
	LogLevel string
}

// LoadConfig loads configuration from the environment (and .env) using the global viper instance.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom loads configuration through v, which may also carry bound command-line flags.
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	config := &Config{}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	v.AutomaticEnv()

	vars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", true},
		{"StripeWebhookSecret", "STRIPE_WEBHOOK_SECRET", "Stripe Webhook Secret", true},
		{"StripeAPIURL", "STRIPE_API_URL", "Stripe API URL", false},
		{"StripeIgnoreAPIVersion", "STRIPE_WEBHOOK_IGNORE_API_VERSION", "Stripe Webhook Ignore API Version", false},
		{"DatabaseURL", "DATABASE_URL", "Database URL", false},
		// Optional integration base URL for remote tests
		{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false},
		// Optional server ports
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"GRPCPort", "GRPC_PORT", "gRPC Port", false},
		{"LogLevel", "LOG_LEVEL", "Log Level", false},
	}

	for _, item := range vars {
		value := strings.TrimSpace(v.GetString(item.envVar))
		if item.required && value == "" {
			return nil, errs.Config(fmt.Sprintf("missing required environment variable: %s", item.display), nil)
		}
		field := reflect.ValueOf(config).Elem().FieldByName(item.name)
		switch field.Kind() {
		case reflect.Bool:
			field.SetBool(v.GetBool(item.envVar))
		default:
			field.SetString(value)
		}
	}

	if !strings.HasPrefix(config.StripeSecretKey, "sk_") && !strings.HasPrefix(config.StripeSecretKey, "rk_") {
		return nil, errs.Config("invalid Stripe Secret Key: expected an sk_ or rk_ key", nil)
	}
	if !strings.HasPrefix(config.StripeWebhookSecret, "whsec_") {
		return nil, errs.Config("invalid Stripe Webhook Secret: expected a whsec_ secret", nil)
	}

	// Defaults
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.GRPCPort == "" {
		config.GRPCPort = "50051"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return config, nil
}

// loadDotEnv loads the first .env found in the current directory or its parents.
// Variables already present in the environment win.
func loadDotEnv() error {
	currentDir, _ := os.Getwd()
	for currentDir != "/" && currentDir != "." {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return errs.Config("failed to load .env file", err)
			}
			return nil
		}
		currentDir = filepath.Dir(currentDir)
	}
	return nil
}
