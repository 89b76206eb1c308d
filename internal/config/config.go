package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "HTTP_SERVER_PORT"

	// Env is the environment variable for environment name.
	Env = "ENV"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// EnvFilePath is the environment variable for .env file path (only for local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for AWS endpoint.
	AWSEndpointEnv = "AWS_ENDPOINT"

	// SQSQueueURLEnv is the environment variable for SQS queue URL.
	SQSQueueURLEnv = "SQS_QUEUE_URL"

	// SearchDebounceMSEnv is the environment variable for the search quiet window in milliseconds.
	SearchDebounceMSEnv = "SEARCH_DEBOUNCE_MS"

	// SeedDemoProductsEnv is the environment variable enabling the demo product seed.
	SeedDemoProductsEnv = "SEED_DEMO_PRODUCTS"

	// PokeAPIBaseURLEnv is the environment variable for the PokeAPI base URL.
	PokeAPIBaseURLEnv = "POKEAPI_BASE_URL"

	// PokeAPITimeoutMSEnv is the environment variable for the per-request PokeAPI timeout in milliseconds.
	PokeAPITimeoutMSEnv = "POKEAPI_TIMEOUT_MS"

	// PokeAPIPokemonEnv is the environment variable for the pokemon to fetch.
	PokeAPIPokemonEnv = "POKEAPI_POKEMON"

	// PokeAPIAbilityEnv is the environment variable for the ability to fetch.
	PokeAPIAbilityEnv = "POKEAPI_ABILITY"

	// OutboxIntervalMSEnv is the environment variable for how often queued notifications are published, in milliseconds.
	OutboxIntervalMSEnv = "OUTBOX_INTERVAL_MS"

	// DefaultSearchDebounce is the search quiet window used when none is configured.
	DefaultSearchDebounce = 500 * time.Millisecond

	// DefaultPokeAPIBaseURL is the public PokeAPI endpoint.
	DefaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"

	// DefaultPokeAPITimeout bounds each PokeAPI request.
	DefaultPokeAPITimeout = 10 * time.Second

	// DefaultPokemon is the pokemon fetched when none is configured.
	DefaultPokemon = "ditto"

	// DefaultAbility is the ability fetched when none is configured.
	DefaultAbility = "battle-armor"

	// DefaultOutboxInterval is the publish interval used when none is configured.
	DefaultOutboxInterval = 2 * time.Second

	// DefaultAWSRegion is used when AWS_REGION is not set.
	DefaultAWSRegion = "us-east-1"
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
)

// Config represents the application configuration.
type Config struct {
	DebugMode        bool
	SeedDemoProducts bool
	HTTPServer       Server
	MetricsServer    Server
	AWS              AWSConfig
	Search           SearchConfig
	PokeAPI          PokeAPIConfig
}

// AWSConfig represents AWS-specific configuration settings.
type AWSConfig struct {
	Region         string
	Endpoint       string
	SQSQueueURL    string
	OutboxInterval time.Duration
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

// SearchConfig represents the product search settings.
type SearchConfig struct {
	DebounceWindow time.Duration
}

// PokeAPIConfig represents the remote data settings.
type PokeAPIConfig struct {
	BaseURL string
	Timeout time.Duration
	Pokemon string
	Ability string
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	// Validate server ports
	if err := allNonEmpty(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("server port configuration incomplete: %w", err)
	}

	// Validate port numbers
	if err := allNumbers(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	if err := allNonEmpty(map[string]string{
		PokeAPIBaseURLEnv: c.PokeAPI.BaseURL,
		PokeAPIPokemonEnv: c.PokeAPI.Pokemon,
		PokeAPIAbilityEnv: c.PokeAPI.Ability,
	}); err != nil {
		return fmt.Errorf("PokeAPI configuration incomplete: %w", err)
	}

	return nil
}

// RequireSQS checks that a queue is configured, for services that cannot run without one.
func (c *Config) RequireSQS() error {
	if err := allNonEmpty(map[string]string{
		SQSQueueURLEnv: c.AWS.SQSQueueURL,
	}); err != nil {
		return fmt.Errorf("AWS configuration incomplete: %w", err)
	}
	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

// getEnvAsMillis reads a positive millisecond count. Unset falls back to the default.
func getEnvAsMillis(name string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid number for key %s: %w", name, err)
	}
	if ms <= 0 {
		return 0, fmt.Errorf("invalid number for key %s: must be positive", name)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	debounce, err := getEnvAsMillis(SearchDebounceMSEnv, DefaultSearchDebounce)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	timeout, err := getEnvAsMillis(PokeAPITimeoutMSEnv, DefaultPokeAPITimeout)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	outboxInterval, err := getEnvAsMillis(OutboxIntervalMSEnv, DefaultOutboxInterval)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	conf := &Config{
		DebugMode:        getEnvAsBool(DebugModeEnv, false),
		SeedDemoProducts: getEnvAsBool(SeedDemoProductsEnv, false),
		HTTPServer: Server{
			Port: os.Getenv(HTTPServerPortEnv),
		},
		MetricsServer: Server{
			Port: os.Getenv(MetricsServerPortEnv),
		},
		AWS: AWSConfig{
			Region:         getEnvOrDefault(AWSRegionEnv, DefaultAWSRegion),
			Endpoint:       os.Getenv(AWSEndpointEnv),
			SQSQueueURL:    os.Getenv(SQSQueueURLEnv),
			OutboxInterval: outboxInterval,
		},
		Search: SearchConfig{
			DebounceWindow: debounce,
		},
		PokeAPI: PokeAPIConfig{
			BaseURL: getEnvOrDefault(PokeAPIBaseURLEnv, DefaultPokeAPIBaseURL),
			Timeout: timeout,
			Pokemon: getEnvOrDefault(PokeAPIPokemonEnv, DefaultPokemon),
			Ability: getEnvOrDefault(PokeAPIAbilityEnv, DefaultAbility),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
