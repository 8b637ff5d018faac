// Package config loads service settings from defaults, an optional YAML file
// and environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"marmoraria_tech/internal/adapter/printing"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "config.yaml"

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

var ErrUnknownStorage = errors.New("unknown storage driver")

type Config struct {
	HTTP     HTTPConfig          `yaml:"http"`
	Storage  StorageConfig       `yaml:"storage"`
	Auth     AuthConfig          `yaml:"auth"`
	Payments PaymentsConfig      `yaml:"payments"`
	Print    PrintConfig         `yaml:"print"`
	Quotes   QuotesConfig        `yaml:"quotes"`
	Company  printing.Letterhead `yaml:"company"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type StorageConfig struct {
	Driver        string `yaml:"driver"`
	DynamoTable   string `yaml:"dynamodb_table"`
	AWSRegion     string `yaml:"aws_region"`
	AWSEndpoint   string `yaml:"dynamodb_endpoint"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisPrefix   string `yaml:"redis_prefix"`
	SQLitePath    string `yaml:"sqlite_path"`
	PostgresDSN   string `yaml:"postgres_dsn"`
}

// AuthConfig configures the login gate. AdminPasswordHash wins over
// AdminPassword when both are set.
type AuthConfig struct {
	Disabled          bool          `yaml:"disabled"`
	AdminEmail        string        `yaml:"admin_email"`
	AdminPassword     string        `yaml:"admin_password"`
	AdminPasswordHash string        `yaml:"admin_password_hash"`
	TokenSecret       string        `yaml:"token_secret"`
	TokenTTL          time.Duration `yaml:"token_ttl"`
}

type PaymentsConfig struct {
	MockMode        bool   `yaml:"mock"`
	AccessToken     string `yaml:"access_token"`
	TestPayerEmail  string `yaml:"test_payer_email"`
	TestPayerUserID string `yaml:"test_payer_user_id"`
}

type PrintConfig struct {
	ChromeBin string        `yaml:"chrome_bin"`
	Timeout   time.Duration `yaml:"timeout"`
}

type QuotesConfig struct {
	DraftTTL time.Duration `yaml:"draft_ttl"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Storage: StorageConfig{
			Driver:      StorageMemory,
			DynamoTable: "marmoraria_records",
			AWSRegion:   "us-east-1",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "marmoraria:",
			SQLitePath:  "marmoraria.db",
		},
		Auth: AuthConfig{
			AdminEmail:    "admin@marmorariatech.com",
			AdminPassword: "admin123",
			TokenTTL:      12 * time.Hour,
		},
		Print:   PrintConfig{Timeout: 30 * time.Second},
		Quotes:  QuotesConfig{DraftTTL: 24 * time.Hour},
		Company: printing.DefaultLetterhead(),
	}
}

// Load builds the configuration. path may be empty: CONFIG_FILE is used then,
// and finally config.yaml when it exists. An explicitly named file that does
// not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := strings.TrimSpace(os.Getenv("CONFIG_FILE")); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultConfigFile
		}
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return Config{}, err
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	var errs []error
	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	setInt("PORT", &c.HTTP.Port)

	setString("STORAGE_DRIVER", &c.Storage.Driver)
	setString("DYNAMODB_TABLE", &c.Storage.DynamoTable)
	setString("AWS_REGION", &c.Storage.AWSRegion)
	setString("DYNAMODB_ENDPOINT", &c.Storage.AWSEndpoint)
	setString("REDIS_ADDR", &c.Storage.RedisAddr)
	setString("REDIS_PASSWORD", &c.Storage.RedisPassword)
	setInt("REDIS_DB", &c.Storage.RedisDB)
	setString("REDIS_PREFIX", &c.Storage.RedisPrefix)
	setString("SQLITE_PATH", &c.Storage.SQLitePath)
	setString("DATABASE_URL", &c.Storage.PostgresDSN)

	if v, ok := lookup("AUTH_DISABLED"); ok {
		c.Auth.Disabled = truthy(v)
	}
	setString("ADMIN_EMAIL", &c.Auth.AdminEmail)
	setString("ADMIN_PASSWORD", &c.Auth.AdminPassword)
	setString("ADMIN_PASSWORD_HASH", &c.Auth.AdminPasswordHash)
	setString("AUTH_TOKEN_SECRET", &c.Auth.TokenSecret)
	setDuration("AUTH_TOKEN_TTL", &c.Auth.TokenTTL)

	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		if v, ok := lookup(key); ok && truthy(v) {
			c.Payments.MockMode = true
		}
	}
	setString("MERCADOPAGO_ACCESS_TOKEN", &c.Payments.AccessToken)
	setString("MERCADOPAGO_TEST_PAYER_EMAIL", &c.Payments.TestPayerEmail)
	setString("MERCADOPAGO_TEST_PAYER_USER_ID", &c.Payments.TestPayerUserID)

	setString("CHROME_BIN", &c.Print.ChromeBin)
	setDuration("PRINT_TIMEOUT", &c.Print.Timeout)
	setDuration("DRAFT_TTL", &c.Quotes.DraftTTL)
	setInt("QUOTE_VALIDITY_DAYS", &c.Company.ValidityDays)

	return errors.Join(errs...)
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageDynamoDB, StorageRedis, StorageSQLite:
	case StoragePostgres:
		if c.Storage.PostgresDSN == "" {
			return errors.New("postgres storage requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.Storage.Driver)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTP.Port)
	}
	if !c.Auth.Disabled && strings.TrimSpace(c.Auth.AdminEmail) == "" {
		return errors.New("auth requires an admin email")
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
