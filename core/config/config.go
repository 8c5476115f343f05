package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Access   AccessConfig
	Log      LogConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	BasePath           string
	BaseUrl            string
	CorsAllowedOrigins []string
	TrustedProxies     []string
	// ServerID names this replica in logs and lock tokens. Empty means derive one.
	ServerID string
}

type DatabaseConfig struct {
	Driver          string // sqlite, postgres or memory
	Host            string
	Port            int
	User            string
	Password        string
	Name            string // File path for SQLite, DB Name for Postgres
	SSLMode         string
	ValkeyEnabled   bool
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

// AccessConfig drives the grant lifecycle and the request schema.
type AccessConfig struct {
	DurationHours int
	// EnumField names the request field restricted to AllowedCodes ("service_id" or "mno").
	EnumField    string
	AllowedCodes []string
	LockTTLMs    int
}

type LogConfig struct {
	Level  string
	Format string // text or json
	File   string
}

const (
	DefaultDurationHours = 24
	EnumFieldServiceID   = "service_id"
	EnumFieldMNO         = "mno"
)

// DefaultAllowedCodes are the mobile network operator codes accepted out of the box.
var DefaultAllowedCodes = []string{"mtn_sa", "cell_sa", "vodacom_sa", "telkom_sa"}

// Global provides access to the loaded configuration globally
var Global *Config

// LoadConfig loads configuration from a .env file (when present), Environment Variables or defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	debug := getEnvBool("APP_DEBUG", false)

	corsOrigins := []string{"*"}
	if v := os.Getenv("APP_CORS_ALLOWED_ORIGINS"); v != "" {
		corsOrigins = splitList(v)
	}

	appCfg := AppConfig{
		Version:            "v1.0.0",
		Port:               getEnv("APP_PORT", getEnv("PORT", "3300")),
		Debug:              debug,
		Environment:        getEnv("APP_ENV", "development"),
		BasePath:           strings.TrimSuffix(getEnv("APP_BASE_PATH", ""), "/"),
		BaseUrl:            getEnv("APP_BASE_URL", getEnv("BASE_URL", "http://localhost:3300")),
		CorsAllowedOrigins: corsOrigins,
		ServerID:           getEnv("APP_SERVER_ID", ""),
	}
	if v := os.Getenv("APP_TRUSTED_PROXIES"); v != "" {
		appCfg.TrustedProxies = splitList(v)
	}

	dbCfg := DatabaseConfig{
		Driver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", ""),
		Name:            getEnv("DB_NAME", "storages/access.db"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		ValkeyEnabled:   getEnvBool("VALKEY_ENABLED", false),
		ValkeyAddress:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
		ValkeyPassword:  getEnv("VALKEY_PASSWORD", ""),
		ValkeyDB:        getEnvInt("VALKEY_DB", 0),
		ValkeyKeyPrefix: getEnv("VALKEY_KEY_PREFIX", "azaccess:"),
	}

	accessCfg := AccessConfig{
		DurationHours: getEnvInt("ACCESS_DURATION_HOURS", DefaultDurationHours),
		EnumField:     strings.ToLower(getEnv("ACCESS_ENUM_FIELD", EnumFieldServiceID)),
		AllowedCodes:  DefaultAllowedCodes,
		LockTTLMs:     getEnvInt("ACCESS_LOCK_TTL_MS", 5000),
	}
	if v := os.Getenv("ACCESS_ALLOWED_CODES"); v != "" {
		accessCfg.AllowedCodes = splitList(v)
	}

	logCfg := LogConfig{
		Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		File:   getEnv("LOG_FILE", ""),
	}

	cfg := &Config{
		App:      appCfg,
		Database: dbCfg,
		Access:   accessCfg,
		Log:      logCfg,
	}
	cfg.Normalize()

	Global = cfg
	return cfg, nil
}

// Normalize replaces out-of-range values with their defaults. It is called
// after every source (env, flags) has been applied.
func (c *Config) Normalize() {
	if c.Access.DurationHours <= 0 {
		c.Access.DurationHours = DefaultDurationHours
	}
	if c.Access.EnumField != EnumFieldServiceID && c.Access.EnumField != EnumFieldMNO {
		c.Access.EnumField = EnumFieldServiceID
	}
	if len(c.Access.AllowedCodes) == 0 {
		c.Access.AllowedCodes = DefaultAllowedCodes
	}
	if c.Access.LockTTLMs <= 0 {
		c.Access.LockTTLMs = 5000
	}
	if c.Log.Format != "json" {
		c.Log.Format = "text"
	}
	c.App.BasePath = strings.TrimSuffix(c.App.BasePath, "/")
}
