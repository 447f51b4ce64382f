package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"` // debug, release, test
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Address returns the HTTP listen address
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// StorageConfig holds media storage backend configuration
type StorageConfig struct {
	Type        string `mapstructure:"type"` // filesystem, s3
	BasePath    string `mapstructure:"base_path"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Region    string `mapstructure:"s3_region"`
	S3AccessKey string `mapstructure:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key"`
	S3Endpoint  string `mapstructure:"s3_endpoint"` // For S3-compatible services

	// FallbackToFilesystem keeps uploads working on the local disk when the
	// S3 backend cannot be reached at startup.
	FallbackToFilesystem bool `mapstructure:"fallback_to_filesystem"`
}

// IsS3 returns true if the storage type is S3
func (s *StorageConfig) IsS3() bool {
	return strings.ToLower(s.Type) == "s3"
}

// AuthConfig holds Google OAuth and session token configuration
type AuthConfig struct {
	GoogleClientID     string        `mapstructure:"google_client_id"`
	GoogleClientSecret string        `mapstructure:"google_client_secret"`
	RedirectURL        string        `mapstructure:"redirect_url"`
	JWTSecret          string        `mapstructure:"jwt_secret"`
	TokenLifetime      time.Duration `mapstructure:"token_lifetime"`
	CookieSecure       bool          `mapstructure:"cookie_secure"`
	ExchangeTimeout    time.Duration `mapstructure:"exchange_timeout"`
}

// ProvidersConfig holds the external AI and scraping provider endpoints
type ProvidersConfig struct {
	Image      ProviderConfig `mapstructure:"image"`
	Video      ProviderConfig `mapstructure:"video"`
	Storyboard ProviderConfig `mapstructure:"storyboard"`
	Scraper    ProviderConfig `mapstructure:"scraper"`
}

// ProviderConfig holds a single provider service endpoint
type ProviderConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Output     string `mapstructure:"output"` // console, file
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"` // json, console
}

// Load reads configuration from file and environment variables.
// Environment variables use the ADSTUDIO_ prefix with underscores
// replacing dots (e.g. ADSTUDIO_DATABASE_HOST).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	v.SetEnvPrefix("ADSTUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configLoaded := false

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			configLoaded = true
		}
	}

	if !configLoaded {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/adstudio")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// Config file not found; rely on defaults and env vars
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for required values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth jwt_secret is required")
	}
	if c.Auth.TokenLifetime <= 0 {
		return fmt.Errorf("auth token_lifetime must be positive")
	}

	if c.Storage.IsS3() {
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("storage s3_bucket is required for s3 storage")
		}
		if c.Storage.S3Region == "" {
			return fmt.Errorf("storage s3_region is required for s3 storage")
		}
	} else if c.Storage.BasePath == "" {
		return fmt.Errorf("storage base_path is required for filesystem storage")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "adstudio")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("storage.type", "filesystem")
	v.SetDefault("storage.base_path", "./data/media")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "")
	v.SetDefault("storage.s3_access_key", "")
	v.SetDefault("storage.s3_secret_key", "")
	v.SetDefault("storage.s3_endpoint", "")
	v.SetDefault("storage.fallback_to_filesystem", true)

	// Secrets have empty defaults so env-only deployments resolve them
	v.SetDefault("auth.google_client_id", "")
	v.SetDefault("auth.google_client_secret", "")
	v.SetDefault("auth.redirect_url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime", 30*time.Minute)
	v.SetDefault("auth.cookie_secure", false)
	v.SetDefault("auth.exchange_timeout", 10*time.Second)

	for _, p := range []string{"image", "video", "storyboard", "scraper"} {
		v.SetDefault("providers."+p+".base_url", "")
		v.SetDefault("providers."+p+".api_key", "")
	}
	v.SetDefault("providers.image.timeout", 60*time.Second)
	v.SetDefault("providers.video.timeout", 120*time.Second)
	v.SetDefault("providers.storyboard.timeout", 60*time.Second)
	v.SetDefault("providers.scraper.timeout", 30*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output", "console")
	v.SetDefault("logging.format", "json")
}
