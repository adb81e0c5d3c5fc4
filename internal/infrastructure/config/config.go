package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	kbvo "github.com/helpdesk-ai/helpdesk/internal/domain/knowledge/valueobjects"
	sharedConfig "github.com/helpdesk-ai/helpdesk/internal/shared/config"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
)

// Config is loaded once at startup and passed explicitly; it is never mutated afterwards.
type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Mailbox   sharedConfig.MailboxConfig   `mapstructure:"mailbox"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	KB        sharedConfig.KBConfig        `mapstructure:"kb"`
	Analyzer  sharedConfig.AnalyzerConfig  `mapstructure:"analyzer"`
	Migration sharedConfig.MigrationConfig `mapstructure:"migration"`
}

const envPrefix = "HELPDESK"

// Load reads configs/config.yaml (or configFile when set) and applies
// HELPDESK_* environment overrides. A missing default config file is not an
// error; the defaults and environment are used instead.
func Load(configFile, env string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	// Set environment variable prefix and replacer
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings that would only fail later at request time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.APIKey) == "" {
		return fmt.Errorf("auth.api_key must not be empty")
	}

	switch c.Analyzer.PriorityPolicy {
	case "", "legacy", "urgency_first":
	default:
		return fmt.Errorf("analyzer.priority_policy must be legacy or urgency_first, got %q", c.Analyzer.PriorityPolicy)
	}

	switch c.Migration.Strategy {
	case "", "goose", "golang_migrate":
	default:
		return fmt.Errorf("migration.strategy must be goose or golang_migrate, got %q", c.Migration.Strategy)
	}

	if !kbvo.IsTextSearchConfig(c.KB.TSConfig) {
		return fmt.Errorf("kb.ts_config %q is not a known text search configuration", c.KB.TSConfig)
	}

	if c.RateLimit.Enabled && !c.Redis.Enabled {
		return fmt.Errorf("ratelimit.enabled requires redis.enabled")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{})

	// Database defaults
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.database", "helpdesk")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.api_key", "dev_api_key_change_me")

	// Email defaults
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.use_tls", true)
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.from_name", "Техподдержка")

	// Mailbox defaults
	v.SetDefault("mailbox.enabled", false)
	v.SetDefault("mailbox.imap_host", "")
	v.SetDefault("mailbox.imap_port", 993)
	v.SetDefault("mailbox.imap_user", "")
	v.SetDefault("mailbox.imap_password", "")
	v.SetDefault("mailbox.use_tls", true)
	v.SetDefault("mailbox.folder", "INBOX")
	v.SetDefault("mailbox.poll_interval_seconds", 10)
	v.SetDefault("mailbox.batch_size", 20)
	v.SetDefault("mailbox.attachments_dir", "./data/attachments")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Rate limit defaults
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.requests", 120)
	v.SetDefault("ratelimit.window_seconds", 60)

	// Knowledge base defaults
	v.SetDefault("kb.ts_config", constants.DefaultTextSearchConf)

	v.SetDefault("analyzer.priority_policy", "legacy")
	v.SetDefault("migration.strategy", "goose")
}
