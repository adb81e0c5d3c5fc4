package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// URL, when set, is used verbatim as the connection string.
	URL             string `mapstructure:"url"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	UseTLS       bool   `mapstructure:"use_tls"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// Sender returns the address used in the From header; it falls back to the
// SMTP login when no explicit from address is configured.
func (e *EmailConfig) Sender() string {
	if e.FromAddress != "" {
		return e.FromAddress
	}
	return e.SMTPUser
}

type MailboxConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	IMAPHost            string `mapstructure:"imap_host"`
	IMAPPort            int    `mapstructure:"imap_port"`
	IMAPUser            string `mapstructure:"imap_user"`
	IMAPPassword        string `mapstructure:"imap_password"`
	UseTLS              bool   `mapstructure:"use_tls"`
	Folder              string `mapstructure:"folder"`
	PollIntervalSeconds int    `mapstructure:"poll_interval_seconds"`
	BatchSize           int    `mapstructure:"batch_size"`
	AttachmentsDir      string `mapstructure:"attachments_dir"`
}

func (m *MailboxConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", m.IMAPHost, m.IMAPPort)
}

func (m *MailboxConfig) PollInterval() time.Duration {
	if m.PollIntervalSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.PollIntervalSeconds) * time.Second
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	if r.WindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(r.WindowSeconds) * time.Second
}

type KBConfig struct {
	// TSConfig is the PostgreSQL text search configuration used for queries
	// when the caller does not override the language.
	TSConfig string `mapstructure:"ts_config"`
}

type AnalyzerConfig struct {
	PriorityPolicy string `mapstructure:"priority_policy"`
}

type MigrationConfig struct {
	Strategy string `mapstructure:"strategy"`
}
