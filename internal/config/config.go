package config

import "fmt"

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Audit    AuditConfig    `mapstructure:"audit"`
	Vault    VaultConfig    `mapstructure:"vault"`
	Log      LogConfig      `mapstructure:"log"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

type ServerConfig struct {
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`  // seconds
	WriteTimeout    int      `mapstructure:"write_timeout"` // seconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	PprofEnabled    bool     `mapstructure:"pprof_enabled"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxConns        int    `mapstructure:"max_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxConnLifetime int    `mapstructure:"max_conn_lifetime"` // minutes
}

// DSN builds the postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret"`
	AccessTokenTTL int    `mapstructure:"access_token_ttl"` // seconds
	ResetTokenTTL  int    `mapstructure:"reset_token_ttl"`  // seconds
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// AuditConfig configures the mutation audit stream. Publishing is disabled
// when no brokers are set.
type AuditConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// Enabled reports whether audit publishing is configured.
func (c *AuditConfig) Enabled() bool { return len(c.Brokers) > 0 }

// VaultConfig configures the optional Vault secret source. When an address is
// set, the JWT signing secret and SMTP password are fetched from the KV mount
// instead of the config file.
type VaultConfig struct {
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	MountPath string `mapstructure:"mount_path"`
	SecretKey string `mapstructure:"secret_key"`
}

// Enabled reports whether Vault is configured.
func (c *VaultConfig) Enabled() bool { return c.Address != "" }

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type TracingConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
	ServiceName    string `mapstructure:"service_name"`
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if c.Database.Host == "" || c.Database.Database == "" {
		return fmt.Errorf("database.host and database.database are required")
	}
	if c.Auth.JWTSecret == "" && !c.Vault.Enabled() {
		return fmt.Errorf("auth.jwt_secret is required when vault is not configured")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive")
	}
	return nil
}
