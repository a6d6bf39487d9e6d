package config

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// LoadConfig loads the configuration from file and environment variables.
// Precedence: defaults < config.yaml < FIELDBASE_* environment variables.
func LoadConfig(log logger.Logger) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "fieldbase")
	v.SetDefault("database.database", "fieldbase")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_conn_lifetime", 30)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("auth.access_token_ttl", constants.DefaultAccessTokenTTLSeconds)
	v.SetDefault("auth.reset_token_ttl", 1800)
	v.SetDefault("audit.topic", "fieldbase.audit")
	v.SetDefault("vault.mount_path", "secret")
	v.SetDefault("vault.secret_key", "fieldbase")
	v.SetDefault("log.level", "info")
	v.SetDefault("tracing.service_name", "fieldbase")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/fieldbase/")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("FIELDBASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Re-apply the log level when the config file changes on disk.
	v.OnConfigChange(func(e fsnotify.Event) {
		level := v.GetString("log.level")
		log.Info(context.Background(), "Config file changed, applying log level",
			logger.String("file", e.Name),
			logger.String("level", level),
		)
		log.SetLevel(level)
	})
	v.WatchConfig()

	return &cfg, nil
}
