package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	RabbitMQURL      string
	LogLevel         string
	ArchiveSchedule  string
	ArchiveRetention time.Duration
}

// LoadConfig reads the environment, optionally seeded from a .env file.
// Values already present in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ARCHIVE_SCHEDULE", "@every 1h")
	v.SetDefault("ARCHIVE_RETENTION", "720h")

	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "RABBITMQ_URL"} {
		_ = v.BindEnv(key)
	}

	retention, err := time.ParseDuration(v.GetString("ARCHIVE_RETENTION"))
	if err != nil {
		return Config{}, fmt.Errorf("ARCHIVE_RETENTION: %w", err)
	}

	return Config{
		HTTPPort:         v.GetString("HTTP_PORT"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSslMode:        v.GetString("DB_SSLMODE"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		ArchiveSchedule:  v.GetString("ARCHIVE_SCHEDULE"),
		ArchiveRetention: retention,
	}, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NewLogger returns a JSON logger at the configured level. Unknown levels fall back to info.
func (c Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
