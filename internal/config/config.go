package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServiceName string
	Environment string

	ServerPort int

	DatabaseURL string
	LogLevel    string

	CORSOrigins []string

	UploadDir   string
	MaxUploadMB int

	KafkaBrokers []string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "studio-backend"),
		Environment: EnvDefault("ENVIRONMENT", "development"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		CORSOrigins: CSV(os.Getenv("CORS_ORIGINS")),

		UploadDir:   EnvDefault("UPLOAD_DIR", "uploads"),
		MaxUploadMB: EnvIntDefault("MAX_UPLOAD_MB", 48),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
	}
}

// MustLoad is Load plus fatals for the vars the server cannot run without.
func MustLoad() Config {
	cfg := Load()
	MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	return cfg
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
