package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string

	GatewayURL     string
	RequestTimeout int // seconds
	SummaryLimit   int // applications per kind on the combined tab

	ReviewerEmail    string
	ReviewerPassword string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "pickngo-review"))
	cfg.GatewayURL = cast.ToString(getOrReturnDefault("GATEWAY_URL", "http://localhost:8080/api"))
	cfg.RequestTimeout = cast.ToInt(getOrReturnDefault("REQUEST_TIMEOUT", 10))
	cfg.SummaryLimit = cast.ToInt(getOrReturnDefault("SUMMARY_LIMIT", 3))

	cfg.ReviewerEmail = cast.ToString(getOrReturnDefault("REVIEWER_EMAIL", ""))
	cfg.ReviewerPassword = cast.ToString(getOrReturnDefault("REVIEWER_PASSWORD", ""))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultValue
}
