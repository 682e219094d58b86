package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
	LogMode string

	// AdminTokenHash is a bcrypt hash of the token accepted for catalog writes.
	// Empty disables POST /api/products.
	AdminTokenHash     string
	SupportedCountries []string
	RateLimitPerMin    int
	RequestTimeout     time.Duration
	BodyLimit          int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "storecart.db"
	} // sqlite file in project root

	cfg := Config{
		Port:               port,
		DBDSN:              dsn,
		LogFile:            os.Getenv("LOG_FILE"),
		LogMode:            getEnv("LOG_MODE", "dev"),
		AdminTokenHash:     os.Getenv("ADMIN_TOKEN_HASH"),
		SupportedCountries: splitList(getEnv("SUPPORTED_COUNTRIES", "CA")),
		RateLimitPerMin:    getInt("RATE_LIMIT_PER_MIN", 120),
		RequestTimeout:     getDuration("REQUEST_TIMEOUT", 5*time.Second),
		BodyLimit:          getInt("BODY_LIMIT", 1<<20),
	}
	return cfg
}

// Fields is the loggable view of cfg; secrets are left out.
func (c Config) Fields() map[string]any {
	return map[string]any{
		"port":                c.Port,
		"db_dsn":              c.DBDSN,
		"log_file":            c.LogFile,
		"log_mode":            c.LogMode,
		"admin_writes":        c.AdminTokenHash != "",
		"supported_countries": c.SupportedCountries,
		"rate_limit_per_min":  c.RateLimitPerMin,
		"request_timeout":     c.RequestTimeout.String(),
		"body_limit":          c.BodyLimit,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}
