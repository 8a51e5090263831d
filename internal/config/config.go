package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr         string
	DatabasePath string

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	AppEnv             string
	WSAllowedOrigins   []string
	WSAllowQueryTokens bool

	// StoreTimeout bounds each guild store call made while creating a session.
	StoreTimeout time.Duration
}

func (c Config) IsDevelopment() bool { return c.AppEnv == "development" }

const (
	DefaultJWTIssuer = "guild-games"
	DefaultJWTTTL    = 30 * 24 * time.Hour
)

// JWTIssuerFromEnv returns JWT_ISSUER or DefaultJWTIssuer. Token minting and
// validation must both go through it so their issuers agree.
func JWTIssuerFromEnv() string {
	return envDefault("JWT_ISSUER", DefaultJWTIssuer)
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		Addr:         strings.TrimSpace(os.Getenv("BACKEND_ADDR")),
		DatabasePath: strings.TrimSpace(os.Getenv("DATABASE_PATH")),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTIssuer:    JWTIssuerFromEnv(),
		JWTTTL:       envDuration("JWT_TTL_MINUTES", DefaultJWTTTL, time.Minute),
		AppEnv:       envDefault("APP_ENV", "development"),
		StoreTimeout: envDuration("STORE_TIMEOUT_MS", 5*time.Second, time.Millisecond),
	}

	if v := os.Getenv("WS_ALLOWED_ORIGINS"); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.WSAllowedOrigins = append(cfg.WSAllowedOrigins, p)
			}
		}
	}
	if v := strings.TrimSpace(os.Getenv("WS_ALLOW_QUERY_TOKENS")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WSAllowQueryTokens = b
		} else {
			fmt.Fprintf(os.Stderr, "WARNING: invalid WS_ALLOW_QUERY_TOKENS=%q, using false\n", v)
		}
	}

	// BACKEND_ADDR is optional if the host sets PORT.
	if cfg.Addr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			if strings.Contains(port, ":") {
				cfg.Addr = port
			} else {
				cfg.Addr = ":" + port
			}
		}
	}

	var missing []string
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.DatabasePath == "" {
		missing = append(missing, "DATABASE_PATH")
	}
	if cfg.Addr == "" {
		missing = append(missing, "BACKEND_ADDR (or PORT)")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing/invalid env: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func envDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envDuration reads a positive integer count of unit from key.
func envDuration(key string, def, unit time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		fmt.Fprintf(os.Stderr, "WARNING: invalid %s=%q, using default %s\n", key, v, def)
		return def
	}
	return time.Duration(n) * unit
}
