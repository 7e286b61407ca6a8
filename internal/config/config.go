package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/Vinaypunani/build-gaming/internal/pricing"
)

type Config struct {
	DSN              string
	Port             string
	RedisURL         string
	SessionTTL       time.Duration
	Pricing          pricing.Policy
	PowerOverhead    float64
	PlaceholderImage string
	SeedCatalog      bool
	AdminToken       string
}

// Load lee .env (si existe) y las variables de entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv arma la configuración con un lookup arbitrario; los tests pasan un mapa.
func FromEnv(get func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(get(key)); v != "" {
			return v
		}
		return def
	}
	cfg := &Config{
		DSN:              env("DB_DSN", ""),
		Port:             env("PORT", "8080"),
		RedisURL:         env("REDIS_URL", ""),
		PlaceholderImage: env("PLACEHOLDER_IMAGE", "/images/pc-builder.png"),
		AdminToken:       env("ADMIN_TOKEN", ""),
		Pricing:          pricing.DefaultPolicy(),
	}
	if cfg.DSN == "" {
		user := env("DB_USER", env("POSTGRES_USER", "postgres"))
		pass := env("DB_PASSWORD", env("POSTGRES_PASSWORD", "postgres"))
		name := env("DB_NAME", env("POSTGRES_DB", "buildgaming"))
		cfg.DSN = "host=" + env("DB_HOST", "localhost") + " user=" + user + " password=" + pass +
			" dbname=" + name + " port=" + env("DB_PORT", "5432") + " sslmode=" + env("DB_SSLMODE", "disable")
	}

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(env("SESSION_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.SeedCatalog, err = strconv.ParseBool(env("SEED_CATALOG", "true")); err != nil {
		return nil, fmt.Errorf("SEED_CATALOG: %w", err)
	}
	if cfg.PowerOverhead, err = strconv.ParseFloat(env("POWER_OVERHEAD_WATTS", "0"), 64); err != nil {
		return nil, fmt.Errorf("POWER_OVERHEAD_WATTS: %w", err)
	}
	money := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"FREE_SHIPPING_THRESHOLD", &cfg.Pricing.FreeShippingThreshold},
		{"SHIPPING_FEE", &cfg.Pricing.ShippingFee},
		{"ASSEMBLY_FEE", &cfg.Pricing.AssemblyFee},
	}
	for _, m := range money {
		raw := env(m.key, "")
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.key, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("%s: valor negativo", m.key)
		}
		*m.dst = d
	}
	return cfg, nil
}
