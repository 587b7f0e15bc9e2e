package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config captures process-level configuration.
type Config struct {
	Addr string

	// Jurisdiction parameters. The legal thresholds are configuration, not
	// constants: they are defined by the applicable VAT law.
	ReferenceCurrency   string
	DomesticCountry     string
	SmallInvoiceCeiling decimal.Decimal
	LargeInvoiceFloor   decimal.Decimal
	LegalVatRates       []decimal.Decimal
	AmountTolerance     decimal.Decimal

	// Registry collaborator.
	ViesBaseURL  string
	ViesTimeout  time.Duration
	ViesCacheTTL time.Duration
	ViesCacheMax int

	Redis RedisConfig
}

// RedisConfig configures the optional shared registry cache. An empty URL
// disables redis and the engine falls back to the in-process cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr: envString("BELEGCHECK_ADDR", ":8080"),

		ReferenceCurrency:   envString("REFERENCE_CURRENCY", "EUR"),
		DomesticCountry:     envString("DOMESTIC_COUNTRY", "AT"),
		SmallInvoiceCeiling: envDecimal("SMALL_INVOICE_CEILING", "400"),
		LargeInvoiceFloor:   envDecimal("LARGE_INVOICE_FLOOR", "10000"),
		LegalVatRates:       envDecimalList("LEGAL_VAT_RATES", "0,10,13,19,20"),
		AmountTolerance:     envDecimal("AMOUNT_TOLERANCE", "0.01"),

		ViesBaseURL:  envString("VIES_BASE_URL", "https://ec.europa.eu/taxation_customs/vies/rest-api"),
		ViesTimeout:  envDuration("VIES_TIMEOUT", 5*time.Second),
		ViesCacheTTL: envDuration("VIES_CACHE_TTL", 5*time.Minute),
		ViesCacheMax: envInt("VIES_CACHE_MAX", 10000),

		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envDecimalList(key, fallback string) []decimal.Decimal {
	if out, ok := parseDecimalList(os.Getenv(key)); ok {
		return out
	}
	out, _ := parseDecimalList(fallback)
	return out
}

func parseDecimalList(raw string) ([]decimal.Decimal, bool) {
	if raw == "" {
		return nil, false
	}
	var out []decimal.Decimal
	for _, part := range strings.Split(raw, ",") {
		d, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}

func envDecimal(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}
