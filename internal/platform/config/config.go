package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCORSOrigins are the front-end origins allowed when CORS_ORIGINS is unset.
var DefaultCORSOrigins = []string{
	"https://aycaninizintakiplistesi1-1.onrender.com",
	"https://aycaninizintakiplistesi1.onrender.com",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// Storage backends selectable with STORAGE_BACKEND.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	StorageBackend string
	DatabaseURL    string
	DBSchema       string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool

	CORSOrigins []string
	// RateLimit uses the ulule/limiter formatted syntax, e.g. "60-M". It is
	// counted per client IP, which is the proxy's address unless the proxy
	// is listed in TrustedProxies.
	RateLimit string
	// TrustedProxies are the IPs or CIDRs whose X-Forwarded-For is honoured.
	// Empty trusts no proxy.
	TrustedProxies []string

	// Location is the zone "today" is computed in.
	Location *time.Location

	Policy domain.SchedulingPolicy
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("STORAGE_BACKEND", StoragePostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("CORS_ORIGINS", strings.Join(DefaultCORSOrigins, ","))
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("APP_TIMEZONE", "Local")
	v.SetDefault("LEAVE_DEFAULT_DAILY_CAP", domain.DefaultDailyLeaveCap)
	v.SetDefault("LEAVE_REDUCED_DAILY_CAP", domain.ReducedDailyLeaveCap)
	v.SetDefault("LEAVE_ANCHOR_EMPLOYEES", "ayca_cisem")
	v.SetDefault("LEAVE_EXCLUSIVE_PAIRS", "rabia:ayca_demir")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		StorageBackend: strings.ToLower(v.GetString("STORAGE_BACKEND")),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		DBSchema:       v.GetString("DB_SCHEMA"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:  v.GetBool("RUN_MIGRATIONS"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
		log.Println("Warning: STORAGE_BACKEND=memory, data is lost on restart.")
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DBSchema == "" {
		cfg.DBSchema = "public"
	}

	cfg.TrustedProxies = splitList(v.GetString("TRUSTED_PROXIES"))
	if len(cfg.TrustedProxies) == 0 && cfg.IsProduction {
		log.Println("Warning: TRUSTED_PROXIES is empty. Behind a reverse proxy all clients share one rate limit.")
	}

	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	if len(cfg.CORSOrigins) == 0 {
		log.Println("Warning: CORS_ORIGINS is empty. Falling back to default origins.")
		cfg.CORSOrigins = DefaultCORSOrigins
	}

	tz := v.GetString("APP_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	pairs, err := domain.ParseExclusivePairs(v.GetString("LEAVE_EXCLUSIVE_PAIRS"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_EXCLUSIVE_PAIRS: %w", err)
	}
	cfg.Policy = domain.SchedulingPolicy{
		DefaultDailyCap:   v.GetInt("LEAVE_DEFAULT_DAILY_CAP"),
		ReducedDailyCap:   v.GetInt("LEAVE_REDUCED_DAILY_CAP"),
		AnchorEmployeeIDs: splitList(v.GetString("LEAVE_ANCHOR_EMPLOYEES")),
		ExclusivePairs:    pairs,
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid leave policy: %w", err)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
