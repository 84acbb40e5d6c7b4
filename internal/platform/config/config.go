package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Matching engine tuning
	MatchDateWindowDays int
	MatchPriceTolerance float64
	MatchMaxGroupSize   int

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "eventfin-backend")
	viper.SetDefault("MATCH_DATE_WINDOW_DAYS", 30)
	viper.SetDefault("MATCH_PRICE_TOLERANCE", 0.01)
	viper.SetDefault("MATCH_MAX_GROUP_SIZE", 10)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	matchWindow := viper.GetInt("MATCH_DATE_WINDOW_DAYS")
	if matchWindow <= 0 {
		log.Printf("Warning: Invalid MATCH_DATE_WINDOW_DAYS (%d). Defaulting to 30.\n", matchWindow)
		matchWindow = 30
	}

	matchGroupSize := viper.GetInt("MATCH_MAX_GROUP_SIZE")
	if matchGroupSize < 1 {
		matchGroupSize = 10
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.MatchDateWindowDays = matchWindow
	cfg.MatchPriceTolerance = viper.GetFloat64("MATCH_PRICE_TOLERANCE")
	cfg.MatchMaxGroupSize = matchGroupSize
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
