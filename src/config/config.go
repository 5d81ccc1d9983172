package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// insecureDefaultAPIKey mirrors the placeholder the service shipped with; any
// deployment still using it gets a loud warning at startup.
const insecureDefaultAPIKey = "CHANGE_ME"

type AppConfig struct {
	Port     string
	LogLevel string

	// APIKey is the static credential checked against the X-API-Key header.
	// When APIKeyBcryptHash is set it takes precedence and APIKey is ignored
	// for verification, so the plain secret never has to live in the env.
	APIKey           string
	APIKeyBcryptHash string

	CORSAllowedOrigin string

	// TaxPolicyFile optionally points at a YAML slab-table policy. Empty
	// means the built-in default policy.
	TaxPolicyFile string

	RateLimitRPS   float64
	RateLimitBurst int
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	apiKey := getEnv("API_KEY", insecureDefaultAPIKey)
	if apiKey == insecureDefaultAPIKey {
		log.Println("WARNING: Using default insecure API_KEY. Set API_KEY environment variable for production.")
	}

	apiKeyHash := getEnv("API_KEY_BCRYPT_HASH", "")
	if apiKeyHash != "" && apiKey != insecureDefaultAPIKey {
		log.Println("Info: API_KEY_BCRYPT_HASH is set; the plain API_KEY value will not be used for verification.")
	}

	Cfg = &AppConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIKey:           apiKey,
		APIKeyBcryptHash: apiKeyHash,

		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		TaxPolicyFile: getEnv("TAX_POLICY_FILE", ""),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 30),
	}

	if Cfg.RateLimitRPS <= 0 {
		log.Printf("WARNING: RATE_LIMIT_RPS must be positive, got %v. Using default 10.", Cfg.RateLimitRPS)
		Cfg.RateLimitRPS = 10
	}
	if Cfg.RateLimitBurst <= 0 {
		log.Printf("WARNING: RATE_LIMIT_BURST must be positive, got %d. Using default 30.", Cfg.RateLimitBurst)
		Cfg.RateLimitBurst = 30
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, CORSOrigin=%s, PolicyFile=%q",
		Cfg.Port, Cfg.LogLevel, Cfg.CORSAllowedOrigin, Cfg.TaxPolicyFile)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Float value for %s not set or empty, using default: %v", key, fallback)
		return fallback
	}
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	log.Printf("Invalid float value for %s ('%s'), using default: %v", key, valueStr, fallback)
	return fallback
}
