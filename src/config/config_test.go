package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unsetEnv clears a variable for the duration of the test. t.Setenv records
// the original value for restore; the explicit Unsetenv makes LookupEnv miss.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t,
		"PORT", "LOG_LEVEL", "API_KEY", "API_KEY_BCRYPT_HASH",
		"CORS_ALLOWED_ORIGIN", "TAX_POLICY_FILE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	)

	LoadConfig()

	assert.Equal(t, "8080", Cfg.Port)
	assert.Equal(t, "info", Cfg.LogLevel)
	assert.Equal(t, "CHANGE_ME", Cfg.APIKey)
	assert.Equal(t, "*", Cfg.CORSAllowedOrigin)
	assert.Equal(t, "", Cfg.TaxPolicyFile)
	assert.Equal(t, float64(10), Cfg.RateLimitRPS)
	assert.Equal(t, 30, Cfg.RateLimitBurst)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("API_KEY", "secret-key")
	t.Setenv("API_KEY_BCRYPT_HASH", "$2a$12$fakehash")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://app.example.com")
	t.Setenv("TAX_POLICY_FILE", "/etc/taxdraft/policy.yaml")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	LoadConfig()

	assert.Equal(t, "9091", Cfg.Port)
	assert.Equal(t, "debug", Cfg.LogLevel)
	assert.Equal(t, "secret-key", Cfg.APIKey)
	assert.Equal(t, "$2a$12$fakehash", Cfg.APIKeyBcryptHash)
	assert.Equal(t, "https://app.example.com", Cfg.CORSAllowedOrigin)
	assert.Equal(t, "/etc/taxdraft/policy.yaml", Cfg.TaxPolicyFile)
	assert.Equal(t, 2.5, Cfg.RateLimitRPS)
	assert.Equal(t, 5, Cfg.RateLimitBurst)
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "many")

	LoadConfig()

	assert.Equal(t, float64(10), Cfg.RateLimitRPS)
	assert.Equal(t, 30, Cfg.RateLimitBurst)
}

func TestLoadConfig_NonPositiveLimitsFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "-3")
	t.Setenv("RATE_LIMIT_BURST", "0")

	LoadConfig()

	assert.Equal(t, float64(10), Cfg.RateLimitRPS)
	assert.Equal(t, 30, Cfg.RateLimitBurst)
}
