package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)

	assert.Equal(t, "https://test.api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Amadeus.Timeout)

	assert.Equal(t, 24*time.Hour, cfg.Cache.AirportTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.FlightTTL)
	assert.Equal(t, 15*time.Minute, cfg.Cache.CalendarTTL)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AMADEUS_BASE_URL", "https://api.amadeus.com")
	t.Setenv("AMADEUS_API_KEY", "key")
	t.Setenv("AMADEUS_API_SECRET", "secret")
	t.Setenv("CACHE_FLIGHT_TTL", "5m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "key", cfg.Amadeus.APIKey)
	assert.Equal(t, "secret", cfg.Amadeus.APISecret)
	assert.Equal(t, 5*time.Minute, cfg.Cache.FlightTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_MissingCredentialsAllowed(t *testing.T) {
	// The server boots without upstream credentials; search endpoints report
	// the missing credentials per request instead.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Amadeus.APIKey)
	assert.Empty(t, cfg.Amadeus.APISecret)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "port too low", key: "SERVER_PORT", value: "0", wantErr: "SERVER_PORT"},
		{name: "port too high", key: "SERVER_PORT", value: "70000", wantErr: "SERVER_PORT"},
		{name: "bad log level", key: "LOG_LEVEL", value: "verbose", wantErr: "LOG_LEVEL"},
		{name: "bad log format", key: "LOG_FORMAT", value: "xml", wantErr: "LOG_FORMAT"},
		{name: "bad env", key: "APP_ENV", value: "qa", wantErr: "APP_ENV"},
		{name: "zero timeout", key: "AMADEUS_TIMEOUT", value: "0s", wantErr: "AMADEUS_TIMEOUT"},
		{name: "zero cache ttl", key: "CACHE_FLIGHT_TTL", value: "0s", wantErr: "cache TTLs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")

	assert.Panics(t, func() {
		MustLoad()
	})
}
