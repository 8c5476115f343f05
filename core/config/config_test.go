package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3300", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 24, cfg.Access.DurationHours)
	assert.Equal(t, EnumFieldServiceID, cfg.Access.EnumField)
	assert.Equal(t, DefaultAllowedCodes, cfg.Access.AllowedCodes)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Same(t, cfg, Global)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_BASE_PATH", "/api/v1/")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("ACCESS_DURATION_HOURS", "48")
	t.Setenv("ACCESS_ENUM_FIELD", "mno")
	t.Setenv("ACCESS_ALLOWED_CODES", " mtn_sa , vodacom_sa ,")
	t.Setenv("VALKEY_ENABLED", "yes")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "/api/v1", cfg.App.BasePath)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Database.ValkeyEnabled)
	assert.Equal(t, 48, cfg.Access.DurationHours)
	assert.Equal(t, EnumFieldMNO, cfg.Access.EnumField)
	assert.Equal(t, []string{"mtn_sa", "vodacom_sa"}, cfg.Access.AllowedCodes)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ACCESS_DURATION_HOURS", "-3")
	t.Setenv("ACCESS_ENUM_FIELD", "ctx")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultDurationHours, cfg.Access.DurationHours)
	assert.Equal(t, EnumFieldServiceID, cfg.Access.EnumField)

	t.Setenv("ACCESS_DURATION_HOURS", "twelve")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultDurationHours, cfg.Access.DurationHours)
}

func TestGetAllSettings(t *testing.T) {
	Global = nil
	assert.Empty(t, GetAllSettings())

	_, err := LoadConfig()
	require.NoError(t, err)
	settings := GetAllSettings()
	assert.Equal(t, 24, settings["access_duration_hours"])
	assert.NotContains(t, settings, "db_password")
}
