package config

import (
	"os"
	"strconv"
	"strings"
)

// GetAllSettings returns a map of the settings that are safe to expose.
func GetAllSettings() map[string]any {
	if Global == nil {
		return map[string]any{}
	}
	return map[string]any{
		"app_version":           Global.App.Version,
		"app_debug":             Global.App.Debug,
		"app_env":               Global.App.Environment,
		"db_driver":             Global.Database.Driver,
		"valkey_enabled":        Global.Database.ValkeyEnabled,
		"access_duration_hours": Global.Access.DurationHours,
		"access_enum_field":     Global.Access.EnumField,
		"access_allowed_codes":  Global.Access.AllowedCodes,
	}
}

// Helpers
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		vLower := strings.ToLower(v)
		return vLower == "1" || vLower == "true" || vLower == "yes" || vLower == "on"
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
