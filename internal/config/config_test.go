package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithLocalProvider(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "local"

[database]
user = "availability"
dbname = "availability"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, ProviderLocal, cfg.Calendar.Provider)
	assert.Equal(t, "09:00", cfg.WorkingHours.Open)
	assert.Equal(t, "18:00", cfg.WorkingHours.Close)
	assert.Equal(t, 30, cfg.Slots.DurationMinutes)
	assert.Equal(t, 90, cfg.Search.HorizonDays)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8084

[calendar]
provider = "local"
timeout_seconds = 3

[database]
user = "availability"
dbname = "availability"

[working_hours]
days = ["mon", "wed", "saturday"]
open = "10:00"
close = "16:00"
timezone = "Europe/Athens"

[slots]
duration_minutes = 45
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8084, cfg.Server.HTTPPort)
	assert.Equal(t, 3, cfg.Calendar.TimeoutSeconds)
	assert.Equal(t, 45, cfg.Slots.DurationMinutes)

	wh, err := cfg.WorkingHoursPolicy()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Saturday}, wh.Days)
	assert.Equal(t, "Europe/Athens", wh.Location.String())
}

func TestLoad_GoogleProviderRequiresCredentials(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "google"
calendar_id = "clinic@example.com"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials_path")
}

func TestLoad_LocalProviderRequiresDatabase(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "local"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.user")
}

func TestLoad_UnknownProvider(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "outlook"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown calendar.provider")
}

func TestLoad_InvalidWeekday(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "local"

[database]
user = "availability"
dbname = "availability"

[working_hours]
days = ["mon", "someday"]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weekday")
}

func TestLoad_OpenMustPrecedeClose(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "local"

[database]
user = "availability"
dbname = "availability"

[working_hours]
open = "18:00"
close = "09:00"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_DefaultCountMustNotExceedMax(t *testing.T) {
	path := writeConfig(t, `
[calendar]
provider = "local"

[database]
user = "availability"
dbname = "availability"

[search]
default_count = 20
max_count = 10
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_count")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
