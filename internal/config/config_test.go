package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "salon"
password = "secret"
dbname = "salon"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "LushwaysBarsha", cfg.Salon.BranchCode)
	assert.Equal(t, "Lushways Salon - Barsha", cfg.Salon.LocationName)
	assert.Equal(t, "Asia/Dubai", cfg.Salon.Timezone)
	assert.Equal(t, 100, cfg.Queue.Capacity)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "host=localhost port=5432 user=salon password=secret dbname=salon sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("SUPABASE_KEY", "service-key")

	path := writeConfig(t, `
[database]
host = "db"
dbname = "salon"
password = "from-file"

[tablestore]
enabled = true
url = "https://example.supabase.co"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "service-key", cfg.TableStore.Key)
}

func TestLoad_ValidationErrors(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 70000

[redis]
enabled = true

[salon]
timezone = "Mars/Olympus"

[sms]
enabled = true
`)

	_, err := Load(path)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "server.http_port")
	assert.Contains(t, msg, "database.host is required")
	assert.Contains(t, msg, "redis.addr is required")
	assert.Contains(t, msg, "salon.timezone is invalid")
	assert.Contains(t, msg, "sms.account_sid")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
