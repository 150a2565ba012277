package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TASKBOARD_BASE_URL", "TASKBOARD_RESOURCE_PATH", "TASKBOARD_INSECURE_TLS",
		"TASKBOARD_ISSUER", "NEXT_PUBLIC_KEYCLOAK_ISSUER", "TASKBOARD_THEME",
		"TASKBOARD_FIXTURE", "TASKBOARD_LOG_FILE", "TASKBOARD_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://localhost:44309/Tasks", cfg.Remote.URL())
}

func TestLoad_DefaultPathFromXDG(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "taskboard"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taskboard", "config.yaml"), []byte("theme: neon\n"), 0o600))

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "taskboard", "config.yaml"), p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `
remote:
  base_url: http://tasks.internal:8080/
  resource_path: /api/tasks
  insecure_tls: true
identity:
  issuer: https://sso.example.com/realms/main
theme: mono
logging:
  file: /tmp/taskboard.log
  format: console
  debug: true
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "http://tasks.internal:8080/api/tasks", cfg.Remote.URL())
	assert.True(t, cfg.Remote.InsecureTLS)
	assert.Equal(t, "https://sso.example.com/realms/main", cfg.Identity.Issuer)
	assert.Equal(t, "http://localhost:3000", cfg.Identity.LogoutRedirect, "unset keys keep defaults")
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, LoggingConfig{File: "/tmp/taskboard.log", Format: "console", Debug: true}, cfg.Logging)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "remote:\n  base_url: http://from-file\ntheme: mono\n")

	t.Setenv("TASKBOARD_BASE_URL", "http://from-env")
	t.Setenv("TASKBOARD_THEME", "neon")
	t.Setenv("TASKBOARD_DEBUG", "1")
	t.Setenv("TASKBOARD_INSECURE_TLS", "yes")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.Remote.BaseURL)
	assert.Equal(t, "neon", cfg.Theme)
	assert.True(t, cfg.Logging.Debug)
	assert.True(t, cfg.Remote.InsecureTLS)
}

func TestLoad_IssuerPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEXT_PUBLIC_KEYCLOAK_ISSUER", "https://web.example.com/realms/a")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://web.example.com/realms/a", cfg.Identity.Issuer)

	t.Setenv("TASKBOARD_ISSUER", "https://tui.example.com/realms/b")
	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://tui.example.com/realms/b", cfg.Identity.Issuer)
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "remote: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_DoesNotValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "remote:\n  base_url: \"\"\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Remote.BaseURL)
	assert.Error(t, cfg.Validate())

	cfg.Fixture = "tasks.json"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown theme", "theme: solarized\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
		{"no base url and no fixture", "remote:\n  base_url: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(writeConfig(t, tt.body))
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_FixtureWithoutBaseURL(t *testing.T) {
	cfg := Default()
	cfg.Remote.BaseURL = ""
	cfg.Fixture = "tasks.json"
	assert.NoError(t, cfg.Validate())
}

func TestRemoteURL(t *testing.T) {
	cfg := Default()
	cfg.Remote.BaseURL = "https://host/"
	cfg.Remote.ResourcePath = ""
	assert.Equal(t, "https://host", cfg.Remote.URL())
}
