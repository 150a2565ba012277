package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "taskboard"
	configFileName = "config.yaml"
)

// Config holds taskboard settings. Precedence, lowest first: defaults,
// config file, environment, command-line flags.
type Config struct {
	// Remote task service
	Remote RemoteConfig `yaml:"remote"`

	// Identity provider, used only to build the logout link.
	Identity IdentityConfig `yaml:"identity"`

	// UI theme: classic, neon or mono.
	Theme string `yaml:"theme"`

	// Optional local JSON file used instead of the remote service.
	Fixture string `yaml:"fixture"`

	Logging LoggingConfig `yaml:"logging"`
}

// RemoteConfig locates the task collection.
type RemoteConfig struct {
	BaseURL      string `yaml:"base_url"`
	ResourcePath string `yaml:"resource_path"`
	// InsecureTLS skips certificate checks, for self-signed dev servers.
	InsecureTLS bool `yaml:"insecure_tls"`
}

type IdentityConfig struct {
	Issuer         string `yaml:"issuer"`
	LogoutRedirect string `yaml:"logout_redirect"`
}

// LoggingConfig configures logging. A TUI owns the terminal, so logs only
// go somewhere when File is set.
type LoggingConfig struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"` // json, console
	Debug  bool   `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			BaseURL:      "https://localhost:44309",
			ResourcePath: "Tasks",
		},
		Identity: IdentityConfig{
			Issuer:         "http://localhost:8080/realms/reino-controle",
			LogoutRedirect: "http://localhost:3000",
		},
		Theme: "classic",
		Logging: LoggingConfig{
			Format: "json",
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/taskboard/config.yaml, falling back to
// ~/.config.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}

// Load reads path (DefaultPath when empty) over the defaults and then
// applies environment overrides. A missing file is not an error. The
// result is not validated; callers apply their own overrides first and
// then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Remote.BaseURL = getEnv("TASKBOARD_BASE_URL", c.Remote.BaseURL)
	c.Remote.ResourcePath = getEnv("TASKBOARD_RESOURCE_PATH", c.Remote.ResourcePath)
	c.Remote.InsecureTLS = getEnvBool("TASKBOARD_INSECURE_TLS", c.Remote.InsecureTLS)
	// The web dashboard's variable is honoured so both can share an env file.
	c.Identity.Issuer = getEnv("NEXT_PUBLIC_KEYCLOAK_ISSUER", c.Identity.Issuer)
	c.Identity.Issuer = getEnv("TASKBOARD_ISSUER", c.Identity.Issuer)
	c.Theme = getEnv("TASKBOARD_THEME", c.Theme)
	c.Fixture = getEnv("TASKBOARD_FIXTURE", c.Fixture)
	c.Logging.File = getEnv("TASKBOARD_LOG_FILE", c.Logging.File)
	c.Logging.Debug = getEnvBool("TASKBOARD_DEBUG", c.Logging.Debug)
}

// Validate rejects settings the rest of the program cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Remote.BaseURL) == "" && c.Fixture == "" {
		return fmt.Errorf("remote.base_url is required when no fixture is set")
	}
	switch strings.ToLower(c.Theme) {
	case "", "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q (want json or console)", c.Logging.Format)
	}
	return nil
}

// URL joins the base URL and the resource path.
func (r RemoteConfig) URL() string {
	base := strings.TrimRight(r.BaseURL, "/")
	res := strings.TrimLeft(r.ResourcePath, "/")
	if res == "" {
		return base
	}
	return base + "/" + res
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		return value == "yes"
	}
	return defaultValue
}
