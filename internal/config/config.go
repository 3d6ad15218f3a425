package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ServerConfig holds process-level settings sourced from the environment.
type ServerConfig struct {
	Addr          string
	SessionSecret string
	GinMode       string
	ConfigFile    string
	LogFile       string
}

// LoadServer reads server settings from the environment, loading .env first.
func LoadServer() *ServerConfig {
	_ = godotenv.Load(".env")

	return &ServerConfig{
		Addr:          getEnv("ADDR", ":8080"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		GinMode:       getEnv("GIN_MODE", "debug"),
		ConfigFile:    getEnv("CONFIG_FILE", "config.json"),
		LogFile:       getEnv("LOG_FILE", "app.log"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Manager reads and writes application settings from a JSON file. A missing
// file yields the defaults; keys set at runtime persist only after Save.
type Manager struct {
	path   string
	values map[string]any
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"app_name":           "TaskManager",
		"version":            "1.0.0",
		"debug":              false,
		"max_users":          1000,
		"max_tasks_per_user": 50,
	}
}

// New builds a Manager carrying only the defaults.
func New(path string) *Manager {
	return &Manager{
		path:   path,
		values: Defaults(),
	}
}

// Load builds a Manager backed by the given file. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Manager, error) {
	m := New(path)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded map[string]any
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	for key, value := range loaded {
		m.values[key] = value
	}
	return m, nil
}

// Save writes the current settings back to the file.
func (m *Manager) Save() error {
	raw, err := json.MarshalIndent(m.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(m.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Get returns the value for key, or the given default when absent.
func (m *Manager) Get(key string, defaultValue any) any {
	if value, ok := m.values[key]; ok {
		return value
	}
	return defaultValue
}

// Set stores a value for key. Call Save to persist.
func (m *Manager) Set(key string, value any) {
	m.values[key] = value
}

// GetString returns a string setting, or the default when absent or not a
// string.
func (m *Manager) GetString(key, defaultValue string) string {
	if s, ok := m.Get(key, defaultValue).(string); ok {
		return s
	}
	return defaultValue
}

// GetInt returns an integer setting. JSON numbers decode as float64, so
// both forms are accepted.
func (m *Manager) GetInt(key string, defaultValue int) int {
	switch v := m.Get(key, defaultValue).(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

// AppName returns the display name of the application.
func (m *Manager) AppName() string {
	return m.GetString("app_name", "TaskManager")
}

// Version returns the configured application version string.
func (m *Manager) Version() string {
	return m.GetString("version", "1.0.0")
}

// MaxUsers returns the configured user limit. The limit is informational;
// nothing enforces it.
func (m *Manager) MaxUsers() int {
	return m.GetInt("max_users", 1000)
}

// MaxTasksPerUser returns the configured per-user task limit. Informational
// only, like MaxUsers.
func (m *Manager) MaxTasksPerUser() int {
	return m.GetInt("max_tasks_per_user", 50)
}
