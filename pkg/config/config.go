package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/contactbook"
	ConfigFileName    = "contactbook.yml"
)

// Contact store backends selectable at composition time.
const (
	BackendDatabase = "database"
	BackendAPI      = "api"
)

// Config holds all contactbook configuration settings
type Config struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address"`

	// Port is the HTTP server port
	Port int `yaml:"port"`

	// SessionKey signs the session cookie. Required.
	SessionKey string `yaml:"session_key"`

	// SessionTTLMinutes is the lifetime of a persistent session cookie
	SessionTTLMinutes int `yaml:"session_ttl_minutes"`

	// ContactBackend selects the contact store: "database" or "api"
	ContactBackend string `yaml:"contact_backend"`

	// ContactAPIBaseURL is the base URL of the remote contact API,
	// used when ContactBackend is "api"
	ContactAPIBaseURL string `yaml:"contact_api_base_url"`

	// LogLevel is the application log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		BindAddress:       "0.0.0.0",
		Port:              8000,
		SessionTTLMinutes: 480,
		ContactBackend:    BackendDatabase,
		ContactAPIBaseURL: "https://localhost:7286",
		LogLevel:          "info",
		sources:           make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CONTACTBOOK_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

// Validate reports configuration values that would prevent the server
// from starting.
func (c *Config) Validate() error {
	if c.SessionKey == "" {
		return fmt.Errorf("session key is required (set CONTACTBOOK_SESSION_KEY or session_key)")
	}
	if c.ContactBackend != BackendDatabase && c.ContactBackend != BackendAPI {
		return fmt.Errorf("invalid contact_backend %q (must be %q or %q)",
			c.ContactBackend, BackendDatabase, BackendAPI)
	}
	if c.ContactBackend == BackendAPI && c.ContactAPIBaseURL == "" {
		return fmt.Errorf("contact_api_base_url is required when contact_backend is %q", BackendAPI)
	}
	return nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "session_key", "session_ttl_minutes",
		"contact_backend", "contact_api_base_url", "log_level",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.SessionKey != "" {
		c.SessionKey = file.SessionKey
		c.sources["session_key"] = "file"
	}
	if file.SessionTTLMinutes != 0 {
		c.SessionTTLMinutes = file.SessionTTLMinutes
		c.sources["session_ttl_minutes"] = "file"
	}
	if file.ContactBackend != "" {
		c.ContactBackend = file.ContactBackend
		c.sources["contact_backend"] = "file"
	}
	if file.ContactAPIBaseURL != "" {
		c.ContactAPIBaseURL = file.ContactAPIBaseURL
		c.sources["contact_api_base_url"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("CONTACTBOOK_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("CONTACTBOOK_SESSION_KEY"); val != "" {
		c.SessionKey = val
		c.sources["session_key"] = "environment"
	}
	if val := os.Getenv("CONTACTBOOK_SESSION_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SessionTTLMinutes = i
			c.sources["session_ttl_minutes"] = "environment"
		}
	}
	if val := os.Getenv("CONTACTBOOK_CONTACT_BACKEND"); val != "" {
		c.ContactBackend = val
		c.sources["contact_backend"] = "environment"
	}
	if val := os.Getenv("CONTACTBOOK_CONTACT_API_URL"); val != "" {
		c.ContactAPIBaseURL = val
		c.sources["contact_api_base_url"] = "environment"
	}
	if val := os.Getenv("CONTACTBOOK_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// SessionTTL returns the persistent session lifetime as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}
