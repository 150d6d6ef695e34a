package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"bankey/internal/domain"
	"bankey/internal/eventbus"
	"bankey/internal/login"
	"bankey/internal/onboarding"
)

// CurrentVersion is the only config layout this build understands
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version    int                `toml:"version"`
	Onboarding OnboardingSettings `toml:"onboarding"`
	Auth       AuthSettings       `toml:"auth"`
	UI         UISettings         `toml:"ui"`
}

// OnboardingSettings controls the onboarding pager
type OnboardingSettings struct {
	Enabled     bool         `toml:"enabled"`
	UnknownPage string       `toml:"unknown_page"` // "reject" or "first"
	Pages       []PageConfig `toml:"pages"`
}

// PageConfig is one onboarding slide
type PageConfig struct {
	ID    string `toml:"id"`
	Image string `toml:"image"`
	Title string `toml:"title"`
}

// AuthSettings holds the single accepted account.
// PasswordHash, when set, takes precedence over Password.
type AuthSettings struct {
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	PasswordHash string `toml:"password_hash"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen     bool   `toml:"alt_screen"`
	SignInDelayMS int    `toml:"sign_in_delay_ms"`
	LogFile       string `toml:"log_file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "bankey", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file.
// A missing file yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:      cs.filePath,
			PageCount: len(cfg.Onboarding.Pages),
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Settings missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Credentials may live in this file
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Parse decodes and validates TOML config data on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Onboarding.Pages = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Onboarding.Pages == nil {
		cfg.Onboarding.Pages = DefaultConfig().Onboarding.Pages
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the app cannot run with
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if len(c.Onboarding.Pages) == 0 {
		return errors.New("onboarding needs at least one page")
	}
	seen := make(map[string]bool, len(c.Onboarding.Pages))
	for i, p := range c.Onboarding.Pages {
		if p.ID == "" {
			return fmt.Errorf("onboarding page %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate onboarding page id %q", p.ID)
		}
		seen[p.ID] = true
	}
	if _, err := onboarding.ParseUnknownPagePolicy(c.Onboarding.UnknownPage); err != nil {
		return err
	}
	if c.Auth.Username == "" {
		return errors.New("auth username must not be empty")
	}
	if c.UI.SignInDelayMS < 0 {
		return fmt.Errorf("sign_in_delay_ms must not be negative, got %d", c.UI.SignInDelayMS)
	}
	return nil
}

// Pages converts the configured slides to domain pages
func (c *Config) Pages() []domain.Page {
	pages := make([]domain.Page, len(c.Onboarding.Pages))
	for i, p := range c.Onboarding.Pages {
		pages[i] = domain.Page{ID: p.ID, Image: p.Image, Title: p.Title}
	}
	return pages
}

// UnknownPagePolicy returns the parsed onboarding policy
func (c *Config) UnknownPagePolicy() onboarding.UnknownPagePolicy {
	policy, _ := onboarding.ParseUnknownPagePolicy(c.Onboarding.UnknownPage)
	return policy
}

// Checker builds the credential checker for the configured account
func (c *Config) Checker() login.Checker {
	if c.Auth.PasswordHash != "" {
		return login.BcryptChecker{Username: c.Auth.Username, Hash: c.Auth.PasswordHash}
	}
	return login.StaticChecker{Username: c.Auth.Username, Password: c.Auth.Password}
}

// SignInDelay is how long the loading indicator shows after a successful sign-in
func (c *Config) SignInDelay() time.Duration {
	return time.Duration(c.UI.SignInDelayMS) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	defaults := onboarding.DefaultPages()
	pages := make([]PageConfig, len(defaults))
	for i, p := range defaults {
		pages[i] = PageConfig{ID: p.ID, Image: p.Image, Title: p.Title}
	}

	account := login.DefaultChecker()
	return &Config{
		Version: CurrentVersion,
		Onboarding: OnboardingSettings{
			Enabled:     true,
			UnknownPage: "reject",
			Pages:       pages,
		},
		Auth: AuthSettings{
			Username: account.Username,
			Password: account.Password,
		},
		UI: UISettings{
			AltScreen:     true,
			SignInDelayMS: 1200,
			LogFile:       "bankey.log",
		},
	}
}
