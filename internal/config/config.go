package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"yubin/internal/domain"
	"yubin/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Dataset DatasetSettings `toml:"dataset"`
	Search  SearchSettings  `toml:"search"`
	Results ResultSettings  `toml:"results"`
	UI      UISettings      `toml:"ui"`
}

// DatasetSettings says where the address records come from
type DatasetSettings struct {
	Source  string     `toml:"source"`  // path, http(s):// URL or s3://bucket/key
	Timeout string     `toml:"timeout"` // e.g. "10s"
	S3      S3Settings `toml:"s3"`
}

// S3Settings configures the s3:// source
type S3Settings struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
}

// SearchSettings configures query handling
type SearchSettings struct {
	Debounce    string `toml:"debounce"`
	DefaultMode string `toml:"default_mode"`
}

// ResultSettings configures the initial result layout
type ResultSettings struct {
	PageSize  int    `toml:"page_size"`
	SortOrder string `toml:"sort_order"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen bool   `toml:"alt_screen"`
	LogFile   string `toml:"log_file"`
}

// DebounceDuration parses search.debounce, falling back to 200ms
func (c *Config) DebounceDuration() (time.Duration, error) {
	return parseDuration(c.Search.Debounce, 200*time.Millisecond, "search.debounce")
}

// TimeoutDuration parses dataset.timeout, falling back to 10s
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return parseDuration(c.Dataset.Timeout, 10*time.Second, "dataset.timeout")
}

// Mode parses search.default_mode
func (c *Config) Mode() (domain.SearchMode, error) {
	return domain.ParseSearchMode(c.Search.DefaultMode)
}

// Order parses results.sort_order
func (c *Config) Order() (domain.SortOrder, error) {
	return domain.ParseSortOrder(c.Results.SortOrder)
}

// Validate checks every value that is parsed later
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.DebounceDuration(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Mode(); err != nil {
		errs = append(errs, fmt.Errorf("search.default_mode: %w", err))
	}
	if _, err := c.Order(); err != nil {
		errs = append(errs, fmt.Errorf("results.sort_order: %w", err))
	}
	if c.Results.PageSize != 0 && !domain.ValidPageSize(c.Results.PageSize) {
		errs = append(errs, fmt.Errorf("results.page_size %d: %w", c.Results.PageSize, domain.ErrInvalidPageSize))
	}
	return errors.Join(errs...)
}

func parseDuration(s string, fallback time.Duration, key string) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return fallback, fmt.Errorf("%s: must be positive, got %s", key, s)
	}
	return d, nil
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

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "yubin", "config.toml")
}

// NewConfigService creates a config service for path; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	source := cs.filePath
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
		source = "defaults"
	}
	if err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Source: source})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Dataset: DatasetSettings{
			Source:  "kyoto-addresses.json",
			Timeout: "10s",
			S3: S3Settings{
				Secure: true,
			},
		},
		Search: SearchSettings{
			Debounce:    "200ms",
			DefaultMode: domain.ModeZipCode.String(),
		},
		Results: ResultSettings{
			PageSize:  domain.DefaultPageSize,
			SortOrder: domain.SortByZipAsc.String(),
		},
		UI: UISettings{
			AltScreen: true,
			LogFile:   "yubin.log",
		},
	}
}
