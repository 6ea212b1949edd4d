package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000/crud"

	// StartHint is the command shown when the server is not running.
	DefaultStartHint = "uvicorn main:app --reload"

	configFileName = "config.yaml"
)

// Config holds everything the client needs. Zero Timeout means no timeout.
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	RootURL   string        `yaml:"root_url"`
	Timeout   time.Duration `yaml:"timeout"`
	Theme     string        `yaml:"theme"`
	StartHint string        `yaml:"start_hint"`
	LogFile   string        `yaml:"log_file"`
	Debug     bool          `yaml:"debug"`
}

func Default() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Theme:     "classic",
		StartHint: DefaultStartHint,
	}
}

// DefaultPath is ~/.crudpanel/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".crudpanel", configFileName), nil
}

// Load applies defaults, then the YAML file at path, then the environment.
// A missing file is not an error unless path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				err = nil
			}
			if err != nil {
				return cfg, err
			}
		}
	}
	if err := cfg.mergeEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.overlay(fileCfg)
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	env := Config{
		BaseURL:   strings.TrimSpace(getenv("CRUDPANEL_BASE_URL")),
		RootURL:   strings.TrimSpace(getenv("CRUDPANEL_ROOT_URL")),
		Theme:     strings.TrimSpace(getenv("CRUDPANEL_THEME")),
		StartHint: strings.TrimSpace(getenv("CRUDPANEL_START_HINT")),
		LogFile:   strings.TrimSpace(getenv("CRUDPANEL_LOG_FILE")),
	}
	if v := strings.TrimSpace(getenv("CRUDPANEL_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CRUDPANEL_TIMEOUT: %w", err)
		}
		env.Timeout = d
	}
	c.overlay(env)
	return nil
}

// overlay copies every non-zero field of o onto c.
func (c *Config) overlay(o Config) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.RootURL != "" {
		c.RootURL = o.RootURL
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.StartHint != "" {
		c.StartHint = o.StartHint
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.Debug {
		c.Debug = true
	}
}

// Override applies flag values on top of the loaded config.
func (c *Config) Override(o Config) { c.overlay(o) }

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("config: base_url is required")
	}
	if c.Timeout < 0 {
		return errors.New("config: timeout must not be negative")
	}
	switch strings.ToLower(c.Theme) {
	case "", "classic", "neon", "mono":
	default:
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	return nil
}

func (c Config) String() string {
	timeout := "none"
	if c.Timeout > 0 {
		timeout = c.Timeout.String()
	}
	root := c.RootURL
	if root == "" {
		root = "(origin of base_url)"
	}
	logFile := c.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}
	return fmt.Sprintf("base_url:   %s\nroot_url:   %s\ntimeout:    %s\ntheme:      %s\nstart_hint: %s\nlog_file:   %s\n",
		c.BaseURL, root, timeout, c.Theme, c.StartHint, logFile)
}
