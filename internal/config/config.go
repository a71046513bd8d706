// Package config loads settings from defaults, an optional config file,
// DEVHUB_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "DEVHUB"

type BrowserConfig struct {
	Driver     string `mapstructure:"driver"`
	Headless   bool   `mapstructure:"headless"`
	NoSandbox  bool   `mapstructure:"no_sandbox"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	ProfileDir string `mapstructure:"profile_dir"`
	// NavigationTimeout bounds page loads.
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout"`
}

type PagesConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

type AIConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RecordConfig struct {
	FPS      int  `mapstructure:"fps"`
	Hold     int  `mapstructure:"hold"`
	MaxWidth uint `mapstructure:"max_width"`
}

type Config struct {
	Browser BrowserConfig `mapstructure:"browser"`
	Pages   PagesConfig   `mapstructure:"pages"`
	AI      AIConfig      `mapstructure:"ai"`
	Log     LogConfig     `mapstructure:"log"`
	Record  RecordConfig  `mapstructure:"record"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("browser.driver", "rod")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.no_sandbox", false)
	v.SetDefault("browser.width", 1280)
	v.SetDefault("browser.height", 720)
	v.SetDefault("browser.profile_dir", "")
	v.SetDefault("browser.navigation_timeout", "30s")

	v.SetDefault("pages.timeout", "10s")
	v.SetDefault("pages.poll_interval", "250ms")

	v.SetDefault("ai.provider", "claude")
	v.SetDefault("ai.model", "")

	v.SetDefault("log.level", "info")

	v.SetDefault("record.fps", 2)
	v.SetDefault("record.hold", 2)
	v.SetDefault("record.max_width", 800)
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"driver":       "browser.driver",
	"headless":     "browser.headless",
	"no-sandbox":   "browser.no_sandbox",
	"width":        "browser.width",
	"height":       "browser.height",
	"profile":      "browser.profile_dir",
	"timeout":      "pages.timeout",
	"provider":     "ai.provider",
	"model":        "ai.model",
	"log-level":    "log.level",
	"fps":          "record.fps",
	"record-width": "record.max_width",
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile (if any), binds the flags present in fs and returns
// the validated configuration.
func Load(v *viper.Viper, configFile string, fs *pflag.FlagSet) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	var errs []error
	switch c.Browser.Driver {
	case "rod", "playwright":
	default:
		errs = append(errs, fmt.Errorf("browser.driver must be rod or playwright, got %q", c.Browser.Driver))
	}
	if c.Browser.Width <= 0 || c.Browser.Height <= 0 {
		errs = append(errs, errors.New("browser.width and browser.height must be positive"))
	}
	if c.Pages.Timeout <= 0 {
		errs = append(errs, errors.New("pages.timeout must be positive"))
	}
	if c.Pages.PollInterval <= 0 || c.Pages.PollInterval > c.Pages.Timeout {
		errs = append(errs, errors.New("pages.poll_interval must be positive and no longer than pages.timeout"))
	}
	if c.Record.FPS <= 0 || c.Record.FPS > 100 {
		errs = append(errs, errors.New("record.fps must be between 1 and 100"))
	}
	return errors.Join(errs...)
}
