package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
	"olexsmir.xyz/whenwords/humanize"
)

var ErrConfigNotFound = errors.New("no config file found")

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DefaultsConfig holds the values commands fall back to when a flag or
// query parameter is not given.
type DefaultsConfig struct {
	Timezone string `yaml:"timezone"`
	Compact  bool   `yaml:"compact"`
	MaxUnits int    `yaml:"max_units"`
}

type RepoConfig struct {
	Dir string `yaml:"dir"`
}

type CacheConfig struct {
	// Activity is a human duration, e.g. "5 minutes" or "1h 30m".
	Activity string `yaml:"activity"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Repo     RepoConfig     `yaml:"repo"`
	Cache    CacheConfig    `yaml:"cache"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	var c Config
	c.ensureDefaults()
	return &c
}

// Load loads configuration with the following priority:
// 1. User provided fpath (if provided and exists)
// 2. $XDG_CONFIG_HOME/whenwords/config.yaml or $HOME/.config/whenwords/config.yaml
// 3. /etc/whenwords/config.yaml
func Load(fpath string) (*Config, error) {
	configPath, err := findConfigFile(fpath)
	if err != nil {
		return nil, err
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	return parse(configBytes)
}

func parse(configBytes []byte) (*Config, error) {
	var config Config
	if cerr := yaml.Unmarshal(configBytes, &config); cerr != nil {
		return nil, fmt.Errorf("parsing config: %w", cerr)
	}

	if config.Repo.Dir != "" {
		var err error
		if config.Repo.Dir, err = filepath.Abs(config.Repo.Dir); err != nil {
			return nil, err
		}
	}

	config.ensureDefaults()

	if verr := config.validate(); verr != nil {
		return nil, verr
	}

	return &config, nil
}

// ActivityTTL is how long repository history is cached. validate guarantees
// it parses.
func (c *Config) ActivityTTL() time.Duration {
	secs, err := humanize.ParseDuration(c.Cache.Activity)
	if err != nil {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func (c *Config) ensureDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	if c.Defaults.MaxUnits == 0 {
		c.Defaults.MaxUnits = humanize.DefaultMaxUnits
	}

	if c.Cache.Activity == "" {
		c.Cache.Activity = "5 minutes"
	}
}

func findConfigFile(userPath string) (string, error) {
	if userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(configDir, "whenwords", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	path := "/etc/whenwords/config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", ErrConfigNotFound
}

func isDirExists(path string) bool {
	i, err := os.Stat(path)
	if err != nil {
		return false
	}
	return i.IsDir()
}
