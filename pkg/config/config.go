// Package config reads and writes the surepatch configuration file,
// ~/.surepatch.yaml by default.
//
// Values come from three places, highest precedence first: SUREPATCH_*
// environment variables (a .env file in the working directory is loaded
// into the environment first), the YAML file, and built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/surepatch/pkg/backend"
	"github.com/matzehuels/surepatch/pkg/charset"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// FileName is the config file name inside the home directory.
const FileName = ".surepatch.yaml"

// EnvPrefix prefixes environment overrides (SUREPATCH_PASSWORD, ...).
const EnvPrefix = "SUREPATCH"

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

const saveHint = "run 'surepatch config save --team <team> --user <user> --password <password>'"

var keys = []string{"team", "user", "password", "auth_token", "base_url", "command_timeout"}

// Config holds the credentials and client settings.
type Config struct {
	Team           string        `yaml:"team" mapstructure:"team"`
	User           string        `yaml:"user" mapstructure:"user"`
	Password       string        `yaml:"password" mapstructure:"password"`
	AuthToken      string        `yaml:"auth_token" mapstructure:"auth_token"`
	BaseURL        string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	CommandTimeout time.Duration `yaml:"command_timeout,omitempty" mapstructure:"command_timeout"`
}

// Credentials returns the login credentials of c.
func (c *Config) Credentials() backend.Credentials {
	return backend.Credentials{Team: c.Team, User: c.User, Password: c.Password, AuthToken: c.AuthToken}
}

// Validate checks that the required keys are set and the optional ones
// are usable.
func (c *Config) Validate() error {
	for _, f := range []struct{ key, value string }{
		{"team", c.Team},
		{"user", c.User},
		{"password", c.Password},
	} {
		if strings.TrimSpace(f.value) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s is not set", f.key).WithHint(saveHint)
		}
	}
	if c.BaseURL != "" {
		if err := errors.ValidateURL(c.BaseURL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "base_url")
		}
	}
	if c.CommandTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "command_timeout must not be negative")
	}
	return nil
}

// DefaultPath returns ~/.surepatch.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigNotFound, err, "locate home directory")
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the config file at path (DefaultPath when empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := godotenv.Load(DotEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", DotEnvFile)
	}

	text, _, err := charset.ReadFile(path)
	if err != nil {
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return nil, errors.New(errors.ErrCodeConfigNotFound, "config file %s does not exist", path).WithHint(saveHint)
		}
		return nil, err
	}

	v := newViper()
	if err := v.ReadConfig(strings.NewReader(text)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	v.SetDefault("base_url", backend.DefaultBaseURL)
	v.SetDefault("command_timeout", runner.DefaultTimeout)
	return v
}

// Save validates cfg and writes it to path (DefaultPath when empty),
// readable by the owner only.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "write %s", path)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "restrict %s", path)
	}
	return nil
}
