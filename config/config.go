// Package config loads the molrepair configuration: a TOML file overlaid
// with MOLREPAIR_* environment variables, with CLI flags taking precedence
// on top (wired up by the commands).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/osmium-bio/molrepair/errors"
)

// Config represents the molrepair configuration
type Config struct {
	ForceField ForceFieldConfig `mapstructure:"forcefield"`
	Repair     RepairConfig     `mapstructure:"repair"`
	Log        LogConfig        `mapstructure:"log"`
}

// ForceFieldConfig locates the reference topologies
type ForceFieldConfig struct {
	Path string `mapstructure:"path"` // directory of *.toml topology files
}

// RepairConfig tunes the repair pipeline
type RepairConfig struct {
	// Permissive drops molecules with unrecognized residues from the
	// system instead of failing the run.
	Permissive bool `mapstructure:"permissive"`
}

// LogConfig configures the event stream
type LogConfig struct {
	JSON      bool `mapstructure:"json"`      // machine-readable output
	Verbosity int  `mapstructure:"verbosity"` // same scale as repeated -v flags
}

// SetDefaults registers the default values on a Viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("forcefield.path", "")
	v.SetDefault("repair.permissive", false)
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 1)
}

// Load reads the configuration from the default location
// ($XDG_CONFIG_HOME/molrepair/config.toml or ~/.config/molrepair), the
// working directory, and the environment. A missing config file is not an
// error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "molrepair"))
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("MOLREPAIR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	return unmarshal(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}
