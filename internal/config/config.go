package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// BufferDays is how many days before the client deadline supplier
	// quotes are requested.
	BufferDays int `mapstructure:"buffer_days" yaml:"buffer_days"`
	// Roster is the path of the supplier roster YAML file.
	Roster string `mapstructure:"roster" yaml:"roster"`
	// Patterns optionally points at a pattern overlay YAML file.
	Patterns string `mapstructure:"patterns" yaml:"patterns"`
	// Signature is the sign-off appended to generated drafts.
	Signature string `mapstructure:"signature" yaml:"signature"`
	Quiet     bool   `mapstructure:"quiet" yaml:"quiet"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.procure/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".procure")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PROCURE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("buffer_days", 2)
	v.SetDefault("roster", "")
	v.SetDefault("patterns", "")
	v.SetDefault("signature", "")
	v.SetDefault("quiet", false)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".procure")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
