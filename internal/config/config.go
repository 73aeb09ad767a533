package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/colprofile/internal/utils"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Header names treated as ID columns during inference.
	IDColumns []string `mapstructure:"id_columns" yaml:"id_columns"`
	// json | yaml | markdown
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	// When set and no --output is given, results are written here as <dataset>.<ext>.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// CSV delimiter: "," | ";" | "tab"; empty picks by extension.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	Sheet     string `mapstructure:"sheet" yaml:"sheet"`
	// Files analyzed concurrently.
	Jobs     int    `mapstructure:"jobs" yaml:"jobs"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Global {
	return &Global{
		IDColumns:    []string{"id", "ID", "_id", "_ID", "Rank"},
		OutputFormat: "json",
		Jobs:         4,
		LogLevel:     "warn",
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".colprofile"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.colprofile/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (COLPROFILE_*) > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("COLPROFILE")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("id_columns", d.IDColumns)
	v.SetDefault("output_format", d.OutputFormat)
	v.SetDefault("output_dir", "")
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet", "")
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("log_level", d.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine; a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
	return &c, nil
}
