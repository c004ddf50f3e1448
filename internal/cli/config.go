package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggsvg"
)

const defaultConfigPath = "~/.config/" + appName + "/config.toml"

// Config holds render defaults. Zero Width and Height mean the scene's own
// size times Scale.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Scale      float64 `toml:"scale"`
	Background string  `toml:"background"`
	MaxDepth   int     `toml:"max_depth"`
	OutputDir  string  `toml:"output_dir"`
}

func defaultConfig() Config {
	return Config{
		Scale:      1,
		Background: "transparent",
		MaxDepth:   ggsvg.DefaultMaxDepth,
	}
}

// loadConfig reads the config file at path over the defaults. A missing
// file is an error only when the path was given explicitly.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(expanded, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if cfg.OutputDir != "" {
		if cfg.OutputDir, err = homedir.Expand(cfg.OutputDir); err != nil {
			return cfg, fmt.Errorf("output_dir: %w", err)
		}
	}
	return cfg, nil
}

// configCommand prints the effective configuration as TOML.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			return toml.NewEncoder(c.out).Encode(cfg)
		},
	}
}
