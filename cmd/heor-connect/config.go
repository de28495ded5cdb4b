package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heorconnect/heor-connect/internal/model"
	"github.com/heorconnect/heor-connect/internal/navtree"
	"github.com/heorconnect/heor-connect/internal/router"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// appConfig holds the dashboard configuration.
type appConfig struct {
	Taxonomy           string        `mapstructure:"taxonomy"`
	TaxonomyFile       string        `mapstructure:"taxonomy-file"`
	Skin               string        `mapstructure:"skin"`
	StartupDelay       time.Duration `mapstructure:"startup-delay"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	LogLevel           string        `mapstructure:"log-level"`
	LogFile            string        `mapstructure:"log-file"`
	LogFormat          string        `mapstructure:"log-format"`

	ConfigPath string `mapstructure:"-"` // config file actually read, if any
	ConfigDir  string `mapstructure:"-"` // user skins live under <ConfigDir>/skins
}

// registerConfigFlags declares the flags that override config keys. Flag
// names match the keys so viper can bind them directly.
func registerConfigFlags(fs *pflag.FlagSet) {
	fs.String("taxonomy", model.DefaultTaxonomy, "built-in taxonomy ("+strings.Join(navtree.Builtin(), ", ")+")")
	fs.String("taxonomy-file", "", "load the taxonomy from a YAML file instead of a built-in one")
	fs.String("skin", model.DefaultSkin, "colour skin")
	fs.Duration("startup-delay", model.DefaultStartupDelay, "how long the loading screen is shown")
	fs.Bool("reverse-scroll-wheel", false, "reverse mouse wheel direction")
	fs.String("log-level", model.DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.String("log-file", "", "log file (default ~/.local/state/heor-connect/heor-connect.log)")
	fs.String("log-format", "text", "log format (text, json)")
}

func loadConfig(configPath string, flags *pflag.FlagSet) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "heor-connect")

	v := viper.New()
	v.SetEnvPrefix("HEOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("taxonomy", model.DefaultTaxonomy)
	v.SetDefault("taxonomy-file", "")
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("startup-delay", model.DefaultStartupDelay)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", "")
	v.SetDefault("log-format", "text")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, fmt.Errorf("binding flags: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	readConfig := true
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
		readConfig = false
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if readConfig {
		cfg.ConfigPath = v.ConfigFileUsed()
	}
	cfg.ConfigDir = configDir

	if cfg.StartupDelay < 0 {
		return cfg, fmt.Errorf("invalid startup-delay: %s", cfg.StartupDelay)
	}
	if cfg.TaxonomyFile == "" && cfg.Taxonomy == "" {
		return cfg, errors.New("taxonomy must not be empty")
	}

	return cfg, nil
}

// loadRouter builds the router for the configured taxonomy. A taxonomy file
// takes precedence over the built-in name.
func loadRouter(cfg appConfig) (*router.Router, error) {
	var (
		tree *navtree.Tree
		err  error
	)
	if cfg.TaxonomyFile != "" {
		tree, err = navtree.LoadFile(cfg.TaxonomyFile)
	} else {
		tree, err = navtree.Load(cfg.Taxonomy)
	}
	if err != nil {
		return nil, err
	}
	return router.New(tree)
}
