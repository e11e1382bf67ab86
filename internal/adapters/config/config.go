package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Badsnus/prettyqr/pkg/generator"
	"github.com/Badsnus/prettyqr/pkg/logger"

	_ "time/tzdata"
)

type Config struct {
	OutputDir string
	Seed      int64
	Styles    []generator.Style
	Logger    logger.Config
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

// Get reads config.yaml from the working directory and initializes the
// logger. It panics on any error.
func Get() *Config {
	initConfig()

	cfg, err := FromViper(viper.GetViper())
	if err != nil {
		panic(err)
	}

	if err = logger.Init(cfg.Logger); err != nil {
		panic(err)
	}
	logger.Log.Debugf("Loaded %d styles from %s", len(cfg.Styles), viper.ConfigFileUsed())

	return cfg
}

// FromViper builds a Config from an already loaded viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("qr.output-dir", "examples")
	v.SetDefault("settings.logs-dir", "logs")

	var location *time.Location
	if tz := v.GetString("settings.timezone"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid settings.timezone: %w", err)
		}
		location = loc
	}

	var styles []generator.Style
	if err := v.UnmarshalKey("qr.styles", &styles); err != nil {
		return nil, fmt.Errorf("failed to decode qr.styles: %w", err)
	}
	if len(styles) == 0 {
		return nil, fmt.Errorf("qr.styles must contain at least one style")
	}
	for i, s := range styles {
		if s.Data == "" {
			return nil, fmt.Errorf("qr.styles[%d]: data is required", i)
		}
	}

	return &Config{
		OutputDir: v.GetString("qr.output-dir"),
		Seed:      v.GetInt64("qr.seed"),
		Styles:    styles,
		Logger: logger.Config{
			Debug:        v.GetBool("settings.debug"),
			TimeLocation: location,
			LogToFile:    v.GetBool("settings.log-to-file"),
			LogsDir:      v.GetString("settings.logs-dir"),
		},
	}, nil
}
