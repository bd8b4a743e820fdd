// Package config loads the calgrid settings file. Flags override file
// values; file values override defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/davren/calgrid/internal/date"
)

// Config represents the application configuration.
type Config struct {
	WeekStartsOn    int    `mapstructure:"week_starts_on"`
	NumberOfMonths  int    `mapstructure:"months"`
	FixedWeeks      bool   `mapstructure:"fixed_weeks"`
	PagedNavigation bool   `mapstructure:"paged_navigation"`
	Locale          string `mapstructure:"locale"`
	WeekdayFormat   string `mapstructure:"weekday_format"`
	MinDate         string `mapstructure:"min_date"`
	MaxDate         string `mapstructure:"max_date"`
	MarksFile       string `mapstructure:"marks_file"`
	ShowLunar       bool   `mapstructure:"show_lunar"`
	NoColor         bool   `mapstructure:"no_color"`
	LogFile         string `mapstructure:"log_file"`
	LogLevel        string `mapstructure:"log_level"`
}

// Load reads the configuration from configPath, or from the default search
// path ($HOME and the working directory) when configPath is empty. A
// missing file in the default search path is not an error; the defaults
// apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("week_starts_on", 0)
	v.SetDefault("months", 1)
	v.SetDefault("locale", "en")
	v.SetDefault("weekday_format", "short")
	v.SetDefault("log_level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".calgrid")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CALGRID")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.WeekStartsOn < 0 || c.WeekStartsOn > 6 {
		return fmt.Errorf("week_starts_on must be between 0 and 6, got %d", c.WeekStartsOn)
	}
	if c.NumberOfMonths < 1 {
		return fmt.Errorf("months must be at least 1, got %d", c.NumberOfMonths)
	}
	switch c.WeekdayFormat {
	case "narrow", "short", "long":
	default:
		return fmt.Errorf("weekday_format must be narrow, short or long, got %q", c.WeekdayFormat)
	}
	if c.MinDate != "" {
		if _, err := date.Parse(c.MinDate); err != nil {
			return fmt.Errorf("min_date: %w", err)
		}
	}
	if c.MaxDate != "" {
		if _, err := date.Parse(c.MaxDate); err != nil {
			return fmt.Errorf("max_date: %w", err)
		}
	}
	if c.MinDate != "" && c.MaxDate != "" {
		min, _ := date.Parse(c.MinDate)
		max, _ := date.Parse(c.MaxDate)
		if max.Before(min) {
			return fmt.Errorf("max_date %s is before min_date %s", c.MaxDate, c.MinDate)
		}
	}
	return nil
}
