// Package config loads and validates the bot configuration from a YAML file
// with environment-variable overrides (SCMM_BOT_* prefix). The Discord token
// is normally supplied through the environment rather than the config file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Discord DiscordConfig `mapstructure:"discord"`
	SCMM    SCMMConfig    `mapstructure:"scmm"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DiscordConfig holds Discord bot configuration
type DiscordConfig struct {
	Token        string        `mapstructure:"token"`
	GuildID      string        `mapstructure:"guild_id"`
	MaxWeekItems int           `mapstructure:"max_week_items"`
	DeleteDelay  time.Duration `mapstructure:"delete_delay"`
}

// SCMMConfig holds SCMM API configuration
type SCMMConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	setDefaults(v)

	// SCMM_BOT_DISCORD_TOKEN etc. override the file
	v.SetEnvPrefix("SCMM_BOT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// AutomaticEnv only resolves keys viper already knows about; bind the
	// token explicitly so it can come from the environment alone.
	if cfg.Discord.Token == "" {
		cfg.Discord.Token = v.GetString("discord_token")
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.max_week_items", 20)
	v.SetDefault("discord.delete_delay", "5m")

	v.SetDefault("scmm.base_url", "https://rust.scmm.app")
	v.SetDefault("scmm.timeout", "20s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("discord.token is required (set SCMM_BOT_DISCORD_TOKEN or add it to the config file)")
	}
	if c.Discord.GuildID == "" {
		return fmt.Errorf("discord.guild_id is required")
	}
	if c.Discord.MaxWeekItems < 1 {
		return fmt.Errorf("discord.max_week_items must be at least 1")
	}
	if c.Discord.DeleteDelay < 10*time.Second {
		return fmt.Errorf("discord.delete_delay must be at least 10 seconds")
	}

	if c.SCMM.BaseURL == "" {
		return fmt.Errorf("scmm.base_url is required")
	}
	if c.SCMM.Timeout < 1*time.Second {
		return fmt.Errorf("scmm.timeout must be at least 1 second")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
