package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	List    ListConfig    `mapstructure:"list"`
	Palette PaletteConfig `mapstructure:"palette"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// Address returns the host:port the HTTP server listens on
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PokeAPIConfig holds remote API configuration
type PokeAPIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ArtworkURL string `mapstructure:"artwork_url"`
	Timeout    int    `mapstructure:"timeout"` // seconds
	UserAgent  string `mapstructure:"user_agent"`
}

// ListConfig holds pagination settings of the list screen
type ListConfig struct {
	PageSize   int `mapstructure:"page_size"`
	SessionTTL int `mapstructure:"session_ttl"` // seconds a screen session may stay idle
}

// PaletteConfig holds dominant color extraction settings
type PaletteConfig struct {
	Algorithm string `mapstructure:"algorithm"` // histogram or kmeans
	Clusters  int    `mapstructure:"clusters"`
	Resize    int    `mapstructure:"resize"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

const envFile = ".env.local"

// Load loads configuration from an optional YAML file with environment variable overrides.
// An empty path looks for config.yaml in the current directory.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Debugf("No %s file found, using system environment variables", envFile)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("POKEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("config.yaml not found, using defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.PokeAPI.BaseURL == "" {
		return fmt.Errorf("pokeapi.base_url must not be empty")
	}
	if c.PokeAPI.Timeout <= 0 {
		return fmt.Errorf("pokeapi.timeout must be positive, got %d", c.PokeAPI.Timeout)
	}
	if c.List.PageSize <= 0 {
		return fmt.Errorf("list.page_size must be positive, got %d", c.List.PageSize)
	}
	if c.List.SessionTTL <= 0 {
		return fmt.Errorf("list.session_ttl must be positive, got %d", c.List.SessionTTL)
	}
	if c.Palette.Clusters <= 0 {
		return fmt.Errorf("palette.clusters must be positive, got %d", c.Palette.Clusters)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")

	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.artwork_url", "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork")
	v.SetDefault("pokeapi.timeout", 30)
	v.SetDefault("pokeapi.user_agent", "Pokedex/1.0")

	v.SetDefault("list.page_size", 20)
	v.SetDefault("list.session_ttl", 1800)

	v.SetDefault("palette.algorithm", "histogram")
	v.SetDefault("palette.clusters", 3)
	v.SetDefault("palette.resize", 80)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
