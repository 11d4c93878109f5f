package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// WeatherConfig describes the OpenWeatherMap provider. Timeout is in seconds and
// bounds the whole fetch step (current conditions plus forecast).
type WeatherConfig struct {
	BaseURL  string `yaml:"base_url" envconfig:"BASE_URL"`
	APIKey   string `yaml:"api_key,omitempty" envconfig:"OPENWEATHER_API_KEY"`
	Timeout  int    `yaml:"timeout" envconfig:"TIMEOUT"`
	Timezone string `yaml:"timezone" envconfig:"TIMEZONE"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

// ConfigProvider loads and validates the application configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads defaults, then an optional YAML file, then a .env file
// and finally the process environment. Later sources win.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// NewConfig loads the configuration from CONFIG_FILE (or config/config.yaml).
func NewConfig() (*Config, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}

	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// .env is optional, real environment variables are never overwritten by it
	_ = godotenv.Load()

	// Fields without a matching variable keep their current value.
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var problems []string

	if strings.TrimSpace(config.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if strings.TrimSpace(config.Weather.BaseURL) == "" {
		problems = append(problems, "weather.base_url is required")
	}
	if config.Weather.Timeout <= 0 {
		problems = append(problems, "weather.timeout must be positive")
	}
	if _, err := time.LoadLocation(config.Weather.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("weather.timezone is invalid: %v", err))
	}
	switch config.Log.Format {
	case "json", "console":
	default:
		problems = append(problems, "log.format must be json or console")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *Config) IsStaging() bool {
	return c.App.Env == "staging"
}

// ReportsErrors tells whether error-level logs should be forwarded to Sentry.
func (c *Config) ReportsErrors() bool {
	return c.Sentry.DSN != "" && c.Log.Format == "json" && (c.IsProduction() || c.IsStaging())
}

// WeatherTimeout is the deadline applied to one provider fetch step.
func (c *Config) WeatherTimeout() time.Duration {
	return time.Duration(c.Weather.Timeout) * time.Second
}

// Location resolves the time zone used to bucket forecast samples into days.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Weather.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-advisor",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			BaseURL:  "https://api.openweathermap.org/data/2.5",
			Timeout:  10,
			Timezone: "Local",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
