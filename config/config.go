package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
	Cache   CacheConfig   `yaml:"cache"`
	Weather WeatherConfig `yaml:"weather"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

type CacheConfig struct {
	Size       int `yaml:"size"`
	TTLSeconds int `yaml:"ttl_seconds" split_words:"true"`
}

type WeatherConfig struct {
	APIs []WeatherAPIConfig `yaml:"apis" ignored:"true"`
	// OpenWeatherMapAPIKey fills the key of the openweathermap entry when set.
	OpenWeatherMapAPIKey string `yaml:"-" envconfig:"OPENWEATHERMAP_API_KEY"`
	// LocationURL is the IP geolocation endpoint used when a request has no city.
	LocationURL string `yaml:"location_url" split_words:"true"`
	// BatchConcurrency bounds concurrent provider calls for multi-city requests.
	BatchConcurrency int `yaml:"batch_concurrency" split_words:"true"`
}

type WeatherAPIConfig struct {
	Name      string  `yaml:"name"`
	APIKey    string  `yaml:"api_key,omitempty"`
	BaseURL   string  `yaml:"base_url,omitempty"`
	Timeout   int     `yaml:"timeout"`
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func defaults() Config {
	return Config{
		App:    AppConfig{Name: "weather-advisor", Version: "1.0.0", Env: "development"},
		Server: ServerConfig{Port: "8080", ReadTimeout: 10, WriteTimeout: 10, IdleTimeout: 120},
		Log:    LogConfig{Level: "info"},
		Cache:  CacheConfig{Size: 256, TTLSeconds: 600},
		Weather: WeatherConfig{
			LocationURL:      "http://ip-api.com/json",
			BatchConcurrency: 4,
		},
	}
}

// NewConfig reads path over the defaults and then applies environment overrides.
// A missing file is not an error.
func NewConfig(path string) (*Config, error) {
	cnf := defaults()

	// Read from YAML file first
	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, errors.Wrapf(err, "parse yaml config %s", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "read yaml config %s", path)
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, errors.Wrap(err, "error environment variable parsing")
	}

	if cnf.Weather.OpenWeatherMapAPIKey != "" {
		if api, ok := cnf.GetWeatherAPIByName("openweathermap"); ok {
			api.APIKey = cnf.Weather.OpenWeatherMapAPIKey
		}
	}

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return &cnf, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.App.Name) == "" {
		return errors.New("app.name is required")
	}
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port is required")
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if c.Cache.Size < 0 || c.Cache.TTLSeconds < 0 {
		return errors.New("cache.size and cache.ttl_seconds must not be negative")
	}
	for i, api := range c.Weather.APIs {
		if strings.TrimSpace(api.Name) == "" {
			return fmt.Errorf("weather.apis[%d].name is required", i)
		}
		if api.Name == "openweathermap" && strings.TrimSpace(api.APIKey) == "" {
			return fmt.Errorf("weather.apis[%d]: openweathermap requires api_key", i)
		}
		if api.RateLimit < 0 || api.Burst < 0 {
			return fmt.Errorf("weather.apis[%d]: rate_limit and burst must not be negative", i)
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "dev" || c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}

// ReportsErrors tells whether error log entries go to Sentry in this environment.
func (c *Config) ReportsErrors() bool {
	return c.IsProduction() || c.IsDevelopment()
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}
