package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Yahoo struct {
		BaseURL    string        `yaml:"base_url"`
		Timeout    time.Duration `yaml:"timeout"`
		MaxRetries int           `yaml:"max_retries"`
		UserAgent  string        `yaml:"user_agent"`
	} `yaml:"yahoo"`
	AlphaVantage struct {
		Enabled bool          `yaml:"enabled"`
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"alphavantage"`
	Cache struct {
		TTL struct {
			Quote    time.Duration `yaml:"quote"`
			Intraday time.Duration `yaml:"intraday"`
			Daily    time.Duration `yaml:"daily"`
			Gold     time.Duration `yaml:"gold"`
		} `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	RateLimit struct {
		Enabled  bool          `yaml:"enabled"`
		Requests int           `yaml:"requests"`
		Window   time.Duration `yaml:"window"`
	} `yaml:"rate_limit"`
	Liquidity struct {
		SpikeThreshold float64 `yaml:"spike_threshold"`
		SpikeLimit     int     `yaml:"spike_limit"`
		EventWindow    int     `yaml:"event_window_days"`
	} `yaml:"liquidity"`
	Simulator struct {
		RiskFreeRate float64 `yaml:"risk_free_rate"`
	} `yaml:"simulator"`
	Stream struct {
		Enabled      bool          `yaml:"enabled"`
		Symbols      []string      `yaml:"symbols"`
		PushInterval time.Duration `yaml:"push_interval"`
	} `yaml:"stream"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		c.AlphaVantage.APIKey = v
		c.AlphaVantage.Enabled = true
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("STREAM_SYMBOLS"); v != "" {
		c.Stream.Symbols = strings.Split(v, ",")
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Yahoo.BaseURL == "" {
		c.Yahoo.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Yahoo.Timeout == 0 {
		c.Yahoo.Timeout = 10 * time.Second
	}
	if c.AlphaVantage.BaseURL == "" {
		c.AlphaVantage.BaseURL = "https://www.alphavantage.co"
	}
	if c.Cache.TTL.Quote == 0 {
		c.Cache.TTL.Quote = 30 * time.Second
	}
	if c.Cache.TTL.Intraday == 0 {
		c.Cache.TTL.Intraday = time.Minute
	}
	if c.Cache.TTL.Daily == 0 {
		c.Cache.TTL.Daily = 30 * time.Minute
	}
	if c.Cache.TTL.Gold == 0 {
		c.Cache.TTL.Gold = time.Minute
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 100
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}
	if c.Liquidity.SpikeThreshold == 0 {
		c.Liquidity.SpikeThreshold = 1.2
	}
	if c.Liquidity.SpikeLimit == 0 {
		c.Liquidity.SpikeLimit = 6
	}
	if c.Liquidity.EventWindow == 0 {
		c.Liquidity.EventWindow = 3
	}
	if c.Simulator.RiskFreeRate == 0 {
		c.Simulator.RiskFreeRate = 0.05
	}
	if c.Stream.PushInterval == 0 {
		c.Stream.PushInterval = 15 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.AlphaVantage.Enabled && c.AlphaVantage.APIKey == "" {
		return fmt.Errorf("alphavantage.api_key is required when the fallback is enabled")
	}
	if c.Liquidity.SpikeThreshold < 0 {
		return fmt.Errorf("liquidity.spike_threshold cannot be negative")
	}
	return nil
}
