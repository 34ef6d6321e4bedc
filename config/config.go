package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/chaos/consts"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TcpAddr     string        `yaml:"tcp_addr"`
	WsAddr      string        `yaml:"ws_addr"`
	HttpAddr    string        `yaml:"http_addr"`
	NatsURL     string        `yaml:"nats_url"`
	ThinkDelay  time.Duration `yaml:"think_delay"`
	PlayTimeout time.Duration `yaml:"play_timeout"`
	TableTTL    time.Duration `yaml:"table_ttl"`
}

func Default() Config {
	return Config{
		TcpAddr:     ":9999",
		WsAddr:      ":9998",
		HttpAddr:    ":9997",
		ThinkDelay:  consts.ThinkDelay,
		PlayTimeout: consts.PlayTimeout,
		TableTTL:    consts.TableTTL,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
// NATS_URL, when set, wins over the file.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	if url := os.Getenv("NATS_URL"); url != "" {
		c.NatsURL = url
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch {
	case c.ThinkDelay < 0:
		return fmt.Errorf("think_delay must not be negative, got %s", c.ThinkDelay)
	case c.PlayTimeout <= 0:
		return fmt.Errorf("play_timeout must be positive, got %s", c.PlayTimeout)
	case c.TableTTL <= 0:
		return fmt.Errorf("table_ttl must be positive, got %s", c.TableTTL)
	}
	return nil
}
