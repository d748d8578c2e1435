// config - источник загрузки конфигурации для pulse-web.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	HTTP        HTTPConfig        `yaml:"http"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Timeouts    TimeoutConfig     `yaml:"timeouts"`
	PulseAPI    PulseAPIConfig    `yaml:"pulse_api"`
	Engagement  EngagementConfig  `yaml:"engagement"`
	Subscribers SubscribersConfig `yaml:"subscribers"`
	Cache       CacheConfig       `yaml:"cache"`
	Chat        ChatConfig        `yaml:"chat"`
}

// TimeoutConfig — общий дедлайн входящего запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50070"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"50075"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// PulseAPIConfig — бэкенд новостей и поиска (HTTP/JSON).
type PulseAPIConfig struct {
	BaseURL string        `yaml:"base_url" env:"PULSE_API_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout" env:"PULSE_API_TIMEOUT" env-default:"10s"`
}

// EngagementConfig — бэкенд счётчиков вовлечённости.
// BaseURL по умолчанию совпадает с PulseAPI (один бэкенд).
type EngagementConfig struct {
	BaseURL      string        `yaml:"base_url" env:"ENGAGEMENT_API_URL" env-default:"http://localhost:8000"`
	Timeout      time.Duration `yaml:"timeout" env:"ENGAGEMENT_TIMEOUT" env-default:"8s"`
	CacheTTL     time.Duration `yaml:"cache_ttl" env:"ENGAGEMENT_CACHE_TTL" env-default:"5s"`
	PollInterval time.Duration `yaml:"poll_interval" env:"ENGAGEMENT_POLL_INTERVAL" env-default:"30s"`
}

// SubscribersConfig — realtime-база подписчиков рассылки (REST).
type SubscribersConfig struct {
	BaseURL string        `yaml:"base_url" env:"SUBSCRIBERS_DB_URL" env-default:"http://localhost:9000"`
	Timeout time.Duration `yaml:"timeout" env:"SUBSCRIBERS_TIMEOUT" env-default:"10s"`
}

// CacheConfig — кэш статистики статей.
// Kind: "memory" (по умолчанию) или "redis" (для нескольких инстансов).
type CacheConfig struct {
	Kind       string `yaml:"kind" env:"CACHE_KIND" env-default:"memory"`
	RedisURL   string `yaml:"redis_url" env:"CACHE_REDIS_URL" env-default:"redis://localhost:6379/0"`
	Prefix     string `yaml:"prefix" env:"CACHE_PREFIX" env-default:"pulse:stats:"`
	MaxEntries int    `yaml:"max_entries" env:"CACHE_MAX_ENTRIES" env-default:"4096"`
}

// ChatConfig — параметры чат-бота.
type ChatConfig struct {
	TypingDelay time.Duration `yaml:"typing_delay" env:"CHAT_TYPING_DELAY" env-default:"900ms"`
	SessionTTL  time.Duration `yaml:"session_ttl" env:"CHAT_SESSION_TTL" env-default:"30m"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	return &cfg, nil
}
