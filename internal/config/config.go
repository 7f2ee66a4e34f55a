// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token       string   `yaml:"token"`
	Mode        string   `yaml:"mode"` // polling | webhook (future)
	Workers     int      `yaml:"workers"` // per-user keyed update workers
	AdminPhones []string `yaml:"admin_phones"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type AdminConfig struct {
	Port int `yaml:"port"` // health + metrics listener
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	URL      string        `yaml:"url"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// RegistrationConfig tunes the conversation engine. The keywords are matched
// against user text; limits are inclusive.
type RegistrationConfig struct {
	CancelCommand   string `yaml:"cancel_command"`
	CancelKeyword   string `yaml:"cancel_keyword"`
	SkipKeyword     string `yaml:"skip_keyword"`
	LaunchKeyword   string `yaml:"launch_keyword"`
	MinAge          int    `yaml:"min_age"`
	MaxAge          int    `yaml:"max_age"`
	// SuggestionLimit caps how many fuzzy interest candidates are fetched;
	// at most three are shown to the user.
	SuggestionLimit  int      `yaml:"suggestion_limit"`
	PopularInterests []string `yaml:"popular_interests"`
}

type Config struct {
	Bot          BotConfig          `yaml:"bot"`
	Log          LogConfig          `yaml:"log"`
	Admin        AdminConfig        `yaml:"admin"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Registration RegistrationConfig `yaml:"registration"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// defaults
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Admin.Port == 0 {
		cfg.Admin.Port = 8081
	}
	cfg.Redis.TTL = normalizeTTL(cfg.Redis.TTL)
	applyRegistrationDefaults(&cfg.Registration)

	// Minimal validation
	if cfg.Bot.Token == "" {
		return nil, errors.New("bot.token is required")
	}
	if cfg.Database.URL == "" {
		return nil, errors.New("database.url is required")
	}
	if cfg.Redis.URL == "" {
		return nil, errors.New("redis.url is required")
	}
	if cfg.Registration.MinAge > cfg.Registration.MaxAge {
		return nil, errors.New("registration.min_age exceeds max_age")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func applyRegistrationDefaults(rc *RegistrationConfig) {
	if rc.CancelCommand == "" {
		rc.CancelCommand = "/cancel"
	}
	if rc.CancelKeyword == "" {
		rc.CancelKeyword = "отмена"
	}
	if rc.SkipKeyword == "" {
		rc.SkipKeyword = "пропустить"
	}
	if rc.LaunchKeyword == "" {
		rc.LaunchKeyword = "Запустить"
	}
	if rc.MinAge == 0 {
		rc.MinAge = 12
	}
	if rc.MaxAge == 0 {
		rc.MaxAge = 120
	}
	if rc.SuggestionLimit <= 0 {
		rc.SuggestionLimit = 5
	}
	if len(rc.PopularInterests) == 0 {
		rc.PopularInterests = []string{"Волейбол", "Футбол", "Теннис", "Музыка", "Игра на гитаре"}
	}
}

func normalizeTTL(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Hour
	}
	return d
}
