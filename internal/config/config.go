package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains runtime settings for a collection run
type Config struct {
	Languages  []string `yaml:"languages"`
	RolePrefix string   `yaml:"role_prefix"`
	City       string   `yaml:"city"` // label used in table titles
	LogLevel   string   `yaml:"log_level"`

	HeadHunter HeadHunterConfig `yaml:"headhunter"`
	SuperJob   SuperJobConfig   `yaml:"superjob"`
	HTTP       HTTPConfig       `yaml:"http"`
}

type HeadHunterConfig struct {
	BaseURL string `yaml:"base_url"`
	Area    int    `yaml:"area"`
	Period  int    `yaml:"period"`
	PerPage int    `yaml:"per_page"`
	MaxPage int    `yaml:"max_page"`
}

type SuperJobConfig struct {
	BaseURL string `yaml:"base_url"`
	Town    string `yaml:"town"`
	APIKey  string `yaml:"-"` // SUPERJOB_KEY only, never read from the file
}

type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	ProxyURL          string        `yaml:"proxy"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

// DefaultLanguages is the language list used when none is configured
var DefaultLanguages = []string{
	"TypeScript",
	"Swift",
	"Scala",
	"Objective-C",
	"Go",
	"C",
	"C#",
	"C++",
	"PHP",
	"Ruby",
	"Python",
	"Java",
	"JavaScript",
}

// Default returns the built-in configuration: Moscow, last 30 days
func Default() Config {
	return Config{
		Languages:  append([]string(nil), DefaultLanguages...),
		RolePrefix: "Программист",
		City:       "Moscow",
		LogLevel:   "info",
		HeadHunter: HeadHunterConfig{
			BaseURL: "https://api.hh.ru",
			Area:    1,
			Period:  30,
			PerPage: 20,
			MaxPage: 99,
		},
		SuperJob: SuperJobConfig{
			BaseURL: "https://api.superjob.ru",
			Town:    "Москва",
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies the
// environment. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.SuperJob.APIKey = strings.TrimSpace(os.Getenv("SUPERJOB_KEY"))

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// ParseLanguages splits a comma separated flag value
func ParseLanguages(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
