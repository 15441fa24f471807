package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize trims the language list and drops blanks and case-insensitive duplicates,
// keeping the first spelling and the original order.
func Normalize(cfg Config) Config {
	out := cfg

	seen := map[string]bool{}
	var langs []string
	for _, l := range cfg.Languages {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		key := strings.ToLower(l)
		if seen[key] {
			continue
		}
		seen[key] = true
		langs = append(langs, l)
	}
	out.Languages = langs

	out.RolePrefix = strings.TrimSpace(out.RolePrefix)
	out.City = strings.TrimSpace(out.City)

	return out
}

// Validate reports every problem in cfg at once
func Validate(cfg Config) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(cfg.Languages) == 0 {
		add("no languages configured")
	}
	if cfg.RolePrefix == "" {
		add("role_prefix is empty")
	}
	if cfg.HeadHunter.Area <= 0 {
		add("headhunter.area must be positive")
	}
	if cfg.HeadHunter.Period <= 0 {
		add("headhunter.period must be positive")
	}
	if cfg.HeadHunter.PerPage <= 0 || cfg.HeadHunter.PerPage > 100 {
		add("headhunter.per_page must be within 1..100")
	}
	if cfg.HeadHunter.MaxPage < 1 {
		add("headhunter.max_page must be at least 1")
	}
	if cfg.SuperJob.Town == "" {
		add("superjob.town is empty")
	}
	if cfg.HTTP.RequestsPerSecond < 0 {
		add("http.requests_per_second must not be negative")
	}
	for name, raw := range map[string]string{
		"headhunter.base_url": cfg.HeadHunter.BaseURL,
		"superjob.base_url":   cfg.SuperJob.BaseURL,
	} {
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			add("%s %q is not an absolute URL", name, raw)
		}
	}
	if cfg.HTTP.ProxyURL != "" {
		if u, err := url.Parse(cfg.HTTP.ProxyURL); err != nil || u.Scheme == "" || u.Host == "" {
			add("http.proxy %q is not an absolute URL", cfg.HTTP.ProxyURL)
		}
	}
	if msg := checkLocation(cfg); msg != "" {
		add("%s", msg)
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// checkLocation keeps the title label and the searched location in step: the
// default city goes with the default area and town, any other city needs both
// of them set explicitly.
func checkLocation(cfg Config) string {
	def := Default()

	defaultCity := strings.EqualFold(cfg.City, def.City)
	defaultArea := cfg.HeadHunter.Area == def.HeadHunter.Area
	defaultTown := strings.EqualFold(cfg.SuperJob.Town, def.SuperJob.Town)

	switch {
	case defaultCity && (!defaultArea || !defaultTown):
		return fmt.Sprintf("city %q does not describe headhunter.area=%d / superjob.town=%q; set city as well",
			cfg.City, cfg.HeadHunter.Area, cfg.SuperJob.Town)
	case !defaultCity && (defaultArea || defaultTown):
		return fmt.Sprintf("city %q needs a matching headhunter.area and superjob.town (got area=%d, town=%q)",
			cfg.City, cfg.HeadHunter.Area, cfg.SuperJob.Town)
	}
	return ""
}
