package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/fr4nk3nst1ner/devsalary/internal/logging"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// Platform is a job board that can summarize salaries for one language
type Platform interface {
	// e.g. "HeadHunter"
	Name() string

	LanguageStats(ctx context.Context, language string) (models.LanguageStats, error)
}

// Progress is notified once per finished (language, platform) pair
type Progress interface {
	Increment()
}

// Option configures a Collector
type Option func(*Collector)

// WithLogger sets the logger
func WithLogger(log *logging.Logger) Option {
	return func(c *Collector) {
		c.log = log
	}
}

// WithProgress sets the progress reporter
func WithProgress(p Progress) Option {
	return func(c *Collector) {
		c.progress = p
	}
}

// WithCity sets the city label appended to report titles
func WithCity(city string) Option {
	return func(c *Collector) {
		c.city = city
	}
}

// Collector runs every platform for every language, one request at a time
type Collector struct {
	platforms []Platform
	log       *logging.Logger
	progress  Progress
	city      string
}

type noProgress struct{}

func (noProgress) Increment() {}

// New builds a Collector. Platforms are queried in the given order.
func New(platforms []Platform, opts ...Option) (*Collector, error) {
	if len(platforms) == 0 {
		return nil, fmt.Errorf("collector: at least one platform is required")
	}

	c := &Collector{
		platforms: platforms,
		log:       logging.NewNop(),
		progress:  noProgress{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Run collects stats for each language, running the platforms in order for a
// language before moving to the next one. The first error aborts the run.
// Reports come back in platform order with rows in language order.
func (c *Collector) Run(ctx context.Context, languages []string) ([]models.PlatformReport, error) {
	if len(languages) == 0 {
		return nil, fmt.Errorf("collector: no languages configured")
	}

	reports := make([]models.PlatformReport, len(c.platforms))
	for i, p := range c.platforms {
		reports[i] = models.PlatformReport{
			Platform: p.Name(),
			Title:    c.title(p.Name()),
			Stats:    models.NewStatsByLanguage(len(languages)),
		}
	}

	for _, language := range languages {
		for i, p := range c.platforms {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			stats, err := p.LanguageStats(ctx, language)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", p.Name(), language, err)
			}

			reports[i].Stats.Set(language, stats)
			c.progress.Increment()

			c.log.Info("language processed",
				"platform", p.Name(),
				"language", language,
				"found", stats.VacanciesFound,
				"processed", stats.VacanciesProcessed,
				"average", stats.AverageSalary,
			)
		}
	}

	return reports, nil
}

func (c *Collector) title(platform string) string {
	return strings.TrimSpace(platform + " " + c.city)
}
