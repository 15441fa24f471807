// Package salary holds the estimation policy shared by both platforms and the
// aggregation of per-vacancy estimates into language stats.
package salary

import (
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

const (
	// GrossToNet converts a pre-tax amount to take-home pay (13% income tax)
	GrossToNet = 0.87

	upperOnlyRatio = 0.8
	lowerOnlyRatio = 1.2
)

// FromBounds estimates a monthly salary from a salary fork. A bound that is
// zero or negative counts as missing. It returns false when both are missing.
func FromBounds(lower, upper float64) (float64, bool) {
	hasLower := lower > 0
	hasUpper := upper > 0

	switch {
	case hasLower && hasUpper:
		return (lower + upper) / 2, true
	case hasUpper:
		return upperOnlyRatio * upper, true
	case hasLower:
		return lowerOnlyRatio * lower, true
	default:
		return 0, false
	}
}

// Summarize builds stats from the platform's reported total and the usable estimates
func Summarize(found int, estimates []float64) models.LanguageStats {
	stats := models.LanguageStats{
		VacanciesFound:     found,
		VacanciesProcessed: len(estimates),
	}
	if len(estimates) == 0 {
		return stats
	}

	var sum float64
	for _, e := range estimates {
		sum += e
	}
	stats.AverageSalary = int(sum / float64(len(estimates)))

	return stats
}

// Aggregate estimates every vacancy across all pages and summarizes the result.
// Vacancies the estimator rejects are not counted as processed.
func Aggregate[V any](found int, pages [][]V, estimate func(V) (float64, bool)) models.LanguageStats {
	var estimates []float64
	for _, page := range pages {
		for _, v := range page {
			if e, ok := estimate(v); ok {
				estimates = append(estimates, e)
			}
		}
	}
	return Summarize(found, estimates)
}
