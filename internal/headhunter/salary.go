package headhunter

import (
	"strings"

	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
)

// Currency is the hh.ru code for rubles
const Currency = "RUR"

// Estimate predicts a monthly ruble salary for a vacancy. Gross forks are
// converted to take-home pay.
func Estimate(v Vacancy) (float64, bool) {
	s := v.Salary
	if s == nil || !strings.EqualFold(s.Currency, Currency) {
		return 0, false
	}

	estimate, ok := salary.FromBounds(deref(s.From), deref(s.To))
	if !ok {
		return 0, false
	}

	if s.Gross != nil && *s.Gross {
		estimate *= salary.GrossToNet
	}
	return estimate, true
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
