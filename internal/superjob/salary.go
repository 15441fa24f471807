package superjob

import (
	"strings"

	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
)

// Currency is the SuperJob code for rubles
const Currency = "rub"

// Estimate predicts a monthly ruble salary for a vacancy
func Estimate(v Vacancy) (float64, bool) {
	if !strings.EqualFold(v.Currency, Currency) {
		return 0, false
	}
	return salary.FromBounds(v.PaymentFrom, v.PaymentTo)
}
