package report

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// Header is the first row of every table
var Header = []string{
	"Язык программирования",
	"Найдено вакансий",
	"Обработано вакансий",
	"Средняя зарплата",
}

// Options tweaks how cells are formatted
type Options struct {
	// Comma groups the thousands of the average salary, 150000 -> 150,000
	Comma bool
}

// Rows returns the header followed by one row per language, in mapping order
func Rows(stats models.StatsByLanguage, opts Options) [][]string {
	rows := make([][]string, 0, stats.Len()+1)
	rows = append(rows, Header)

	for _, language := range stats.Languages() {
		s, _ := stats.Get(language)
		rows = append(rows, []string{
			language,
			strconv.Itoa(s.VacanciesFound),
			strconv.Itoa(s.VacanciesProcessed),
			formatAverage(s.AverageSalary, opts),
		})
	}

	return rows
}

// Render draws the stats as a bordered table with the title in the top border
func Render(title string, stats models.StatsByLanguage, opts Options) (string, error) {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(Rows(stats, opts)).
		Srender()
	if err != nil {
		return "", err
	}

	return pterm.DefaultBox.
		WithTitle(title).
		WithTitleTopLeft().
		Sprint(table), nil
}

func formatAverage(avg int, opts Options) string {
	if opts.Comma {
		return humanize.Comma(int64(avg))
	}
	return strconv.Itoa(avg)
}
