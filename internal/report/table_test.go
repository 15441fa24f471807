package report

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

func sampleStats() models.StatsByLanguage {
	stats := models.NewStatsByLanguage(3)
	stats.Set("TypeScript", models.LanguageStats{VacanciesFound: 900, VacanciesProcessed: 300, AverageSalary: 210500})
	stats.Set("Go", models.LanguageStats{VacanciesFound: 1, VacanciesProcessed: 1, AverageSalary: 150000})
	stats.Set("C", models.LanguageStats{})
	return stats
}

func TestRowsKeepsMappingOrder(t *testing.T) {
	rows := Rows(sampleStats(), Options{})

	require.Len(t, rows, 4)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"TypeScript", "900", "300", "210500"}, rows[1])
	assert.Equal(t, []string{"Go", "1", "1", "150000"}, rows[2])
	assert.Equal(t, []string{"C", "0", "0", "0"}, rows[3])
}

func TestRowsWithComma(t *testing.T) {
	rows := Rows(sampleStats(), Options{Comma: true})
	assert.Equal(t, "210,500", rows[1][3])
	assert.Equal(t, "0", rows[3][3])
}

func TestRowsEmptyStats(t *testing.T) {
	rows := Rows(models.StatsByLanguage{}, Options{})
	assert.Equal(t, [][]string{Header}, rows)
}

func TestRender(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out, err := Render("HeadHunter Moscow", sampleStats(), Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "HeadHunter Moscow")
	for _, h := range Header {
		assert.Contains(t, out, h)
	}

	ts := strings.Index(out, "TypeScript")
	goRow := strings.Index(out, "Go ")
	cRow := strings.Index(out, "C ")
	require.True(t, ts >= 0 && goRow >= 0 && cRow >= 0)
	assert.Less(t, ts, goRow)
	assert.Contains(t, out, "210500")
}
