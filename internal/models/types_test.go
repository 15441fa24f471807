package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsByLanguageKeepsInsertionOrder(t *testing.T) {
	stats := NewStatsByLanguage(3)
	stats.Set("TypeScript", LanguageStats{VacanciesFound: 3})
	stats.Set("Go", LanguageStats{VacanciesFound: 1})
	stats.Set("C", LanguageStats{VacanciesFound: 2})

	assert.Equal(t, []string{"TypeScript", "Go", "C"}, stats.Languages())
	assert.Equal(t, 3, stats.Len())
}

func TestStatsByLanguageOverwriteKeepsPosition(t *testing.T) {
	stats := NewStatsByLanguage(2)
	stats.Set("Go", LanguageStats{VacanciesFound: 1})
	stats.Set("Java", LanguageStats{VacanciesFound: 2})
	stats.Set("Go", LanguageStats{VacanciesFound: 10})

	assert.Equal(t, []string{"Go", "Java"}, stats.Languages())
	got, ok := stats.Get("Go")
	assert.True(t, ok)
	assert.Equal(t, 10, got.VacanciesFound)
}

func TestStatsByLanguageZeroValue(t *testing.T) {
	var stats StatsByLanguage
	_, ok := stats.Get("Go")
	assert.False(t, ok)

	stats.Set("Go", LanguageStats{})
	assert.Equal(t, []string{"Go"}, stats.Languages())
}

func TestLanguagesReturnsCopy(t *testing.T) {
	stats := NewStatsByLanguage(1)
	stats.Set("Go", LanguageStats{})

	langs := stats.Languages()
	langs[0] = "Rust"

	assert.Equal(t, []string{"Go"}, stats.Languages())
}
