package models

// LanguageStats holds the salary summary for one language on one platform
type LanguageStats struct {
	VacanciesFound     int `json:"vacancies_found"`
	VacanciesProcessed int `json:"vacancies_processed"`
	AverageSalary      int `json:"average_salary"`
}

// StatsByLanguage maps language names to their stats, remembering insertion order
type StatsByLanguage struct {
	languages []string
	stats     map[string]LanguageStats
}

// NewStatsByLanguage returns an empty mapping with room for n languages
func NewStatsByLanguage(n int) StatsByLanguage {
	return StatsByLanguage{
		languages: make([]string, 0, n),
		stats:     make(map[string]LanguageStats, n),
	}
}

// Set stores stats for a language. A language that is already present keeps its position.
func (s *StatsByLanguage) Set(language string, stats LanguageStats) {
	if s.stats == nil {
		s.stats = make(map[string]LanguageStats)
	}
	if _, ok := s.stats[language]; !ok {
		s.languages = append(s.languages, language)
	}
	s.stats[language] = stats
}

// Get returns the stats stored for a language
func (s StatsByLanguage) Get(language string) (LanguageStats, bool) {
	stats, ok := s.stats[language]
	return stats, ok
}

// Languages returns the languages in insertion order
func (s StatsByLanguage) Languages() []string {
	out := make([]string, len(s.languages))
	copy(out, s.languages)
	return out
}

// Len returns the number of languages set
func (s StatsByLanguage) Len() int {
	return len(s.languages)
}

// PlatformReport is the titled result of one platform's run
type PlatformReport struct {
	Platform string
	Title    string
	Stats    StatsByLanguage
}
