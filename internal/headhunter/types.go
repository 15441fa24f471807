package headhunter

import (
	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/logging"
)

// Config defines HeadHunter API client settings
type Config struct {
	BaseURL    string
	RolePrefix string // prepended to the language in the search text
	Area       int    // hh.ru area id, 1 is Moscow
	Period     int    // only vacancies published in the last Period days
	PerPage    int
	MaxPage    int // last page index ever requested
	HTTP       *client.Client
	Logger     *logging.Logger
}

// Client queries the HeadHunter vacancies API
type Client struct {
	baseURL    string
	rolePrefix string
	area       int
	period     int
	perPage    int
	maxPage    int
	http       *client.Client
	log        *logging.Logger
}

// Page is one page of the /vacancies search response
type Page struct {
	Found   int       `json:"found"`
	Pages   int       `json:"pages"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	Items   []Vacancy `json:"items"`
}

// Vacancy is a search result item. Only the salary fork is consumed.
type Vacancy struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Salary *Salary `json:"salary"`
}

// Salary is the vacancy's salary fork; null fields decode to nil
type Salary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
	Gross    *bool    `json:"gross"`
}
