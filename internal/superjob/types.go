package superjob

import (
	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/logging"
)

// Config defines SuperJob API client settings
type Config struct {
	BaseURL    string
	APIKey     string // sent as X-Api-App-Id
	RolePrefix string
	Town       string
	HTTP       *client.Client
	Logger     *logging.Logger
}

// Client queries the SuperJob vacancies API
type Client struct {
	baseURL    string
	apiKey     string
	rolePrefix string
	town       string
	http       *client.Client
	log        *logging.Logger
}

// Page is one page of the /2.0/vacancies/ response
type Page struct {
	Total   int       `json:"total"`
	More    bool      `json:"more"`
	Objects []Vacancy `json:"objects"`
}

// Vacancy is a SuperJob listing. Zero payment fields mean "not stated".
type Vacancy struct {
	ID          int     `json:"id"`
	Profession  string  `json:"profession"`
	PaymentFrom float64 `json:"payment_from"`
	PaymentTo   float64 `json:"payment_to"`
	Currency    string  `json:"currency"`
}
