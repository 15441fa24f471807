package headhunter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/logging"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
)

const (
	defaultBaseURL    = "https://api.hh.ru"
	defaultRolePrefix = "Программист"
	defaultArea       = 1
	defaultPeriod     = 30
	defaultPerPage    = 20
	// hh.ru serves at most 2000 results per query: 100 pages of 20
	defaultMaxPage = 99
)

// NewClient instantiates a HeadHunter API client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rolePrefix := cfg.RolePrefix
	if rolePrefix == "" {
		rolePrefix = defaultRolePrefix
	}

	area := cfg.Area
	if area <= 0 {
		area = defaultArea
	}

	period := cfg.Period
	if period <= 0 {
		period = defaultPeriod
	}

	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	maxPage := cfg.MaxPage
	if maxPage <= 0 {
		maxPage = defaultMaxPage
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = client.New(client.Config{})
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		rolePrefix: rolePrefix,
		area:       area,
		period:     period,
		perPage:    perPage,
		maxPage:    maxPage,
		http:       httpClient,
		log:        log.With("platform", "headhunter"),
	}
}

// Name returns the platform's display name
func (c *Client) Name() string {
	return "HeadHunter"
}

// FetchPages requests successive result pages for a language until the
// reported page count or the page cap is reached. Any failed page aborts the fetch.
func (c *Client) FetchPages(ctx context.Context, language string) ([]Page, error) {
	text := "name:" + c.rolePrefix + " " + language

	var pages []Page
	for page := 0; ; page++ {
		u, err := c.buildSearchURL(text, page)
		if err != nil {
			return nil, err
		}

		var resp Page
		if err := c.http.GetJSON(ctx, u, nil, &resp); err != nil {
			return nil, fmt.Errorf("headhunter: %s page %d: %w", language, page, err)
		}
		pages = append(pages, resp)

		c.log.Debug("page fetched",
			"language", language,
			"page", page,
			"pages", resp.Pages,
			"found", resp.Found,
			"items", len(resp.Items),
		)

		if page+1 >= resp.Pages || page >= c.maxPage {
			break
		}
	}

	return pages, nil
}

// LanguageStats fetches every page for a language and aggregates the salaries
func (c *Client) LanguageStats(ctx context.Context, language string) (models.LanguageStats, error) {
	pages, err := c.FetchPages(ctx, language)
	if err != nil {
		return models.LanguageStats{}, err
	}

	items := make([][]Vacancy, 0, len(pages))
	for _, p := range pages {
		items = append(items, p.Items)
	}

	return salary.Aggregate(pages[len(pages)-1].Found, items, Estimate), nil
}

func (c *Client) buildSearchURL(text string, page int) (string, error) {
	u, err := url.Parse(c.baseURL + "/vacancies")
	if err != nil {
		return "", fmt.Errorf("headhunter: parse base url: %w", err)
	}

	values := url.Values{}
	values.Set("text", text)
	values.Set("area", strconv.Itoa(c.area))
	values.Set("period", strconv.Itoa(c.period))
	values.Set("per_page", strconv.Itoa(c.perPage))
	values.Set("page", strconv.Itoa(page))

	u.RawQuery = values.Encode()
	return u.String(), nil
}
