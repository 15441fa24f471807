package superjob

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/logging"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
)

const (
	defaultBaseURL    = "https://api.superjob.ru"
	defaultRolePrefix = "Программист"
	defaultTown       = "Москва"
)

// ErrMissingAPIKey is returned by the first request when no API key is configured
var ErrMissingAPIKey = errors.New("superjob: API key is not set (SUPERJOB_KEY)")

// NewClient instantiates a SuperJob API client. A missing key is reported
// when the client is first used, not here.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rolePrefix := cfg.RolePrefix
	if rolePrefix == "" {
		rolePrefix = defaultRolePrefix
	}

	town := cfg.Town
	if town == "" {
		town = defaultTown
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
		apiKey:     strings.TrimSpace(cfg.APIKey),
		rolePrefix: rolePrefix,
		town:       town,
		http:       httpClient,
		log:        log.With("platform", "superjob"),
	}
}

// Name returns the platform's display name
func (c *Client) Name() string {
	return "SuperJob"
}

// FetchPages requests successive result pages for a language until the API
// reports there are no more. Any failed page aborts the fetch.
func (c *Client) FetchPages(ctx context.Context, language string) ([]Page, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	keyword := c.rolePrefix + " " + language
	header := http.Header{}
	header.Set("X-Api-App-Id", c.apiKey)

	var pages []Page
	for page := 0; ; page++ {
		u, err := c.buildSearchURL(keyword, page)
		if err != nil {
			return nil, err
		}

		var resp Page
		if err := c.http.GetJSON(ctx, u, header, &resp); err != nil {
			return nil, fmt.Errorf("superjob: %s page %d: %w", language, page, err)
		}
		pages = append(pages, resp)

		c.log.Debug("page fetched",
			"language", language,
			"page", page,
			"total", resp.Total,
			"more", resp.More,
			"items", len(resp.Objects),
		)

		if !resp.More {
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
		items = append(items, p.Objects)
	}

	return salary.Aggregate(pages[len(pages)-1].Total, items, Estimate), nil
}

func (c *Client) buildSearchURL(keyword string, page int) (string, error) {
	u, err := url.Parse(c.baseURL + "/2.0/vacancies/")
	if err != nil {
		return "", fmt.Errorf("superjob: parse base url: %w", err)
	}

	values := url.Values{}
	values.Set("keyword", keyword)
	values.Set("town", c.town)
	values.Set("page", strconv.Itoa(page))

	u.RawQuery = values.Encode()
	return u.String(), nil
}
