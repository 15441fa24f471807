package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/collector"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/headhunter"
	"github.com/fr4nk3nst1ner/devsalary/internal/logging"
	"github.com/fr4nk3nst1ner/devsalary/internal/report"
	"github.com/fr4nk3nst1ner/devsalary/internal/superjob"
	"github.com/fr4nk3nst1ner/devsalary/internal/ui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", os.Getenv("DEVSALARY_CONFIG"), "Path to a YAML config file")
	envFile := flag.String("env-file", ".env", "Dotenv file to load SUPERJOB_KEY from (ignored if missing)")
	languages := flag.String("languages", "", "Comma separated languages to query (default: built-in list)")
	city := flag.String("city", "", "City label for table titles (requires -area and -town)")
	area := flag.Int("area", 0, "HeadHunter area id to search")
	town := flag.String("town", "", "SuperJob town to search")
	proxyURL := flag.String("proxy", "", "Proxy URL to use")
	comma := flag.Bool("comma", false, "Group thousands in the average salary column")
	debug := flag.Bool("debug", false, "Enable debug logging")
	noProgress := flag.Bool("no-progress", false, "Hide the progress bar")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(os.Stderr, *silence || *noBanner)

	// Variables already set in the environment win over the dotenv file
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("failed to load %s: %v", *envFile, err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if langs := config.ParseLanguages(*languages); len(langs) > 0 {
		cfg.Languages = langs
	}
	if *city != "" {
		cfg.City = *city
	}
	if *area > 0 {
		cfg.HeadHunter.Area = *area
	}
	if *town != "" {
		cfg.SuperJob.Town = *town
	}
	if *proxyURL != "" {
		cfg.HTTP.ProxyURL = *proxyURL
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	cfg = config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, cfg, logger, !*noProgress, report.Options{Comma: *comma}); err != nil {
		logger.Error("run failed", "err", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run collects stats for every configured language and writes one table per platform to out
func run(ctx context.Context, out io.Writer, cfg config.Config, logger *logging.Logger, showProgress bool, opts report.Options) error {
	httpClient := client.New(client.Config{
		ProxyURL:          cfg.HTTP.ProxyURL,
		Timeout:           cfg.HTTP.Timeout,
		RequestsPerSecond: cfg.HTTP.RequestsPerSecond,
	})

	hh := headhunter.NewClient(headhunter.Config{
		BaseURL:    cfg.HeadHunter.BaseURL,
		RolePrefix: cfg.RolePrefix,
		Area:       cfg.HeadHunter.Area,
		Period:     cfg.HeadHunter.Period,
		PerPage:    cfg.HeadHunter.PerPage,
		MaxPage:    cfg.HeadHunter.MaxPage,
		HTTP:       httpClient,
		Logger:     logger,
	})

	sj := superjob.NewClient(superjob.Config{
		BaseURL:    cfg.SuperJob.BaseURL,
		APIKey:     cfg.SuperJob.APIKey,
		RolePrefix: cfg.RolePrefix,
		Town:       cfg.SuperJob.Town,
		HTTP:       httpClient,
		Logger:     logger,
	})

	platforms := []collector.Platform{hh, sj}
	progress := ui.NewProgress(os.Stderr, len(cfg.Languages)*len(platforms), showProgress)

	c, err := collector.New(platforms,
		collector.WithLogger(logger),
		collector.WithProgress(progress),
		collector.WithCity(cfg.City),
	)
	if err != nil {
		return err
	}

	logger.Info("collecting salary stats", "languages", len(cfg.Languages), "city", cfg.City)

	reports, err := c.Run(ctx, cfg.Languages)
	progress.Finish()
	if err != nil {
		return err
	}

	for _, r := range reports {
		table, err := report.Render(r.Title, r.Stats, opts)
		if err != nil {
			return fmt.Errorf("render %s table: %w", r.Platform, err)
		}
		fmt.Fprintln(out, table)
	}

	return nil
}
