package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"FinSight/internal/ai"
	"FinSight/internal/analyzer"
	"FinSight/internal/cache"
	"FinSight/internal/collector"
	"FinSight/internal/config"
	"FinSight/internal/model"
	"FinSight/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		configPath = flag.String("config", "", "path to YAML config file")
		file       = flag.String("file", "", "portfolio CSV file (columns: symbol, shares, cost_basis)")
		symbols    = flag.String("symbols", "", "comma-separated stock symbols (e.g. AAPL,GOOGL,MSFT)")
		noNews     = flag.Bool("no-news", false, "skip news and sentiment analysis")
		noAI       = flag.Bool("no-ai", false, "skip AI-powered insights")
		output     = flag.String("output", "", "save analysis results to a JSON file")
		watch      = flag.Bool("watch", false, "keep running and re-analyze on the configured cron schedule")
	)
	flag.Parse()

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = os.Getenv("FINSIGHT_CONFIG")
	}
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Load portfolio
	var portfolio *model.Portfolio
	switch {
	case *file != "":
		portfolio, err = analyzer.LoadPortfolioCSV(*file)
		if err != nil {
			log.Fatalf("[FATAL] load portfolio: %v", err)
		}
	case *symbols != "":
		portfolio = analyzer.PortfolioFromSymbols(strings.Split(*symbols, ","))
	default:
		fmt.Fprintln(os.Stderr, "provide either -file or -symbols")
		flag.Usage()
		os.Exit(1)
	}
	if len(portfolio.Holdings) == 0 {
		log.Fatalf("[FATAL] portfolio has no holdings")
	}
	log.Printf("[INFO] loaded %d holdings", len(portfolio.Holdings))

	// Data providers
	yahoo := collector.NewYahooFetcher(cfg.Proxy)
	var (
		quotes  collector.QuoteFetcher   = yahoo
		history collector.HistoryFetcher = yahoo
		news    collector.NewsFetcher    = yahoo
	)
	if cfg.News.APIKey != "" {
		news = collector.NewNewsAPIFetcher(cfg.News.APIKey, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s, news source: %s", yahoo.Name(), news.Name())

	if cfg.CacheEnabled() {
		if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0755); err != nil {
			log.Printf("[WARN] create cache dir: %v, caching disabled", err)
		} else if store, err := cache.Open(cfg.Cache.Path, time.Duration(cfg.Cache.TTLSeconds)*time.Second); err != nil {
			log.Printf("[WARN] open cache: %v, caching disabled", err)
		} else {
			defer store.Close()
			if err := store.Purge(); err != nil {
				log.Printf("[WARN] purge cache: %v", err)
			}
			quotes = &cache.CachedQuoteFetcher{Next: quotes, Store: store}
			history = &cache.CachedHistoryFetcher{Next: history, Store: store}
			news = &cache.CachedNewsFetcher{Next: news, Store: store}
		}
	}

	// AI services
	aiClient := ai.NewClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)
	var (
		sentiment ai.SentimentAnalyzer
		insights  ai.InsightGenerator
	)
	if aiClient.Configured() {
		sentiment = aiClient
		insights = aiClient
	} else {
		log.Println("[WARN] no AI API key configured, sentiment and insights disabled")
	}

	pipeline := analyzer.NewPipeline(quotes, history, news, sentiment, insights)
	opts := analyzer.Options{
		IncludeNews:     !*noNews,
		IncludeInsights: !*noAI,
		NewsLimit:       cfg.News.MaxArticles,
		HistoryDays:     cfg.Analysis.HistoryDays,
		Progress: func(step, total int, description string) {
			fmt.Fprintln(os.Stderr, report.FormatProgress(step, total, description))
		},
	}

	runOnce := func() {
		analysis := pipeline.Analyze(portfolio, opts)
		fmt.Print(report.FormatReport(analysis))
		if *output != "" {
			outPath := *output
			if *watch {
				ext := filepath.Ext(outPath)
				outPath = strings.TrimSuffix(outPath, ext) + "-" + report.Timestamp(analysis.AnalyzedAt) + ext
			}
			if err := report.SaveAnalysis(analysis, outPath); err != nil {
				log.Printf("[ERROR] save analysis: %v", err)
			} else {
				log.Printf("[INFO] analysis saved to %s", outPath)
			}
		}
	}

	if !*watch {
		runOnce()
		return
	}

	// Watch mode: run now, then on the configured schedule.
	runOnce()
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Schedule.WatchCron, runOnce); err != nil {
		log.Fatalf("[FATAL] register watch schedule: %v", err)
	}
	c.Start()
	defer c.Stop()
	log.Printf("[INFO] watching on schedule %q, press Ctrl+C to stop", cfg.Schedule.WatchCron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping")
}
