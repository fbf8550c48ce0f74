package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TrendSentinel/internal/classifier"
	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/config"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/notifier"
	"TrendSentinel/internal/pipeline"
	"TrendSentinel/internal/recorder"
	"TrendSentinel/internal/runner"
	"TrendSentinel/internal/scheduler"
	"TrendSentinel/internal/session"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TrendSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Session gate for the instrument's home exchange
	gate, err := session.NewGate(cfg.Market.Timezone)
	if err != nil {
		log.Fatalf("[FATAL] init session gate: %v", err)
	}

	// Load the model artifact before anything else: a missing or
	// incompatible model must fail the process, not the first run.
	mdl, err := classifier.LoadLogistic(cfg.Model.Path, model.DefaultSchema)
	if err != nil {
		log.Fatalf("[FATAL] load model %s: %v", cfg.Model.Path, err)
	}
	log.Printf("[INFO] model loaded: %s", cfg.Model.Path)

	bbStd, err := pipeline.ParseBBStdStrategy(cfg.Model.BBStdStrategy)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.Ticker, cfg.Market.LookbackDays)

	// Init notifiers
	var notifiers []notifier.Notifier
	if cfg.Webhook.URL != "" {
		notifiers = append(notifiers, notifier.NewWebhookNotifier(cfg.Webhook.URL, cfg.Proxy))
	}
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		notifiers = append(notifiers, tn)
	}
	if len(notifiers) == 0 {
		log.Println("[WARN] no notifier configured, signals will only be logged")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &runner.Runner{
		Gate:      gate,
		Collector: col,
		Pipeline:  pipeline.New(gate.Location(), bbStd),
		Model:     mdl,
		Schema:    model.DefaultSchema,
		Notifiers: notifiers,
		Recorder:  rec,
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, r, gate)
	if err := sched.Register(cfg.Schedule.LiveCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing live task now")
		go sched.RunNow()
	}

	log.Println("[INFO] TrendSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TrendSentinel stopped")
}
