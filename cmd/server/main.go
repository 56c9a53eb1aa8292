package main

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/quantfolio/portfolio-analytics/config"
	"github.com/quantfolio/portfolio-analytics/internal/publisher"
	"github.com/quantfolio/portfolio-analytics/internal/remote"
	"github.com/quantfolio/portfolio-analytics/internal/store"
	"github.com/quantfolio/portfolio-analytics/internal/synth"
	"github.com/quantfolio/portfolio-analytics/internal/websocket"
	"github.com/quantfolio/portfolio-analytics/pkg/api"
	"github.com/quantfolio/portfolio-analytics/pkg/metrics"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger("main").Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.App.LogLevel, cfg.App.Environment)
	log := logger.GetLogger("main")
	log.Infof("Starting %s", cfg.App.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewRecorder()
	portfolioStore := store.NewPortfolioStore()

	if cfg.Generator.SeedDefaults {
		if err := seedDefaultPortfolios(portfolioStore, recorder, cfg.Generator.TradingDays, log); err != nil {
			log.Fatalf("Failed to seed default portfolios: %v", err)
		}
	}

	var snapshotPublisher *publisher.Publisher
	if cfg.Kafka.Enabled {
		snapshotPublisher = publisher.NewPublisher(publisher.Config{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			BatchTimeout: cfg.Kafka.BatchTimeout,
		})
		defer func() {
			if err := snapshotPublisher.Close(); err != nil {
				log.Errorf("Failed to close snapshot publisher: %v", err)
			}
		}()
		log.Infof("Snapshot publisher enabled, topic %s", cfg.Kafka.Topic)
	}

	var remoteClient *remote.Client
	if cfg.Remote.Enabled {
		remoteClient = remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)
		log.Infof("Remote backend enabled at %s", cfg.Remote.BaseURL)
	}

	hub := websocket.NewHub()
	handlers := api.CreateHandlers(
		portfolioStore,
		hub,
		snapshotPublisher,
		remoteClient,
		recorder,
		cfg.Generator.TradingDays,
	)
	server := api.CreateServer(handlers, hub, recorder, cfg.App.Environment)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return server.Start(cfg.API.Host, cfg.API.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Server exited with error: %v", err)
	}
	log.Info("Shutdown complete")
	_ = log.Sync()
}

// seedDefaultPortfolios generates and stores the three reference
// portfolios the service ships with in demo mode.
func seedDefaultPortfolios(portfolioStore *store.PortfolioStore, recorder *metrics.Recorder, tradingDays int, log *logger.Logger) error {
	for _, genCfg := range synth.DefaultConfigs() {
		genCfg.TradingDays = tradingDays
		portfolio, err := synth.Generate(genCfg)
		if err != nil {
			return err
		}
		if err := portfolioStore.Save(portfolio); err != nil {
			return err
		}
		recorder.RecordPortfolioValue(portfolio.ID, portfolio.Summary.TotalValue)
		log.Infof("Generated portfolio %s (%s), value %.0f",
			portfolio.ID, portfolio.Summary.Name, portfolio.Summary.TotalValue)
	}
	return nil
}
