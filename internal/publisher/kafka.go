package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

// Config for the analytics snapshot publisher
type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

// Snapshot is the analytics payload published after each generation.
// Downstream consumers (the dashboard backend) expect JSON.
type Snapshot struct {
	PortfolioID string             `json:"portfolioId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Summary     models.Summary     `json:"summary"`
	RiskMetrics models.RiskMetrics `json:"riskMetrics"`
}

// Publisher writes analytics snapshots to Kafka.
type Publisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

// NewPublisher creates a publisher for the configured topic.
func NewPublisher(cfg Config) *Publisher {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 100 * time.Millisecond
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: batchTimeout,
			RequiredAcks: kafka.RequireAll,
		},
		log: logger.GetLogger("publisher.kafka"),
	}
}

// Publish sends one snapshot, keyed by portfolio id so per-portfolio
// ordering is preserved across partitions.
func (p *Publisher) Publish(ctx context.Context, snapshot Snapshot) error {
	value, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to encode analytics snapshot")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(snapshot.PortfolioID),
		Value: value,
		Time:  snapshot.GeneratedAt,
	})
	if err != nil {
		p.log.Errorf("Failed to publish snapshot for %s: %v", snapshot.PortfolioID, err)
		return errors.Wrap(err, "failed to publish analytics snapshot")
	}

	p.log.Debugf("Published analytics snapshot for %s", snapshot.PortfolioID)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// SnapshotOf extracts the published fields from a portfolio record.
func SnapshotOf(portfolio *models.Portfolio, at time.Time) Snapshot {
	return Snapshot{
		PortfolioID: portfolio.ID,
		GeneratedAt: at,
		Summary:     portfolio.Summary,
		RiskMetrics: portfolio.RiskMetrics,
	}
}
