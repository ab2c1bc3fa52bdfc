package jobs

import (
	"context"
	"time"

	"captura-leads.backend/internal/domain/entities"
	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/metrics"
	"go.uber.org/zap"
)

// DefaultFunnelInterval is how often the funnel gauge is refreshed
const DefaultFunnelInterval = time.Minute

type leadCounter interface {
	CountByStatus(ctx context.Context) (map[entities.LeadStatus]int64, error)
}

// LeadFunnelGaugeJob publishes live lead counts per status to Prometheus
type LeadFunnelGaugeJob struct {
	repo     leadCounter
	interval time.Duration
	stop     chan struct{}
}

func NewLeadFunnelGaugeJob(repo leadCounter, interval time.Duration) *LeadFunnelGaugeJob {
	if interval <= 0 {
		interval = DefaultFunnelInterval
	}
	return &LeadFunnelGaugeJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start refreshes once immediately, then on every tick until ctx is done or Stop is called
func (j *LeadFunnelGaugeJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting lead funnel gauge job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Lead funnel gauge job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Lead funnel gauge job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *LeadFunnelGaugeJob) Stop() {
	close(j.stop)
}

func (j *LeadFunnelGaugeJob) refresh(ctx context.Context) {
	counts, err := j.repo.CountByStatus(ctx)
	if err != nil {
		logger.Error(ctx, "Failed to count leads by status", zap.Error(err))
		return
	}

	// statuses with no leads are published as zero so stale values reset
	for _, status := range entities.LeadStatuses {
		metrics.SetLeadsByStatus(string(status), counts[status])
	}
}
