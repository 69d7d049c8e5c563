package review

import (
	"context"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/pickngo/pickngo-backend/pkg/logger"
)

// StatsPanel holds the aggregate approval counters. It fetches once on mount
// and never refreshes on its own; actions taken in sibling flows do not
// invalidate the snapshot, so the counters can drift until the panel is
// remounted.
type StatsPanel struct {
	gateway StatsGateway
	log     logger.ILogger

	snapshot *client.ApprovalStats
}

func NewStatsPanel(gateway StatsGateway, log logger.ILogger) *StatsPanel {
	return &StatsPanel{
		gateway: gateway,
		log:     log,
	}
}

// Mount issues the one read request for aggregate counts. A failed fetch is
// logged and leaves the panel empty; it never blocks navigation.
func (p *StatsPanel) Mount(ctx context.Context) {
	stats, err := p.gateway.ApprovalStatistics(ctx)
	if err != nil {
		p.log.Error("failed to fetch approval statistics", logger.Error(err))
		p.snapshot = nil
		return
	}
	p.snapshot = stats
}

// Snapshot returns the last fetched counters, or nil when the panel has
// nothing to show
func (p *StatsPanel) Snapshot() *client.ApprovalStats {
	return p.snapshot
}
