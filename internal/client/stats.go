package client

import (
	"context"
	"net/http"
)

// ApprovalStatistics fetches the aggregate pending/approved counters.
// The gateway serves a short-lived cached snapshot; counts can lag behind
// review actions taken in the same session.
func (c *Client) ApprovalStatistics(ctx context.Context) (*ApprovalStats, error) {
	var resp struct {
		envelope
		ApprovalStats
	}
	if err := c.do(ctx, "fetch approval statistics", http.MethodGet, "/stats/approvals", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.ApprovalStats, nil
}
