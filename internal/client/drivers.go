package client

import (
	"context"
	"net/http"
)

// PendingDrivers fetches all driver applications with pending status
func (c *Client) PendingDrivers(ctx context.Context) ([]DriverApplication, error) {
	var resp struct {
		envelope
		Drivers []DriverApplication `json:"drivers"`
	}
	if err := c.do(ctx, "fetch pending drivers", http.MethodGet, "/drivers/pending", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Drivers, nil
}

// PendingDriverCount fetches the pending-driver badge count
func (c *Client) PendingDriverCount(ctx context.Context) (int64, error) {
	var resp struct {
		envelope
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, "fetch pending driver count", http.MethodGet, "/drivers/pending/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Driver fetches one driver application
func (c *Client) Driver(ctx context.Context, driverID string) (*DriverApplication, error) {
	var resp struct {
		envelope
		Driver DriverApplication `json:"driver"`
	}
	if err := c.do(ctx, "fetch driver", http.MethodGet, "/drivers/"+driverID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Driver, nil
}

// Drivers lists driver applications, optionally filtered by status
func (c *Client) Drivers(ctx context.Context, status string) ([]DriverApplication, error) {
	path := "/drivers"
	if status != "" {
		path += "?status=" + status
	}
	var resp struct {
		envelope
		Drivers []DriverApplication `json:"drivers"`
	}
	if err := c.do(ctx, "fetch drivers", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Drivers, nil
}

type reviewDriverRequest struct {
	Status      string `json:"status"`
	NewPassword string `json:"newPassword,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// ApproveDriver approves a pending driver application. The one-time password
// travels with the request so the gateway can provision the driver's login.
func (c *Client) ApproveDriver(ctx context.Context, driverID, newPassword string) error {
	var resp envelope
	return c.do(ctx, "approve driver", http.MethodPut, "/drivers/approve/"+driverID,
		reviewDriverRequest{Status: "approved", NewPassword: newPassword}, &resp)
}

// RejectDriver rejects a pending driver application
func (c *Client) RejectDriver(ctx context.Context, driverID string) error {
	var resp envelope
	return c.do(ctx, "reject driver", http.MethodPut, "/drivers/approve/"+driverID,
		reviewDriverRequest{Status: "rejected"}, &resp)
}
