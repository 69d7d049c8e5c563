package client

import (
	"context"
	"fmt"
	"net/http"
)

// PendingVehicles fetches all vehicle applications with pending status
func (c *Client) PendingVehicles(ctx context.Context) ([]VehicleApplication, error) {
	var resp struct {
		envelope
		Vehicles []VehicleApplication `json:"vehicles"`
	}
	if err := c.do(ctx, "fetch pending vehicles", http.MethodGet, "/vehicles/pending", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Vehicles, nil
}

// PendingVehicleCount fetches the pending-vehicle badge count
func (c *Client) PendingVehicleCount(ctx context.Context) (int64, error) {
	var resp struct {
		envelope
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, "fetch pending vehicle count", http.MethodGet, "/vehicles/pending/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// Vehicle fetches one vehicle application with its owner record
func (c *Client) Vehicle(ctx context.Context, vehicleID uint) (*VehicleApplication, error) {
	var resp struct {
		envelope
		Vehicle VehicleApplication `json:"vehicle"`
	}
	path := fmt.Sprintf("/vehicles/%d", vehicleID)
	if err := c.do(ctx, "fetch vehicle", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Vehicle, nil
}

// ApproveVehicle approves a pending vehicle application with its pricing
func (c *Client) ApproveVehicle(ctx context.Context, vehicleID uint, pricing Pricing) error {
	var resp envelope
	path := fmt.Sprintf("/vehicles/approve/%d", vehicleID)
	return c.do(ctx, "approve vehicle", http.MethodPut, path, pricing, &resp)
}

// RejectVehicle rejects a pending vehicle application with a reason
func (c *Client) RejectVehicle(ctx context.Context, vehicleID uint, reason string) error {
	var resp envelope
	path := fmt.Sprintf("/vehicles/reject/%d", vehicleID)
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return c.do(ctx, "reject vehicle", http.MethodPut, path, body, &resp)
}
