package review

import (
	"context"
	"errors"

	"github.com/pickngo/pickngo-backend/internal/client"
)

// DriverGateway is the slice of the approval gateway the driver flow uses
type DriverGateway interface {
	PendingDrivers(ctx context.Context) ([]client.DriverApplication, error)
	ApproveDriver(ctx context.Context, driverID, newPassword string) error
	RejectDriver(ctx context.Context, driverID string) error
}

// VehicleGateway is the slice of the approval gateway the vehicle flow uses
type VehicleGateway interface {
	PendingVehicles(ctx context.Context) ([]client.VehicleApplication, error)
	ApproveVehicle(ctx context.Context, vehicleID uint, pricing client.Pricing) error
	RejectVehicle(ctx context.Context, vehicleID uint, reason string) error
}

// StatsGateway is the slice of the approval gateway the statistics panel uses
type StatsGateway interface {
	ApprovalStatistics(ctx context.Context) (*client.ApprovalStats, error)
}

// alertMessage picks what the reviewer sees for a failed action: the server's
// message verbatim for a business rejection, the fallback for transport
// failures.
func alertMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
