package review

import (
	"context"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/pickngo/pickngo-backend/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...logger.Field)    {}
func (nopLogger) Error(string, ...logger.Field)   {}
func (nopLogger) Warning(string, ...logger.Field) {}

// fakeGateway implements the three gateway slices in memory. Reviewing an
// application removes it from the pending list, like the real gateway's
// status flip does for subsequent fetches.
type fakeGateway struct {
	drivers  []client.DriverApplication
	vehicles []client.VehicleApplication
	stats    client.ApprovalStats

	listErr    error
	approveErr error
	rejectErr  error

	driverListCalls  int
	vehicleListCalls int
	statsCalls       int

	approvedDrivers  []string
	sentPasswords    []string
	rejectedDrivers  []string
	approvedVehicles []uint
	sentPricing      []client.Pricing
	rejectedVehicles []uint
	rejectionReasons []string

	// invoked inside an action call, before it returns; used to simulate a
	// second click while the first request is still in flight
	onApproveDriver func()
	onSubmitPricing func()
}

func (g *fakeGateway) PendingDrivers(ctx context.Context) ([]client.DriverApplication, error) {
	g.driverListCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]client.DriverApplication, len(g.drivers))
	copy(out, g.drivers)
	return out, nil
}

func (g *fakeGateway) ApproveDriver(ctx context.Context, driverID, newPassword string) error {
	if g.onApproveDriver != nil {
		hook := g.onApproveDriver
		g.onApproveDriver = nil
		hook()
	}
	if g.approveErr != nil {
		return g.approveErr
	}
	g.approvedDrivers = append(g.approvedDrivers, driverID)
	g.sentPasswords = append(g.sentPasswords, newPassword)
	g.removeDriver(driverID)
	return nil
}

func (g *fakeGateway) RejectDriver(ctx context.Context, driverID string) error {
	if g.rejectErr != nil {
		return g.rejectErr
	}
	g.rejectedDrivers = append(g.rejectedDrivers, driverID)
	g.removeDriver(driverID)
	return nil
}

func (g *fakeGateway) removeDriver(driverID string) {
	for i, app := range g.drivers {
		if app.DriverID == driverID {
			g.drivers = append(g.drivers[:i], g.drivers[i+1:]...)
			return
		}
	}
}

func (g *fakeGateway) PendingVehicles(ctx context.Context) ([]client.VehicleApplication, error) {
	g.vehicleListCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]client.VehicleApplication, len(g.vehicles))
	copy(out, g.vehicles)
	return out, nil
}

func (g *fakeGateway) ApproveVehicle(ctx context.Context, vehicleID uint, pricing client.Pricing) error {
	if g.onSubmitPricing != nil {
		hook := g.onSubmitPricing
		g.onSubmitPricing = nil
		hook()
	}
	if g.approveErr != nil {
		return g.approveErr
	}
	g.approvedVehicles = append(g.approvedVehicles, vehicleID)
	g.sentPricing = append(g.sentPricing, pricing)
	g.removeVehicle(vehicleID)
	return nil
}

func (g *fakeGateway) RejectVehicle(ctx context.Context, vehicleID uint, reason string) error {
	if g.rejectErr != nil {
		return g.rejectErr
	}
	g.rejectedVehicles = append(g.rejectedVehicles, vehicleID)
	g.rejectionReasons = append(g.rejectionReasons, reason)
	g.removeVehicle(vehicleID)
	return nil
}

func (g *fakeGateway) removeVehicle(vehicleID uint) {
	for i, app := range g.vehicles {
		if app.ID == vehicleID {
			g.vehicles = append(g.vehicles[:i], g.vehicles[i+1:]...)
			return
		}
	}
}

func (g *fakeGateway) ApprovalStatistics(ctx context.Context) (*client.ApprovalStats, error) {
	g.statsCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	stats := g.stats
	return &stats, nil
}

// scriptedPrompter answers confirms and prompts from fixed values and records
// everything shown to the reviewer
type scriptedPrompter struct {
	confirmAnswer bool
	promptAnswer  string

	confirms []string
	prompts  []string
	alerts   []string
}

func (p *scriptedPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	p.confirms = append(p.confirms, message)
	return p.confirmAnswer, nil
}

func (p *scriptedPrompter) Prompt(ctx context.Context, message string) (string, error) {
	p.prompts = append(p.prompts, message)
	return p.promptAnswer, nil
}

func (p *scriptedPrompter) Alert(ctx context.Context, message string) {
	p.alerts = append(p.alerts, message)
}

func pendingDrivers(ids ...string) []client.DriverApplication {
	out := make([]client.DriverApplication, 0, len(ids))
	for _, id := range ids {
		out = append(out, client.DriverApplication{
			DriverID: id,
			FullName: "Driver " + id,
			Email:    "driver" + id + "@example.com",
			Status:   "pending",
		})
	}
	return out
}

func pendingVehicles(ids ...uint) []client.VehicleApplication {
	out := make([]client.VehicleApplication, 0, len(ids))
	for _, id := range ids {
		out = append(out, client.VehicleApplication{
			ID:           id,
			Make:         "Toyota",
			Model:        "Corolla",
			Year:         2021,
			LicensePlate: "UBX 123A",
			Status:       "pending",
		})
	}
	return out
}
