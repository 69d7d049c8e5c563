package review

import (
	"context"
	"fmt"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/pickngo/pickngo-backend/pkg/logger"
	"github.com/pickngo/pickngo-backend/pkg/utils"
)

// DriverEmptyState is shown when no driver applications are pending
const DriverEmptyState = "All driver applications have been processed"

// DriverFlow drives the pending-driver review workflow. The list is always
// reloaded in full after a successful action; there is no optimistic local
// patching. A per-application processing guard suppresses duplicate in-flight
// requests, but it is advisory only.
type DriverFlow struct {
	gateway  DriverGateway
	prompter Prompter
	log      logger.ILogger

	applications []client.DriverApplication
	selected     *client.DriverApplication
	processing   map[string]bool
}

func NewDriverFlow(gateway DriverGateway, prompter Prompter, log logger.ILogger) *DriverFlow {
	return &DriverFlow{
		gateway:    gateway,
		prompter:   prompter,
		log:        log,
		processing: make(map[string]bool),
	}
}

// Load replaces the list with a fresh fetch of pending applications.
// On failure the current list is kept so the reviewer can retry.
func (f *DriverFlow) Load(ctx context.Context) error {
	applications, err := f.gateway.PendingDrivers(ctx)
	if err != nil {
		f.log.Error("failed to load driver applications", logger.Error(err))
		f.prompter.Alert(ctx, alertMessage(err, "Failed to load driver applications"))
		return err
	}

	f.applications = applications
	return nil
}

// Applications returns the current pending list
func (f *DriverFlow) Applications() []client.DriverApplication {
	return f.applications
}

// Open selects one application for the detail view
func (f *DriverFlow) Open(driverID string) error {
	for i := range f.applications {
		if f.applications[i].DriverID == driverID {
			f.selected = &f.applications[i]
			return nil
		}
	}
	return fmt.Errorf("driver application %s not in the pending list", driverID)
}

// Selected returns the application open in the detail view, if any
func (f *DriverFlow) Selected() *client.DriverApplication {
	return f.selected
}

// CloseDetail dismisses the detail view
func (f *DriverFlow) CloseDetail() {
	f.selected = nil
}

// Processing reports whether an action for this application is in flight
func (f *DriverFlow) Processing(driverID string) bool {
	return f.processing[driverID]
}

// Approve approves one application after confirmation. A one-time password
// is generated and sent with the request so the gateway can provision the
// driver's login; it is never kept beyond the success alert. The row and
// detail-view approve paths both land here.
func (f *DriverFlow) Approve(ctx context.Context, driverID string) error {
	if f.processing[driverID] {
		return nil
	}

	ok, err := f.prompter.Confirm(ctx, fmt.Sprintf("Approve driver application %s?", driverID))
	if err != nil || !ok {
		return err
	}

	f.processing[driverID] = true
	defer delete(f.processing, driverID)

	password, err := utils.GenerateDriverPassword()
	if err != nil {
		f.log.Error("failed to generate driver password", logger.Error(err))
		f.prompter.Alert(ctx, "Failed to approve driver")
		return err
	}

	if err := f.gateway.ApproveDriver(ctx, driverID, password); err != nil {
		f.log.Error("driver approval failed", logger.String("driverId", driverID), logger.Error(err))
		f.prompter.Alert(ctx, alertMessage(err, "Failed to approve driver"))
		return err
	}

	f.prompter.Alert(ctx, fmt.Sprintf("Driver approved. Temporary password: %s", password))
	f.CloseDetail()
	return f.Load(ctx)
}

// Reject rejects one application after confirmation
func (f *DriverFlow) Reject(ctx context.Context, driverID string) error {
	if f.processing[driverID] {
		return nil
	}

	ok, err := f.prompter.Confirm(ctx, fmt.Sprintf("Reject driver application %s?", driverID))
	if err != nil || !ok {
		return err
	}

	f.processing[driverID] = true
	defer delete(f.processing, driverID)

	if err := f.gateway.RejectDriver(ctx, driverID); err != nil {
		f.log.Error("driver rejection failed", logger.String("driverId", driverID), logger.Error(err))
		f.prompter.Alert(ctx, alertMessage(err, "Failed to reject driver"))
		return err
	}

	f.prompter.Alert(ctx, "Driver application rejected")
	f.CloseDetail()
	return f.Load(ctx)
}
