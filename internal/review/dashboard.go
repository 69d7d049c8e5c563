package review

import (
	"context"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/pickngo/pickngo-backend/pkg/logger"
)

// Tab identifies the dashboard's active sub-view
type Tab string

const (
	TabAll      Tab = "all"
	TabDrivers  Tab = "drivers"
	TabVehicles Tab = "vehicles"
)

// Dashboard is the shell that aggregates the statistics panel and the two
// review flows into one view. Switching tabs loads the corresponding flow's
// list but never re-fetches statistics.
type Dashboard struct {
	Stats    *StatsPanel
	Drivers  *DriverFlow
	Vehicles *VehicleFlow

	activeTab    Tab
	summaryLimit int
}

// NewDashboard wires the shell. summaryLimit caps how many applications of
// each kind the combined tab previews.
func NewDashboard(gw *client.Client, prompter Prompter, log logger.ILogger, summaryLimit int) *Dashboard {
	if summaryLimit <= 0 {
		summaryLimit = 3
	}
	return &Dashboard{
		Stats:        NewStatsPanel(gw, log),
		Drivers:      NewDriverFlow(gw, prompter, log),
		Vehicles:     NewVehicleFlow(gw, prompter, log),
		activeTab:    TabAll,
		summaryLimit: summaryLimit,
	}
}

// Mount fetches the statistics snapshot and loads the combined view
func (d *Dashboard) Mount(ctx context.Context) {
	d.Stats.Mount(ctx)
	d.SwitchTab(ctx, TabAll)
}

// ActiveTab returns the current sub-view
func (d *Dashboard) ActiveTab() Tab {
	return d.activeTab
}

// SwitchTab activates a sub-view and loads the lists it renders. Statistics
// are deliberately left alone.
func (d *Dashboard) SwitchTab(ctx context.Context, tab Tab) {
	d.activeTab = tab

	switch tab {
	case TabDrivers:
		_ = d.Drivers.Load(ctx)
	case TabVehicles:
		_ = d.Vehicles.Load(ctx)
	default:
		_ = d.Drivers.Load(ctx)
		_ = d.Vehicles.Load(ctx)
	}
}

// DriverSummary returns the combined tab's preview slice of pending drivers
func (d *Dashboard) DriverSummary() []client.DriverApplication {
	applications := d.Drivers.Applications()
	if len(applications) > d.summaryLimit {
		return applications[:d.summaryLimit]
	}
	return applications
}

// VehicleSummary returns the combined tab's preview slice of pending vehicles
func (d *Dashboard) VehicleSummary() []client.VehicleApplication {
	applications := d.Vehicles.Applications()
	if len(applications) > d.summaryLimit {
		return applications[:d.summaryLimit]
	}
	return applications
}

// ViewAllDrivers is the combined tab's "view all" link for drivers
func (d *Dashboard) ViewAllDrivers(ctx context.Context) {
	d.SwitchTab(ctx, TabDrivers)
}

// ViewAllVehicles is the combined tab's "view all" link for vehicles
func (d *Dashboard) ViewAllVehicles(ctx context.Context) {
	d.SwitchTab(ctx, TabVehicles)
}
