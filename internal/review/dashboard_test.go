package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardFixture(gw *fakeGateway, limit int) *Dashboard {
	prompter := &scriptedPrompter{confirmAnswer: true}
	return &Dashboard{
		Stats:        NewStatsPanel(gw, nopLogger{}),
		Drivers:      NewDriverFlow(gw, prompter, nopLogger{}),
		Vehicles:     NewVehicleFlow(gw, prompter, nopLogger{}),
		activeTab:    TabAll,
		summaryLimit: limit,
	}
}

func TestStatsPanelMountFailureRendersNothing(t *testing.T) {
	gw := &fakeGateway{listErr: assert.AnError}
	panel := NewStatsPanel(gw, nopLogger{})

	panel.Mount(context.Background())

	assert.Nil(t, panel.Snapshot())
}

func TestStatsPanelSnapshot(t *testing.T) {
	gw := &fakeGateway{}
	gw.stats.Pending.Drivers = 2
	gw.stats.Pending.Vehicles = 3
	gw.stats.Pending.Total = 5
	panel := NewStatsPanel(gw, nopLogger{})

	panel.Mount(context.Background())

	snapshot := panel.Snapshot()
	require.NotNil(t, snapshot)
	assert.Equal(t, int64(5), snapshot.Pending.Total)
}

func TestDashboardTabSwitchDoesNotRefreshStats(t *testing.T) {
	gw := &fakeGateway{
		drivers:  pendingDrivers("1", "2"),
		vehicles: pendingVehicles(5),
	}
	gw.stats.Pending.Total = 3

	d := newDashboardFixture(gw, 3)
	d.Mount(context.Background())
	require.Equal(t, 1, gw.statsCalls)

	d.SwitchTab(context.Background(), TabDrivers)
	d.SwitchTab(context.Background(), TabVehicles)
	d.SwitchTab(context.Background(), TabAll)

	assert.Equal(t, 1, gw.statsCalls)
}

func TestDashboardStatsStayStaleAfterReview(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1", "2", "3")}
	gw.stats.Pending.Drivers = 3
	gw.stats.Pending.Total = 3

	d := newDashboardFixture(gw, 3)
	ctx := context.Background()
	d.Mount(ctx)
	d.SwitchTab(ctx, TabDrivers)

	require.NoError(t, d.Drivers.Approve(ctx, "2"))
	d.SwitchTab(ctx, TabAll)

	// the list reflects the action, the counters do not
	assert.Len(t, d.Drivers.Applications(), 2)
	require.NotNil(t, d.Stats.Snapshot())
	assert.Equal(t, int64(3), d.Stats.Snapshot().Pending.Total)
}

func TestDashboardSummaryCapsEachKind(t *testing.T) {
	gw := &fakeGateway{
		drivers:  pendingDrivers("1", "2", "3", "4"),
		vehicles: pendingVehicles(5),
	}

	d := newDashboardFixture(gw, 2)
	d.Mount(context.Background())

	assert.Len(t, d.DriverSummary(), 2)
	assert.Len(t, d.VehicleSummary(), 1)
}

func TestDashboardViewAllSwitchesTab(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1")}

	d := newDashboardFixture(gw, 3)
	ctx := context.Background()
	d.Mount(ctx)

	d.ViewAllDrivers(ctx)
	assert.Equal(t, TabDrivers, d.ActiveTab())

	d.ViewAllVehicles(ctx)
	assert.Equal(t, TabVehicles, d.ActiveTab())
}

func TestDriverListExclusiveAfterReview(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1", "2", "3")}
	prompter := &scriptedPrompter{confirmAnswer: true}
	flow := NewDriverFlow(gw, prompter, nopLogger{})
	ctx := context.Background()
	require.NoError(t, flow.Load(ctx))

	require.NoError(t, flow.Approve(ctx, "2"))

	seen := map[string]int{}
	for _, app := range flow.Applications() {
		seen[app.DriverID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "driver %s appears more than once", id)
	}
	assert.NotContains(t, seen, "2")

	// the post-action list equals exactly one fresh fetch
	fresh, err := gw.PendingDrivers(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, flow.Applications())
}
