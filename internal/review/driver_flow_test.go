package review

import (
	"context"
	"regexp"
	"testing"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var passwordPattern = regexp.MustCompile(`^PnG[A-Z0-9]{8}$`)

func newDriverFixture(t *testing.T, gw *fakeGateway) (*DriverFlow, *scriptedPrompter) {
	t.Helper()
	prompter := &scriptedPrompter{confirmAnswer: true}
	flow := NewDriverFlow(gw, prompter, nopLogger{})
	require.NoError(t, flow.Load(context.Background()))
	return flow, prompter
}

func TestDriverFlowApprove(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1", "2", "3")}
	flow, prompter := newDriverFixture(t, gw)

	require.NoError(t, flow.Open("2"))
	require.NoError(t, flow.Approve(context.Background(), "2"))

	assert.Len(t, prompter.confirms, 1)
	require.Equal(t, []string{"2"}, gw.approvedDrivers)
	require.Len(t, gw.sentPasswords, 1)
	assert.Regexp(t, passwordPattern, gw.sentPasswords[0])

	// detail is closed and the list reloaded in full
	assert.Nil(t, flow.Selected())
	ids := make([]string, 0, len(flow.Applications()))
	for _, app := range flow.Applications() {
		ids = append(ids, app.DriverID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestDriverFlowApproveRequiresConfirmation(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1")}
	flow, prompter := newDriverFixture(t, gw)
	prompter.confirmAnswer = false

	require.NoError(t, flow.Approve(context.Background(), "1"))

	assert.Empty(t, gw.approvedDrivers)
	assert.Len(t, flow.Applications(), 1)
}

func TestDriverFlowRejectConverges(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1", "2")}
	flow, _ := newDriverFixture(t, gw)

	// acting from the detail view goes through the same operation as the row
	require.NoError(t, flow.Open("1"))
	require.NoError(t, flow.Reject(context.Background(), "1"))

	assert.Equal(t, []string{"1"}, gw.rejectedDrivers)
	assert.Nil(t, flow.Selected())
	assert.Len(t, flow.Applications(), 1)
}

func TestDriverFlowApproveFailureKeepsState(t *testing.T) {
	gw := &fakeGateway{
		drivers:    pendingDrivers("1", "2"),
		approveErr: &client.APIError{Op: "approve driver", Message: "Already reviewed"},
	}
	flow, prompter := newDriverFixture(t, gw)
	require.NoError(t, flow.Open("1"))

	err := flow.Approve(context.Background(), "1")
	require.Error(t, err)

	// the server message is surfaced verbatim and nothing is rolled forward
	assert.Contains(t, prompter.alerts, "Already reviewed")
	assert.NotNil(t, flow.Selected())
	assert.Len(t, flow.Applications(), 2)
}

func TestDriverFlowProcessingGuard(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1")}
	flow, _ := newDriverFixture(t, gw)

	// second click lands while the first request is in flight
	ctx := context.Background()
	gw.onApproveDriver = func() {
		assert.True(t, flow.Processing("1"))
		require.NoError(t, flow.Approve(ctx, "1"))
	}

	require.NoError(t, flow.Approve(ctx, "1"))

	assert.Equal(t, []string{"1"}, gw.approvedDrivers)
	assert.Len(t, gw.sentPasswords, 1)
}

func TestDriverFlowConsecutivePasswordsDiffer(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1", "2")}
	flow, _ := newDriverFixture(t, gw)

	ctx := context.Background()
	require.NoError(t, flow.Approve(ctx, "1"))
	require.NoError(t, flow.Approve(ctx, "2"))

	require.Len(t, gw.sentPasswords, 2)
	assert.NotEqual(t, gw.sentPasswords[0], gw.sentPasswords[1])
}

func TestDriverFlowLoadFailureKeepsList(t *testing.T) {
	gw := &fakeGateway{drivers: pendingDrivers("1")}
	flow, prompter := newDriverFixture(t, gw)

	gw.listErr = assert.AnError
	require.Error(t, flow.Load(context.Background()))

	assert.Len(t, flow.Applications(), 1)
	assert.NotEmpty(t, prompter.alerts)
}
