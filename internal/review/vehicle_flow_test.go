package review

import (
	"context"
	"testing"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicleFixture(t *testing.T, gw *fakeGateway) (*VehicleFlow, *scriptedPrompter) {
	t.Helper()
	prompter := &scriptedPrompter{confirmAnswer: true}
	flow := NewVehicleFlow(gw, prompter, nopLogger{})
	require.NoError(t, flow.Load(context.Background()))
	return flow, prompter
}

func TestVehicleFlowApproveOpensPricing(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5, 6)}
	flow, _ := newVehicleFixture(t, gw)

	require.NoError(t, flow.Open(5))
	flow.Approve(5)

	// no request yet; approval is deferred until pricing is submitted
	assert.Empty(t, gw.approvedVehicles)
	assert.Nil(t, flow.Selected())

	modal, open := flow.Pricing()
	require.True(t, open)
	assert.Equal(t, uint(5), modal.VehicleID)
}

func TestVehicleFlowSubmitPricingRequiresDailyRate(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5)}
	flow, _ := newVehicleFixture(t, gw)

	flow.Approve(5)
	flow.SetDraft(PricingDraft{WeeklyRate: "210", MonthlyRate: "750"})
	require.NoError(t, flow.SubmitPricing(context.Background()))

	assert.Empty(t, gw.approvedVehicles)

	modal, open := flow.Pricing()
	require.True(t, open)
	assert.Equal(t, "Daily rate is required", modal.FieldError)
	// previously entered values stay intact for correction
	assert.Equal(t, "210", modal.Draft.WeeklyRate)
	assert.Equal(t, "750", modal.Draft.MonthlyRate)
}

func TestVehicleFlowSubmitPricingRejectsNonPositiveRate(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5)}
	flow, _ := newVehicleFixture(t, gw)

	flow.Approve(5)
	flow.SetDraft(PricingDraft{DailyRate: "0"})
	require.NoError(t, flow.SubmitPricing(context.Background()))

	assert.Empty(t, gw.approvedVehicles)
	modal, open := flow.Pricing()
	require.True(t, open)
	assert.Equal(t, "Daily rate must be a positive number", modal.FieldError)
}

func TestVehicleFlowSubmitPricingSuccess(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5, 6)}
	flow, _ := newVehicleFixture(t, gw)

	flow.Approve(5)
	flow.SetDraft(PricingDraft{DailyRate: "45.5", WeeklyRate: "280", SecurityDeposit: "150"})
	require.NoError(t, flow.SubmitPricing(context.Background()))

	require.Equal(t, []uint{5}, gw.approvedVehicles)
	require.Len(t, gw.sentPricing, 1)
	pricing := gw.sentPricing[0]
	assert.Equal(t, 45.5, pricing.DailyRate)
	require.NotNil(t, pricing.WeeklyRate)
	assert.Equal(t, 280.0, *pricing.WeeklyRate)
	require.NotNil(t, pricing.SecurityDeposit)
	assert.Equal(t, 150.0, *pricing.SecurityDeposit)
	assert.Nil(t, pricing.MonthlyRate)

	// modal closed, draft discarded, list reloaded in full
	_, open := flow.Pricing()
	assert.False(t, open)
	require.Len(t, flow.Applications(), 1)
	assert.Equal(t, uint(6), flow.Applications()[0].ID)
}

func TestVehicleFlowSubmitPricingGatewayFailure(t *testing.T) {
	gw := &fakeGateway{
		vehicles:   pendingVehicles(5),
		approveErr: &client.APIError{Op: "approve vehicle", Message: "Already reviewed"},
	}
	flow, prompter := newVehicleFixture(t, gw)

	flow.Approve(5)
	flow.SetDraft(PricingDraft{DailyRate: "45"})
	require.Error(t, flow.SubmitPricing(context.Background()))

	// draft stays intact for correction and the server message is shown
	modal, open := flow.Pricing()
	require.True(t, open)
	assert.Equal(t, "45", modal.Draft.DailyRate)
	assert.Contains(t, prompter.alerts, "Already reviewed")
	assert.Len(t, flow.Applications(), 1)
}

func TestVehicleFlowCancelPricing(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5)}
	flow, _ := newVehicleFixture(t, gw)

	flow.Approve(5)
	flow.SetDraft(PricingDraft{DailyRate: "45"})
	flow.CancelPricing()

	_, open := flow.Pricing()
	assert.False(t, open)
	assert.Empty(t, gw.approvedVehicles)

	// a fresh approve starts from a clean draft
	flow.Approve(5)
	modal, _ := flow.Pricing()
	assert.Empty(t, modal.Draft.DailyRate)
}

func TestVehicleFlowRejectWithoutReasonAborts(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5)}
	flow, prompter := newVehicleFixture(t, gw)
	prompter.promptAnswer = "   "

	require.NoError(t, flow.Reject(context.Background(), 5, ""))

	assert.Empty(t, gw.rejectedVehicles)
	assert.Len(t, prompter.prompts, 1)
	assert.Len(t, flow.Applications(), 1)
}

func TestVehicleFlowRejectWithPromptedReason(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5, 6)}
	flow, prompter := newVehicleFixture(t, gw)
	prompter.promptAnswer = "photos too blurry"

	require.NoError(t, flow.Reject(context.Background(), 5, ""))

	require.Equal(t, []uint{5}, gw.rejectedVehicles)
	assert.Equal(t, []string{"photos too blurry"}, gw.rejectionReasons)
	assert.Len(t, flow.Applications(), 1)
}

func TestVehicleFlowRejectWithKnownReasonSkipsPrompt(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5)}
	flow, prompter := newVehicleFixture(t, gw)

	require.NoError(t, flow.Reject(context.Background(), 5, "duplicate listing"))

	assert.Empty(t, prompter.prompts)
	assert.Equal(t, []string{"duplicate listing"}, gw.rejectionReasons)
}

func TestVehicleFlowSubmitPricingProcessingGuard(t *testing.T) {
	gw := &fakeGateway{vehicles: pendingVehicles(5)}
	flow, _ := newVehicleFixture(t, gw)

	ctx := context.Background()
	flow.Approve(5)
	flow.SetDraft(PricingDraft{DailyRate: "45"})
	gw.onSubmitPricing = func() {
		assert.True(t, flow.Processing(5))
		require.NoError(t, flow.SubmitPricing(ctx))
	}

	require.NoError(t, flow.SubmitPricing(ctx))

	assert.Equal(t, []uint{5}, gw.approvedVehicles)
	assert.Len(t, gw.sentPricing, 1)
}
