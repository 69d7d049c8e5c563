package review

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/pickngo/pickngo-backend/pkg/logger"
)

// VehicleEmptyState is shown when no vehicle applications are pending
const VehicleEmptyState = "All Caught Up!"

// PricingDraft holds the in-progress rate values entered while approving a
// vehicle. Fields stay free-text until submit; only the daily rate is
// required.
type PricingDraft struct {
	DailyRate       string
	WeeklyRate      string
	MonthlyRate     string
	SecurityDeposit string
	ProcessingFee   string
}

// PricingModal is the open state of the two-phase approve protocol: which
// vehicle is being priced, the draft so far, and any inline validation error.
type PricingModal struct {
	VehicleID  uint
	Draft      PricingDraft
	FieldError string
}

// pricing modal states
type pricingState int

const (
	pricingIdle pricingState = iota
	pricingOpen
)

// VehicleFlow drives the pending-vehicle review workflow. Approval is
// two-phase: selecting a vehicle opens the pricing modal, and the gateway
// call is deferred until the draft passes validation. Rejection requires a
// reason and aborts without one.
type VehicleFlow struct {
	gateway  VehicleGateway
	prompter Prompter
	log      logger.ILogger

	applications []client.VehicleApplication
	selected     *client.VehicleApplication
	processing   map[uint]bool

	state   pricingState
	pricing PricingModal
}

func NewVehicleFlow(gateway VehicleGateway, prompter Prompter, log logger.ILogger) *VehicleFlow {
	return &VehicleFlow{
		gateway:    gateway,
		prompter:   prompter,
		log:        log,
		processing: make(map[uint]bool),
	}
}

// Load replaces the list with a fresh fetch of pending applications
func (f *VehicleFlow) Load(ctx context.Context) error {
	applications, err := f.gateway.PendingVehicles(ctx)
	if err != nil {
		f.log.Error("failed to load vehicle applications", logger.Error(err))
		f.prompter.Alert(ctx, alertMessage(err, "Failed to load vehicle applications"))
		return err
	}

	f.applications = applications
	return nil
}

// Applications returns the current pending list
func (f *VehicleFlow) Applications() []client.VehicleApplication {
	return f.applications
}

// Open selects one application for the detail view
func (f *VehicleFlow) Open(vehicleID uint) error {
	for i := range f.applications {
		if f.applications[i].ID == vehicleID {
			f.selected = &f.applications[i]
			return nil
		}
	}
	return fmt.Errorf("vehicle application %d not in the pending list", vehicleID)
}

// Selected returns the application open in the detail view, if any
func (f *VehicleFlow) Selected() *client.VehicleApplication {
	return f.selected
}

// CloseDetail dismisses the detail view
func (f *VehicleFlow) CloseDetail() {
	f.selected = nil
}

// Processing reports whether an action for this application is in flight
func (f *VehicleFlow) Processing(vehicleID uint) bool {
	return f.processing[vehicleID]
}

// Pricing returns the open pricing modal, or false when the flow is idle
func (f *VehicleFlow) Pricing() (PricingModal, bool) {
	if f.state != pricingOpen {
		return PricingModal{}, false
	}
	return f.pricing, true
}

// Approve opens the pricing modal for the vehicle. No gateway request is
// issued here; the approval is deferred until SubmitPricing. Approving from
// the detail view closes it first.
func (f *VehicleFlow) Approve(vehicleID uint) {
	f.CloseDetail()
	f.state = pricingOpen
	f.pricing = PricingModal{VehicleID: vehicleID}
}

// SetDraft replaces the pricing draft while the modal is open
func (f *VehicleFlow) SetDraft(draft PricingDraft) {
	if f.state != pricingOpen {
		return
	}
	f.pricing.Draft = draft
	f.pricing.FieldError = ""
}

// CancelPricing discards the draft and returns to idle without any request
func (f *VehicleFlow) CancelPricing() {
	f.state = pricingIdle
	f.pricing = PricingModal{}
}

// SubmitPricing validates the draft and issues the deferred approval. A
// missing or invalid daily rate keeps the modal open with an inline error and
// issues no request. On gateway failure the modal stays open with the draft
// intact so the reviewer can correct and resubmit.
func (f *VehicleFlow) SubmitPricing(ctx context.Context) error {
	if f.state != pricingOpen {
		return nil
	}

	vehicleID := f.pricing.VehicleID
	if f.processing[vehicleID] {
		return nil
	}

	pricing, fieldErr := f.pricing.Draft.parse()
	if fieldErr != "" {
		f.pricing.FieldError = fieldErr
		return nil
	}

	f.processing[vehicleID] = true
	defer delete(f.processing, vehicleID)

	if err := f.gateway.ApproveVehicle(ctx, vehicleID, pricing); err != nil {
		f.log.Error("vehicle approval failed", logger.Int("vehicleId", int(vehicleID)), logger.Error(err))
		f.prompter.Alert(ctx, alertMessage(err, "Failed to approve vehicle"))
		return err
	}

	f.prompter.Alert(ctx, "Vehicle approved")
	f.CancelPricing()
	return f.Load(ctx)
}

// Reject rejects one application. An empty reason triggers a prompt; if the
// reviewer still gives none the action aborts with no request sent.
func (f *VehicleFlow) Reject(ctx context.Context, vehicleID uint, reason string) error {
	if f.processing[vehicleID] {
		return nil
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		answer, err := f.prompter.Prompt(ctx, "Reason for rejection:")
		if err != nil {
			return err
		}
		reason = strings.TrimSpace(answer)
	}
	if reason == "" {
		return nil
	}

	f.processing[vehicleID] = true
	defer delete(f.processing, vehicleID)

	if err := f.gateway.RejectVehicle(ctx, vehicleID, reason); err != nil {
		f.log.Error("vehicle rejection failed", logger.Int("vehicleId", int(vehicleID)), logger.Error(err))
		f.prompter.Alert(ctx, alertMessage(err, "Failed to reject vehicle"))
		return err
	}

	f.prompter.Alert(ctx, "Vehicle application rejected")
	f.CloseDetail()
	return f.Load(ctx)
}

// parse validates the draft and converts it to the wire pricing. The returned
// string is the inline error, empty when the draft is valid.
func (d PricingDraft) parse() (client.Pricing, string) {
	daily := strings.TrimSpace(d.DailyRate)
	if daily == "" {
		return client.Pricing{}, "Daily rate is required"
	}

	dailyRate, err := strconv.ParseFloat(daily, 64)
	if err != nil || dailyRate <= 0 {
		return client.Pricing{}, "Daily rate must be a positive number"
	}

	pricing := client.Pricing{DailyRate: dailyRate}

	optional := []struct {
		value string
		dest  **float64
		label string
	}{
		{d.WeeklyRate, &pricing.WeeklyRate, "Weekly rate"},
		{d.MonthlyRate, &pricing.MonthlyRate, "Monthly rate"},
		{d.SecurityDeposit, &pricing.SecurityDeposit, "Security deposit"},
		{d.ProcessingFee, &pricing.ProcessingFee, "Processing fee"},
	}
	for _, field := range optional {
		value := strings.TrimSpace(field.value)
		if value == "" {
			continue
		}
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 {
			return client.Pricing{}, field.label + " must be a non-negative number"
		}
		*field.dest = &rate
	}

	return pricing, ""
}
