package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pickngo/pickngo-backend/internal/client"
	"github.com/pickngo/pickngo-backend/internal/config"
	"github.com/pickngo/pickngo-backend/internal/review"
	"github.com/pickngo/pickngo-backend/pkg/logger"
)

// Terminal review console for business owners. Hosts the same headless
// workflow the web dashboard uses, over a stdin prompter.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName)

	ctx := context.Background()
	prompter := review.NewStdinPrompter(os.Stdin, os.Stdout)

	gw := client.New(cfg.GatewayURL, "", time.Duration(cfg.RequestTimeout)*time.Second)

	email := cfg.ReviewerEmail
	password := cfg.ReviewerPassword
	if email == "" {
		var err error
		if email, err = prompter.Prompt(ctx, "Email:"); err != nil {
			os.Exit(1)
		}
		if password, err = prompter.Prompt(ctx, "Password:"); err != nil {
			os.Exit(1)
		}
	}

	session, err := gw.Login(ctx, email, password)
	if err != nil {
		log.Error("login failed", logger.Error(err))
		fmt.Println("Login failed:", err)
		os.Exit(1)
	}

	dashboard := review.NewDashboard(session, prompter, log, cfg.SummaryLimit)
	dashboard.Mount(ctx)

	render(dashboard)

	// The prompter owns the single stdin reader; command input goes through
	// it as well so confirm/prompt answers and commands never interleave.
	for {
		line, err := prompter.Prompt(ctx, ">")
		if err != nil {
			return
		}
		if quit := handle(ctx, dashboard, line); quit {
			return
		}
		render(dashboard)
	}
}

func handle(ctx context.Context, d *review.Dashboard, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true

	case "all", "drivers", "vehicles":
		d.SwitchTab(ctx, review.Tab(fields[0]))

	case "reload":
		d.SwitchTab(ctx, d.ActiveTab())

	case "open":
		if len(fields) < 2 {
			fmt.Println("usage: open <id>")
			return false
		}
		if d.ActiveTab() == review.TabVehicles {
			if id, err := strconv.Atoi(fields[1]); err == nil {
				if err := d.Vehicles.Open(uint(id)); err != nil {
					fmt.Println(err)
				}
			}
		} else if err := d.Drivers.Open(fields[1]); err != nil {
			fmt.Println(err)
		}

	case "close":
		d.Drivers.CloseDetail()
		d.Vehicles.CloseDetail()

	case "approve":
		if len(fields) < 2 {
			fmt.Println("usage: approve <id>")
			return false
		}
		if d.ActiveTab() == review.TabVehicles {
			if id, err := strconv.Atoi(fields[1]); err == nil {
				d.Vehicles.Approve(uint(id))
			}
		} else {
			_ = d.Drivers.Approve(ctx, fields[1])
		}

	case "reject":
		if len(fields) < 2 {
			fmt.Println("usage: reject <id> [reason]")
			return false
		}
		if d.ActiveTab() == review.TabVehicles {
			if id, err := strconv.Atoi(fields[1]); err == nil {
				reason := strings.Join(fields[2:], " ")
				_ = d.Vehicles.Reject(ctx, uint(id), reason)
			}
		} else {
			_ = d.Drivers.Reject(ctx, fields[1])
		}

	case "price":
		// price <daily> [weekly] [monthly] [deposit] [fee]
		draft := review.PricingDraft{}
		args := fields[1:]
		slots := []*string{&draft.DailyRate, &draft.WeeklyRate, &draft.MonthlyRate, &draft.SecurityDeposit, &draft.ProcessingFee}
		for i, arg := range args {
			if i >= len(slots) {
				break
			}
			*slots[i] = arg
		}
		d.Vehicles.SetDraft(draft)
		_ = d.Vehicles.SubmitPricing(ctx)

	case "cancel":
		d.Vehicles.CancelPricing()

	default:
		fmt.Println("commands: all | drivers | vehicles | reload | open <id> | close | approve <id> | reject <id> [reason] | price <daily> [rates...] | cancel | quit")
	}

	return false
}

func render(d *review.Dashboard) {
	if stats := d.Stats.Snapshot(); stats != nil {
		fmt.Printf("Pending: %d drivers, %d vehicles (%d total) | My approvals: %d\n",
			stats.Pending.Drivers, stats.Pending.Vehicles, stats.Pending.Total, stats.MyApprovals.Total)
	}

	switch d.ActiveTab() {
	case review.TabDrivers:
		renderDrivers(d.Drivers.Applications())
		if selected := d.Drivers.Selected(); selected != nil {
			fmt.Printf("--- %s | %s | %s | licence %s | %d yrs | %s %s (%s)\n",
				selected.FullName, selected.Email, selected.Phone, selected.LicenseNumber,
				selected.YearsOfExperience, selected.VehicleType, selected.VehicleModel, selected.VehiclePlateNumber)
		}

	case review.TabVehicles:
		renderVehicles(d.Vehicles.Applications())
		if selected := d.Vehicles.Selected(); selected != nil {
			owner := ""
			if selected.Owner != nil {
				owner = fmt.Sprintf(" | owner %s <%s>", selected.Owner.Username, selected.Owner.Email)
			}
			fmt.Printf("--- %d-seat %s, %s fuel, %s%s\n  %s\n  features: %s\n",
				selected.SeatingCapacity, selected.VehicleType, selected.FuelType, selected.City, owner,
				selected.Description, strings.Join(selected.Features, ", "))
		}
		if modal, open := d.Vehicles.Pricing(); open {
			fmt.Printf("Pricing vehicle #%d: price <daily> [weekly] [monthly] [deposit] [fee]\n", modal.VehicleID)
			if modal.FieldError != "" {
				fmt.Println("  !", modal.FieldError)
			}
		}

	default:
		fmt.Println("[ Drivers ]")
		renderDrivers(d.DriverSummary())
		fmt.Println("[ Vehicles ]")
		renderVehicles(d.VehicleSummary())
	}
}

func renderDrivers(applications []client.DriverApplication) {
	if len(applications) == 0 {
		fmt.Println(review.DriverEmptyState)
		return
	}
	for _, app := range applications {
		fmt.Printf("  %s  %-24s %-28s applied %s\n",
			app.DriverID, app.FullName, app.Email, app.CreatedAt.Format("2006-01-02"))
	}
}

func renderVehicles(applications []client.VehicleApplication) {
	if len(applications) == 0 {
		fmt.Println(review.VehicleEmptyState)
		return
	}
	for _, app := range applications {
		fmt.Printf("  #%d  %d %s %s (%s) in %s\n",
			app.ID, app.Year, app.Make, app.Model, app.LicensePlate, app.City)
	}
}
