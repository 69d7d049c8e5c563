package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pickngo/pickngo-backend/internal/models"
	"github.com/pickngo/pickngo-backend/internal/services"
	"gorm.io/gorm"
)

// GetPendingVehicles lists all vehicle applications still awaiting review
func GetPendingVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var applications []models.VehicleApplication
		if err := db.Preload("Owner").
			Where("status = ?", models.ApplicationStatusPending).
			Order("created_at ASC").
			Find(&applications).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch pending vehicles"})
			return
		}

		c.JSON(200, gin.H{"success": true, "vehicles": applications})
	}
}

// GetPendingVehicleCount returns the pending-vehicle badge count
func GetPendingVehicleCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		if count, err := services.GetPendingCount(ctx, "vehicles"); err == nil {
			c.JSON(200, gin.H{"success": true, "count": count})
			return
		}

		var count int64
		if err := db.Model(&models.VehicleApplication{}).
			Where("status = ?", models.ApplicationStatusPending).
			Count(&count).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to count pending vehicles"})
			return
		}

		_ = services.SetPendingCount(ctx, "vehicles", count)

		c.JSON(200, gin.H{"success": true, "count": count})
	}
}

// GetVehicle retrieves one vehicle application with its owner
func GetVehicle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleId := c.Param("vehicleId")

		var application models.VehicleApplication
		if err := db.Preload("Owner").First(&application, vehicleId).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "Vehicle application not found"})
			return
		}

		c.JSON(200, gin.H{"success": true, "vehicle": application})
	}
}

// GetVehicles lists vehicle applications, optionally filtered by status
func GetVehicles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Owner").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var applications []models.VehicleApplication
		if err := query.Find(&applications).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch vehicles"})
			return
		}

		c.JSON(200, gin.H{"success": true, "vehicles": applications})
	}
}

// ApproveVehicleInput carries the rental pricing captured at approval time.
// Only the daily rate is mandatory.
type ApproveVehicleInput struct {
	DailyRate       float64  `json:"dailyRate"`
	WeeklyRate      *float64 `json:"weeklyRate,omitempty"`
	MonthlyRate     *float64 `json:"monthlyRate,omitempty"`
	SecurityDeposit *float64 `json:"securityDeposit,omitempty"`
	ProcessingFee   *float64 `json:"processingFee,omitempty"`
}

// ApproveVehicle approves a pending vehicle application and persists its
// pricing in the same guarded update
func ApproveVehicle(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleId := c.Param("vehicleId")
		reviewerId := c.GetUint("userId")

		var input ApproveVehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		if input.DailyRate <= 0 {
			c.JSON(400, gin.H{"success": false, "message": "Daily rate is required"})
			return
		}

		for _, rate := range []*float64{input.WeeklyRate, input.MonthlyRate, input.SecurityDeposit, input.ProcessingFee} {
			if rate != nil && *rate < 0 {
				c.JSON(400, gin.H{"success": false, "message": "Pricing values must be non-negative"})
				return
			}
		}

		var application models.VehicleApplication
		if err := db.First(&application, vehicleId).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "Vehicle application not found"})
			return
		}

		now := time.Now()
		result := db.Model(&models.VehicleApplication{}).
			Where("id = ? AND status = ?", application.ID, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":           models.ApplicationStatusApproved,
				"daily_rate":       input.DailyRate,
				"weekly_rate":      input.WeeklyRate,
				"monthly_rate":     input.MonthlyRate,
				"security_deposit": input.SecurityDeposit,
				"processing_fee":   input.ProcessingFee,
				"reviewed_by":      reviewerId,
				"reviewed_at":      now,
			})
		if result.Error != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to approve vehicle"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(409, gin.H{"success": false, "message": "Already reviewed"})
			return
		}

		hub.SendApplicationReviewed(services.ApplicationEvent{
			Kind:          "vehicle",
			ApplicationID: application.ID,
			Status:        string(models.ApplicationStatusApproved),
			ReviewedBy:    reviewerId,
		})

		c.JSON(200, gin.H{"success": true, "message": "Vehicle approved"})
	}
}

// RejectVehicleInput requires the reviewer's reason
type RejectVehicleInput struct {
	Reason string `json:"reason" binding:"required"`
}

// RejectVehicle rejects a pending vehicle application with a reason
func RejectVehicle(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleId := c.Param("vehicleId")
		reviewerId := c.GetUint("userId")

		var input RejectVehicleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Rejection reason is required"})
			return
		}

		var application models.VehicleApplication
		if err := db.First(&application, vehicleId).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "Vehicle application not found"})
			return
		}

		now := time.Now()
		result := db.Model(&models.VehicleApplication{}).
			Where("id = ? AND status = ?", application.ID, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":           models.ApplicationStatusRejected,
				"rejection_reason": input.Reason,
				"reviewed_by":      reviewerId,
				"reviewed_at":      now,
			})
		if result.Error != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to reject vehicle"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(409, gin.H{"success": false, "message": "Already reviewed"})
			return
		}

		hub.SendApplicationReviewed(services.ApplicationEvent{
			Kind:          "vehicle",
			ApplicationID: application.ID,
			Status:        string(models.ApplicationStatusRejected),
			ReviewedBy:    reviewerId,
		})

		c.JSON(200, gin.H{"success": true, "message": "Vehicle rejected"})
	}
}

// SubmitVehicleApplication accepts a vehicle listing from an authenticated
// vehicle owner, with photo uploads
func SubmitVehicleApplication(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerId := c.GetUint("userId")

		if c.GetString("userType") != string(models.UserTypeVehicleOwner) {
			c.JSON(403, gin.H{"success": false, "message": "Only vehicle owners can submit vehicles"})
			return
		}

		var input struct {
			Make            string   `form:"make" binding:"required"`
			Model           string   `form:"model" binding:"required"`
			Year            int      `form:"year" binding:"required"`
			LicensePlate    string   `form:"licensePlate" binding:"required"`
			VehicleType     string   `form:"vehicleType"`
			SeatingCapacity int      `form:"seatingCapacity"`
			FuelType        string   `form:"fuelType"`
			City            string   `form:"city"`
			Description     string   `form:"description"`
			Features        []string `form:"features"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid form data"})
			return
		}

		var photos []string
		for _, file := range form.File["photos"] {
			photoURL, err := services.UploadDocument(file, "vehicles")
			if err != nil {
				c.JSON(500, gin.H{"success": false, "message": "Failed to upload vehicle photo"})
				return
			}
			photos = append(photos, photoURL)
		}

		application := models.VehicleApplication{
			OwnerID:         ownerId,
			Make:            input.Make,
			VehicleModel:    input.Model,
			Year:            input.Year,
			LicensePlate:    input.LicensePlate,
			VehicleType:     input.VehicleType,
			SeatingCapacity: input.SeatingCapacity,
			FuelType:        input.FuelType,
			City:            input.City,
			Description:     input.Description,
			Photos:          photos,
			Features:        input.Features,
			Status:          models.ApplicationStatusPending,
		}

		if err := db.Create(&application).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to submit vehicle"})
			return
		}

		hub.SendApplicationSubmitted(services.ApplicationEvent{
			Kind:          "vehicle",
			ApplicationID: application.ID,
			Status:        string(models.ApplicationStatusPending),
		})

		c.JSON(201, gin.H{"success": true, "message": "Vehicle submitted for review", "vehicle": application})
	}
}
