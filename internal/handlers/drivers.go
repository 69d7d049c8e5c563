package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pickngo/pickngo-backend/internal/models"
	"github.com/pickngo/pickngo-backend/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetPendingDrivers lists all driver applications still awaiting review
func GetPendingDrivers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var applications []models.DriverApplication
		if err := db.Where("status = ?", models.ApplicationStatusPending).
			Order("created_at ASC").
			Find(&applications).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch pending drivers"})
			return
		}

		c.JSON(200, gin.H{"success": true, "drivers": applications})
	}
}

// GetPendingDriverCount returns the pending-driver badge count
func GetPendingDriverCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		if count, err := services.GetPendingCount(ctx, "drivers"); err == nil {
			c.JSON(200, gin.H{"success": true, "count": count})
			return
		}

		var count int64
		if err := db.Model(&models.DriverApplication{}).
			Where("status = ?", models.ApplicationStatusPending).
			Count(&count).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to count pending drivers"})
			return
		}

		_ = services.SetPendingCount(ctx, "drivers", count)

		c.JSON(200, gin.H{"success": true, "count": count})
	}
}

// GetDriver retrieves one driver application by its driver id
func GetDriver(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverId := c.Param("driverId")

		var application models.DriverApplication
		if err := db.Where("driver_id = ?", driverId).First(&application).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "Driver application not found"})
			return
		}

		c.JSON(200, gin.H{"success": true, "driver": application})
	}
}

// GetDrivers lists driver applications, optionally filtered by status
func GetDrivers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var applications []models.DriverApplication
		if err := query.Find(&applications).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to fetch drivers"})
			return
		}

		c.JSON(200, gin.H{"success": true, "drivers": applications})
	}
}

// ReviewDriverInput defines the review decision payload
type ReviewDriverInput struct {
	Status      string `json:"status" binding:"required,oneof=approved rejected"`
	NewPassword string `json:"newPassword"`
	Reason      string `json:"reason"`
}

// ReviewDriver approves or rejects a pending driver application. Approval
// provisions the driver's login account from the reviewer-supplied one-time
// password. The status flip is guarded so a second review of the same
// application fails.
func ReviewDriver(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverId := c.Param("driverId")
		reviewerId := c.GetUint("userId")

		var input ReviewDriverInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		if input.Status == string(models.ApplicationStatusApproved) && input.NewPassword == "" {
			c.JSON(400, gin.H{"success": false, "message": "New password is required for approval"})
			return
		}

		var application models.DriverApplication
		if err := db.Where("driver_id = ?", driverId).First(&application).Error; err != nil {
			c.JSON(404, gin.H{"success": false, "message": "Driver application not found"})
			return
		}

		now := time.Now()
		err := db.Transaction(func(tx *gorm.DB) error {
			// Guarded flip: only a pending application can be reviewed
			result := tx.Model(&models.DriverApplication{}).
				Where("id = ? AND status = ?", application.ID, models.ApplicationStatusPending).
				Updates(map[string]interface{}{
					"status":           input.Status,
					"rejection_reason": input.Reason,
					"reviewed_by":      reviewerId,
					"reviewed_at":      now,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}

			if input.Status != string(models.ApplicationStatusApproved) {
				return nil
			}

			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			driverUser := models.User{
				Username:     application.Email,
				Email:        application.Email,
				PasswordHash: string(hashedPassword),
				PhoneNumber:  application.Phone,
				UserType:     models.UserTypeDriver,
			}
			if err := tx.Create(&driverUser).Error; err != nil {
				return err
			}

			return tx.Model(&models.DriverApplication{}).
				Where("id = ?", application.ID).
				Update("user_id", driverUser.ID).Error
		})

		if err == gorm.ErrRecordNotFound {
			c.JSON(409, gin.H{"success": false, "message": "Already reviewed"})
			return
		}
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to review driver application"})
			return
		}

		hub.SendApplicationReviewed(services.ApplicationEvent{
			Kind:          "driver",
			ApplicationID: application.ID,
			Status:        input.Status,
			ReviewedBy:    reviewerId,
		})

		c.JSON(200, gin.H{"success": true, "message": "Driver application " + input.Status})
	}
}

// SubmitDriverApplication accepts a new driver application with its licence
// document. Public endpoint; the applicant has no account yet.
func SubmitDriverApplication(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName           string `form:"fullName" binding:"required"`
			Email              string `form:"email" binding:"required,email"`
			Phone              string `form:"phone"`
			LicenseNumber      string `form:"licenseNumber" binding:"required"`
			YearsOfExperience  int    `form:"yearsOfExperience"`
			VehicleType        string `form:"vehicleType"`
			VehicleModel       string `form:"vehicleModel"`
			VehiclePlateNumber string `form:"vehiclePlateNumber"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		file, err := c.FormFile("licenseDocument")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Licence document is required"})
			return
		}

		documentURL, err := services.UploadDocument(file, "licenses")
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload licence document"})
			return
		}

		application := models.DriverApplication{
			DriverID:           uuid.NewString(),
			FullName:           input.FullName,
			Email:              input.Email,
			Phone:              input.Phone,
			LicenseNumber:      input.LicenseNumber,
			LicenseDocument:    documentURL,
			YearsOfExperience:  input.YearsOfExperience,
			VehicleType:        input.VehicleType,
			VehicleModel:       input.VehicleModel,
			VehiclePlateNumber: input.VehiclePlateNumber,
			Status:             models.ApplicationStatusPending,
		}

		if err := db.Create(&application).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to submit application"})
			return
		}

		hub.SendApplicationSubmitted(services.ApplicationEvent{
			Kind:          "driver",
			ApplicationID: application.ID,
			Status:        string(models.ApplicationStatusPending),
		})

		c.JSON(201, gin.H{"success": true, "message": "Application submitted", "driver": application})
	}
}
