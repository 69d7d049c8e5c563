package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/pickngo/pickngo-backend/internal/models"
	"github.com/pickngo/pickngo-backend/internal/services"
	"gorm.io/gorm"
)

// GetApprovalStats serves the dashboard's aggregate counters. The snapshot is
// cached in redis per reviewer for 60 seconds and is not invalidated by
// review actions, so dashboards can lag behind the tables until the cache
// expires.
func GetApprovalStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewerId := c.GetUint("userId")
		ctx := context.Background()

		if cached, err := services.GetApprovalStats(ctx, reviewerId); err == nil {
			c.JSON(200, gin.H{"success": true, "pending": cached.Pending, "myApprovals": cached.MyApprovals})
			return
		}

		var stats services.ApprovalStats

		if err := db.Model(&models.DriverApplication{}).
			Where("status = ?", models.ApplicationStatusPending).
			Count(&stats.Pending.Drivers).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to compute statistics"})
			return
		}

		if err := db.Model(&models.VehicleApplication{}).
			Where("status = ?", models.ApplicationStatusPending).
			Count(&stats.Pending.Vehicles).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to compute statistics"})
			return
		}

		stats.Pending.Total = stats.Pending.Drivers + stats.Pending.Vehicles

		var driverApprovals, vehicleApprovals int64
		if err := db.Model(&models.DriverApplication{}).
			Where("reviewed_by = ? AND status = ?", reviewerId, models.ApplicationStatusApproved).
			Count(&driverApprovals).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to compute statistics"})
			return
		}
		if err := db.Model(&models.VehicleApplication{}).
			Where("reviewed_by = ? AND status = ?", reviewerId, models.ApplicationStatusApproved).
			Count(&vehicleApprovals).Error; err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to compute statistics"})
			return
		}
		stats.MyApprovals.Total = driverApprovals + vehicleApprovals

		_ = services.SetApprovalStats(ctx, reviewerId, stats)

		c.JSON(200, gin.H{"success": true, "pending": stats.Pending, "myApprovals": stats.MyApprovals})
	}
}
