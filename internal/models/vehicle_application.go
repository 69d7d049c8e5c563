package models

import (
	"time"

	"gorm.io/gorm"
)

// VehicleApplication is a vehicle owner's listing submission awaiting review.
// Rate columns are set by the reviewer at approval time; only the daily rate
// is mandatory, the rest are optional overrides.
type VehicleApplication struct {
	gorm.Model
	OwnerID         uint              `gorm:"not null" json:"ownerId"`
	Owner           *User             `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Make            string            `gorm:"not null" json:"make"`
	VehicleModel    string            `gorm:"column:model;not null" json:"model"`
	Year            int               `gorm:"not null" json:"year"`
	LicensePlate    string            `gorm:"uniqueIndex;not null" json:"licensePlate"`
	VehicleType     string            `json:"vehicleType"`
	SeatingCapacity int               `json:"seatingCapacity"`
	FuelType        string            `json:"fuelType"`
	City            string            `gorm:"column:city" json:"city"`
	Description     string            `json:"description"`
	Photos          []string          `gorm:"serializer:json" json:"photos"`
	Features        []string          `gorm:"serializer:json" json:"features"`
	DailyRate       *float64          `json:"dailyRate,omitempty"`
	WeeklyRate      *float64          `json:"weeklyRate,omitempty"`
	MonthlyRate     *float64          `json:"monthlyRate,omitempty"`
	SecurityDeposit *float64          `json:"securityDeposit,omitempty"`
	ProcessingFee   *float64          `json:"processingFee,omitempty"`
	Status          ApplicationStatus `gorm:"not null;default:'pending'" json:"status"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	ReviewedBy      *uint             `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewedAt,omitempty"`
}

// TableName specifies the table name
func (VehicleApplication) TableName() string {
	return "vehicle_applications"
}
