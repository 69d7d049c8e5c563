package models

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// DriverApplication is a driver's submission awaiting a business-owner decision
type DriverApplication struct {
	gorm.Model
	DriverID           string            `gorm:"column:driver_id;uniqueIndex;not null" json:"driverId"`
	FullName           string            `gorm:"not null" json:"fullName"`
	Email              string            `gorm:"not null" json:"email"`
	Phone              string            `json:"phone"`
	LicenseNumber      string            `gorm:"not null" json:"licenseNumber"`
	LicenseDocument    string            `json:"licenseDocument"` // uploaded document URL
	YearsOfExperience  int               `json:"yearsOfExperience"`
	VehicleType        string            `json:"vehicleType"`
	VehicleModel       string            `json:"vehicleModel"`
	VehiclePlateNumber string            `json:"vehiclePlateNumber"`
	Status             ApplicationStatus `gorm:"not null;default:'pending'" json:"status"`
	RejectionReason    string            `json:"rejectionReason,omitempty"`
	ReviewedBy         *uint             `json:"reviewedBy,omitempty"`
	ReviewedAt         *time.Time        `json:"reviewedAt,omitempty"`
	UserID             *uint             `json:"userId,omitempty"` // account provisioned on approval
}

// TableName specifies the table name
func (DriverApplication) TableName() string {
	return "driver_applications"
}
