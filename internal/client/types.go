package client

import "time"

// DriverApplication is the wire shape of a pending driver application
type DriverApplication struct {
	ID                 uint      `json:"ID"`
	DriverID           string    `json:"driverId"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	LicenseNumber      string    `json:"licenseNumber"`
	LicenseDocument    string    `json:"licenseDocument"`
	YearsOfExperience  int       `json:"yearsOfExperience"`
	VehicleType        string    `json:"vehicleType"`
	VehicleModel       string    `json:"vehicleModel"`
	VehiclePlateNumber string    `json:"vehiclePlateNumber"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"CreatedAt"`
}

// VehicleOwner is the embedded owner reference on a vehicle application
type VehicleOwner struct {
	ID          uint      `json:"ID"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"CreatedAt"`
}

// VehicleApplication is the wire shape of a pending vehicle application
type VehicleApplication struct {
	ID              uint          `json:"ID"`
	OwnerID         uint          `json:"ownerId"`
	Owner           *VehicleOwner `json:"owner,omitempty"`
	Make            string        `json:"make"`
	Model           string        `json:"model"`
	Year            int           `json:"year"`
	LicensePlate    string        `json:"licensePlate"`
	VehicleType     string        `json:"vehicleType"`
	SeatingCapacity int           `json:"seatingCapacity"`
	FuelType        string        `json:"fuelType"`
	City            string        `json:"city"`
	Description     string        `json:"description"`
	Photos          []string      `json:"photos"`
	Features        []string      `json:"features"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"CreatedAt"`
	UpdatedAt       time.Time     `json:"UpdatedAt"`
}

// Pricing carries the rental rates captured when approving a vehicle.
// Only DailyRate is mandatory.
type Pricing struct {
	DailyRate       float64  `json:"dailyRate"`
	WeeklyRate      *float64 `json:"weeklyRate,omitempty"`
	MonthlyRate     *float64 `json:"monthlyRate,omitempty"`
	SecurityDeposit *float64 `json:"securityDeposit,omitempty"`
	ProcessingFee   *float64 `json:"processingFee,omitempty"`
}

// ApprovalStats is the aggregate counter snapshot for the statistics panel
type ApprovalStats struct {
	Pending struct {
		Drivers  int64 `json:"drivers"`
		Vehicles int64 `json:"vehicles"`
		Total    int64 `json:"total"`
	} `json:"pending"`
	MyApprovals struct {
		Total int64 `json:"total"`
	} `json:"myApprovals"`
}

// Profile is the authenticated user's account record
type Profile struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	UserType     string `json:"userType"`
	ProfileImage string `json:"profileImage"`
}
