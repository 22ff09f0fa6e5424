package models

// Vehicle is a provider-owned vehicle. New submissions enter with status
// "pending" until staff approve them for the rental fleet.
type Vehicle struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	VehicleType string `json:"vehicleType"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year,omitempty"`
	PlateNumber string `json:"plateNumber"`
	Seats       int    `json:"seats,omitempty"`
	DailyRate   int64  `json:"dailyRate,omitempty"`
	Status      string `json:"status"`
}

// VehiclePayload is the provider onboarding submission body.
type VehiclePayload struct {
	VehicleType string `json:"vehicleType" binding:"required"`
	Make        string `json:"make" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Year        int    `json:"year"`
	PlateNumber string `json:"plateNumber" binding:"required"`
	Seats       int    `json:"seats"`
	DailyRate   int64  `json:"dailyRate"`
}
