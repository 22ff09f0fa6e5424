package models

// RentalDraft is a vehicle-rental request as submitted by the customer.
// Dates are "2006-01-02". DurationDays is what the customer asked for and
// must agree with the start/end span at validation time.
type RentalDraft struct {
	VehicleID    int64  `json:"vehicleId"`
	RentalType   string `json:"rentalType"` // with-driver / self-drive
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	DurationDays int    `json:"durationDays"`
	Purpose      string `json:"purpose"`
}

// Rental is a persisted rental request.
type Rental struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`

	RentalDraft
}
