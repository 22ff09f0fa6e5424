package validation

import (
	"time"
	"unicode/utf8"

	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/utils"
)

const (
	maxRentalSpanDays = 730
	minPurposeLen     = 10
)

// ValidateRental validates a vehicle-rental request against the current
// clock. Same strategy as ValidateBooking: one pass, full error set, one
// clock reading.
func ValidateRental(d models.RentalDraft) Errors {
	return ValidateRentalAt(d, time.Now())
}

// ValidateRentalAt is ValidateRental with an explicit "now".
func ValidateRentalAt(d models.RentalDraft, now time.Time) Errors {
	errs := Errors{}

	if d.VehicleID <= 0 {
		errs["vehicleId"] = "Please select a vehicle"
	}

	if utils.TrimOrEmpty(d.RentalType) == "" {
		errs["rentalType"] = "Please select a rental type"
	}

	var start time.Time
	startOK := false
	if utils.TrimOrEmpty(d.StartDate) == "" {
		errs["startDate"] = "Start date is required"
	} else if t, err := utils.ParseDate(d.StartDate); err != nil {
		errs["startDate"] = "Start date is not a valid date"
	} else {
		start, startOK = t, true
		if t.Before(utils.Midnight(now)) {
			errs["startDate"] = "Start date cannot be in the past"
		}
	}

	if utils.TrimOrEmpty(d.EndDate) == "" {
		errs["endDate"] = "End date is required"
	} else if end, err := utils.ParseDate(d.EndDate); err != nil {
		errs["endDate"] = "End date is not a valid date"
	} else if startOK {
		switch {
		case !end.After(start):
			errs["endDate"] = "End date must be after the start date"
		case end.Sub(start) > maxRentalSpanDays*24*time.Hour:
			errs["endDate"] = "Rental period cannot exceed 730 days"
		}
	}

	if d.DurationDays < 1 {
		errs["durationDays"] = "Duration must be at least 1 day"
	}

	if utf8.RuneCountInString(utils.TrimOrEmpty(d.Purpose)) < minPurposeLen {
		errs["purpose"] = "Purpose must be at least 10 characters"
	}

	return errs
}
