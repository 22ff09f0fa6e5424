// Package validation holds the submit-time form validators. Each validator
// is a pure function from a draft to a field-keyed error map; an empty map
// means the draft is submittable. Every applicable rule runs in one pass,
// so the caller always gets the full error set, and all date comparisons in
// a pass use a single wall-clock reading.
package validation

import (
	"time"
	"unicode/utf8"

	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/utils"
)

// Errors maps a form field to a single human-readable message.
type Errors map[string]string

const (
	maxPassengers = 50
	maxNotesLen   = 500
	minLocLen     = 3
)

// ValidateBooking validates a booking draft against the current clock.
func ValidateBooking(d models.BookingDraft) Errors {
	return ValidateBookingAt(d, time.Now())
}

// ValidateBookingAt is ValidateBooking with an explicit "now", read once
// and shared by every temporal rule so fields cannot disagree about the
// current moment within one pass.
func ValidateBookingAt(d models.BookingDraft, now time.Time) Errors {
	errs := Errors{}

	if d.ServiceType == "" {
		errs["serviceType"] = "Please select a service type"
	}

	if utf8.RuneCountInString(utils.TrimOrEmpty(d.PickupLocation)) < minLocLen {
		errs["pickupLocation"] = "Pickup location must be at least 3 characters"
	}
	if utf8.RuneCountInString(utils.TrimOrEmpty(d.DropoffLocation)) < minLocLen {
		errs["dropoffLocation"] = "Dropoff location must be at least 3 characters"
	}

	var pickupDate time.Time
	pickupDateOK := false
	if utils.TrimOrEmpty(d.PickupDate) == "" {
		errs["pickupDate"] = "Pickup date is required"
	} else if t, err := utils.ParseDate(d.PickupDate); err != nil {
		errs["pickupDate"] = "Pickup date is not a valid date"
	} else if t.Before(utils.Midnight(now)) {
		errs["pickupDate"] = "Pickup date cannot be in the past"
		pickupDate, pickupDateOK = t, true
	} else {
		pickupDate, pickupDateOK = t, true
	}

	pickupAtOK := false
	var pickupAt time.Time
	if utils.TrimOrEmpty(d.PickupTime) == "" {
		errs["pickupTime"] = "Pickup time is required"
	} else if pickupDateOK {
		t, err := utils.ParseDateTime(d.PickupDate, d.PickupTime)
		if err != nil {
			errs["pickupTime"] = "Pickup time is not a valid time"
		} else if !t.After(now) {
			errs["pickupTime"] = "Pickup time must be in the future"
			pickupAt, pickupAtOK = t, true
		} else {
			pickupAt, pickupAtOK = t, true
		}
	}

	// Return leg is optional but must stay after the pickup leg.
	if utils.TrimOrEmpty(d.ReturnDate) != "" {
		ret, err := utils.ParseDate(d.ReturnDate)
		switch {
		case err != nil:
			errs["returnDate"] = "Return date is not a valid date"
		case pickupDateOK && !ret.After(pickupDate):
			errs["returnDate"] = "Return date must be after the pickup date"
		}

		if utils.TrimOrEmpty(d.ReturnTime) != "" && pickupAtOK {
			retAt, err := utils.ParseDateTime(d.ReturnDate, d.ReturnTime)
			if err != nil {
				errs["returnTime"] = "Return time is not a valid time"
			} else if !retAt.After(pickupAt) {
				errs["returnTime"] = "Return time must be after the pickup time"
			}
		}
	}

	if d.Passengers < 1 || d.Passengers > maxPassengers {
		errs["passengers"] = "Passengers must be between 1 and 50"
	}

	if utf8.RuneCountInString(d.AdditionalNotes) > maxNotesLen {
		errs["additionalNotes"] = "Notes must be 500 characters or less"
	}

	return errs
}
