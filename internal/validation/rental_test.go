package validation

import (
	"testing"
	"time"

	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/utils"
)

var rentalNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

func validRental() models.RentalDraft {
	return models.RentalDraft{
		VehicleID:    7,
		RentalType:   "with-driver",
		StartDate:    utils.FormatDate(rentalNow.AddDate(0, 0, 3)),
		EndDate:      utils.FormatDate(rentalNow.AddDate(0, 0, 10)),
		DurationDays: 7,
		Purpose:      "family trip around the hill country",
	}
}

func TestValidateRentalValidRequestIsClean(t *testing.T) {
	if errs := ValidateRentalAt(validRental(), rentalNow); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRentalRequiredFields(t *testing.T) {
	errs := ValidateRentalAt(models.RentalDraft{}, rentalNow)
	for _, field := range []string{"vehicleId", "rentalType", "startDate", "endDate", "durationDays", "purpose"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("empty request: missing error for %s (got %v)", field, errs)
		}
	}
}

func TestValidateRentalSpanLimit(t *testing.T) {
	d := validRental()

	// exactly 730 days passes
	d.EndDate = utils.FormatDate(rentalNow.AddDate(0, 0, 3+730))
	d.DurationDays = 730
	if errs := ValidateRentalAt(d, rentalNow); len(errs) != 0 {
		t.Fatalf("730-day span should pass, got %v", errs)
	}

	// one more day fails
	d.EndDate = utils.FormatDate(rentalNow.AddDate(0, 0, 3+731))
	errs := ValidateRentalAt(d, rentalNow)
	if _, ok := errs["endDate"]; !ok {
		t.Fatalf("731-day span must error on endDate, got %v", errs)
	}
}

func TestValidateRentalEndNotAfterStart(t *testing.T) {
	d := validRental()
	d.EndDate = d.StartDate
	errs := ValidateRentalAt(d, rentalNow)
	if _, ok := errs["endDate"]; !ok {
		t.Fatalf("end on start day must error, got %v", errs)
	}

	d.EndDate = utils.FormatDate(rentalNow.AddDate(0, 0, 1))
	errs = ValidateRentalAt(d, rentalNow)
	if _, ok := errs["endDate"]; !ok {
		t.Fatalf("end before start must error, got %v", errs)
	}
}

func TestValidateRentalPastStart(t *testing.T) {
	d := validRental()
	d.StartDate = utils.FormatDate(rentalNow.AddDate(0, 0, -1))
	errs := ValidateRentalAt(d, rentalNow)
	if _, ok := errs["startDate"]; !ok {
		t.Fatalf("past start date must error, got %v", errs)
	}
}

func TestValidateRentalPurposeLength(t *testing.T) {
	d := validRental()
	d.Purpose = "short"
	errs := ValidateRentalAt(d, rentalNow)
	if _, ok := errs["purpose"]; !ok {
		t.Fatalf("9-char purpose must error, got %v", errs)
	}

	d.Purpose = "0123456789" // exactly 10
	if errs := ValidateRentalAt(d, rentalNow); len(errs) != 0 {
		t.Fatalf("10-char purpose should pass, got %v", errs)
	}
}

func TestValidateRentalDuration(t *testing.T) {
	d := validRental()
	d.DurationDays = 0
	errs := ValidateRentalAt(d, rentalNow)
	if _, ok := errs["durationDays"]; !ok {
		t.Fatalf("zero duration must error, got %v", errs)
	}
}
