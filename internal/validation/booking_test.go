package validation

import (
	"strings"
	"testing"
	"time"

	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/pricing"
	"giraffecabs/internal/utils"
)

// fixedNow keeps the temporal rules deterministic: mid-morning so same-day
// afternoon pickups are still in the future.
var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

func validDraft() models.BookingDraft {
	return models.BookingDraft{
		ServiceType:     pricing.ServiceAirport,
		PickupLocation:  "Colombo Airport",
		DropoffLocation: "Malabe",
		PickupDate:      utils.FormatDate(fixedNow.AddDate(0, 0, 1)),
		PickupTime:      "10:00",
		Passengers:      2,
	}
}

func TestValidateBookingValidDraftIsClean(t *testing.T) {
	errs := ValidateBookingAt(validDraft(), fixedNow)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateBookingAirportScenario(t *testing.T) {
	d := validDraft()
	errs := ValidateBookingAt(d, fixedNow)
	if len(errs) != 0 {
		t.Fatalf("airport scenario should validate, got %v", errs)
	}
	d.RecomputeTotal()
	if d.TotalPrice != 2000 {
		t.Fatalf("airport total = %d, want base price 2000 regardless of distance", d.TotalPrice)
	}
	d.DistanceKm = 500
	d.RecomputeTotal()
	if d.TotalPrice != 2000 {
		t.Fatalf("airport total with distance = %d, want 2000", d.TotalPrice)
	}
}

func TestValidateBookingRequiredFields(t *testing.T) {
	errs := ValidateBookingAt(models.BookingDraft{}, fixedNow)
	for _, field := range []string{"serviceType", "pickupLocation", "dropoffLocation", "pickupDate", "pickupTime", "passengers"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("empty draft: missing error for %s (got %v)", field, errs)
		}
	}
	// no-short-circuit: everything reported in one pass
	if len(errs) < 6 {
		t.Fatalf("expected full error set in one pass, got %v", errs)
	}
}

func TestValidateBookingPickupDateInPast(t *testing.T) {
	d := validDraft()
	d.PickupDate = utils.FormatDate(fixedNow.AddDate(0, 0, -1))
	errs := ValidateBookingAt(d, fixedNow)
	if _, ok := errs["pickupDate"]; !ok {
		t.Fatalf("yesterday pickup must error on pickupDate, got %v", errs)
	}

	// still flagged when everything else is broken too
	d = models.BookingDraft{PickupDate: utils.FormatDate(fixedNow.AddDate(0, 0, -1))}
	errs = ValidateBookingAt(d, fixedNow)
	if _, ok := errs["pickupDate"]; !ok {
		t.Fatalf("pickupDate error must not depend on other fields, got %v", errs)
	}
}

func TestValidateBookingPickupToday(t *testing.T) {
	d := validDraft()
	d.PickupDate = utils.FormatDate(fixedNow)

	// later today is fine
	d.PickupTime = "18:00"
	if errs := ValidateBookingAt(d, fixedNow); len(errs) != 0 {
		t.Fatalf("today with future time should pass, got %v", errs)
	}

	// earlier today: the date passes (date-only comparison) but the
	// combined moment is in the past
	d.PickupTime = "08:00"
	errs := ValidateBookingAt(d, fixedNow)
	if _, ok := errs["pickupDate"]; ok {
		t.Fatalf("today's date should not error, got %v", errs)
	}
	if _, ok := errs["pickupTime"]; !ok {
		t.Fatalf("past time today must error on pickupTime, got %v", errs)
	}

	// exactly now is not strictly after now
	d.PickupTime = "09:00"
	errs = ValidateBookingAt(d, fixedNow)
	if _, ok := errs["pickupTime"]; !ok {
		t.Fatalf("pickup at the current moment must error, got %v", errs)
	}
}

func TestValidateBookingLocationLength(t *testing.T) {
	d := validDraft()
	d.PickupLocation = "ab"
	d.DropoffLocation = "  x  "
	errs := ValidateBookingAt(d, fixedNow)
	if _, ok := errs["pickupLocation"]; !ok {
		t.Errorf("short pickup location must error, got %v", errs)
	}
	if _, ok := errs["dropoffLocation"]; !ok {
		t.Errorf("short trimmed dropoff location must error, got %v", errs)
	}
}

func TestValidateBookingPassengerBounds(t *testing.T) {
	cases := []struct {
		passengers int
		wantErr    bool
	}{
		{0, true},
		{-3, true},
		{1, false},
		{50, false},
		{51, true},
	}
	for _, tc := range cases {
		d := validDraft()
		d.Passengers = tc.passengers
		_, got := ValidateBookingAt(d, fixedNow)["passengers"]
		if got != tc.wantErr {
			t.Errorf("passengers=%d error=%v, want %v", tc.passengers, got, tc.wantErr)
		}
	}
}

func TestValidateBookingReturnLeg(t *testing.T) {
	d := validDraft()

	// same-day return is not strictly after
	d.ReturnDate = d.PickupDate
	errs := ValidateBookingAt(d, fixedNow)
	if _, ok := errs["returnDate"]; !ok {
		t.Fatalf("return on pickup day must error on returnDate, got %v", errs)
	}

	// next day passes
	d.ReturnDate = utils.FormatDate(fixedNow.AddDate(0, 0, 2))
	if errs := ValidateBookingAt(d, fixedNow); len(errs) != 0 {
		t.Fatalf("later return date should pass, got %v", errs)
	}

	// return time before pickup time on valid dates
	d.ReturnTime = "09:00"
	if errs := ValidateBookingAt(d, fixedNow); len(errs) != 0 {
		// return is a day after pickup, so 09:00 is still after
		t.Fatalf("return next day 09:00 should pass, got %v", errs)
	}

	// combined return moment not after combined pickup moment
	d.ReturnDate = d.PickupDate
	d.ReturnTime = "10:00"
	errs = ValidateBookingAt(d, fixedNow)
	if _, ok := errs["returnTime"]; !ok {
		t.Fatalf("return at pickup moment must error on returnTime, got %v", errs)
	}
}

func TestValidateBookingNotesLimit(t *testing.T) {
	d := validDraft()
	d.AdditionalNotes = strings.Repeat("a", 500)
	if errs := ValidateBookingAt(d, fixedNow); len(errs) != 0 {
		t.Fatalf("500-char notes should pass, got %v", errs)
	}
	d.AdditionalNotes = strings.Repeat("a", 501)
	errs := ValidateBookingAt(d, fixedNow)
	if _, ok := errs["additionalNotes"]; !ok {
		t.Fatalf("501-char notes must error, got %v", errs)
	}
}

func TestValidateBookingMalformedDates(t *testing.T) {
	d := validDraft()
	d.PickupDate = "10/03/2026"
	errs := ValidateBookingAt(d, fixedNow)
	if _, ok := errs["pickupDate"]; !ok {
		t.Fatalf("malformed pickup date must error, got %v", errs)
	}

	d = validDraft()
	d.ReturnDate = "soon"
	errs = ValidateBookingAt(d, fixedNow)
	if _, ok := errs["returnDate"]; !ok {
		t.Fatalf("malformed return date must error, got %v", errs)
	}
}
