package services

import (
	"testing"
	"time"

	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/pricing"
	"giraffecabs/internal/repositories"
	"giraffecabs/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

var serviceBookingCols = []string{
	"id", "user_id", "service_type", "pickup_location", "dropoff_location",
	"pickup_date", "pickup_time", "return_date", "return_time",
	"passengers", "distance_km", "total_price", "additional_notes",
	"service_details", "status", "payment_method", "payment_status", "created_at",
}

func futureDailyDraft() models.BookingDraft {
	tomorrow := time.Now().AddDate(0, 0, 1)
	return models.BookingDraft{
		ServiceType:     pricing.ServiceDaily,
		PickupLocation:  "Colombo",
		DropoffLocation: "Malabe",
		PickupDate:      utils.FormatDate(tomorrow),
		PickupTime:      "10:00",
		Passengers:      2,
		Details: models.ServiceDetails{
			Daily: &models.DailyDetails{VehicleType: "economy", Hours: 8},
		},
	}
}

// Create must not trust the client's figures: a draft without a distance gets
// one from the route table, and the total is re-derived server side.
func TestBookingCreateFillsDistanceAndTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	draft := futureDailyDraft()

	// Colombo-Malabe is 15 km; daily economy runs 90/km.
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
			int64(3), "daily", "Colombo", "Malabe",
			draft.PickupDate, "10:00", nil, nil,
			int64(2), int64(15), int64(1350), nil,
			sqlmock.AnyArg(), "pending",
		).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT(.|\n)+FROM bookings").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(serviceBookingCols).AddRow(
			11, 3, "daily", "Colombo", "Malabe",
			draft.PickupDate, "10:00", "", "",
			2, 15, 1350, "",
			`{"daily":{"vehicleType":"economy","hours":8}}`,
			"pending", "", "", "2026-03-10 09:00",
		))

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}
	booking, err := svc.Create(3, draft)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if booking.DistanceKm != 15 {
		t.Fatalf("distance = %d, want route-table 15", booking.DistanceKm)
	}
	if booking.TotalPrice != 1350 {
		t.Fatalf("total = %d, want 1350", booking.TotalPrice)
	}
	if booking.Status != "pending" {
		t.Fatalf("status = %q, want pending", booking.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateRejectsInvalidDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	draft := futureDailyDraft()
	draft.Passengers = 0

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}
	_, err = svc.Create(3, draft)
	if !domain.IsValidation(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	fields, _ := domain.ValidationFields(err)
	if _, ok := fields["passengers"]; !ok {
		t.Fatalf("missing passengers field error: %v", fields)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("invalid draft must never reach the database: %v", err)
	}
}

func TestBookingGetHidesOtherUsersBookings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	row := func() *sqlmock.Rows {
		return sqlmock.NewRows(serviceBookingCols).AddRow(
			11, 3, "daily", "Colombo", "Malabe",
			"2026-03-11", "10:00", "", "",
			2, 15, 1350, "", "", "pending", "", "", "",
		)
	}
	mock.ExpectQuery("SELECT(.|\n)+FROM bookings").WithArgs(int64(11)).WillReturnRows(row())
	mock.ExpectQuery("SELECT(.|\n)+FROM bookings").WithArgs(int64(11)).WillReturnRows(row())

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}

	if _, err := svc.Get(4, 11, false); !domain.IsNotFound(err) {
		t.Fatalf("foreign booking must read as not found, got %v", err)
	}
	if _, err := svc.Get(4, 11, true); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}
