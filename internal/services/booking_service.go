package services

import (
	"database/sql"
	"fmt"

	intconfig "giraffecabs/internal/config"
	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/repositories"
	"giraffecabs/internal/routes"
	"giraffecabs/internal/utils"
	"giraffecabs/internal/validation"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// Create validates and stores a new booking. The server does not trust the
// client's derived figures: distance falls back to the route table when the
// draft has none, and the total is always recomputed from the price inputs.
// Status is forced to pending; staff confirm the final figures later.
func (s BookingService) Create(userID int64, draft models.BookingDraft) (models.Booking, error) {
	if userID <= 0 {
		return models.Booking{}, domain.ValidationError{Msg: "invalid user id"}
	}

	if errs := validation.ValidateBooking(draft); len(errs) > 0 {
		return models.Booking{}, domain.ValidationError{Fields: errs}
	}

	if draft.DistanceKm <= 0 {
		draft.DistanceKm = routes.Estimate(draft.PickupLocation, draft.DropoffLocation)
	}
	draft.RecomputeTotal()

	booking, err := s.bookings().Create(userID, draft, string(domain.StatusPending))
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d user_id=%d service=%s total=%d", booking.ID, userID, booking.ServiceType, booking.TotalPrice))
	return booking, nil
}

// Get returns a booking when it belongs to userID (admins pass owner checks
// at the handler).
func (s BookingService) Get(userID, bookingID int64, admin bool) (models.Booking, error) {
	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if !admin && booking.UserID != userID {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return booking, nil
}

// ListForUser returns the customer's bookings.
func (s BookingService) ListForUser(userID int64) ([]models.Booking, error) {
	return s.bookings().ListByUser(userID)
}
