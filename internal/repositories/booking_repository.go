package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	intconfig "giraffecabs/internal/config"
	intdb "giraffecabs/internal/db"
	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/pricing"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id, user_id, service_type, pickup_location, dropoff_location,
	pickup_date, pickup_time, COALESCE(return_date,''), COALESCE(return_time,''),
	passengers, distance_km, total_price, COALESCE(additional_notes,''),
	COALESCE(service_details,''), status,
	COALESCE(payment_method,''), COALESCE(payment_status,''),
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i'),'')`

// Create inserts a booking and returns the stored record.
func (r BookingRepository) Create(userID int64, draft models.BookingDraft, status string) (models.Booking, error) {
	details, err := json.Marshal(draft.Details)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	res, err := r.db().Exec(`
		INSERT INTO bookings
			(user_id, service_type, pickup_location, dropoff_location,
			 pickup_date, pickup_time, return_date, return_time,
			 passengers, distance_km, total_price, additional_notes,
			 service_details, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		userID,
		string(draft.ServiceType),
		strings.TrimSpace(draft.PickupLocation),
		strings.TrimSpace(draft.DropoffLocation),
		draft.PickupDate,
		draft.PickupTime,
		intdb.NullIfEmpty(draft.ReturnDate),
		intdb.NullIfEmpty(draft.ReturnTime),
		draft.Passengers,
		draft.DistanceKm,
		draft.TotalPrice,
		intdb.NullIfEmpty(draft.AdditionalNotes),
		string(details),
		status,
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

// GetByID loads one booking.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Msg: "invalid booking id"}
	}

	row := r.db().QueryRow(`SELECT`+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// ListByUser returns a customer's bookings, newest first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT`+bookingColumns+` FROM bookings WHERE user_id=? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update applies a partial update; nil fields are skipped.
func (r BookingRepository) Update(id int64, update models.BookingUpdate) error {
	sets := []string{}
	args := []any{}
	if update.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *update.Status)
	}
	if update.PaymentMethod != nil {
		sets = append(sets, "payment_method=?")
		args = append(args, *update.PaymentMethod)
	}
	if update.PaymentStatus != nil {
		sets = append(sets, "payment_status=?")
		args = append(args, *update.PaymentStatus)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	res, err := r.db().Exec(fmt.Sprintf(`UPDATE bookings SET %s WHERE id=?`, strings.Join(sets, ", ")), args...)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// RowsAffected is 0 both for missing rows and no-op updates; confirm.
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var serviceType, details string
	err := row.Scan(
		&b.ID, &b.UserID, &serviceType,
		&b.PickupLocation, &b.DropoffLocation,
		&b.PickupDate, &b.PickupTime,
		&b.ReturnDate, &b.ReturnTime,
		&b.Passengers, &b.DistanceKm, &b.TotalPrice,
		&b.AdditionalNotes, &details, &b.Status,
		&b.PaymentMethod, &b.PaymentStatus, &b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	b.ServiceType = pricing.ServiceType(serviceType)
	if details != "" {
		// best-effort; a malformed blob should not make the record unreadable
		_ = json.Unmarshal([]byte(details), &b.Details)
	}
	return b, nil
}
