package repositories

import (
	"database/sql"

	intconfig "giraffecabs/internal/config"
	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
)

type TourRepository struct {
	DB *sql.DB
}

func (r TourRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns the active tour packages.
func (r TourRepository) List() ([]models.Tour, error) {
	rows, err := r.db().Query(`
		SELECT id, name, COALESCE(description,''), destination, days, price, max_people, active
		FROM tours WHERE active=1 ORDER BY id`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Tour{}
	for rows.Next() {
		var t models.Tour
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Destination, &t.Days, &t.Price, &t.MaxPeople, &t.Active); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID loads one tour package.
func (r TourRepository) GetByID(id int64) (models.Tour, error) {
	var t models.Tour
	err := r.db().QueryRow(`
		SELECT id, name, COALESCE(description,''), destination, days, price, max_people, active
		FROM tours WHERE id=? LIMIT 1`, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.Destination, &t.Days, &t.Price, &t.MaxPeople, &t.Active)
	if err == sql.ErrNoRows {
		return models.Tour{}, domain.NotFoundError{Resource: "tour"}
	}
	if err != nil {
		return models.Tour{}, domain.InternalError{Err: err}
	}
	return t, nil
}

// CreateBooking records a tour booking.
func (r TourRepository) CreateBooking(b models.TourBooking) (models.TourBooking, error) {
	res, err := r.db().Exec(`
		INSERT INTO tour_bookings (tour_id, user_id, start_date, people, total, status)
		VALUES (?,?,?,?,?,?)`,
		b.TourID, b.UserID, b.StartDate, b.People, b.Total, b.Status)
	if err != nil {
		return models.TourBooking{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.TourBooking{}, domain.InternalError{Err: err}
	}
	b.ID = id
	return b, nil
}
