package repositories

import (
	"database/sql"

	intconfig "giraffecabs/internal/config"
	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
)

type RentalRepository struct {
	DB *sql.DB
}

func (r RentalRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const rentalColumns = `
	id, user_id, vehicle_id, rental_type, start_date, end_date,
	duration_days, purpose, status,
	COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i'),'')`

// Create inserts a rental request and returns the stored record.
func (r RentalRepository) Create(userID int64, draft models.RentalDraft, status string) (models.Rental, error) {
	res, err := r.db().Exec(`
		INSERT INTO rentals
			(user_id, vehicle_id, rental_type, start_date, end_date, duration_days, purpose, status)
		VALUES (?,?,?,?,?,?,?,?)`,
		userID, draft.VehicleID, draft.RentalType,
		draft.StartDate, draft.EndDate, draft.DurationDays, draft.Purpose, status)
	if err != nil {
		return models.Rental{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Rental{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

// GetByID loads one rental request.
func (r RentalRepository) GetByID(id int64) (models.Rental, error) {
	row := r.db().QueryRow(`SELECT`+rentalColumns+` FROM rentals WHERE id=? LIMIT 1`, id)
	var out models.Rental
	err := row.Scan(
		&out.ID, &out.UserID, &out.VehicleID, &out.RentalType,
		&out.StartDate, &out.EndDate, &out.DurationDays, &out.Purpose,
		&out.Status, &out.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Rental{}, domain.NotFoundError{Resource: "rental"}
	}
	if err != nil {
		return models.Rental{}, domain.InternalError{Err: err}
	}
	return out, nil
}

// ListByUser returns a customer's rental requests, newest first.
func (r RentalRepository) ListByUser(userID int64) ([]models.Rental, error) {
	rows, err := r.db().Query(`SELECT`+rentalColumns+` FROM rentals WHERE user_id=? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Rental{}
	for rows.Next() {
		var rec models.Rental
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.VehicleID, &rec.RentalType,
			&rec.StartDate, &rec.EndDate, &rec.DurationDays, &rec.Purpose,
			&rec.Status, &rec.CreatedAt,
		); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateStatus moves a rental request through its workflow.
func (r RentalRepository) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE rentals SET status=? WHERE id=?`, status, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}
