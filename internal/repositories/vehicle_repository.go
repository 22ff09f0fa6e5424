package repositories

import (
	"database/sql"
	"strings"

	intconfig "giraffecabs/internal/config"
	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleColumns = `
	id, owner_id, vehicle_type, make, model, COALESCE(year,0),
	plate_number, COALESCE(seats,0), COALESCE(daily_rate,0), status`

// List returns vehicles, optionally filtered by a plate/make/model search.
func (r VehicleRepository) List(q string) ([]models.Vehicle, error) {
	query := `SELECT` + vehicleColumns + ` FROM vehicles`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += ` WHERE plate_number LIKE ? OR make LIKE ? OR model LIKE ?`
		like := "%" + q + "%"
		args = append(args, like, like, like)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.VehicleType, &v.Make, &v.Model, &v.Year,
			&v.PlateNumber, &v.Seats, &v.DailyRate, &v.Status); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetByID loads one vehicle.
func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	var v models.Vehicle
	err := r.db().QueryRow(`SELECT`+vehicleColumns+` FROM vehicles WHERE id=? LIMIT 1`, id).
		Scan(&v.ID, &v.OwnerID, &v.VehicleType, &v.Make, &v.Model, &v.Year,
			&v.PlateNumber, &v.Seats, &v.DailyRate, &v.Status)
	if err == sql.ErrNoRows {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}
	if err != nil {
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	return v, nil
}

// Create inserts a provider vehicle submission.
func (r VehicleRepository) Create(ownerID int64, p models.VehiclePayload, status string) (models.Vehicle, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (owner_id, vehicle_type, make, model, year, plate_number, seats, daily_rate, status)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		ownerID, p.VehicleType, p.Make, p.Model, p.Year, p.PlateNumber, p.Seats, p.DailyRate, status)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return models.Vehicle{}, domain.ConflictError{Resource: "vehicle", Msg: "plate number already registered"}
		}
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Vehicle{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

// Update rewrites the mutable vehicle fields.
func (r VehicleRepository) Update(id int64, p models.VehiclePayload) error {
	res, err := r.db().Exec(`
		UPDATE vehicles SET vehicle_type=?, make=?, model=?, year=?, plate_number=?, seats=?, daily_rate=?
		WHERE id=?`,
		p.VehicleType, p.Make, p.Model, p.Year, p.PlateNumber, p.Seats, p.DailyRate, id)
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

// Delete removes a vehicle.
func (r VehicleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}
