package repositories

import (
	"database/sql"

	intconfig "giraffecabs/internal/config"
	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the user and password hash for login.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone,''), role, COALESCE(status,''), password_hash
		FROM users WHERE email=? LIMIT 1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &hash)
	if err == sql.ErrNoRows {
		return models.User{}, "", domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	return u, hash, nil
}

// GetByID loads one user.
func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone,''), role, COALESCE(status,'')
		FROM users WHERE id=? LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

// Create inserts a user with a pre-hashed password.
func (r UserRepository) Create(name, email, phone, passwordHash, role string) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role, status)
		VALUES (?,?,?,?,?,'active')`,
		name, email, phone, passwordHash, role)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	return r.GetByID(id)
}

// EmailExists reports whether an account already uses email.
func (r UserRepository) EmailExists(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=?`, email).Scan(&n); err != nil {
		return false, domain.InternalError{Err: err}
	}
	return n > 0, nil
}
