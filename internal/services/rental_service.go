package services

import (
	"fmt"
	"strings"

	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/repositories"
	"giraffecabs/internal/utils"
	"giraffecabs/internal/validation"
)

type RentalService struct {
	RentalRepo  repositories.RentalRepository
	VehicleRepo repositories.VehicleRepository
	RequestID   string
}

// Create validates and stores a rental request. The vehicle must exist and
// be approved for the fleet.
func (s RentalService) Create(userID int64, draft models.RentalDraft) (models.Rental, error) {
	if userID <= 0 {
		return models.Rental{}, domain.ValidationError{Msg: "invalid user id"}
	}

	if errs := validation.ValidateRental(draft); len(errs) > 0 {
		return models.Rental{}, domain.ValidationError{Fields: errs}
	}

	vehicle, err := s.VehicleRepo.GetByID(draft.VehicleID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Rental{}, domain.ValidationError{Fields: validation.Errors{"vehicleId": "Vehicle not found"}}
		}
		return models.Rental{}, err
	}
	if !strings.EqualFold(vehicle.Status, "approved") {
		return models.Rental{}, domain.ValidationError{Fields: validation.Errors{"vehicleId": "Vehicle is not available for rental"}}
	}

	rental, err := s.RentalRepo.Create(userID, draft, string(domain.StatusPending))
	if err != nil {
		return models.Rental{}, err
	}

	utils.LogEvent(s.RequestID, "rental", "create",
		fmt.Sprintf("rental_id=%d user_id=%d vehicle_id=%d", rental.ID, userID, draft.VehicleID))
	return rental, nil
}

// ListForUser returns the customer's rental requests.
func (s RentalService) ListForUser(userID int64) ([]models.Rental, error) {
	return s.RentalRepo.ListByUser(userID)
}

// UpdateStatus moves a rental through its workflow (staff action).
func (s RentalService) UpdateStatus(rentalID int64, status string) (models.Rental, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case string(domain.StatusPending), string(domain.StatusConfirmed),
		string(domain.StatusCancelled), string(domain.StatusCompleted):
	default:
		return models.Rental{}, domain.ValidationError{Msg: "invalid status"}
	}
	if err := s.RentalRepo.UpdateStatus(rentalID, status); err != nil {
		return models.Rental{}, err
	}
	return s.RentalRepo.GetByID(rentalID)
}
