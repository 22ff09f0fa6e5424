package services

import (
	"fmt"

	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/repositories"
	"giraffecabs/internal/utils"
)

type TourService struct {
	TourRepo  repositories.TourRepository
	RequestID string
}

// List returns the published tour packages.
func (s TourService) List() ([]models.Tour, error) {
	return s.TourRepo.List()
}

// Get loads one tour package.
func (s TourService) Get(id int64) (models.Tour, error) {
	return s.TourRepo.GetByID(id)
}

// Book records a tour booking. The total is people x package price; the
// package caps the head count.
func (s TourService) Book(userID, tourID int64, startDate string, people int) (models.TourBooking, error) {
	if userID <= 0 {
		return models.TourBooking{}, domain.ValidationError{Msg: "invalid user id"}
	}

	tour, err := s.TourRepo.GetByID(tourID)
	if err != nil {
		return models.TourBooking{}, err
	}
	if !tour.Active {
		return models.TourBooking{}, domain.ConflictError{Resource: "tour", Msg: "tour is no longer available"}
	}

	errs := map[string]string{}
	if _, err := utils.ParseDate(startDate); err != nil {
		errs["startDate"] = "Start date is not a valid date"
	}
	if people < 1 {
		errs["people"] = "At least 1 person is required"
	} else if tour.MaxPeople > 0 && people > tour.MaxPeople {
		errs["people"] = fmt.Sprintf("This package takes at most %d people", tour.MaxPeople)
	}
	if len(errs) > 0 {
		return models.TourBooking{}, domain.ValidationError{Fields: errs}
	}

	booking, err := s.TourRepo.CreateBooking(models.TourBooking{
		TourID:    tourID,
		UserID:    userID,
		StartDate: startDate,
		People:    people,
		Total:     int64(people) * tour.Price,
		Status:    string(domain.StatusPending),
	})
	if err != nil {
		return models.TourBooking{}, err
	}

	utils.LogEvent(s.RequestID, "tour", "book",
		fmt.Sprintf("tour_id=%d user_id=%d people=%d", tourID, userID, people))
	return booking, nil
}
