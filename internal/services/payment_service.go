package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/repositories"
	"giraffecabs/internal/utils"
)

// PaymentService applies payment updates coming back from the card
// processor callback or the manual flow.
type PaymentService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
}

// ApplyUpdate patches a booking's payment method/status and confirms the
// booking once it is marked paid. Owner check happens at the handler.
func (s PaymentService) ApplyUpdate(bookingID int64, raw json.RawMessage) (models.Booking, error) {
	if bookingID <= 0 {
		return models.Booking{}, domain.ValidationError{Msg: "invalid booking id"}
	}

	var body struct {
		Status        *string `json:"status"`
		PaymentMethod *string `json:"paymentMethod"`
		PaymentStatus *string `json:"paymentStatus"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return models.Booking{}, domain.ValidationError{Msg: "invalid payload"}
		}
	}
	if body.Status == nil && body.PaymentMethod == nil && body.PaymentStatus == nil {
		return models.Booking{}, domain.ValidationError{Msg: "nothing to update"}
	}

	update := models.BookingUpdate{
		Status:        body.Status,
		PaymentMethod: trimmed(body.PaymentMethod),
		PaymentStatus: trimmed(body.PaymentStatus),
	}

	// A paid booking moves to confirmed unless the caller set a status.
	if update.Status == nil && update.PaymentStatus != nil && strings.EqualFold(*update.PaymentStatus, "paid") {
		confirmed := string(domain.StatusConfirmed)
		update.Status = &confirmed
	}

	if err := s.BookingRepo.Update(bookingID, update); err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "update", "booking_id="+strconv.FormatInt(bookingID, 10))
	return s.BookingRepo.GetByID(bookingID)
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
