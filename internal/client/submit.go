package client

import (
	"context"
	"fmt"
	"net/http"

	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/utils"
	"giraffecabs/internal/validation"
)

// Step names the stage a submission finished at.
type Step string

const (
	// StepPayment is the stage after a successful submission: the created
	// booking is ready to pay for.
	StepPayment Step = "payment"
)

type submitPayload struct {
	models.BookingDraft
	Status string `json:"status"`
}

// SubmitResult carries the created booking forward to the payment step.
// Invoice is best-effort: nil when the invoice fetch failed (which never
// blocks the payment transition).
type SubmitResult struct {
	Booking models.Booking
	Invoice []byte
	Next    Step
}

// SubmitBooking sequences a booking submission:
//
//  1. recompute the derived total, then run the booking validator; any
//     field errors abort before the backend is contacted,
//  2. post the draft with status forced to "pending",
//  3. fetch the generated invoice, logging and continuing on failure,
//  4. hand the created record to the payment step.
func (c *Client) SubmitBooking(ctx context.Context, draft models.BookingDraft) (SubmitResult, error) {
	draft.RecomputeTotal()

	if errs := validation.ValidateBooking(draft); len(errs) > 0 {
		return SubmitResult{}, domain.ValidationError{Fields: errs}
	}

	if !c.session.Authenticated() {
		return SubmitResult{}, ErrNotAuthenticated
	}

	var booking models.Booking
	payload := submitPayload{BookingDraft: draft, Status: string(domain.StatusPending)}
	if err := c.doJSON(ctx, http.MethodPost, "/api/bookings", payload, &booking); err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{Booking: booking, Next: StepPayment}

	invoice, err := c.FetchInvoice(ctx, booking.ID)
	if err != nil {
		utils.LogEvent("", "client", "fetch_invoice", fmt.Sprintf("booking_id=%d non-fatal: %v", booking.ID, err))
	} else {
		result.Invoice = invoice
	}

	return result, nil
}

// FetchInvoice downloads the generated invoice PDF for a booking. The
// document is treated opaquely.
func (c *Client) FetchInvoice(ctx context.Context, bookingID int64) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/%d/invoice", bookingID))
}

// SubmitRental validates and posts a vehicle-rental request.
func (c *Client) SubmitRental(ctx context.Context, draft models.RentalDraft) (models.Rental, error) {
	if errs := validation.ValidateRental(draft); len(errs) > 0 {
		return models.Rental{}, domain.ValidationError{Fields: errs}
	}
	if !c.session.Authenticated() {
		return models.Rental{}, ErrNotAuthenticated
	}

	var rental models.Rental
	if err := c.doJSON(ctx, http.MethodPost, "/api/rentals", draft, &rental); err != nil {
		return models.Rental{}, err
	}
	return rental, nil
}

// UpdatePayment records the chosen payment method/status on a booking
// (PUT partial update) once the card processor confirms.
func (c *Client) UpdatePayment(ctx context.Context, bookingID int64, update models.BookingUpdate) (models.Booking, error) {
	if !c.session.Authenticated() {
		return models.Booking{}, ErrNotAuthenticated
	}
	var booking models.Booking
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/bookings/%d", bookingID), update, &booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}
