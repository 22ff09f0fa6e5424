package models

import "giraffecabs/internal/pricing"

// WeddingDetails holds fields specific to a wedding hire.
type WeddingDetails struct {
	VehicleType string `json:"vehicleType"`
	Days        int    `json:"days"`
}

// AirportDetails holds fields specific to an airport transfer.
type AirportDetails struct {
	VehicleType string `json:"vehicleType"`
	FlightTime  string `json:"flightTime"` // HH:MM, used to plan pickup
}

// CargoDetails holds fields specific to a cargo run.
type CargoDetails struct {
	VehicleType string `json:"vehicleType"`
	CargoWeight int    `json:"cargoWeightKg"`
}

// DailyDetails holds fields specific to a daily hire.
type DailyDetails struct {
	VehicleType string `json:"vehicleType"`
	Hours       int    `json:"hours"`
}

// ServiceDetails is a sum over the four service variants; exactly one side
// should be set, matching the draft's ServiceType. Keeping the variants
// typed avoids the string-keyed detail map the old client used.
type ServiceDetails struct {
	Wedding *WeddingDetails `json:"wedding,omitempty"`
	Airport *AirportDetails `json:"airport,omitempty"`
	Cargo   *CargoDetails   `json:"cargo,omitempty"`
	Daily   *DailyDetails   `json:"daily,omitempty"`
}

// VehicleType returns the vehicle choice of whichever variant is set.
func (d ServiceDetails) VehicleType() string {
	switch {
	case d.Wedding != nil:
		return d.Wedding.VehicleType
	case d.Airport != nil:
		return d.Airport.VehicleType
	case d.Cargo != nil:
		return d.Cargo.VehicleType
	case d.Daily != nil:
		return d.Daily.VehicleType
	default:
		return ""
	}
}

// BookingDraft is the user-editable booking form state before submission.
// Dates are "2006-01-02", times "15:04" (same string convention the trip
// tables use). TotalPrice is derived; call RecomputeTotal after changing
// ServiceType, DistanceKm or the vehicle choice, never set it directly.
type BookingDraft struct {
	ServiceType     pricing.ServiceType `json:"serviceType"`
	PickupLocation  string              `json:"pickupLocation"`
	DropoffLocation string              `json:"dropoffLocation"`
	PickupDate      string              `json:"pickupDate"`
	PickupTime      string              `json:"pickupTime"`
	ReturnDate      string              `json:"returnDate,omitempty"`
	ReturnTime      string              `json:"returnTime,omitempty"`
	Passengers      int                 `json:"passengers"`
	DistanceKm      int                 `json:"distanceKm"`
	TotalPrice      int64               `json:"totalPrice"`
	AdditionalNotes string              `json:"additionalNotes,omitempty"`
	Details         ServiceDetails      `json:"serviceDetails"`
}

// RecomputeTotal re-derives TotalPrice from the three price inputs. The
// caller invokes it explicitly after any relevant field change; there is no
// hidden dependency tracking.
func (d *BookingDraft) RecomputeTotal() {
	d.TotalPrice = pricing.CalculatePrice(d.ServiceType, d.DistanceKm, d.Details.VehicleType())
}

// Booking is a persisted booking record as returned by the API.
type Booking struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`

	BookingDraft
}

// BookingUpdate is a partial update; nil fields are left untouched.
type BookingUpdate struct {
	Status        *string `json:"status,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}
