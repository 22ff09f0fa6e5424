package models

// Tour is a published tour package customers can browse and book.
type Tour struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Price       int64  `json:"price"`
	MaxPeople   int    `json:"maxPeople"`
	Active      bool   `json:"active"`
}

// TourBooking ties a customer to a tour departure.
type TourBooking struct {
	ID        int64  `json:"id"`
	TourID    int64  `json:"tourId"`
	UserID    int64  `json:"userId"`
	StartDate string `json:"startDate"`
	People    int    `json:"people"`
	Total     int64  `json:"total"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}
