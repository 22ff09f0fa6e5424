package domain

// ID is used across domain entities.
type ID int64

// Status represents a lightweight state value.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// RequestContext carries authenticated user info for a single request.
// Authenticated reports whether a session is present; handlers must check
// it instead of relying on a zero UserID.
type RequestContext struct {
	UserID        ID     `json:"userId"`
	Role          string `json:"role"`
	Authenticated bool   `json:"-"`
}
