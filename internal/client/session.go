package client

// Session carries the bearer token for authenticated API calls. The zero
// value is the explicit "not authenticated" state; there is no ambient
// global to consult.
type Session struct {
	Token  string
	UserID int64
}

// Authenticated reports whether the session holds a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
