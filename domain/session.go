package domain

// Session is one live client connection, scoped to a single device or tab.
// UserID stays empty for connections that never identified themselves; such
// anonymous sessions receive global broadcasts but no addressed events.
type Session struct {
	ID     string
	UserID string
}

func (s Session) Anonymous() bool {
	return s.UserID == ""
}
