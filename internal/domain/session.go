package domain

import "time"

// Session is a scheduled driving lesson led by an instructor. Date is an
// ISO 8601 calendar date and Time a slot label, same convention as
// Registration.
type Session struct {
	ID           string
	Title        string
	InstructorID string
	Date         string
	Time         string
	Capacity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
