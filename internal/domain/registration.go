package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// Registration is an applicant's request for a training slot. StartDate is
// an ISO 8601 calendar date and PreferredTime an opaque slot label; the pair
// identifies the slot the applicant wants. Cancelled registrations do not
// occupy their slot.
type Registration struct {
	ID            string
	Email         string
	FullName      string
	Phone         string
	Address       string
	BirthDate     string
	StartDate     string
	PreferredTime string
	Status        RegistrationStatus
	CreatedAt     time.Time
}

// Availability reports how many non-cancelled registrations already occupy
// a (date, time) slot.
type Availability struct {
	Available     bool   `json:"available"`
	ConflictCount int    `json:"conflictCount"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// SlotAvailability is one entry of a per-day slot listing.
type SlotAvailability struct {
	Time          string `json:"time"`
	Available     bool   `json:"available"`
	ConflictCount int    `json:"conflictCount"`
}
