package domain

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

type Ticket struct {
	ID        string
	UserID    string
	Subject   string
	Message   string
	Status    TicketStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
