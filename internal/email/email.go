package email

import (
	"context"
	"fmt"

	"github.com/ecoleplus/drivingschool/internal/kafka"
)

// Sender writes notification emails to stdout. Real delivery is delegated
// to an SMTP provider in production; the console transport keeps the worker
// runnable without one.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) SendRegistration(ctx context.Context, event kafka.RegistrationEvent) error {
	fmt.Printf("send email to %s: registration %s is %s (slot %s %s)\n",
		event.Email, event.ID, event.Status, event.StartDate, event.PreferredTime)
	return nil
}

func (s *Sender) SendTicket(ctx context.Context, event kafka.TicketEvent) error {
	fmt.Printf("send email to user %s: ticket %q is now %s\n", event.UserID, event.Subject, event.Status)
	return nil
}
