// Package mailer defines the outbound email abstraction used for account
// notifications such as password recovery.
package mailer

import (
	"context"
	"time"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// SendRes is returned by a successful delivery.
type SendRes struct {
	ID string // ID is the provider message identifier, empty for local mailers.
}

// RateLimitStatus describes the provider's rate-limit window after a request.
type RateLimitStatus struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Mailer delivers messages. Provider side failures are reported with the
// serrors.ErrBadGateway kind, throttling with serrors.ErrRateLimited.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Mailer interface {
	Send(ctx context.Context, msg Message) (SendRes, error)
}
