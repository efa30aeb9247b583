package notify

import "context"

// Mailer delivers a message to the configured recipients.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}
