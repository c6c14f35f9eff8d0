package interfaces

import "context"

// Notification is one outbound message with optional file attachments
type Notification struct {
	Subject     string
	Body        string
	Recipients  []string
	Attachments []string
}

// Notifier dispatches submission notifications. Dispatch failures must
// never affect previously durable state; callers treat them as warnings.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
