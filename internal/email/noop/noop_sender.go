package noop

import (
	"context"
	"log"

	"billbook/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs deliveries to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoice(_ context.Context, toEmail, subject, _ string) error {
	log.Printf("[NOOP EMAIL] %q to %s", subject, toEmail)
	return nil
}
