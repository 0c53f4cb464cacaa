package port

import "context"

// EmailSender delivers rendered invoices to a recipient.
type EmailSender interface {
	SendInvoice(ctx context.Context, toEmail, subject, htmlBody string) error
}
