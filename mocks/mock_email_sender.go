package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoice(ctx context.Context, toEmail, subject, htmlBody string) error {
	args := m.Called(ctx, toEmail, subject, htmlBody)
	return args.Error(0)
}
