package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendForm16Notification(ctx context.Context, toEmail, toName string, financialYear int, downloadURL string) error {
	args := m.Called(ctx, toEmail, toName, financialYear, downloadURL)
	return args.Error(0)
}

func (m *MockEmailSender) SendReportReadyNotification(ctx context.Context, toEmail, toName, reportName, downloadURL string) error {
	args := m.Called(ctx, toEmail, toName, reportName, downloadURL)
	return args.Error(0)
}
