package noop

import (
	"context"
	"log"

	"anupalan/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendForm16Notification(_ context.Context, toEmail, toName string, financialYear int, downloadURL string) error {
	log.Printf("[NOOP EMAIL] Form 16 FY%d for %s (%s): %s", financialYear, toName, toEmail, downloadURL)
	return nil
}

func (s *noopSender) SendReportReadyNotification(_ context.Context, toEmail, toName, reportName, downloadURL string) error {
	log.Printf("[NOOP EMAIL] %s ready for %s (%s): %s", reportName, toName, toEmail, downloadURL)
	return nil
}
