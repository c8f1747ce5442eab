package port

import "context"

// EmailSender defines the contract for employee notifications.
type EmailSender interface {
	// SendForm16Notification tells an employee their Form 16 certificate for
	// the financial year is available at downloadURL.
	SendForm16Notification(ctx context.Context, toEmail, toName string, financialYear int, downloadURL string) error
	// SendReportReadyNotification tells an HR user a filing report has been
	// generated and archived.
	SendReportReadyNotification(ctx context.Context, toEmail, toName, reportName, downloadURL string) error
}
