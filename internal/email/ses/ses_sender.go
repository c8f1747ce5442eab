package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"anupalan/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendForm16Notification(ctx context.Context, toEmail, toName string, financialYear int, downloadURL string) error {
	subject := fmt.Sprintf("Your Form 16 for FY %d-%d is ready", financialYear, financialYear+1)
	htmlBody := buildForm16HTML(toName, financialYear, downloadURL)
	textBody := fmt.Sprintf("Hi %s,\n\nYour Form 16 tax certificate for FY %d-%d has been generated. Download it here:\n%s\n\nThe link expires shortly; request a fresh one from the portal if needed.", toName, financialYear, financialYear+1, downloadURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendReportReadyNotification(ctx context.Context, toEmail, toName, reportName, downloadURL string) error {
	subject := fmt.Sprintf("%s is ready for filing", reportName)
	htmlBody := buildReportReadyHTML(toName, reportName, downloadURL)
	textBody := fmt.Sprintf("Hi %s,\n\n%s has been generated and archived. Download it here:\n%s\n\nThe link expires shortly; request a fresh one from the portal if needed.", toName, reportName, downloadURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildForm16HTML(name string, financialYear int, downloadURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Your Form 16 is ready</h2>
  <p>Hi %s,</p>
  <p>Your Form 16 tax certificate for FY %d-%d has been generated. Click the button below to download it:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #0F766E; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download Form 16</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">The link expires shortly; request a fresh one from the portal if needed.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Anupalan - Statutory Compliance Platform</p>
</body>
</html>`, name, financialYear, financialYear+1, downloadURL, downloadURL)
}

func buildReportReadyHTML(name, reportName, downloadURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s is ready</h2>
  <p>Hi %s,</p>
  <p>The report has been generated and archived. Click the button below to download it:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #0F766E; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download Report</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">The link expires shortly; request a fresh one from the portal if needed.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Anupalan - Statutory Compliance Platform</p>
</body>
</html>`, reportName, name, downloadURL, downloadURL)
}
