package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"anupalan/internal/config"
	"anupalan/internal/domain"
	"anupalan/internal/export"
	"anupalan/internal/port"
	"anupalan/internal/statutory"
)

// GenerateReportInput is the DTO for generating a compliance report.
type GenerateReportInput struct {
	ReportType    domain.ReportType `json:"report_type" binding:"required"`
	FinancialYear int               `json:"financial_year" binding:"required"`
	MonthYear     string            `json:"month_year"`
	NotifyEmail   string            `json:"notify_email"`
	NotifyName    string            `json:"notify_name"`
}

// ReportService aggregates stored compliance results into filing reports,
// archives the rendered workbook, and notifies the requester.
type ReportService interface {
	Generate(ctx context.Context, tenantID uuid.UUID, input GenerateReportInput) (*domain.ComplianceReport, error)
	GetByID(ctx context.Context, tenantID, reportID uuid.UUID) (*domain.ComplianceReport, error)
	List(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.ComplianceReport, error)
	MarkSubmitted(ctx context.Context, tenantID, reportID uuid.UUID) error
	DownloadURL(ctx context.Context, tenantID, reportID uuid.UUID) (string, error)
	ContributionLines(ctx context.Context, tenantID uuid.UUID, reportType domain.ReportType, monthYear string) ([]port.ContributionLine, error)
}

type reportService struct {
	reportRepo port.ReportRepository
	storage    port.ObjectStorage
	email      port.EmailSender
	cfg        *config.S3Config
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	reportRepo port.ReportRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	cfg *config.S3Config,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		storage:    storage,
		email:      email,
		cfg:        cfg,
	}
}

var reportTitles = map[domain.ReportType]string{
	domain.ReportPFRegister: "PF Contribution Register",
	domain.ReportESIChallan: "ESI Challan",
	domain.ReportPTReturn:   "Professional Tax Return",
	domain.ReportForm16:     "Form 16",
}

func (s *reportService) Generate(ctx context.Context, tenantID uuid.UUID, input GenerateReportInput) (*domain.ComplianceReport, error) {
	if !domain.ValidReportTypes[input.ReportType] {
		return nil, fmt.Errorf("report.Generate: unknown report type %q", input.ReportType)
	}

	report := &domain.ComplianceReport{
		TenantID:      tenantID,
		ReportType:    input.ReportType,
		FinancialYear: input.FinancialYear,
		MonthYear:     input.MonthYear,
		Status:        domain.SubmissionPending,
	}

	var workbook *bytes.Buffer
	if input.ReportType == domain.ReportForm16 {
		rows, err := s.reportRepo.Form16Rows(ctx, tenantID, input.FinancialYear)
		if err != nil {
			return nil, err
		}
		report.Headcount = len(rows)
		var tds, liability decimal.Decimal
		for i := range rows {
			tds = tds.Add(rows[i].TDSDeducted)
			liability = liability.Add(rows[i].TotalTaxLiability)
		}
		report.EmployeeContribution = tds.Round(2)
		report.EmployerContribution = decimal.Zero
		report.TotalAmount = liability.Round(2)

		workbook, err = export.Form16Workbook(input.FinancialYear, rows)
		if err != nil {
			return nil, err
		}
	} else {
		if input.MonthYear == "" {
			return nil, fmt.Errorf("report.Generate: month_year is required for %s", input.ReportType)
		}
		lines, err := s.ContributionLines(ctx, tenantID, input.ReportType, input.MonthYear)
		if err != nil {
			return nil, err
		}

		resultLines := make([]statutory.ResultLine, 0, len(lines))
		for i := range lines {
			resultLines = append(resultLines, statutory.ResultLine{
				PeriodKey: statutory.PeriodKey{
					ReportType:    input.ReportType,
					FinancialYear: input.FinancialYear,
					MonthYear:     input.MonthYear,
				},
				EmployeeID:           lines[i].EmployeeID,
				EmployeeContribution: lines[i].EmployeeContribution,
				EmployerContribution: lines[i].EmployerContribution,
				TotalAmount:          lines[i].TotalContribution,
			})
		}
		for _, t := range statutory.Aggregate(resultLines) {
			report.Headcount = t.Headcount
			report.EmployeeContribution = t.EmployeeContribution
			report.EmployerContribution = t.EmployerContribution
			report.TotalAmount = t.TotalAmount
		}

		workbook, err = export.ContributionWorkbook(reportTitles[input.ReportType], input.MonthYear, lines)
		if err != nil {
			return nil, err
		}
	}

	period := input.MonthYear
	if period == "" {
		period = fmt.Sprintf("FY%d", input.FinancialYear)
	}
	report.ArtifactKey = fmt.Sprintf("tenants/%s/reports/%s/%s_%s.xlsx",
		tenantID, input.ReportType, input.ReportType, period)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         report.ArtifactKey,
		Body:        bytes.NewReader(workbook.Bytes()),
		ContentType: export.XLSXContentType,
	}); err != nil {
		return nil, fmt.Errorf("report.Generate: archiving workbook: %w", err)
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	if input.NotifyEmail != "" {
		url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, report.ArtifactKey, s.cfg.PresignExpiry)
		if err != nil {
			log.Printf("WARN report: presigning %s: %v", report.ArtifactKey, err)
			return report, nil
		}
		name := fmt.Sprintf("%s %s", reportTitles[input.ReportType], period)
		if err := s.email.SendReportReadyNotification(ctx, input.NotifyEmail, input.NotifyName, name, url); err != nil {
			// Notification failure never fails the run; the report is stored.
			log.Printf("WARN report: notifying %s: %v", input.NotifyEmail, err)
		}
	}

	return report, nil
}

func (s *reportService) GetByID(ctx context.Context, tenantID, reportID uuid.UUID) (*domain.ComplianceReport, error) {
	return s.reportRepo.GetReport(ctx, tenantID, reportID)
}

func (s *reportService) List(ctx context.Context, tenantID uuid.UUID, financialYear int) ([]domain.ComplianceReport, error) {
	return s.reportRepo.ListReports(ctx, tenantID, financialYear)
}

func (s *reportService) MarkSubmitted(ctx context.Context, tenantID, reportID uuid.UUID) error {
	return s.reportRepo.MarkSubmitted(ctx, tenantID, reportID, time.Now().UTC())
}

func (s *reportService) DownloadURL(ctx context.Context, tenantID, reportID uuid.UUID) (string, error) {
	report, err := s.reportRepo.GetReport(ctx, tenantID, reportID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, report.ArtifactKey, s.cfg.PresignExpiry)
}

// ContributionLines returns the per-employee register rows behind a monthly
// report type.
func (s *reportService) ContributionLines(ctx context.Context, tenantID uuid.UUID, reportType domain.ReportType, monthYear string) ([]port.ContributionLine, error) {
	switch reportType {
	case domain.ReportPFRegister:
		return s.reportRepo.PFLines(ctx, tenantID, monthYear)
	case domain.ReportESIChallan:
		return s.reportRepo.ESILines(ctx, tenantID, monthYear)
	case domain.ReportPTReturn:
		return s.reportRepo.PTLines(ctx, tenantID, monthYear)
	default:
		return nil, fmt.Errorf("report.ContributionLines: %q has no register rows", reportType)
	}
}
