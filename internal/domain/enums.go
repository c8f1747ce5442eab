package domain

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleHR       UserRole = "hr"
	RoleEmployee UserRole = "employee"
)

// ValidUserRoles lists the roles accepted from API input.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:    true,
	RoleHR:       true,
	RoleEmployee: true,
}

// TaxRegime selects one of the two mutually exclusive income tax schemes.
type TaxRegime string

const (
	RegimeOld TaxRegime = "old"
	RegimeNew TaxRegime = "new"
)

// DeclarationStatus tracks the tax declaration lifecycle. A verified
// declaration is read-only.
type DeclarationStatus string

const (
	DeclarationDraft     DeclarationStatus = "draft"
	DeclarationSubmitted DeclarationStatus = "submitted"
	DeclarationVerified  DeclarationStatus = "verified"
)

// PFStatus represents the lifecycle of a PF account record.
type PFStatus string

const (
	PFStatusActive    PFStatus = "active"
	PFStatusWithdrawn PFStatus = "withdrawn"
	PFStatusClosed    PFStatus = "closed"
)

// WithdrawalType classifies a PF withdrawal. TDS is flat regardless of type;
// the type is recorded for the filing artifacts only.
type WithdrawalType string

const (
	WithdrawalRetirement  WithdrawalType = "retirement"
	WithdrawalResignation WithdrawalType = "resignation"
	WithdrawalMedical     WithdrawalType = "medical"
)

// ReportType identifies a statutory filing artifact.
type ReportType string

const (
	ReportPFRegister ReportType = "pf_register"
	ReportESIChallan ReportType = "esi_challan"
	ReportPTReturn   ReportType = "pt_return"
	ReportForm16     ReportType = "form16"
)

// ValidReportTypes lists the report types accepted from API input.
var ValidReportTypes = map[ReportType]bool{
	ReportPFRegister: true,
	ReportESIChallan: true,
	ReportPTReturn:   true,
	ReportForm16:     true,
}

// SubmissionStatus represents the filing state of a compliance report.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionAccepted  SubmissionStatus = "accepted"
	SubmissionRejected  SubmissionStatus = "rejected"
)
