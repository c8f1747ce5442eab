package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRole         = errors.New("invalid user role")
	ErrTenantInactive      = errors.New("tenant is inactive")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug = errors.New("tenant slug already exists")
	ErrDuplicateEmployee   = errors.New("employee code already exists for this tenant")
	ErrDeclarationLocked   = errors.New("tax declaration is verified and read-only")
	ErrNoCompensation      = errors.New("employee has no compensation structure for the period")
	ErrPFClosed            = errors.New("provident fund account is closed")
)
