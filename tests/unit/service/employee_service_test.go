package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
	"anupalan/internal/service"
	"anupalan/mocks"
)

func TestEmployeeService_Create_Success(t *testing.T) {
	employeeRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(employeeRepo, new(mocks.MockCompensationRepo))

	tenantID := uuid.New()
	employeeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Employee")).Return(nil)

	employee, err := svc.Create(context.Background(), tenantID, service.CreateEmployeeInput{
		Code:        "EMP001",
		FullName:    "Asha Rao",
		Email:       "asha@acme.example",
		PAN:         "ABCDE1234F",
		StateCode:   "KA",
		TaxRegime:   domain.RegimeNew,
		JoiningDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, tenantID, employee.TenantID)
	assert.Equal(t, "EMP001", employee.Code)
	assert.True(t, employee.IsActive)
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	employeeRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(employeeRepo, new(mocks.MockCompensationRepo))

	employeeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Employee")).Return(domain.ErrDuplicateEmployee)

	employee, err := svc.Create(context.Background(), uuid.New(), service.CreateEmployeeInput{
		Code:        "EMP001",
		FullName:    "Asha Rao",
		Email:       "asha@acme.example",
		PAN:         "ABCDE1234F",
		StateCode:   "KA",
		TaxRegime:   domain.RegimeNew,
		JoiningDate: time.Now().UTC(),
	})

	assert.Nil(t, employee)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmployee)
}

func TestEmployeeService_AddCompensation_RequiresEmployee(t *testing.T) {
	employeeRepo := new(mocks.MockEmployeeRepo)
	compRepo := new(mocks.MockCompensationRepo)
	svc := service.NewEmployeeService(employeeRepo, compRepo)

	tenantID, employeeID := uuid.New(), uuid.New()
	employeeRepo.On("GetByID", mock.Anything, tenantID, employeeID).Return(nil, domain.ErrNotFound)

	comp, err := svc.AddCompensation(context.Background(), tenantID, employeeID, service.CompensationInput{
		BasicSalary:   decimal.NewFromInt(30000),
		EffectiveFrom: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, comp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	compRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_AddCompensation_Success(t *testing.T) {
	employeeRepo := new(mocks.MockEmployeeRepo)
	compRepo := new(mocks.MockCompensationRepo)
	svc := service.NewEmployeeService(employeeRepo, compRepo)

	tenantID, employeeID := uuid.New(), uuid.New()
	employeeRepo.On("GetByID", mock.Anything, tenantID, employeeID).Return(&domain.Employee{
		ID: employeeID, TenantID: tenantID, IsActive: true,
	}, nil)
	compRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CompensationStructure")).Return(nil)

	effectiveFrom := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	comp, err := svc.AddCompensation(context.Background(), tenantID, employeeID, service.CompensationInput{
		BasicSalary:        decimal.NewFromInt(30000),
		DearnessAllowance:  decimal.NewFromInt(5000),
		HouseRentAllowance: decimal.NewFromInt(12000),
		EffectiveFrom:      effectiveFrom,
	})

	assert.NoError(t, err)
	assert.Equal(t, employeeID, comp.EmployeeID)
	assert.True(t, comp.BasicSalary.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, effectiveFrom, comp.EffectiveFrom)
}

func TestEmployeeService_GetEffectiveCompensation_PassesAsOf(t *testing.T) {
	employeeRepo := new(mocks.MockEmployeeRepo)
	compRepo := new(mocks.MockCompensationRepo)
	svc := service.NewEmployeeService(employeeRepo, compRepo)

	tenantID, employeeID := uuid.New(), uuid.New()
	asOf := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	expected := &domain.CompensationStructure{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		BasicSalary:   decimal.NewFromInt(30000),
		EffectiveFrom: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	compRepo.On("GetEffective", mock.Anything, tenantID, employeeID, asOf).Return(expected, nil)

	comp, err := svc.GetEffectiveCompensation(context.Background(), tenantID, employeeID, asOf)

	assert.NoError(t, err)
	assert.Equal(t, expected, comp)
	compRepo.AssertExpectations(t)
}

func TestEmployeeService_Update_SetsExitDate(t *testing.T) {
	employeeRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(employeeRepo, new(mocks.MockCompensationRepo))

	tenantID, employeeID := uuid.New(), uuid.New()
	employeeRepo.On("GetByID", mock.Anything, tenantID, employeeID).Return(&domain.Employee{
		ID: employeeID, TenantID: tenantID, TaxRegime: domain.RegimeNew, IsActive: true,
	}, nil)
	employeeRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Employee")).Return(nil)

	exit := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	employee, err := svc.Update(context.Background(), tenantID, employeeID, service.UpdateEmployeeInput{ExitDate: &exit})

	assert.NoError(t, err)
	assert.NotNil(t, employee.ExitDate)
	assert.Equal(t, exit, *employee.ExitDate)
}
