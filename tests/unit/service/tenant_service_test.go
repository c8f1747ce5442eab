package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"anupalan/internal/domain"
	"anupalan/internal/service"
	"anupalan/mocks"
)

func TestTenantService_Create_BootstrapsAdmin(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewTenantService(tenantRepo, userRepo)

	tenantRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Email == "admin@acme.example" && u.IsActive
	})).Return(nil)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name:          "Acme Corp",
		Slug:          "acme-corp",
		AdminEmail:    "admin@acme.example",
		AdminPassword: "s3cret-pass",
		AdminName:     "Admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme Corp", tenant.Name)
	assert.Equal(t, "acme-corp", tenant.Slug)
	assert.True(t, tenant.IsActive)
	tenantRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestTenantService_Create_DuplicateSlug(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewTenantService(tenantRepo, userRepo)

	tenantRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(domain.ErrDuplicateTenantSlug)

	tenant, err := svc.Create(context.Background(), service.CreateTenantInput{
		Name:          "Acme Corp",
		Slug:          "existing-slug",
		AdminEmail:    "admin@acme.example",
		AdminPassword: "s3cret-pass",
		AdminName:     "Admin",
	})

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrDuplicateTenantSlug)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTenantService_GetByID_NotFound(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(tenantRepo, new(mocks.MockUserRepo))

	tenantID := uuid.New()
	tenantRepo.On("GetByID", mock.Anything, tenantID).Return(nil, domain.ErrNotFound)

	tenant, err := svc.GetByID(context.Background(), tenantID)

	assert.Nil(t, tenant)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTenantService_Update_PartialFields(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(tenantRepo, new(mocks.MockUserRepo))

	tenantID := uuid.New()
	existing := &domain.Tenant{ID: tenantID, Name: "Old Name", Slug: "acme", IsActive: true}
	tenantRepo.On("GetByID", mock.Anything, tenantID).Return(existing, nil)
	tenantRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	newName := "New Name"
	tenant, err := svc.Update(context.Background(), tenantID, service.UpdateTenantInput{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", tenant.Name)
	assert.True(t, tenant.IsActive)
}

func TestTenantService_Deactivate(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewTenantService(tenantRepo, new(mocks.MockUserRepo))

	tenantID := uuid.New()
	tenantRepo.On("Deactivate", mock.Anything, tenantID).Return(nil)

	assert.NoError(t, svc.Deactivate(context.Background(), tenantID))
	tenantRepo.AssertExpectations(t)
}
