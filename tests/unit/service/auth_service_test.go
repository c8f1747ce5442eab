package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"anupalan/internal/config"
	"anupalan/internal/domain"
	"anupalan/internal/service"
	"anupalan/mocks"
)

func jwtConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "anupalan-test",
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, jwtConfig())

	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "hr@acme.example",
		PasswordHash: hashPassword(t, "correct-horse"),
		Role:         domain.RoleHR,
		IsActive:     true,
	}
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "hr@acme.example").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "hr@acme.example",
		Password:   "correct-horse",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleHR, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, jwtConfig())

	tenantID := uuid.New()
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(&domain.Tenant{ID: tenantID, IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "hr@acme.example").Return(&domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		PasswordHash: hashPassword(t, "correct-horse"),
		IsActive:     true,
	}, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "hr@acme.example",
		Password:   "wrong-password",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownTenantMapsToInvalidCredentials(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, jwtConfig())

	tenantRepo.On("GetBySlug", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "ghost",
		Email:      "someone@ghost.example",
		Password:   "irrelevant",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveTenant(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, jwtConfig())

	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(&domain.Tenant{ID: uuid.New(), IsActive: false}, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "hr@acme.example",
		Password:   "correct-horse",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, jwtConfig())

	tenantID := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "hr@acme.example",
		PasswordHash: hashPassword(t, "correct-horse"),
		Role:         domain.RoleHR,
		IsActive:     true,
	}
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(&domain.Tenant{ID: tenantID, IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "hr@acme.example").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, tenantID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "hr@acme.example",
		Password:   "correct-horse",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	tenantRepo := new(mocks.MockTenantRepo)
	svc := service.NewAuthService(userRepo, tenantRepo, jwtConfig())

	tenantID := uuid.New()
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        "hr@acme.example",
		PasswordHash: hashPassword(t, "correct-horse"),
		IsActive:     true,
	}
	tenantRepo.On("GetBySlug", mock.Anything, "acme").Return(&domain.Tenant{ID: tenantID, IsActive: true}, nil)
	userRepo.On("GetByEmail", mock.Anything, tenantID, "hr@acme.example").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		TenantSlug: "acme",
		Email:      "hr@acme.example",
		Password:   "correct-horse",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.Nil(t, refreshed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockTenantRepo), jwtConfig())

	claims, err := svc.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
