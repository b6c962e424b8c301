package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worknest/internal/models/db_models"
	"worknest/internal/models/request_models"
	"worknest/pkg/utils"
)

type fakeAdminRepo struct {
	byEmail map[string]*db_models.Admin
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*db_models.Admin, error) {
	return f.byEmail[email], nil
}

func newAdminServiceFixture(t *testing.T) (*fakeAdminRepo, *fakeUserRepo, *fakeCompanyRepo, *fakeSubscriptionRepo, AdminServiceInterface) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	adminRepo := &fakeAdminRepo{byEmail: make(map[string]*db_models.Admin)}
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	subscriptionRepo := newFakeSubscriptionRepo()
	service := NewAdminService(adminRepo, userRepo, companyRepo, subscriptionRepo)
	return adminRepo, userRepo, companyRepo, subscriptionRepo, service
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	adminRepo, _, _, _, service := newAdminServiceFixture(t)

	hash, err := utils.HashPassword("root-password")
	require.NoError(t, err)
	adminRepo.byEmail["admin@worknest.test"] = &db_models.Admin{Email: "admin@worknest.test", PasswordHash: hash}

	result, err := service.Login(ctx, request_models.LoginRequest{Email: "admin@worknest.test", Password: "root-password"})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleAdmin, claims.Role)

	_, err = service.Login(ctx, request_models.LoginRequest{Email: "admin@worknest.test", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidPassword)
}

func TestAdminCompanyVerification(t *testing.T) {
	ctx := context.Background()
	_, _, companyRepo, _, service := newAdminServiceFixture(t)

	company := companyRepo.add(&db_models.Company{Email: "hr@acme.test", IsVerified: db_models.VerificationPending})

	require.NoError(t, service.SetCompanyVerification(ctx, company.ID, "accepted"))
	assert.Equal(t, db_models.VerificationAccepted, company.IsVerified)

	require.NoError(t, service.SetCompanyVerification(ctx, company.ID, "rejected"))
	assert.Equal(t, db_models.VerificationRejected, company.IsVerified)
}

func TestAdminBlockUser(t *testing.T) {
	ctx := context.Background()
	_, userRepo, _, _, service := newAdminServiceFixture(t)

	user := userRepo.add(&db_models.User{Email: "asha@example.com"})

	require.NoError(t, service.SetUserBlocked(ctx, user.ID, true))
	assert.True(t, user.IsBlocked)

	require.NoError(t, service.SetUserBlocked(ctx, user.ID, false))
	assert.False(t, user.IsBlocked)
}

func TestAdminCreatePlan(t *testing.T) {
	ctx := context.Background()
	_, _, _, subscriptionRepo, service := newAdminServiceFixture(t)

	plan, err := service.CreatePlan(ctx, request_models.PlanRequest{
		Name:         "Pro Monthly",
		PriceMinor:   49900,
		DurationDays: 30,
		Features:     []string{"email_notification"},
	})
	require.NoError(t, err)
	assert.Equal(t, "INR", plan.Currency, "currency defaults when omitted")
	assert.True(t, plan.IsActive)
	assert.Len(t, subscriptionRepo.plans, 1)
}
