package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"worknest/internal/models/db_models"
	"worknest/internal/models/request_models"
	"worknest/internal/models/response_models"
	"worknest/internal/repositories"
	"worknest/pkg/utils"
)

type AdminLoginResult = response_models.LoginResult[response_models.CleanAdminData]

type AdminServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*AdminLoginResult, error)

	ListUsers(ctx context.Context) ([]db_models.User, error)
	ListCompanies(ctx context.Context) ([]db_models.Company, error)
	SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error
	SetCompanyBlocked(ctx context.Context, companyID uuid.UUID, blocked bool) error
	SetCompanyVerification(ctx context.Context, companyID uuid.UUID, status string) error

	CreatePlan(ctx context.Context, request request_models.PlanRequest) (*db_models.Plan, error)
	ListPlans(ctx context.Context) ([]db_models.Plan, error)
	SetPlanActive(ctx context.Context, planID uuid.UUID, active bool) error

	ListSubscriptions(ctx context.Context) ([]db_models.Subscription, error)
}

type AdminService struct {
	adminRepo        repositories.AdminRepository
	userRepo         repositories.UserRepository
	companyRepo      repositories.CompanyRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) AdminServiceInterface {
	return &AdminService{
		adminRepo:        adminRepo,
		userRepo:         userRepo,
		companyRepo:      companyRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *AdminService) Login(ctx context.Context, request request_models.LoginRequest) (*AdminLoginResult, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if admin == nil {
		return nil, utils.ErrEmailNotFound
	}

	if err := utils.ComparePasswords(admin.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidPassword
	}

	accessToken, err := utils.CreateAccessToken(admin.ID.String(), db_models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.CreateRefreshToken(admin.ID.String(), db_models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &AdminLoginResult{
		Data: response_models.CleanAdminData{
			AdminID: admin.ID,
			Email:   admin.Email,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (s *AdminService) ListCompanies(ctx context.Context) ([]db_models.Company, error) {
	companies, err := s.companyRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return companies, nil
}

func (s *AdminService) SetUserBlocked(ctx context.Context, userID uuid.UUID, blocked bool) error {
	if err := s.userRepo.SetBlocked(ctx, userID, blocked); err != nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *AdminService) SetCompanyBlocked(ctx context.Context, companyID uuid.UUID, blocked bool) error {
	if err := s.companyRepo.SetBlocked(ctx, companyID, blocked); err != nil {
		return utils.ErrCompanyNotFound
	}
	return nil
}

func (s *AdminService) SetCompanyVerification(ctx context.Context, companyID uuid.UUID, status string) error {
	if err := s.companyRepo.SetVerification(ctx, companyID, db_models.VerificationStatus(status)); err != nil {
		return utils.ErrCompanyNotFound
	}
	return nil
}

func (s *AdminService) CreatePlan(ctx context.Context, request request_models.PlanRequest) (*db_models.Plan, error) {
	features, err := json.Marshal(request.Features)
	if err != nil {
		return nil, err
	}

	currency := request.Currency
	if currency == "" {
		currency = "INR"
	}

	plan := &db_models.Plan{
		Name:         request.Name,
		PriceMinor:   request.PriceMinor,
		Currency:     currency,
		DurationDays: request.DurationDays,
		Features:     features,
		IsActive:     true,
	}
	if err := s.subscriptionRepo.InsertPlan(ctx, plan); err != nil {
		return nil, utils.ErrWriteFailed
	}
	return plan, nil
}

func (s *AdminService) ListPlans(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := s.subscriptionRepo.ListPlans(ctx, false)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *AdminService) SetPlanActive(ctx context.Context, planID uuid.UUID, active bool) error {
	if err := s.subscriptionRepo.SetPlanActive(ctx, planID, active); err != nil {
		return utils.ErrPlanNotFound
	}
	return nil
}

func (s *AdminService) ListSubscriptions(ctx context.Context) ([]db_models.Subscription, error) {
	subs, err := s.subscriptionRepo.ListAllSubscriptions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}
