package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"worknest/internal/models/db_models"
	"worknest/internal/models/request_models"
	"worknest/internal/models/response_models"
	"worknest/internal/repositories"
	"worknest/pkg/otpcache"
	"worknest/pkg/utils"
)

type UserLoginResult = response_models.LoginResult[response_models.CleanUserData]

type UserServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*UserLoginResult, error)
	Register(ctx context.Context, request request_models.RegisterUserRequest) error
	VerifyOtp(ctx context.Context, email string, otp string) error
	ResendOtp(ctx context.Context, email string) error

	ForgotPasswordEmail(ctx context.Context, email string) error
	ForgotPasswordOtp(ctx context.Context, email string, otp string) error
	ForgotPasswordReset(ctx context.Context, email string, newPassword string) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserProfileResponse, error)
	EditProfile(ctx context.Context, userID uuid.UUID, request request_models.EditUserRequest) error
	UpdateProfileImage(ctx context.Context, userID uuid.UUID, data []byte, contentType string) error
	UpdateResume(ctx context.Context, userID uuid.UUID, data []byte, contentType string) error

	JobBoard(ctx context.Context) (*response_models.JobBoardResponse, error)
	Apply(ctx context.Context, userID uuid.UUID, jobID uuid.UUID, coverLetter string, resume []byte, resumeType string) (*db_models.JobApplication, error)
	MyApplications(ctx context.Context, userID uuid.UUID) ([]db_models.JobApplication, error)
}

type UserService struct {
	userRepo        repositories.UserRepository
	companyRepo     repositories.CompanyRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	cache           otpcache.Store
	mail            IMailService
	storage         FileStorage
	hub             *NotificationHub
}

func NewUserService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	cache otpcache.Store,
	mail IMailService,
	storage FileStorage,
	hub *NotificationHub,
) UserServiceInterface {
	return &UserService{
		userRepo:        userRepo,
		companyRepo:     companyRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		cache:           cache,
		mail:            mail,
		storage:         storage,
		hub:             hub,
	}
}

func (s *UserService) Login(ctx context.Context, request request_models.LoginRequest) (*UserLoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrEmailNotFound
	}
	// Blocked wins over everything, including a correct password.
	if user.IsBlocked {
		return nil, utils.ErrAccountBlocked
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidPassword
	}

	accessToken, err := utils.CreateAccessToken(user.ID.String(), db_models.RoleUser)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.CreateRefreshToken(user.ID.String(), db_models.RoleUser)
	if err != nil {
		return nil, err
	}

	return &UserLoginResult{
		Data: response_models.CleanUserData{
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.Phone,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *UserService) Register(ctx context.Context, request request_models.RegisterUserRequest) error {
	existing, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}
	if err := s.cache.StageData(ctx, request.Email, payload, otpcache.StagingTTL); err != nil {
		return err
	}

	return stageAndSendOtp(ctx, s.cache, s.mail, request.Email)
}

func (s *UserService) VerifyOtp(ctx context.Context, email string, otp string) error {
	code, ok, err := s.cache.Otp(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrOtpExpired
	}
	if code != otp {
		return utils.ErrIncorrectOtp
	}

	payload, ok, err := s.cache.Data(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrStagedDataGone
	}

	var staged request_models.RegisterUserRequest
	if err := json.Unmarshal(payload, &staged); err != nil {
		return utils.ErrStagedDataGone
	}

	passwordHash, err := utils.HashPassword(staged.Password)
	if err != nil {
		return err
	}

	user := &db_models.User{
		FirstName:    staged.FirstName,
		LastName:     staged.LastName,
		Email:        staged.Email,
		Phone:        staged.Phone,
		PasswordHash: passwordHash,
		Role:         db_models.RoleUser,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return utils.ErrWriteFailed
	}

	return s.cache.Clear(ctx, email)
}

func (s *UserService) ResendOtp(ctx context.Context, email string) error {
	// Only a pending registration may be re-mailed; otherwise this would
	// send codes to arbitrary addresses.
	_, ok, err := s.cache.Data(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrOtpExpired
	}
	return stageAndSendOtp(ctx, s.cache, s.mail, email)
}

func (s *UserService) ForgotPasswordEmail(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrEmailNotFound
	}
	return stageAndSendOtp(ctx, s.cache, s.mail, email)
}

func (s *UserService) ForgotPasswordOtp(ctx context.Context, email string, otp string) error {
	code, ok, err := s.cache.Otp(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrOtpExpired
	}
	if code != otp {
		return utils.ErrIncorrectOtp
	}
	return s.cache.Clear(ctx, email)
}

func (s *UserService) ForgotPasswordReset(ctx context.Context, email string, newPassword string) error {
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, email, passwordHash); err != nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := &response_models.UserProfileResponse{Profile: user}
	if user.ProfileImageKey != "" {
		if url, err := s.storage.PresignedGetURL(ctx, user.ProfileImageKey); err == nil {
			resp.ProfileImageURL = url
		}
	}
	if user.ResumeKey != "" {
		if url, err := s.storage.PresignedGetURL(ctx, user.ResumeKey); err == nil {
			resp.ResumeURL = url
		}
	}
	return resp, nil
}

func (s *UserService) EditProfile(ctx context.Context, userID uuid.UUID, request request_models.EditUserRequest) error {
	skills, err := json.Marshal(request.Skills)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"first_name":          request.FirstName,
		"last_name":           request.LastName,
		"phone":               request.Phone,
		"bio":                 request.Bio,
		"location":            request.Location,
		"preferred_location":  request.PreferredLocation,
		"salary_expectation":  request.SalaryExpectation,
		"remote_work":         request.RemoteWork,
		"willing_to_relocate": request.WillingToRelocate,
		"skills":              skills,
	}
	if err := s.userRepo.UpdateByID(ctx, userID, fields); err != nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *UserService) UpdateProfileImage(ctx context.Context, userID uuid.UUID, data []byte, contentType string) error {
	key, err := s.storage.Upload(ctx, "profile-images", data, contentType)
	if err != nil {
		return utils.ErrUploadFailed
	}
	if err := s.userRepo.UpdateByID(ctx, userID, map[string]interface{}{"profile_image_key": key}); err != nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *UserService) UpdateResume(ctx context.Context, userID uuid.UUID, data []byte, contentType string) error {
	key, err := s.storage.Upload(ctx, "resumes", data, contentType)
	if err != nil {
		return utils.ErrUploadFailed
	}
	if err := s.userRepo.UpdateByID(ctx, userID, map[string]interface{}{"resume_key": key}); err != nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func (s *UserService) JobBoard(ctx context.Context) (*response_models.JobBoardResponse, error) {
	posts, err := s.jobRepo.ListOpen(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(posts) == 0 {
		return nil, utils.ErrJobPostNotFound
	}

	seen := map[uuid.UUID]struct{}{}
	var companyIDs []uuid.UUID
	for _, post := range posts {
		if _, ok := seen[post.CompanyID]; !ok {
			seen[post.CompanyID] = struct{}{}
			companyIDs = append(companyIDs, post.CompanyID)
		}
	}

	companies, err := s.companyRepo.FindByIDs(ctx, companyIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.JobBoardResponse{
		JobPosts:  posts,
		Companies: companies,
	}, nil
}

func (s *UserService) Apply(ctx context.Context, userID uuid.UUID, jobID uuid.UUID, coverLetter string, resume []byte, resumeType string) (*db_models.JobApplication, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if job == nil {
		return nil, utils.ErrJobPostNotFound
	}

	resumeKey, err := s.storage.Upload(ctx, "resumes", resume, resumeType)
	if err != nil {
		return nil, utils.ErrUploadFailed
	}

	application := &db_models.JobApplication{
		JobID:       jobID,
		UserID:      userID,
		CompanyID:   job.CompanyID,
		CompanyName: job.CompanyName,
		JobTitle:    job.Title,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Phone:       user.Phone,
		Location:    user.Location,
		ResumeKey:   resumeKey,
		CoverLetter: coverLetter,
		Status:      db_models.ApplicationPending,
	}
	if err := s.applicationRepo.Insert(ctx, application); err != nil {
		return nil, utils.ErrWriteFailed
	}

	// Fire-and-forget: the company hears about it if it's listening.
	s.hub.Publish(job.CompanyID.String(), Event{
		Type: EventApplicationNew,
		Payload: map[string]interface{}{
			"application_id": application.ID,
			"job_id":         jobID,
			"job_title":      job.Title,
			"applicant":      user.FirstName + " " + user.LastName,
		},
	})

	return application, nil
}

func (s *UserService) MyApplications(ctx context.Context, userID uuid.UUID) ([]db_models.JobApplication, error) {
	applications, err := s.applicationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return applications, nil
}
