package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"worknest/internal/models/db_models"
	"worknest/internal/models/request_models"
	"worknest/internal/models/response_models"
	"worknest/internal/repositories"
	"worknest/pkg/otpcache"
	"worknest/pkg/utils"
)

type CompanyLoginResult = response_models.LoginResult[response_models.CleanCompanyData]

type CompanyServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*CompanyLoginResult, error)
	Register(ctx context.Context, request request_models.RegisterCompanyRequest, certificate []byte, certificateType string) error
	VerifyOtp(ctx context.Context, email string, otp string) error
	ResendOtp(ctx context.Context, email string) error

	ForgotPasswordEmail(ctx context.Context, email string) error
	ForgotPasswordOtp(ctx context.Context, email string, otp string) error
	ForgotPasswordReset(ctx context.Context, email string, newPassword string) error

	GetProfile(ctx context.Context, companyID uuid.UUID) (*response_models.CompanyProfileResponse, error)
	EditProfile(ctx context.Context, companyID uuid.UUID, request request_models.EditCompanyRequest) error
	UpdateProfileImage(ctx context.Context, companyID uuid.UUID, data []byte, contentType string) error

	UpsertJobPost(ctx context.Context, companyID uuid.UUID, request request_models.JobPostRequest) error
	JobPosts(ctx context.Context, companyID uuid.UUID) ([]db_models.JobPost, error)
	GetJobPost(ctx context.Context, jobID uuid.UUID) (*db_models.JobPost, error)
	DeleteJobPost(ctx context.Context, jobID uuid.UUID) error

	ApplicationsByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.JobApplication, error)
	ApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]db_models.JobApplication, error)
	ApplicationDetail(ctx context.Context, applicationID uuid.UUID) (*response_models.ApplicationDetailResponse, error)
	UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, request request_models.ApplicationStatusRequest) error
	SetInterviewDetails(ctx context.Context, applicationID uuid.UUID, request request_models.InterviewRequest) error

	SearchUsers(ctx context.Context, query string) ([]db_models.User, error)
}

// stagedCompany is what sits in the cache between registration and OTP
// verification. The certificate itself already lives in object storage;
// only its key travels through the cache.
type stagedCompany struct {
	request_models.RegisterCompanyRequest
	CertificateKey string `json:"certificate_key"`
}

type CompanyService struct {
	companyRepo      repositories.CompanyRepository
	userRepo         repositories.UserRepository
	jobRepo          repositories.JobRepository
	applicationRepo  repositories.ApplicationRepository
	subscriptionRepo repositories.SubscriptionRepository
	cache            otpcache.Store
	mail             IMailService
	storage          FileStorage
	hub              *NotificationHub
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	cache otpcache.Store,
	mail IMailService,
	storage FileStorage,
	hub *NotificationHub,
) CompanyServiceInterface {
	return &CompanyService{
		companyRepo:      companyRepo,
		userRepo:         userRepo,
		jobRepo:          jobRepo,
		applicationRepo:  applicationRepo,
		subscriptionRepo: subscriptionRepo,
		cache:            cache,
		mail:             mail,
		storage:          storage,
		hub:              hub,
	}
}

func (s *CompanyService) Login(ctx context.Context, request request_models.LoginRequest) (*CompanyLoginResult, error) {
	company, err := s.companyRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrEmailNotFound
	}
	if company.IsBlocked {
		return nil, utils.ErrAccountBlocked
	}

	if err := utils.ComparePasswords(company.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidPassword
	}

	accessToken, err := utils.CreateAccessToken(company.ID.String(), db_models.RoleCompany)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.CreateRefreshToken(company.ID.String(), db_models.RoleCompany)
	if err != nil {
		return nil, err
	}

	return &CompanyLoginResult{
		Data: response_models.CleanCompanyData{
			CompanyID:  company.ID,
			Name:       company.Name,
			Email:      company.Email,
			Phone:      company.Phone,
			IsVerified: string(company.IsVerified),
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *CompanyService) Register(ctx context.Context, request request_models.RegisterCompanyRequest, certificate []byte, certificateType string) error {
	existing, err := s.companyRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	certificateKey, err := s.storage.Upload(ctx, "certificates", certificate, certificateType)
	if err != nil {
		return utils.ErrUploadFailed
	}

	payload, err := json.Marshal(stagedCompany{
		RegisterCompanyRequest: request,
		CertificateKey:         certificateKey,
	})
	if err != nil {
		return err
	}
	if err := s.cache.StageData(ctx, request.Email, payload, otpcache.StagingTTL); err != nil {
		return err
	}

	return stageAndSendOtp(ctx, s.cache, s.mail, request.Email)
}

func (s *CompanyService) VerifyOtp(ctx context.Context, email string, otp string) error {
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

	var staged stagedCompany
	if err := json.Unmarshal(payload, &staged); err != nil {
		return utils.ErrStagedDataGone
	}

	passwordHash, err := utils.HashPassword(staged.Password)
	if err != nil {
		return err
	}

	company := &db_models.Company{
		Name:           staged.Name,
		Email:          staged.Email,
		Phone:          staged.Phone,
		PasswordHash:   passwordHash,
		Role:           db_models.RoleCompany,
		IsVerified:     db_models.VerificationPending,
		CertificateKey: staged.CertificateKey,
	}
	if err := s.companyRepo.Insert(ctx, company); err != nil {
		return utils.ErrWriteFailed
	}

	return s.cache.Clear(ctx, email)
}

func (s *CompanyService) ResendOtp(ctx context.Context, email string) error {
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

func (s *CompanyService) ForgotPasswordEmail(ctx context.Context, email string) error {
	company, err := s.companyRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if company == nil {
		return utils.ErrEmailNotFound
	}
	return stageAndSendOtp(ctx, s.cache, s.mail, email)
}

func (s *CompanyService) ForgotPasswordOtp(ctx context.Context, email string, otp string) error {
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

func (s *CompanyService) ForgotPasswordReset(ctx context.Context, email string, newPassword string) error {
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.companyRepo.UpdatePassword(ctx, email, passwordHash); err != nil {
		return utils.ErrCompanyNotFound
	}
	return nil
}

func (s *CompanyService) GetProfile(ctx context.Context, companyID uuid.UUID) (*response_models.CompanyProfileResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if company == nil {
		return nil, utils.ErrCompanyNotFound
	}

	resp := &response_models.CompanyProfileResponse{Profile: company}
	if company.ProfileImageKey != "" {
		if url, err := s.storage.PresignedGetURL(ctx, company.ProfileImageKey); err == nil {
			resp.ProfileImageURL = url
		}
	}
	return resp, nil
}

func (s *CompanyService) EditProfile(ctx context.Context, companyID uuid.UUID, request request_models.EditCompanyRequest) error {
	fields := map[string]interface{}{
		"name":         request.Name,
		"phone":        request.Phone,
		"description":  request.Description,
		"industry":     request.Industry,
		"company_size": request.CompanySize,
		"location":     request.Location,
		"website":      request.Website,
	}
	if err := s.companyRepo.UpdateByID(ctx, companyID, fields); err != nil {
		return utils.ErrCompanyNotFound
	}
	return nil
}

func (s *CompanyService) UpdateProfileImage(ctx context.Context, companyID uuid.UUID, data []byte, contentType string) error {
	key, err := s.storage.Upload(ctx, "profile-images", data, contentType)
	if err != nil {
		return utils.ErrUploadFailed
	}
	if err := s.companyRepo.UpdateByID(ctx, companyID, map[string]interface{}{"profile_image_key": key}); err != nil {
		return utils.ErrCompanyNotFound
	}
	return nil
}

func (s *CompanyService) UpsertJobPost(ctx context.Context, companyID uuid.UUID, request request_models.JobPostRequest) error {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if company == nil {
		return utils.ErrCompanyNotFound
	}
	if company.IsVerified != db_models.VerificationAccepted {
		return utils.ErrCompanyNotVerified
	}

	skills, _ := json.Marshal(request.Skills)
	responsibilities, _ := json.Marshal(request.Responsibilities)
	perks, _ := json.Marshal(request.Perks)

	status := db_models.JobStatusOpen
	if request.Status != "" {
		status = db_models.JobStatus(request.Status)
	}

	post := &db_models.JobPost{
		CompanyID:        companyID,
		CompanyName:      company.Name,
		Title:            request.Title,
		Description:      request.Description,
		Location:         request.Location,
		EmploymentType:   request.EmploymentType,
		SalaryMin:        request.SalaryMin,
		SalaryMax:        request.SalaryMax,
		Skills:           skills,
		Responsibilities: responsibilities,
		Perks:            perks,
		Status:           status,
	}

	if request.ID != nil {
		post.ID = *request.ID
		if err := s.jobRepo.Update(ctx, post); err != nil {
			return utils.ErrJobPostNotFound
		}
		return nil
	}

	if err := s.jobRepo.Insert(ctx, post); err != nil {
		return utils.ErrWriteFailed
	}

	s.hub.Broadcast(Event{
		Type: EventNewJob,
		Payload: map[string]interface{}{
			"job_id":   post.ID,
			"title":    post.Title,
			"company":  company.Name,
			"location": post.Location,
		},
	})
	return nil
}

func (s *CompanyService) JobPosts(ctx context.Context, companyID uuid.UUID) ([]db_models.JobPost, error) {
	posts, err := s.jobRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(posts) == 0 {
		return nil, utils.ErrJobPostNotFound
	}
	return posts, nil
}

func (s *CompanyService) GetJobPost(ctx context.Context, jobID uuid.UUID) (*db_models.JobPost, error) {
	post, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrJobPostNotFound
	}
	return post, nil
}

func (s *CompanyService) DeleteJobPost(ctx context.Context, jobID uuid.UUID) error {
	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return utils.ErrJobPostNotFound
	}
	return nil
}

func (s *CompanyService) ApplicationsByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.JobApplication, error) {
	applications, err := s.applicationRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(applications) == 0 {
		return nil, utils.ErrApplicationNotFound
	}
	return applications, nil
}

func (s *CompanyService) ApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]db_models.JobApplication, error) {
	applications, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(applications) == 0 {
		return nil, utils.ErrApplicationNotFound
	}
	return applications, nil
}

func (s *CompanyService) ApplicationDetail(ctx context.Context, applicationID uuid.UUID) (*response_models.ApplicationDetailResponse, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if application == nil {
		return nil, utils.ErrApplicationNotFound
	}

	resp := &response_models.ApplicationDetailResponse{Application: application}
	if application.ResumeKey != "" {
		if url, err := s.storage.PresignedGetURL(ctx, application.ResumeKey); err == nil {
			resp.ResumeURL = url
		}
	}
	return resp, nil
}

func (s *CompanyService) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, request request_models.ApplicationStatusRequest) error {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if application == nil {
		return utils.ErrApplicationNotFound
	}

	status := db_models.ApplicationStatus(request.Status)
	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status, request.StatusMessage); err != nil {
		return utils.ErrApplicationNotFound
	}

	// Notifications are best-effort; the status change itself already stuck.
	s.hub.Publish(application.UserID.String(), Event{
		Type: EventApplicationStatus,
		Payload: map[string]interface{}{
			"application_id": applicationID,
			"job_id":         application.JobID,
			"company_name":   application.CompanyName,
			"job_title":      application.JobTitle,
			"status":         request.Status,
		},
	})

	if s.hasEmailNotifications(ctx, application.UserID) {
		if err := s.mail.SendApplicationStatusMail(application.Email, application.CompanyName, application.JobTitle, request.Status); err != nil {
			log.Printf("Failed to send status mail to %s: %v", application.Email, err)
		}
	}
	return nil
}

func (s *CompanyService) hasEmailNotifications(ctx context.Context, userID uuid.UUID) bool {
	sub, err := s.subscriptionRepo.CurrentForUser(ctx, userID)
	if err != nil || sub == nil {
		return false
	}
	var features []string
	if err := json.Unmarshal(sub.Features, &features); err != nil {
		return false
	}
	for _, feature := range features {
		if feature == "email_notification" {
			return true
		}
	}
	return false
}

func (s *CompanyService) SetInterviewDetails(ctx context.Context, applicationID uuid.UUID, request request_models.InterviewRequest) error {
	var at *int64
	if request.DateTime != 0 {
		at = &request.DateTime
	}
	status := db_models.InterviewStatus(request.InterviewStatus)
	if err := s.applicationRepo.SetInterview(ctx, applicationID, status, at, request.Message); err != nil {
		return utils.ErrApplicationNotFound
	}
	return nil
}

func (s *CompanyService) SearchUsers(ctx context.Context, query string) ([]db_models.User, error) {
	users, err := s.userRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}
