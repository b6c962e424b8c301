package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worknest/internal/models/db_models"
	"worknest/internal/models/request_models"
	"worknest/pkg/otpcache"
	"worknest/pkg/utils"
)

type userServiceFixture struct {
	service UserServiceInterface

	users        *fakeUserRepo
	companies    *fakeCompanyRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	cache        *otpcache.MemoryStore
	mail         *fakeMail
	storage      *fakeStorage
	hub          *NotificationHub
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	f := &userServiceFixture{
		users:        newFakeUserRepo(),
		companies:    newFakeCompanyRepo(),
		jobs:         newFakeJobRepo(),
		applications: newFakeApplicationRepo(),
		cache:        otpcache.NewMemoryStore(),
		mail:         &fakeMail{},
		storage:      newFakeStorage(),
		hub:          NewNotificationHub(),
	}
	f.service = NewUserService(f.users, f.companies, f.jobs, f.applications, f.cache, f.mail, f.storage, f.hub)
	return f
}

func registerRequest() request_models.RegisterUserRequest {
	return request_models.RegisterUserRequest{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@example.com",
		Phone:     "9999999999",
		Password:  "secret123",
	}
}

func TestRegisterStagesDataAndSendsOtp(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	require.NoError(t, f.service.Register(ctx, registerRequest()))

	_, ok, err := f.cache.Data(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.True(t, ok, "registration payload must be staged")
	require.Len(t, f.mail.otps, 1)
	assert.Equal(t, "asha@example.com", f.mail.otps[0].to)
	assert.Empty(t, f.users.inserted, "no row before OTP verification")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	f.users.add(&db_models.User{Email: "asha@example.com"})

	err := f.service.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestVerifyOtpCreatesAccount(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	require.NoError(t, f.service.Register(ctx, registerRequest()))

	require.NoError(t, f.service.VerifyOtp(ctx, "asha@example.com", f.mail.lastOtp()))

	require.Len(t, f.users.inserted, 1)
	created := f.users.inserted[0]
	assert.Equal(t, "asha@example.com", created.Email)
	assert.Equal(t, db_models.RoleUser, created.Role)
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(created.PasswordHash, "secret123"))

	// Staged entries are consumed: replaying the same OTP must fail.
	err := f.service.VerifyOtp(ctx, "asha@example.com", f.mail.lastOtp())
	assert.ErrorIs(t, err, utils.ErrOtpExpired)
}

func TestResendOtpRequiresPendingRegistration(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	err := f.service.ResendOtp(ctx, "stranger@example.com")
	assert.ErrorIs(t, err, utils.ErrOtpExpired)
	assert.Empty(t, f.mail.otps, "no mail may go to an address with nothing staged")
}

func TestResendOtpReplacesCode(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	require.NoError(t, f.service.Register(ctx, registerRequest()))

	require.NoError(t, f.service.ResendOtp(ctx, "asha@example.com"))
	require.Len(t, f.mail.otps, 2)

	// The latest code is the one the cache honors.
	code, ok, err := f.cache.Otp(ctx, "asha@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, f.mail.lastOtp(), code)
}

func TestVerifyOtpWrongCode(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	require.NoError(t, f.service.Register(ctx, registerRequest()))

	err := f.service.VerifyOtp(ctx, "asha@example.com", "000000")
	assert.ErrorIs(t, err, utils.ErrIncorrectOtp)
	assert.Empty(t, f.users.inserted)
}

func TestVerifyOtpNothingStaged(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	err := f.service.VerifyOtp(ctx, "nobody@example.com", "123456")
	assert.ErrorIs(t, err, utils.ErrOtpExpired)
}

func TestVerifyOtpStagedDataGone(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	// OTP present but the registration payload is gone, as happens when the
	// data key expires first or was never written.
	require.NoError(t, f.cache.StageOtp(ctx, "asha@example.com", "123456", otpcache.StagingTTL))

	err := f.service.VerifyOtp(ctx, "asha@example.com", "123456")
	assert.ErrorIs(t, err, utils.ErrStagedDataGone)
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	f.users.add(&db_models.User{
		FirstName:    "Asha",
		Email:        "asha@example.com",
		PasswordHash: hash,
	})

	result, err := f.service.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", result.Data.Email)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := utils.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleUser, claims.Role)
}

func TestLoginBlockedBeforePasswordCheck(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	f.users.add(&db_models.User{
		Email:        "asha@example.com",
		PasswordHash: hash,
		IsBlocked:    true,
	})

	// Even the correct password cannot get a blocked account in.
	_, err = f.service.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, utils.ErrAccountBlocked)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	f.users.add(&db_models.User{Email: "asha@example.com", PasswordHash: hash})

	_, err = f.service.Login(ctx, request_models.LoginRequest{Email: "asha@example.com", Password: "nope"})
	assert.ErrorIs(t, err, utils.ErrInvalidPassword)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	_, err := f.service.Login(ctx, request_models.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, utils.ErrEmailNotFound)
}

func TestApplyInsertsAndNotifiesCompany(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	user := f.users.add(&db_models.User{FirstName: "Asha", LastName: "Nair", Email: "asha@example.com"})
	company := f.companies.add(&db_models.Company{Name: "Acme", Email: "hr@acme.test"})
	job := f.jobs.add(&db_models.JobPost{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Title:       "Backend Engineer",
		Status:      db_models.JobStatusOpen,
	})

	events, cancel := f.hub.Subscribe(company.ID.String())
	defer cancel()

	application, err := f.service.Apply(ctx, user.ID, job.ID, "hello", []byte("pdf-bytes"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, company.ID, application.CompanyID)
	assert.Equal(t, "Backend Engineer", application.JobTitle)
	assert.Equal(t, db_models.ApplicationPending, application.Status)
	assert.NotEmpty(t, application.ResumeKey)

	select {
	case event := <-events:
		assert.Equal(t, EventApplicationNew, event.Type)
	default:
		t.Fatal("expected a notification for the company")
	}
}

func TestApplyUnknownJob(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	user := f.users.add(&db_models.User{Email: "asha@example.com"})

	_, err := f.service.Apply(ctx, user.ID, uuid.New(), "", []byte("x"), "application/pdf")
	assert.ErrorIs(t, err, utils.ErrJobPostNotFound)
}

func TestJobBoardPairsPostsWithCompanies(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	company := f.companies.add(&db_models.Company{Name: "Acme", Email: "hr@acme.test"})
	f.jobs.add(&db_models.JobPost{CompanyID: company.ID, Title: "A", Status: db_models.JobStatusOpen})
	f.jobs.add(&db_models.JobPost{CompanyID: company.ID, Title: "B", Status: db_models.JobStatusOpen})
	f.jobs.add(&db_models.JobPost{CompanyID: company.ID, Title: "C", Status: db_models.JobStatusClosed})

	board, err := f.service.JobBoard(ctx)
	require.NoError(t, err)
	assert.Len(t, board.JobPosts, 2, "closed posts stay off the board")
	require.Len(t, board.Companies, 1, "companies are deduplicated")
	assert.Equal(t, "Acme", board.Companies[0].Name)
}

func TestForgotPasswordFlow(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)
	f.users.add(&db_models.User{Email: "asha@example.com"})

	require.NoError(t, f.service.ForgotPasswordEmail(ctx, "asha@example.com"))
	require.NoError(t, f.service.ForgotPasswordOtp(ctx, "asha@example.com", f.mail.lastOtp()))
	require.NoError(t, f.service.ForgotPasswordReset(ctx, "asha@example.com", "newsecret"))

	user := f.users.byEmail["asha@example.com"]
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "newsecret"))
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctx := context.Background()
	f := newUserServiceFixture(t)

	err := f.service.ForgotPasswordEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, utils.ErrEmailNotFound)
	assert.Empty(t, f.mail.otps)
}
