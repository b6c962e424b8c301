package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"worknest/internal/models/db_models"
	"worknest/internal/models/request_models"
	"worknest/pkg/otpcache"
	"worknest/pkg/utils"
)

type companyServiceFixture struct {
	service CompanyServiceInterface

	companies     *fakeCompanyRepo
	users         *fakeUserRepo
	jobs          *fakeJobRepo
	applications  *fakeApplicationRepo
	subscriptions *fakeSubscriptionRepo
	cache         *otpcache.MemoryStore
	mail          *fakeMail
	storage       *fakeStorage
	hub           *NotificationHub
}

func newCompanyServiceFixture(t *testing.T) *companyServiceFixture {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	f := &companyServiceFixture{
		companies:     newFakeCompanyRepo(),
		users:         newFakeUserRepo(),
		jobs:          newFakeJobRepo(),
		applications:  newFakeApplicationRepo(),
		subscriptions: newFakeSubscriptionRepo(),
		cache:         otpcache.NewMemoryStore(),
		mail:          &fakeMail{},
		storage:       newFakeStorage(),
		hub:           NewNotificationHub(),
	}
	f.service = NewCompanyService(f.companies, f.users, f.jobs, f.applications, f.subscriptions, f.cache, f.mail, f.storage, f.hub)
	return f
}

func companyRegisterRequest() request_models.RegisterCompanyRequest {
	return request_models.RegisterCompanyRequest{
		Name:     "Acme Corp",
		Email:    "hr@acme.test",
		Phone:    "8888888888",
		Password: "secret123",
	}
}

func TestCompanyRegisterUploadsCertificateAndStages(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	err := f.service.Register(ctx, companyRegisterRequest(), []byte("certificate-bytes"), "application/pdf")
	require.NoError(t, err)

	// Certificate lands in object storage before verification.
	require.Len(t, f.storage.objects, 1)
	require.Len(t, f.mail.otps, 1)
	assert.Empty(t, f.companies.inserted)
}

func TestCompanyVerifyOtpCreatesPendingCompany(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	require.NoError(t, f.service.Register(ctx, companyRegisterRequest(), []byte("certificate-bytes"), "application/pdf"))
	require.NoError(t, f.service.VerifyOtp(ctx, "hr@acme.test", f.mail.lastOtp()))

	require.Len(t, f.companies.inserted, 1)
	created := f.companies.inserted[0]
	assert.Equal(t, db_models.VerificationPending, created.IsVerified)
	assert.NotEmpty(t, created.CertificateKey, "staged certificate key must be carried over")
	assert.Equal(t, db_models.RoleCompany, created.Role)
}

func TestCompanyResendOtpRequiresPendingRegistration(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	err := f.service.ResendOtp(ctx, "stranger@acme.test")
	assert.ErrorIs(t, err, utils.ErrOtpExpired)
	assert.Empty(t, f.mail.otps)
}

func TestUpsertJobPostRequiresVerification(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	company := f.companies.add(&db_models.Company{
		Name:       "Acme Corp",
		Email:      "hr@acme.test",
		IsVerified: db_models.VerificationPending,
	})

	err := f.service.UpsertJobPost(ctx, company.ID, request_models.JobPostRequest{
		Title:       "Backend Engineer",
		Description: "Go services",
		Location:    "Remote",
	})
	assert.ErrorIs(t, err, utils.ErrCompanyNotVerified)
	assert.Empty(t, f.jobs.inserted)
}

func TestUpsertJobPostCreatesAndBroadcasts(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	company := f.companies.add(&db_models.Company{
		Name:       "Acme Corp",
		Email:      "hr@acme.test",
		IsVerified: db_models.VerificationAccepted,
	})

	events, cancel := f.hub.Subscribe("seeker-1")
	defer cancel()

	err := f.service.UpsertJobPost(ctx, company.ID, request_models.JobPostRequest{
		Title:       "Backend Engineer",
		Description: "Go services",
		Location:    "Remote",
		Skills:      []string{"go", "postgres"},
	})
	require.NoError(t, err)

	require.Len(t, f.jobs.inserted, 1)
	post := f.jobs.inserted[0]
	assert.Equal(t, "Acme Corp", post.CompanyName)
	assert.Equal(t, db_models.JobStatusOpen, post.Status)

	select {
	case event := <-events:
		assert.Equal(t, EventNewJob, event.Type)
	default:
		t.Fatal("expected a broadcast for the new post")
	}
}

func TestUpsertJobPostUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	company := f.companies.add(&db_models.Company{
		Name:       "Acme Corp",
		Email:      "hr@acme.test",
		IsVerified: db_models.VerificationAccepted,
	})
	post := f.jobs.add(&db_models.JobPost{CompanyID: company.ID, Title: "Old title"})

	err := f.service.UpsertJobPost(ctx, company.ID, request_models.JobPostRequest{
		ID:          &post.ID,
		Title:       "New title",
		Description: "d",
		Location:    "Remote",
	})
	require.NoError(t, err)
	require.Len(t, f.jobs.updated, 1)
	assert.Equal(t, "New title", f.jobs.updated[0].Title)
	assert.Empty(t, f.jobs.inserted, "update must not create a second post")
}

func TestUpdateApplicationStatusNotifiesApplicant(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	user := f.users.add(&db_models.User{Email: "asha@example.com"})
	application := f.applications.add(&db_models.JobApplication{
		UserID:      user.ID,
		CompanyName: "Acme Corp",
		JobTitle:    "Backend Engineer",
		Email:       user.Email,
	})

	events, cancel := f.hub.Subscribe(user.ID.String())
	defer cancel()

	err := f.service.UpdateApplicationStatus(ctx, application.ID, request_models.ApplicationStatusRequest{
		Status:        "shortlisted",
		StatusMessage: "see you next week",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.ApplicationShortlisted, application.Status)

	select {
	case event := <-events:
		assert.Equal(t, EventApplicationStatus, event.Type)
	default:
		t.Fatal("expected a status notification for the applicant")
	}

	// No email-notification plan, so no mail goes out.
	assert.Empty(t, f.mail.status)
}

func TestUpdateApplicationStatusMailsSubscribedApplicant(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	user := f.users.add(&db_models.User{Email: "asha@example.com"})
	application := f.applications.add(&db_models.JobApplication{
		UserID:      user.ID,
		CompanyName: "Acme Corp",
		JobTitle:    "Backend Engineer",
		Email:       user.Email,
	})
	f.subscriptions.current[user.ID] = &db_models.Subscription{
		UserID:    user.ID,
		Features:  datatypes.JSON(`["email_notification"]`),
		IsCurrent: true,
	}

	err := f.service.UpdateApplicationStatus(ctx, application.ID, request_models.ApplicationStatusRequest{
		Status: "hired",
	})
	require.NoError(t, err)

	require.Len(t, f.mail.status, 1)
	assert.Equal(t, "asha@example.com", f.mail.status[0].to)
	assert.Equal(t, "hired", f.mail.status[0].code)
}

func TestUpdateApplicationStatusUnknownApplication(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	err := f.service.UpdateApplicationStatus(ctx, uuid.New(), request_models.ApplicationStatusRequest{Status: "viewed"})
	assert.ErrorIs(t, err, utils.ErrApplicationNotFound)
}

func TestSetInterviewDetails(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	application := f.applications.add(&db_models.JobApplication{})

	err := f.service.SetInterviewDetails(ctx, application.ID, request_models.InterviewRequest{
		InterviewStatus: "scheduled",
		DateTime:        1760000000,
		Message:         "office, 10am",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.InterviewScheduled, application.InterviewStatus)
	require.NotNil(t, application.InterviewAt)
	assert.EqualValues(t, 1760000000, *application.InterviewAt)
}

func TestApplicationDetailIncludesResumeLink(t *testing.T) {
	ctx := context.Background()
	f := newCompanyServiceFixture(t)

	application := f.applications.add(&db_models.JobApplication{ResumeKey: "resumes/obj-1"})

	detail, err := f.service.ApplicationDetail(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/resumes/obj-1", detail.ResumeURL)
}
