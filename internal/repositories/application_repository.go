package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"worknest/internal/models/db_models"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, application *db_models.JobApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.JobApplication, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.JobApplication, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.JobApplication, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]db_models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ApplicationStatus, message string) error
	SetInterview(ctx context.Context, id uuid.UUID, status db_models.InterviewStatus, at *int64, message string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Insert(ctx context.Context, application *db_models.JobApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.JobApplication, error) {
	var application db_models.JobApplication
	err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.JobApplication, error) {
	var applications []db_models.JobApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.JobApplication, error) {
	var applications []db_models.JobApplication
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]db_models.JobApplication, error) {
	var applications []db_models.JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ApplicationStatus, message string) error {
	res := r.db.WithContext(ctx).Model(&db_models.JobApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"status_message": message,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepository) SetInterview(ctx context.Context, id uuid.UUID, status db_models.InterviewStatus, at *int64, message string) error {
	res := r.db.WithContext(ctx).Model(&db_models.JobApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"interview_status":  status,
			"interview_at":      at,
			"interview_message": message,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
