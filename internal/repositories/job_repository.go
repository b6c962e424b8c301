package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"worknest/internal/models/db_models"
)

type JobRepository interface {
	Insert(ctx context.Context, post *db_models.JobPost) error
	Update(ctx context.Context, post *db_models.JobPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.JobPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListOpen(ctx context.Context) ([]db_models.JobPost, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.JobPost, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Insert(ctx context.Context, post *db_models.JobPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *jobRepository) Update(ctx context.Context, post *db_models.JobPost) error {
	res := r.db.WithContext(ctx).Model(&db_models.JobPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":            post.Title,
			"description":      post.Description,
			"location":         post.Location,
			"employment_type":  post.EmploymentType,
			"salary_min":       post.SalaryMin,
			"salary_max":       post.SalaryMax,
			"skills":           post.Skills,
			"responsibilities": post.Responsibilities,
			"perks":            post.Perks,
			"status":           post.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.JobPost, error) {
	var post db_models.JobPost
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&db_models.JobPost{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobRepository) ListOpen(ctx context.Context) ([]db_models.JobPost, error) {
	var posts []db_models.JobPost
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.JobStatusOpen).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *jobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]db_models.JobPost, error) {
	var posts []db_models.JobPost
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
