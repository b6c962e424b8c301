package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"worknest/internal/models/db_models"
)

type CompanyRepository interface {
	Insert(ctx context.Context, company *db_models.Company) error
	FindByEmail(ctx context.Context, email string) (*db_models.Company, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Company, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Company, error)
	UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	SetVerification(ctx context.Context, id uuid.UUID, status db_models.VerificationStatus) error
	ListAll(ctx context.Context) ([]db_models.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Insert(ctx context.Context, company *db_models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) FindByEmail(ctx context.Context, email string) (*db_models.Company, error) {
	var company db_models.Company
	err := r.db.WithContext(ctx).First(&company, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Company, error) {
	var company db_models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Company, error) {
	var companies []db_models.Company
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&db_models.Company{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *companyRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&db_models.Company{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *companyRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	res := r.db.WithContext(ctx).Model(&db_models.Company{}).
		Where("id = ?", id).
		Update("is_blocked", blocked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *companyRepository) SetVerification(ctx context.Context, id uuid.UUID, status db_models.VerificationStatus) error {
	res := r.db.WithContext(ctx).Model(&db_models.Company{}).
		Where("id = ?", id).
		Update("is_verified", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *companyRepository) ListAll(ctx context.Context) ([]db_models.Company, error) {
	var companies []db_models.Company
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
