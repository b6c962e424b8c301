package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"worknest/internal/models/db_models"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := r.db.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
