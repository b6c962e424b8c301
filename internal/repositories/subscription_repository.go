package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"worknest/internal/models/db_models"
)

type SubscriptionRepository interface {
	FindPlanByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	ListPlans(ctx context.Context, activeOnly bool) ([]db_models.Plan, error)
	InsertPlan(ctx context.Context, plan *db_models.Plan) error
	SetPlanActive(ctx context.Context, id uuid.UUID, active bool) error

	InsertSubscription(ctx context.Context, sub *db_models.Subscription) error
	// DeactivateCurrent clears the is_current flag on every current
	// subscription of the user. Affecting zero rows is fine: a first-time
	// subscriber has nothing to deactivate.
	DeactivateCurrent(ctx context.Context, userID uuid.UUID) error
	CurrentForUser(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error)

	InsertHistory(ctx context.Context, record *db_models.SubscriptionHistory) error
	HistoryForUser(ctx context.Context, userID uuid.UUID) ([]db_models.SubscriptionHistory, error)
	ListAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *subscriptionRepository) ListPlans(ctx context.Context, activeOnly bool) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = TRUE")
	}
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *subscriptionRepository) InsertPlan(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *subscriptionRepository) SetPlanActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).Model(&db_models.Plan{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *subscriptionRepository) InsertSubscription(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) DeactivateCurrent(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Subscription{}).
		Where("user_id = ? AND is_current = TRUE", userID).
		Updates(map[string]interface{}{
			"is_current": false,
			"status":     db_models.SubStatusExpired,
		}).Error
}

func (r *subscriptionRepository) CurrentForUser(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_current = TRUE", userID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) InsertHistory(ctx context.Context, record *db_models.SubscriptionHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *subscriptionRepository) HistoryForUser(ctx context.Context, userID uuid.UUID) ([]db_models.SubscriptionHistory, error) {
	var records []db_models.SubscriptionHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *subscriptionRepository) ListAllSubscriptions(ctx context.Context) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	if err := r.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
