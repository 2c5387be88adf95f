package user

import (
	"NutriSense-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error

		// UpdateProfileWithWeight persists the profile change and the weight
		// log entry in one transaction so the latest-weight-wins resolver can
		// never observe one without the other.
		UpdateProfileWithWeight(ctx context.Context, user *entities.User, weightLog *entities.WeightLog) error

		DeleteUserWithLogs(ctx context.Context, id string) error

		SubscribeNewsletter(ctx context.Context, sub *entities.NewsletterSubscriber) error
		IsNewsletterSubscribed(ctx context.Context, email string) (bool, error)

		CountUsers(ctx context.Context) (int64, error)
		CountVerifiedUsers(ctx context.Context) (int64, error)
		CountSignupsSince(ctx context.Context, since time.Time) (int64, error)
		CountNewsletterSubscribers(ctx context.Context) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateProfileWithWeight(ctx context.Context, user *entities.User, weightLog *entities.WeightLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if weightLog != nil {
			if err := tx.Create(weightLog).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) DeleteUserWithLogs(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entities.FoodLog{},
			&entities.ExerciseLog{},
			&entities.WeightLog{},
			&entities.CravingLog{},
			&entities.MealScan{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}

func (r *userRepository) SubscribeNewsletter(ctx context.Context, sub *entities.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *userRepository) IsNewsletterSubscribed(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.NewsletterSubscriber{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountVerifiedUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("verified = ?", true).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountSignupsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountNewsletterSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.NewsletterSubscriber{}).Count(&count).Error
	return count, err
}
