package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their
// embedded experience/education collections.
type ProfileRepository interface {
	GetByOwner(ctx context.Context, ownerID models.UserID) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	DeleteCascade(ctx context.Context, ownerID models.UserID) error

	AddExperience(ctx context.Context, ownerID models.UserID, entry *models.Experience) error
	RemoveExperience(ctx context.Context, ownerID models.UserID, profileID, entryID uint) error
	AddEducation(ctx context.Context, ownerID models.UserID, entry *models.Education) error
	RemoveEducation(ctx context.Context, ownerID models.UserID, profileID, entryID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// preloadEntries loads the owner plus both entry collections newest-first.
// Synthetic entry IDs are monotonically assigned, so descending ID order is
// insertion order reversed.
func (r *profileRepository) preloadEntries(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		})
}

func (r *profileRepository) GetByOwner(ctx context.Context, ownerID models.UserID) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(ownerID)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		if err := r.preloadEntries(r.db.WithContext(ctx)).
			Where("user_id = ?", ownerID).
			First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile", ownerID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	if err := r.preloadEntries(r.db.WithContext(ctx)).
		Order("profiles.created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Profile already exists for this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Omit("Experience", "Education", "User").Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

// DeleteCascade removes the owner's profile with its entries, then the user
// record itself, as one transaction. The owner's posts are left in place.
func (r *profileRepository) DeleteCascade(ctx context.Context, ownerID models.UserID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", ownerID).First(&profile).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// No profile yet: still delete the user below.
		} else {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, ownerID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateProfile(ctx, ownerID)
	cache.InvalidateUser(ctx, ownerID)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, ownerID models.UserID, entry *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, ownerID)
	return nil
}

func (r *profileRepository) RemoveExperience(ctx context.Context, ownerID models.UserID, profileID, entryID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Experience", entryID)
	}
	cache.InvalidateProfile(ctx, ownerID)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, ownerID models.UserID, entry *models.Education) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, ownerID)
	return nil
}

func (r *profileRepository) RemoveEducation(ctx context.Context, ownerID models.UserID, profileID, entryID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", entryID, profileID).
		Delete(&models.Education{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Education", entryID)
	}
	cache.InvalidateProfile(ctx, ownerID)
	return nil
}
