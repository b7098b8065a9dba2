package postgres

import (
	"context"
	"strings"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	"refboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// withSubscription preloads the active subscription and its plan so callers can
// resolve the display label without a second round trip.
func (repo *profileRepository) withSubscription(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Subscription", "status = ?", model.SubscriptionStatusActive).
		Preload("Subscription.Plan")
}

// FindProfileByUsername retrieves a single profile by its unique handle.
func (repo *profileRepository) FindProfileByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.withSubscription(ctx).
		Where("username = ?", username).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByID retrieves a single profile by id.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.withSubscription(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// ListProfilesByParent retrieves the direct referrals of a profile, oldest first.
func (repo *profileRepository) ListProfilesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.withSubscription(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by parent")
	}

	return toProfileDomainSlice(profileModels), nil
}

// SearchProfiles retrieves profiles matching the search predicates as a flat set.
// Text matches username or full name case-insensitively; results keep the oldest
// accounts first so repeated searches are stable.
func (repo *profileRepository) SearchProfiles(ctx context.Context, search repository.ProfileSearch) ([]*entity.Profile, error) {
	query := repo.withSubscription(ctx)

	if text := strings.TrimSpace(search.Text); text != "" {
		pattern := "%" + text + "%"
		query = query.Where("username ILIKE ? OR full_name ILIKE ?", pattern, pattern)
	}

	switch search.ContactChannel {
	case repository.ContactChannelPresent:
		query = query.Where("whatsapp IS NOT NULL AND whatsapp <> ''")
	case repository.ContactChannelAbsent:
		query = query.Where("whatsapp IS NULL OR whatsapp = ''")
	case repository.ContactChannelAll, "":
		// No narrowing.
	}

	if search.Limit > 0 {
		query = query.Limit(search.Limit)
	}

	var profileModels []*model.ProfileModel
	if err := query.
		Order("created_at ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return toProfileDomainSlice(profileModels), nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:                   data.ID,
		Username:             data.Username,
		ParentID:             data.ParentID,
		DirectReferralsCount: data.DirectReferralsCount,
		TotalNetworkSize:     data.TotalNetworkSize,
		DisplaySocialLinks:   data.DisplaySocialLinks,
		CreatedAt:            data.CreatedAt,
	}

	if data.FullName != nil {
		profile.FullName = *data.FullName
	}
	if data.AvatarURL != nil {
		profile.AvatarURL = *data.AvatarURL
	}
	if data.Whatsapp != nil {
		profile.Whatsapp = *data.Whatsapp
	}
	if data.SocialMediaLinks != nil {
		links := data.SocialMediaLinks.Data()
		profile.SocialMediaLinks = &links
	}
	if data.Subscription != nil {
		profile.Subscription = toSubscriptionDomain(data.Subscription)
	}

	return profile
}

func toProfileDomainSlice(data []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	subscription := &entity.Subscription{
		Status: data.Status,
	}
	if data.Plan != nil {
		subscription.PlanName = data.Plan.Name
	}

	return subscription
}
