// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"refboard/config"
	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"
	"refboard/internal/domain/service"
	"refboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrRootProfileMissing is returned when the configured root account does not exist
	ErrRootProfileMissing = errors.New("root profile missing")
	// ErrProfileNotFound is returned when a profile lookup matches no record
	ErrProfileNotFound = errors.New("profile not found")
)

type referralService struct {
	profileRepo   repository.ProfileRepository
	planRepo      repository.PlanRepository
	planCache     service.PlanCache
	inviteService service.InviteService
	config        *config.Config
	logger        *slog.Logger
}

// NewReferralService creates a new referral browsing service instance
func NewReferralService(
	profileRepo repository.ProfileRepository,
	planRepo repository.PlanRepository,
	planCache service.PlanCache,
	inviteService service.InviteService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReferralUsecase {
	return &referralService{
		profileRepo:   profileRepo,
		planRepo:      planRepo,
		planCache:     planCache,
		inviteService: inviteService,
		config:        cfg,
		logger:        logger,
	}
}

// GetRootProfile retrieves the designated root account of the network
func (s *referralService) GetRootProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByUsername(ctx, s.config.Referral.RootUsername)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrRootProfileMissing
		}

		return nil, errors.Wrap(err, "failed to find root profile")
	}

	return profile, nil
}

// GetProfile retrieves a single profile by id
func (s *referralService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// GetDirectReferrals retrieves the direct referrals of a profile, oldest first
func (s *referralService) GetDirectReferrals(ctx context.Context, parentID uuid.UUID) ([]*entity.Profile, error) {
	referrals, err := s.profileRepo.ListProfilesByParent(ctx, parentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list direct referrals")
	}

	return referrals, nil
}

// SearchProfiles runs a flat search over the network. The result set is capped
// at the configured limit to bound the payload of broad queries.
func (s *referralService) SearchProfiles(ctx context.Context, text string, contact repository.ContactChannelFilter) ([]*entity.Profile, error) {
	search := repository.ProfileSearch{
		Text:           strings.TrimSpace(text),
		ContactChannel: contact,
		Limit:          s.config.Referral.SearchLimit,
	}

	profiles, err := s.profileRepo.SearchProfiles(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return profiles, nil
}

// ListPlanOptions retrieves the plan filter option set through the cache.
// Cache failures are logged and absorbed so the catalog stays available.
func (s *referralService) ListPlanOptions(ctx context.Context) ([]*entity.Plan, error) {
	cached, err := s.planCache.GetPlans(ctx)
	if err != nil {
		s.logger.Warn("Plan cache read failed, falling back to database",
			slog.String("error", err.Error()),
		)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	plans, err := s.planRepo.ListActivePlans(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active plans")
	}

	if err := s.planCache.SetPlans(ctx, plans); err != nil {
		s.logger.Warn("Plan cache write failed",
			slog.String("error", err.Error()),
		)
	}

	return plans, nil
}

// GetInvite builds the shareable invite of an existing profile
func (s *referralService) GetInvite(ctx context.Context, username string) (*usecase.Invite, error) {
	profile, err := s.profileRepo.FindProfileByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile for invite")
	}

	link := s.inviteService.InviteLink(profile.Username)
	png, err := s.inviteService.GenerateInviteQR(profile.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR")
	}

	return &usecase.Invite{
		Link:  link,
		QRPNG: png,
	}, nil
}
