// Package usecase defines the application use case interfaces.
package usecase

import (
	"context"

	"refboard/internal/domain/entity"
	"refboard/internal/domain/repository"

	"github.com/google/uuid"
)

// Invite is a shareable referral invite for one profile.
type Invite struct {
	Link  string `json:"link"`
	QRPNG []byte `json:"qr_png"`
}

// ReferralUsecase defines the interface for browsing the referral network
type ReferralUsecase interface {
	// GetRootProfile retrieves the designated root account of the network
	GetRootProfile(ctx context.Context) (*entity.Profile, error)

	// GetProfile retrieves a single profile by id
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// GetDirectReferrals retrieves the direct referrals of a profile, oldest first
	GetDirectReferrals(ctx context.Context, parentID uuid.UUID) ([]*entity.Profile, error)

	// SearchProfiles runs a flat search over the network, capped at the
	// configured result limit
	SearchProfiles(ctx context.Context, text string, contact repository.ContactChannelFilter) ([]*entity.Profile, error)

	// ListPlanOptions retrieves the plan filter option set, price ascending
	ListPlanOptions(ctx context.Context) ([]*entity.Plan, error)

	// GetInvite builds the shareable invite of an existing profile
	GetInvite(ctx context.Context, username string) (*Invite, error)
}
