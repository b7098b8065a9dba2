// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"refboard/internal/domain/entity"
	"refboard/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile lookup matches no record.
	ErrProfileNotFound = errors.New("profile not found")
)

// ContactChannelFilter narrows a search to profiles with or without a public
// WhatsApp contact. The empty value means no narrowing.
type ContactChannelFilter string

const (
	ContactChannelAll     ContactChannelFilter = "all"
	ContactChannelPresent ContactChannelFilter = "yes"
	ContactChannelAbsent  ContactChannelFilter = "no"
)

// ProfileSearch describes a flat search over the referral network. Text matches
// full name or username as a case-insensitive substring; a zero Limit means the
// caller did not bound the result set and the repository applies no cap.
type ProfileSearch struct {
	Text           string
	ContactChannel ContactChannelFilter
	Limit          int
}

// ProfileRepository defines the read operations against the referral network.
// All mutations happen in the managed backend; this client only reads.
type ProfileRepository interface {
	// FindProfileByUsername retrieves a single profile by its unique handle,
	// with its active subscription and plan resolved.
	FindProfileByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// FindProfileByID retrieves a single profile by id.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// ListProfilesByParent retrieves the direct referrals of a profile ordered by
	// creation time ascending (oldest referral first).
	ListProfilesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Profile, error)

	// SearchProfiles retrieves profiles matching the search predicates as a flat
	// result set, each with its resolved subscription and plan.
	SearchProfiles(ctx context.Context, search ProfileSearch) ([]*entity.Profile, error)
}
