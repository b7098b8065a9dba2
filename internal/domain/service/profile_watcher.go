package service

import (
	"context"

	"github.com/google/uuid"
)

// ProfileChange is the payload of a profile update pushed by the backend change
// feed. Optional fields mirror the profile entity; absent values mean unchanged.
type ProfileChange struct {
	ProfileID string `json:"profile_id"`
	Username  string `json:"username,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// UnwatchFunc tears down a single profile watch. Safe to call more than once.
type UnwatchFunc func()

// ProfileWatcher exposes the realtime change feed for individual profiles.
// Every watch must be torn down with the returned UnwatchFunc to avoid leaked
// listeners when a dashboard session is disposed.
type ProfileWatcher interface {
	// WatchProfile registers a handler for updates to the given profile.
	WatchProfile(ctx context.Context, profileID uuid.UUID, handler func(*ProfileChange)) (UnwatchFunc, error)

	// Close releases the underlying feed connection.
	Close() error
}
