// Package browser implements the referral network browser core: the lazily
// loaded tree, the debounced flat search, and the paged payment history that
// back one dashboard session.
package browser

import (
	"refboard/internal/domain/entity"

	"github.com/google/uuid"
)

// Node is one profile in the lazily loaded referral tree. Children are fetched
// at most once per session; after the first successful fetch the node keeps its
// child list across collapse and re-expand.
type Node struct {
	Profile *entity.Profile

	// Expanded reports whether the node's children are currently shown.
	Expanded bool

	// Loading is set while a children fetch for this node is in flight.
	Loading bool

	// Loaded is set after the first successful children fetch, including one
	// that returned no rows. A failed fetch leaves it unset so the next
	// expand retries.
	Loaded bool

	// Children holds the ids of the direct referrals in display order
	// (oldest referral first). Meaningful only when Loaded is set.
	Children []uuid.UUID
}

// CanExpand reports whether the node should offer an expand affordance. The
// cached referral counter suppresses it for leaves before any fetch happens.
func (n *Node) CanExpand() bool {
	if n.Profile == nil {
		return false
	}
	if n.Loaded {
		return len(n.Children) > 0
	}

	return n.Profile.DirectReferralsCount > 0
}

// Row is one visible line of the browser, ready for rendering. Depth is zero
// for the root and for every flat result.
type Row struct {
	Profile   *entity.Profile
	Depth     int
	Expanded  bool
	Loading   bool
	CanExpand bool
}

// Notifier surfaces user-facing failures of background work, the equivalent of
// a toast in the dashboard.
type Notifier interface {
	Error(message string)
}

// NopNotifier discards every notification.
type NopNotifier struct{}

// Error implements Notifier.
func (NopNotifier) Error(string) {}
