// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FreePlanName is the label shown for profiles without an active paid subscription.
const FreePlanName = "Gratuito"

// Profile is an account participating in the referral network. ParentID edges form
// a forest rooted at the master account; the counters are maintained server-side and
// are used here only as display hints (a zero DirectReferralsCount suppresses the
// expand affordance before any children are fetched).
type Profile struct {
	ID                   uuid.UUID         `json:"id"`
	Username             string            `json:"username"`               // Unique, immutable handle chosen at signup.
	FullName             string            `json:"full_name,omitempty"`    // Optional display name; empty when never set.
	AvatarURL            string            `json:"avatar_url,omitempty"`   // Optional image reference.
	ParentID             *uuid.UUID        `json:"parent_id"`              // Referring profile; nil for the network root.
	DirectReferralsCount int               `json:"direct_referrals_count"` // Cached count of immediate children.
	TotalNetworkSize     int               `json:"total_network_size"`     // Cached count of all descendants.
	Whatsapp             string            `json:"whatsapp,omitempty"`     // Public contact number; empty when not shared.
	SocialMediaLinks     *SocialMediaLinks `json:"social_media_links,omitempty"`
	DisplaySocialLinks   bool              `json:"display_social_links"`
	Subscription         *Subscription     `json:"subscription,omitempty"` // Zero-or-one active subscription.
	CreatedAt            time.Time         `json:"created_at"`
}

// SocialMediaLinks holds the optional public social handles of a profile.
type SocialMediaLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Subscription is the active subscription of a profile, resolved together with its
// plan name when the profile is fetched.
type Subscription struct {
	Status   string `json:"status"`
	PlanName string `json:"plan_name,omitempty"`
}

// ResolvedPlan returns the plan label to display for this profile, falling back to
// the free label when no subscription or plan is linked.
func (p *Profile) ResolvedPlan() string {
	if p.Subscription != nil && p.Subscription.PlanName != "" {
		return p.Subscription.PlanName
	}

	return FreePlanName
}

// HasWhatsapp reports whether the profile shares a public WhatsApp contact.
func (p *Profile) HasWhatsapp() bool {
	return p.Whatsapp != ""
}

// IsRoot reports whether the profile has no referrer.
func (p *Profile) IsRoot() bool {
	return p.ParentID == nil
}
