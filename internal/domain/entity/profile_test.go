package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProfile_ResolvedPlan(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{
			name:    "no subscription falls back to free label",
			profile: Profile{},
			want:    "Gratuito",
		},
		{
			name: "subscription without plan name falls back to free label",
			profile: Profile{
				Subscription: &Subscription{Status: "active"},
			},
			want: "Gratuito",
		},
		{
			name: "active plan name wins",
			profile: Profile{
				Subscription: &Subscription{Status: "active", PlanName: "Premium"},
			},
			want: "Premium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.ResolvedPlan())
		})
	}
}

func TestProfile_IsRoot(t *testing.T) {
	parentID := uuid.New()

	root := Profile{}
	assert.True(t, root.IsRoot())

	child := Profile{ParentID: &parentID}
	assert.False(t, child.IsRoot())
}

func TestProfile_HasWhatsapp(t *testing.T) {
	assert.False(t, (&Profile{}).HasWhatsapp())
	assert.True(t, (&Profile{Whatsapp: "+5511999999999"}).HasWhatsapp())
}
