package model

import (
	"time"

	"refboard/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// It represents one account in the referral network. The referral counters are
// denormalized and maintained by backend triggers; this service never writes them.
type ProfileModel struct {
	ID                   uuid.UUID                                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username             string                                      `gorm:"type:varchar(64);not null;uniqueIndex"`
	FullName             *string                                     `gorm:"type:varchar(255)"`
	AvatarURL            *string                                     `gorm:"type:text"`
	ParentID             *uuid.UUID                                  `gorm:"type:uuid;index"`
	DirectReferralsCount int                                         `gorm:"not null;default:0"`
	TotalNetworkSize     int                                         `gorm:"not null;default:0"`
	Whatsapp             *string                                     `gorm:"type:varchar(32)"`
	SocialMediaLinks     *datatypes.JSONType[entity.SocialMediaLinks] `gorm:"type:jsonb"`
	DisplaySocialLinks   bool                                        `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Subscription is the profile's active subscription, preloaded on demand.
	Subscription *SubscriptionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
