package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfileModel struct {
	ProfileID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:profile_id" json:"profile_id"`
	ProfileUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:profile_user_id"            json:"profile_user_id"`

	ProfileOrganizationID *uuid.UUID `gorm:"type:uuid;column:profile_organization_id" json:"profile_organization_id,omitempty"`

	ProfileRole string `gorm:"type:varchar(20);not null;default:'parent';column:profile_role" json:"profile_role"`
	ProfileTier string `gorm:"type:varchar(20);not null;default:'free';column:profile_tier"   json:"profile_tier"`

	ProfileTrialEndsAt *time.Time `gorm:"column:profile_trial_ends_at" json:"profile_trial_ends_at,omitempty"`

	ProfileCreatedAt time.Time `gorm:"autoCreateTime;column:profile_created_at" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"autoUpdateTime;column:profile_updated_at" json:"profile_updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }
