package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserEmail        string    `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email"      json:"user_email"`
	UserPasswordHash []byte    `gorm:"type:bytea;column:user_password_hash"                          json:"-"`

	// Admin-created accounts skip the email verification round trip.
	UserIsConfirmed bool `gorm:"not null;default:false;column:user_is_confirmed" json:"user_is_confirmed"`

	// Invited accounts carry no password until the reset link is used.
	UserInvitedAt *time.Time `gorm:"column:user_invited_at" json:"user_invited_at,omitempty"`

	UserFullName *string `gorm:"type:varchar(150);column:user_full_name" json:"user_full_name,omitempty"`

	UserCreatedAt time.Time      `gorm:"autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"          json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
