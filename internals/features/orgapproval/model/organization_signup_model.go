package model

import (
	"time"

	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SignupStatus string

const (
	SignupPending  SignupStatus = "pending"
	SignupApproved SignupStatus = "approved"
	SignupRejected SignupStatus = "rejected"
)

// OrganizationSignupModel is a prospective organization waiting to be turned
// into a live tenant on both platforms.
type OrganizationSignupModel struct {
	SignupID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:signup_id" json:"signup_id"`

	SignupOrganizationName string            `gorm:"type:varchar(150);not null;column:signup_organization_name" json:"signup_organization_name"`
	SignupCentreName       string            `gorm:"type:varchar(150);not null;column:signup_centre_name"       json:"signup_centre_name"`
	SignupPlanTier         orgModel.PlanTier `gorm:"type:varchar(20);not null;default:'solo';column:signup_plan_tier" json:"signup_plan_tier"`

	SignupContactName  string `gorm:"type:varchar(150);not null;column:signup_contact_name"  json:"signup_contact_name"`
	SignupContactEmail string `gorm:"type:varchar(255);not null;column:signup_contact_email" json:"signup_contact_email"`

	SignupStatus SignupStatus `gorm:"type:varchar(20);not null;default:'pending';column:signup_status" json:"signup_status"`

	SignupCreatedAt time.Time      `gorm:"autoCreateTime;column:signup_created_at" json:"signup_created_at"`
	SignupUpdatedAt time.Time      `gorm:"autoUpdateTime;column:signup_updated_at" json:"signup_updated_at"`
	SignupDeletedAt gorm.DeletedAt `gorm:"column:signup_deleted_at;index"          json:"signup_deleted_at,omitempty"`
}

func (OrganizationSignupModel) TableName() string { return "organization_signups" }
