package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums (mapped as string)
   values are enforced by CHECKs in the DB
========================= */

type PlanTier string

const (
	PlanSolo       PlanTier = "solo"
	PlanGroup5     PlanTier = "group_5"
	PlanGroup10    PlanTier = "group_10"
	PlanEnterprise PlanTier = "enterprise"
)

type OrganizationStatus string

const (
	OrgActive    OrganizationStatus = "active"
	OrgSuspended OrganizationStatus = "suspended"
	OrgArchived  OrganizationStatus = "archived"
)

type SubscriptionStatus string

const (
	SubTrialing SubscriptionStatus = "trialing"
	SubActive   SubscriptionStatus = "active"
	SubPastDue  SubscriptionStatus = "past_due"
	SubCanceled SubscriptionStatus = "canceled"
)

type OrganizationModel struct {
	OrganizationID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:organization_id" json:"organization_id"`
	OrganizationName string    `gorm:"type:varchar(150);not null;column:organization_name"                   json:"organization_name"`
	OrganizationSlug string    `gorm:"type:varchar(120);not null;uniqueIndex;column:organization_slug"       json:"organization_slug"`

	OrganizationPlanTier   PlanTier `gorm:"type:varchar(20);not null;default:'solo';column:organization_plan_tier" json:"organization_plan_tier"`
	OrganizationMaxCentres int      `gorm:"not null;default:1;column:organization_max_centres"                     json:"organization_max_centres"` // 0 = unlimited

	OrganizationStatus             OrganizationStatus `gorm:"type:varchar(20);not null;default:'active';column:organization_status"                 json:"organization_status"`
	OrganizationSubscriptionStatus SubscriptionStatus `gorm:"type:varchar(20);not null;default:'trialing';column:organization_subscription_status" json:"organization_subscription_status"`

	// Fields mirrored to the sibling platform
	OrganizationType             *string        `gorm:"type:varchar(40);column:organization_type"                          json:"organization_type,omitempty"`
	OrganizationBrandingColors   datatypes.JSON `gorm:"column:organization_branding_colors"                                json:"organization_branding_colors,omitempty"`
	OrganizationRegistrationOpen bool           `gorm:"not null;default:true;column:organization_registration_open"        json:"organization_registration_open"`

	OrganizationCreatedAt time.Time      `gorm:"autoCreateTime;column:organization_created_at" json:"organization_created_at"`
	OrganizationUpdatedAt time.Time      `gorm:"autoUpdateTime;column:organization_updated_at" json:"organization_updated_at"`
	OrganizationDeletedAt gorm.DeletedAt `gorm:"column:organization_deleted_at;index"          json:"organization_deleted_at,omitempty"`
}

func (OrganizationModel) TableName() string { return "organizations" }
