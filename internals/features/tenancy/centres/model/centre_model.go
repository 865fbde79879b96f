package model

import (
	"time"

	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CentreStatus string

const (
	CentreActive    CentreStatus = "active"
	CentreSuspended CentreStatus = "suspended"
	CentreArchived  CentreStatus = "archived"
)

type CentreModel struct {
	CentreID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:centre_id" json:"centre_id"`
	CentreOrganizationID uuid.UUID `gorm:"type:uuid;not null;index;column:centre_organization_id"          json:"centre_organization_id"`

	CentreName string `gorm:"type:varchar(150);not null;column:centre_name"             json:"centre_name"`
	// Globally unique: the default subdomain is derived from it.
	CentreSlug string `gorm:"type:varchar(120);not null;uniqueIndex;column:centre_slug" json:"centre_slug"`

	CentreStatus CentreStatus `gorm:"type:varchar(20);not null;default:'active';column:centre_status" json:"centre_status"`

	// Informational copy, may diverge from the organization's tier.
	CentrePlanTier orgModel.PlanTier `gorm:"type:varchar(20);not null;default:'solo';column:centre_plan_tier" json:"centre_plan_tier"`

	CentrePrimaryDomain string `gorm:"type:varchar(255);not null;column:centre_primary_domain" json:"centre_primary_domain"`

	CentreCreatedAt time.Time      `gorm:"autoCreateTime;column:centre_created_at" json:"centre_created_at"`
	CentreUpdatedAt time.Time      `gorm:"autoUpdateTime;column:centre_updated_at" json:"centre_updated_at"`
	CentreDeletedAt gorm.DeletedAt `gorm:"column:centre_deleted_at;index"          json:"centre_deleted_at,omitempty"`
}

func (CentreModel) TableName() string { return "centres" }
