package model

import (
	"time"

	"github.com/google/uuid"
)

type DomainVerificationStatus string

const (
	DomainVerified DomainVerificationStatus = "verified"
	DomainPending  DomainVerificationStatus = "pending"
)

// DomainBindingModel maps an inbound hostname to a centre. Every centre always
// keeps a verified binding for its default subdomain, so it stays reachable no
// matter what state a custom domain's DNS is in.
type DomainBindingModel struct {
	DomainBindingID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:domain_binding_id" json:"domain_binding_id"`
	DomainBindingCentreID uuid.UUID `gorm:"type:uuid;not null;index;column:domain_binding_centre_id"                json:"domain_binding_centre_id"`

	DomainBindingDomain    string `gorm:"type:varchar(255);not null;uniqueIndex;column:domain_binding_domain" json:"domain_binding_domain"`
	DomainBindingIsPrimary bool   `gorm:"not null;default:false;column:domain_binding_is_primary"             json:"domain_binding_is_primary"`

	DomainBindingVerificationStatus DomainVerificationStatus `gorm:"type:varchar(20);not null;default:'pending';column:domain_binding_verification_status" json:"domain_binding_verification_status"`

	DomainBindingCreatedAt time.Time `gorm:"autoCreateTime;column:domain_binding_created_at" json:"domain_binding_created_at"`
	DomainBindingUpdatedAt time.Time `gorm:"autoUpdateTime;column:domain_binding_updated_at" json:"domain_binding_updated_at"`
}

func (DomainBindingModel) TableName() string { return "domain_bindings" }
