package model

import (
	"time"

	"github.com/google/uuid"
)

type LeadModel struct {
	LeadID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lead_id" json:"lead_id"`

	LeadName  string  `gorm:"type:varchar(150);not null;column:lead_name"  json:"lead_name"`
	LeadEmail string  `gorm:"type:varchar(255);not null;column:lead_email" json:"lead_email"`
	LeadPhone *string `gorm:"type:varchar(30);column:lead_phone"           json:"lead_phone,omitempty"`

	LeadCentreCount    int     `gorm:"not null;default:1;column:lead_centre_count" json:"lead_centre_count"`
	LeadEstimatedValue float64 `gorm:"type:numeric(12,2);not null;default:0;column:lead_estimated_value" json:"lead_estimated_value"`

	LeadMessage *string `gorm:"type:text;column:lead_message" json:"lead_message,omitempty"`

	LeadCreatedAt time.Time `gorm:"autoCreateTime;column:lead_created_at" json:"lead_created_at"`
}

func (LeadModel) TableName() string { return "leads" }
