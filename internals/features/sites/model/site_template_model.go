package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteTemplateModel is the static template registry row; seeded at startup.
type SiteTemplateModel struct {
	SiteTemplateID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:site_template_id" json:"site_template_id"`
	SiteTemplateKey         string    `gorm:"type:varchar(40);not null;uniqueIndex;column:site_template_key"         json:"site_template_key"`
	SiteTemplateName        string    `gorm:"type:varchar(80);not null;column:site_template_name"                    json:"site_template_name"`
	SiteTemplateDescription *string   `gorm:"type:text;column:site_template_description"                             json:"site_template_description,omitempty"`

	SiteTemplateCreatedAt time.Time `gorm:"autoCreateTime;column:site_template_created_at" json:"site_template_created_at"`
}

func (SiteTemplateModel) TableName() string { return "site_templates" }
