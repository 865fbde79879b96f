package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteClassModel is the class/grade entity mirrored between the two platforms.
// The same primary key value lives in both stores; that shared id is what
// makes sync upserts idempotent.
type SiteClassModel struct {
	SiteClassID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:site_class_id" json:"site_class_id"`
	SiteClassOrganizationID uuid.UUID `gorm:"type:uuid;not null;index;column:site_class_organization_id"          json:"site_class_organization_id"`

	SiteClassName         string `gorm:"type:varchar(120);not null;column:site_class_name"          json:"site_class_name"`
	SiteClassGradeLevel   string `gorm:"type:varchar(40);not null;column:site_class_grade_level"    json:"site_class_grade_level"`
	SiteClassAcademicYear int    `gorm:"not null;column:site_class_academic_year"                   json:"site_class_academic_year"`

	SiteClassCapacity      int  `gorm:"not null;default:0;column:site_class_capacity"       json:"site_class_capacity"`
	SiteClassEnrolledCount int  `gorm:"not null;default:0;column:site_class_enrolled_count" json:"site_class_enrolled_count"`
	SiteClassIsActive      bool `gorm:"not null;default:true;column:site_class_is_active"   json:"site_class_is_active"`

	SiteClassCreatedAt time.Time `gorm:"autoCreateTime;column:site_class_created_at" json:"site_class_created_at"`
	SiteClassUpdatedAt time.Time `gorm:"autoUpdateTime;column:site_class_updated_at" json:"site_class_updated_at"`
}

func (SiteClassModel) TableName() string { return "site_classes" }
