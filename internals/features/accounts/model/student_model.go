package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID         uuid.UUID `gorm:"type:uuid;not null;index;column:student_user_id"                  json:"student_user_id"`
	StudentOrganizationID uuid.UUID `gorm:"type:uuid;not null;index;column:student_organization_id"          json:"student_organization_id"`

	// Human readable code: {school_code}-{year}-{0000..9999}.
	StudentCode     string `gorm:"type:varchar(40);not null;uniqueIndex;column:student_code" json:"student_code"`
	StudentFullName string `gorm:"type:varchar(150);not null;column:student_full_name"       json:"student_full_name"`

	StudentRegistrationID *uuid.UUID `gorm:"type:uuid;column:student_registration_id" json:"student_registration_id,omitempty"`

	StudentCreatedAt time.Time `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
