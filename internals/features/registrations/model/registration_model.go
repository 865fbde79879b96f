package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationStatus string

const (
	RegistrationPending    RegistrationStatus = "pending"
	RegistrationApproved   RegistrationStatus = "approved"
	RegistrationRejected   RegistrationStatus = "rejected"
	RegistrationWaitlisted RegistrationStatus = "waitlisted"
)

type RegistrationModel struct {
	RegistrationID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:registration_id" json:"registration_id"`
	RegistrationOrganizationID uuid.UUID `gorm:"type:uuid;not null;index;column:registration_organization_id"          json:"registration_organization_id"`

	// Student
	RegistrationStudentName string     `gorm:"type:varchar(150);not null;column:registration_student_name" json:"registration_student_name"`
	RegistrationStudentDOB  *time.Time `gorm:"column:registration_student_dob"                             json:"registration_student_dob,omitempty"`
	RegistrationSchoolCode  string     `gorm:"type:varchar(20);not null;default:'ESP';column:registration_school_code" json:"registration_school_code"`

	// Guardian
	RegistrationGuardianName  string  `gorm:"type:varchar(150);not null;column:registration_guardian_name" json:"registration_guardian_name"`
	RegistrationGuardianEmail string  `gorm:"type:varchar(255);not null;column:registration_guardian_email" json:"registration_guardian_email"`
	RegistrationGuardianPhone *string `gorm:"type:varchar(30);column:registration_guardian_phone"           json:"registration_guardian_phone,omitempty"`

	RegistrationStatus RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending';column:registration_status" json:"registration_status"`

	// Payment
	RegistrationPaymentReference  *string    `gorm:"type:varchar(120);column:registration_payment_reference"   json:"registration_payment_reference,omitempty"`
	RegistrationProofOfPaymentURL *string    `gorm:"type:text;column:registration_proof_of_payment_url"        json:"registration_proof_of_payment_url,omitempty"`
	RegistrationPaymentAmount     *float64   `gorm:"type:numeric(12,2);column:registration_payment_amount"     json:"registration_payment_amount,omitempty"`
	RegistrationPaymentDate       *time.Time `gorm:"column:registration_payment_date"                          json:"registration_payment_date,omitempty"`
	RegistrationPaymentPaid       bool       `gorm:"not null;default:false;column:registration_payment_paid"   json:"registration_payment_paid"`
	RegistrationPaymentVerified   bool       `gorm:"not null;default:false;column:registration_payment_verified" json:"registration_payment_verified"`

	RegistrationRejectionReason *string `gorm:"type:text;column:registration_rejection_reason" json:"registration_rejection_reason,omitempty"`

	RegistrationApprovedAt *time.Time `gorm:"column:registration_approved_at"              json:"registration_approved_at,omitempty"`
	RegistrationApprovedBy *string    `gorm:"type:varchar(255);column:registration_approved_by" json:"registration_approved_by,omitempty"`

	RegistrationCreatedAt time.Time      `gorm:"autoCreateTime;column:registration_created_at" json:"registration_created_at"`
	RegistrationUpdatedAt time.Time      `gorm:"autoUpdateTime;column:registration_updated_at" json:"registration_updated_at"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;index"          json:"registration_deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string { return "registrations" }
