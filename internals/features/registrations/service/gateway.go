package service

import (
	"context"
	"time"

	accountModel "edusitepro_backend/internals/features/accounts/model"
	regModel "edusitepro_backend/internals/features/registrations/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationStore is the relational gateway for the approval saga.
type RegistrationStore interface {
	GetRegistration(ctx context.Context, id uuid.UUID) (*regModel.RegistrationModel, error)

	// MarkApproved is a conditional write: it only succeeds while the row is
	// still pending, closing the two-concurrent-approvals race. Returns the
	// number of rows affected.
	MarkApproved(ctx context.Context, id uuid.UUID, approvedBy string, at time.Time) (int64, error)
	MarkRejected(ctx context.Context, id uuid.UUID, reason *string) (int64, error)
	SetPaymentVerified(ctx context.Context, id uuid.UUID) error

	CreateProfile(ctx context.Context, profile *accountModel.ProfileModel) error
	CreateStudent(ctx context.Context, student *accountModel.StudentModel) error

	// Deletions back out a freshly created profile/student when a later saga
	// step fails, keyed by the owning account.
	DeleteProfileByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteStudentByUserID(ctx context.Context, userID uuid.UUID) error
}

type GormRegistrationStore struct {
	DB *gorm.DB
}

func NewGormRegistrationStore(db *gorm.DB) *GormRegistrationStore {
	return &GormRegistrationStore{DB: db}
}

func (s *GormRegistrationStore) GetRegistration(ctx context.Context, id uuid.UUID) (*regModel.RegistrationModel, error) {
	var reg regModel.RegistrationModel
	if err := s.DB.WithContext(ctx).First(&reg, "registration_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *GormRegistrationStore) MarkApproved(ctx context.Context, id uuid.UUID, approvedBy string, at time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&regModel.RegistrationModel{}).
		Where("registration_id = ? AND registration_status = ?", id, regModel.RegistrationPending).
		Updates(map[string]any{
			"registration_status":      regModel.RegistrationApproved,
			"registration_approved_at": at,
			"registration_approved_by": approvedBy,
		})
	return res.RowsAffected, res.Error
}

func (s *GormRegistrationStore) MarkRejected(ctx context.Context, id uuid.UUID, reason *string) (int64, error) {
	updates := map[string]any{
		"registration_status": regModel.RegistrationRejected,
	}
	if reason != nil {
		updates["registration_rejection_reason"] = *reason
	}
	res := s.DB.WithContext(ctx).Model(&regModel.RegistrationModel{}).
		Where("registration_id = ? AND registration_status = ?", id, regModel.RegistrationPending).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (s *GormRegistrationStore) SetPaymentVerified(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Model(&regModel.RegistrationModel{}).
		Where("registration_id = ?", id).
		Update("registration_payment_verified", true).Error
}

func (s *GormRegistrationStore) CreateProfile(ctx context.Context, profile *accountModel.ProfileModel) error {
	return s.DB.WithContext(ctx).Create(profile).Error
}

func (s *GormRegistrationStore) CreateStudent(ctx context.Context, student *accountModel.StudentModel) error {
	return s.DB.WithContext(ctx).Create(student).Error
}

func (s *GormRegistrationStore) DeleteProfileByUserID(ctx context.Context, userID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Delete(&accountModel.ProfileModel{}, "profile_user_id = ?", userID).Error
}

func (s *GormRegistrationStore) DeleteStudentByUserID(ctx context.Context, userID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Delete(&accountModel.StudentModel{}, "student_user_id = ?", userID).Error
}
