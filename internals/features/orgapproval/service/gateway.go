package service

import (
	"context"
	"time"

	signupModel "edusitepro_backend/internals/features/orgapproval/model"
	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SignupStore covers the primary-platform writes of the organization-approval
// saga, including the deletes used as compensation.
type SignupStore interface {
	GetSignup(ctx context.Context, id uuid.UUID) (*signupModel.OrganizationSignupModel, error)
	MarkSignupApproved(ctx context.Context, id uuid.UUID) (int64, error)

	CreateOrganization(ctx context.Context, org *orgModel.OrganizationModel) error
	DeleteOrganization(ctx context.Context, id uuid.UUID) error

	CreateCentre(ctx context.Context, centre *centreModel.CentreModel) error
	DeleteCentre(ctx context.Context, id uuid.UUID) error
}

// SiblingWriter creates the mirrored records on the sibling platform. The
// organization keeps the SAME id in both systems; that shared key is what
// joins the two platforms.
type SiblingWriter interface {
	CreateOrganization(ctx context.Context, rec SiblingOrganization) error
	CreatePreschool(ctx context.Context, rec SiblingPreschool) error
	CreateUser(ctx context.Context, rec SiblingUser) error

	DeleteOrganization(ctx context.Context, id uuid.UUID) error
}

type SiblingOrganization struct {
	ID       uuid.UUID
	Name     string
	Slug     string
	PlanTier string
}

type SiblingPreschool struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
}

type SiblingUser struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	FullName       string
}

/* ===================== GORM implementations ===================== */

type GormSignupStore struct {
	DB *gorm.DB
}

func NewGormSignupStore(db *gorm.DB) *GormSignupStore { return &GormSignupStore{DB: db} }

func (s *GormSignupStore) GetSignup(ctx context.Context, id uuid.UUID) (*signupModel.OrganizationSignupModel, error) {
	var rec signupModel.OrganizationSignupModel
	if err := s.DB.WithContext(ctx).First(&rec, "signup_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormSignupStore) MarkSignupApproved(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&signupModel.OrganizationSignupModel{}).
		Where("signup_id = ? AND signup_status = ?", id, signupModel.SignupPending).
		Update("signup_status", signupModel.SignupApproved)
	return res.RowsAffected, res.Error
}

func (s *GormSignupStore) CreateOrganization(ctx context.Context, org *orgModel.OrganizationModel) error {
	return s.DB.WithContext(ctx).Create(org).Error
}

func (s *GormSignupStore) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Unscoped().
		Delete(&orgModel.OrganizationModel{}, "organization_id = ?", id).Error
}

func (s *GormSignupStore) CreateCentre(ctx context.Context, centre *centreModel.CentreModel) error {
	return s.DB.WithContext(ctx).Create(centre).Error
}

func (s *GormSignupStore) DeleteCentre(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Unscoped().
		Delete(&centreModel.CentreModel{}, "centre_id = ?", id).Error
}

// GormSiblingWriter writes to the sibling platform's store through its own
// *gorm.DB handle. Map-based inserts keep this side free of the sibling's
// model definitions.
type GormSiblingWriter struct {
	DB *gorm.DB
}

func NewGormSiblingWriter(db *gorm.DB) *GormSiblingWriter { return &GormSiblingWriter{DB: db} }

func (w *GormSiblingWriter) CreateOrganization(ctx context.Context, rec SiblingOrganization) error {
	return w.DB.WithContext(ctx).Table("organizations").Create(map[string]any{
		"id":         rec.ID,
		"name":       rec.Name,
		"slug":       rec.Slug,
		"plan_tier":  rec.PlanTier,
		"created_at": time.Now().UTC(),
		"updated_at": time.Now().UTC(),
	}).Error
}

func (w *GormSiblingWriter) CreatePreschool(ctx context.Context, rec SiblingPreschool) error {
	return w.DB.WithContext(ctx).Table("preschools").Create(map[string]any{
		"id":              rec.ID,
		"organization_id": rec.OrganizationID,
		"name":            rec.Name,
		"created_at":      time.Now().UTC(),
		"updated_at":      time.Now().UTC(),
	}).Error
}

func (w *GormSiblingWriter) CreateUser(ctx context.Context, rec SiblingUser) error {
	return w.DB.WithContext(ctx).Table("users").Create(map[string]any{
		"id":              rec.ID,
		"organization_id": rec.OrganizationID,
		"email":           rec.Email,
		"full_name":       rec.FullName,
		"created_at":      time.Now().UTC(),
		"updated_at":      time.Now().UTC(),
	}).Error
}

func (w *GormSiblingWriter) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	return w.DB.WithContext(ctx).Table("organizations").
		Where("id = ?", id).Delete(nil).Error
}
