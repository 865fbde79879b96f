package service

import (
	"context"

	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"
	siteModel "edusitepro_backend/internals/features/sites/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantStore is the relational gateway the provisioning saga writes through.
// Kept narrow so the saga is testable without a database; the GORM
// implementation below is the production one.
type TenantStore interface {
	CentreSlugExists(ctx context.Context, slug string) (bool, error)
	OrganizationSlugExists(ctx context.Context, slug string) (bool, error)

	GetOrganization(ctx context.Context, id uuid.UUID) (*orgModel.OrganizationModel, error)
	CreateOrganization(ctx context.Context, org *orgModel.OrganizationModel) error

	CountCentres(ctx context.Context, organizationID uuid.UUID) (int64, error)
	CreateCentre(ctx context.Context, centre *centreModel.CentreModel) error

	CreateDomainBinding(ctx context.Context, binding *centreModel.DomainBindingModel) error
	CreatePage(ctx context.Context, page *siteModel.PageModel) error
	CreateBlock(ctx context.Context, block *siteModel.BlockModel) error
	CreateNavigationItem(ctx context.Context, item *siteModel.NavigationItemModel) error
}

type GormTenantStore struct {
	DB *gorm.DB
}

func NewGormTenantStore(db *gorm.DB) *GormTenantStore { return &GormTenantStore{DB: db} }

func (s *GormTenantStore) CentreSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&centreModel.CentreModel{}).
		Where("centre_slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (s *GormTenantStore) OrganizationSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&orgModel.OrganizationModel{}).
		Where("organization_slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (s *GormTenantStore) GetOrganization(ctx context.Context, id uuid.UUID) (*orgModel.OrganizationModel, error) {
	var org orgModel.OrganizationModel
	if err := s.DB.WithContext(ctx).First(&org, "organization_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *GormTenantStore) CreateOrganization(ctx context.Context, org *orgModel.OrganizationModel) error {
	return s.DB.WithContext(ctx).Create(org).Error
}

func (s *GormTenantStore) CountCentres(ctx context.Context, organizationID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&centreModel.CentreModel{}).
		Where("centre_organization_id = ?", organizationID).Count(&count).Error
	return count, err
}

func (s *GormTenantStore) CreateCentre(ctx context.Context, centre *centreModel.CentreModel) error {
	return s.DB.WithContext(ctx).Create(centre).Error
}

func (s *GormTenantStore) CreateDomainBinding(ctx context.Context, binding *centreModel.DomainBindingModel) error {
	return s.DB.WithContext(ctx).Create(binding).Error
}

func (s *GormTenantStore) CreatePage(ctx context.Context, page *siteModel.PageModel) error {
	return s.DB.WithContext(ctx).Create(page).Error
}

func (s *GormTenantStore) CreateBlock(ctx context.Context, block *siteModel.BlockModel) error {
	return s.DB.WithContext(ctx).Create(block).Error
}

func (s *GormTenantStore) CreateNavigationItem(ctx context.Context, item *siteModel.NavigationItemModel) error {
	return s.DB.WithContext(ctx).Create(item).Error
}
