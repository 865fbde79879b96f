package service

import (
	"context"
	"errors"
	"time"

	syncModel "edusitepro_backend/internals/features/sync/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Direction string

const (
	DirectionAToB Direction = "a-to-b"
	DirectionBToA Direction = "b-to-a"
	DirectionBoth Direction = "both"
)

func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case DirectionAToB, DirectionBToA, DirectionBoth:
		return Direction(raw), nil
	}
	return "", errors.New("direction must be one of a-to-b, b-to-a, both")
}

// Client pushes/pulls organization and class records between the primary
// store (A) and the sibling platform's store (B). Every unit of sync is an
// upsert keyed by the shared primary id, so re-running is idempotent: the
// same record applied twice only refreshes updated_at. Only the fixed
// allow-list of columns per entity ever crosses over.
type Client struct {
	Primary *gorm.DB // A
	Sibling *gorm.DB // B
}

func NewClient(primary, sibling *gorm.DB) *Client {
	return &Client{Primary: primary, Sibling: sibling}
}

// siblingOrgRow is the sibling platform's (unprefixed) organization schema,
// restricted to the synced columns.
type siblingOrgRow struct {
	ID               uuid.UUID `gorm:"column:id;primaryKey"`
	Name             string    `gorm:"column:name"`
	Slug             string    `gorm:"column:slug"`
	Type             *string   `gorm:"column:type"`
	BrandingColors   []byte    `gorm:"column:branding_colors"`
	RegistrationOpen bool      `gorm:"column:registration_open"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (siblingOrgRow) TableName() string { return "organizations" }

type siblingClassRow struct {
	ID             uuid.UUID `gorm:"column:id;primaryKey"`
	OrganizationID uuid.UUID `gorm:"column:organization_id"`
	Name           string    `gorm:"column:name"`
	GradeLevel     string    `gorm:"column:grade_level"`
	AcademicYear   int       `gorm:"column:academic_year"`
	Capacity       int       `gorm:"column:capacity"`
	EnrolledCount  int       `gorm:"column:enrolled_count"`
	IsActive       bool      `gorm:"column:is_active"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (siblingClassRow) TableName() string { return "classes" }

func (c *Client) SyncOrganization(ctx context.Context, id uuid.UUID, dir Direction) error {
	if dir == DirectionAToB || dir == DirectionBoth {
		if err := c.pushOrganization(ctx, id); err != nil {
			return err
		}
	}
	if dir == DirectionBToA || dir == DirectionBoth {
		if err := c.pullOrganization(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) pushOrganization(ctx context.Context, id uuid.UUID) error {
	var org orgModel.OrganizationModel
	err := c.Primary.WithContext(ctx).First(&org, "organization_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithField("organization_id", id).Warn("organization missing on source side, skipped")
		return nil
	}
	if err != nil {
		return err
	}

	row := siblingOrgRow{
		ID:               org.OrganizationID,
		Name:             org.OrganizationName,
		Slug:             org.OrganizationSlug,
		Type:             org.OrganizationType,
		BrandingColors:   []byte(org.OrganizationBrandingColors),
		RegistrationOpen: org.OrganizationRegistrationOpen,
		UpdatedAt:        time.Now().UTC(),
	}
	return c.Sibling.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "slug", "type", "branding_colors", "registration_open", "updated_at",
		}),
	}).Create(&row).Error
}

func (c *Client) pullOrganization(ctx context.Context, id uuid.UUID) error {
	var row siblingOrgRow
	err := c.Sibling.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithField("organization_id", id).Warn("organization missing on source side, skipped")
		return nil
	}
	if err != nil {
		return err
	}

	org := orgModel.OrganizationModel{
		OrganizationID:               row.ID,
		OrganizationName:             row.Name,
		OrganizationSlug:             row.Slug,
		OrganizationType:             row.Type,
		OrganizationBrandingColors:   row.BrandingColors,
		OrganizationRegistrationOpen: row.RegistrationOpen,
	}
	return c.Primary.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "organization_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"organization_name", "organization_slug", "organization_type",
			"organization_branding_colors", "organization_registration_open",
			"organization_updated_at",
		}),
	}).Create(&org).Error
}

func (c *Client) SyncClasses(ctx context.Context, organizationID uuid.UUID, dir Direction) error {
	if dir == DirectionAToB || dir == DirectionBoth {
		if err := c.pushClasses(ctx, organizationID); err != nil {
			return err
		}
	}
	if dir == DirectionBToA || dir == DirectionBoth {
		if err := c.pullClasses(ctx, organizationID); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) pushClasses(ctx context.Context, organizationID uuid.UUID) error {
	var classes []syncModel.SiteClassModel
	if err := c.Primary.WithContext(ctx).
		Find(&classes, "site_class_organization_id = ?", organizationID).Error; err != nil {
		return err
	}
	for _, cls := range classes {
		row := siblingClassRow{
			ID:             cls.SiteClassID,
			OrganizationID: cls.SiteClassOrganizationID,
			Name:           cls.SiteClassName,
			GradeLevel:     cls.SiteClassGradeLevel,
			AcademicYear:   cls.SiteClassAcademicYear,
			Capacity:       cls.SiteClassCapacity,
			EnrolledCount:  cls.SiteClassEnrolledCount,
			IsActive:       cls.SiteClassIsActive,
			UpdatedAt:      time.Now().UTC(),
		}
		if err := c.Sibling.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "grade_level", "academic_year", "capacity",
				"enrolled_count", "is_active", "updated_at",
			}),
		}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) pullClasses(ctx context.Context, organizationID uuid.UUID) error {
	var rows []siblingClassRow
	if err := c.Sibling.WithContext(ctx).
		Find(&rows, "organization_id = ?", organizationID).Error; err != nil {
		return err
	}
	for _, row := range rows {
		cls := syncModel.SiteClassModel{
			SiteClassID:             row.ID,
			SiteClassOrganizationID: row.OrganizationID,
			SiteClassName:           row.Name,
			SiteClassGradeLevel:     row.GradeLevel,
			SiteClassAcademicYear:   row.AcademicYear,
			SiteClassCapacity:       row.Capacity,
			SiteClassEnrolledCount:  row.EnrolledCount,
			SiteClassIsActive:       row.IsActive,
		}
		if err := c.Primary.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "site_class_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"site_class_name", "site_class_grade_level", "site_class_academic_year",
				"site_class_capacity", "site_class_enrolled_count", "site_class_is_active",
				"site_class_updated_at",
			}),
		}).Create(&cls).Error; err != nil {
			return err
		}
	}
	return nil
}

// SyncAll runs organization + class sync for each target id and reports how
// many records failed. Failures are logged per record and never abort the
// batch.
func (c *Client) SyncAll(ctx context.Context, orgIDs []uuid.UUID, dir Direction) (failed int) {
	for _, id := range orgIDs {
		if err := c.SyncOrganization(ctx, id, dir); err != nil {
			logrus.WithField("organization_id", id).WithError(err).Error("organization sync failed")
			failed++
		}
		if err := c.SyncClasses(ctx, id, dir); err != nil {
			logrus.WithField("organization_id", id).WithError(err).Error("class sync failed")
			failed++
		}
	}
	return failed
}

// ListAllOrganizationIDs returns every organization id on the primary side,
// used when no explicit target list is configured.
func (c *Client) ListAllOrganizationIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := c.Primary.WithContext(ctx).Model(&orgModel.OrganizationModel{}).
		Pluck("organization_id", &ids).Error
	return ids, err
}
