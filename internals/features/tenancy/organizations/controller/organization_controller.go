package controller

import (
	"strings"

	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgDto "edusitepro_backend/internals/features/tenancy/organizations/dto"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"
	"edusitepro_backend/internals/features/tenancy/plans"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/helpers/httperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrganizationController(db *gorm.DB, v *validator.Validate) *OrganizationController {
	return &OrganizationController{DB: db, Validate: v}
}

func parseOrganizationID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("organization_id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "organization_id in path is not valid")
	}
	return id, nil
}

func (oc *OrganizationController) countCentres(orgID uuid.UUID) (int64, error) {
	var count int64
	err := oc.DB.Model(&centreModel.CentreModel{}).
		Where("centre_organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// POST /api/a/organizations
func (oc *OrganizationController) Create(c *fiber.Ctx) error {
	var req orgDto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := oc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	base := req.OrganizationSlug
	if base == "" {
		base = req.OrganizationName
	}
	slug, err := helper.EnsureUniqueSlug(oc.DB, "organizations", "organization_slug", helper.NormalizeSlug(base))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not allocate a slug")
	}

	tier := req.OrganizationPlanTier
	if tier == "" {
		tier = orgModel.PlanSolo
	}

	org := orgModel.OrganizationModel{
		OrganizationName:               req.OrganizationName,
		OrganizationSlug:               slug,
		OrganizationPlanTier:           tier,
		OrganizationMaxCentres:         plans.MaxCentresFor(tier),
		OrganizationStatus:             orgModel.OrgActive,
		OrganizationSubscriptionStatus: orgModel.SubTrialing,
		OrganizationType:               req.OrganizationType,
		OrganizationBrandingColors:     req.OrganizationBrandingColors,
	}
	if req.OrganizationRegistrationOpen != nil {
		org.OrganizationRegistrationOpen = *req.OrganizationRegistrationOpen
	} else {
		org.OrganizationRegistrationOpen = true
	}

	if err := oc.DB.Create(&org).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "slug already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create organization")
	}
	return helper.JsonCreated(c, "Organization created", org)
}

// GET /api/a/organizations
func (oc *OrganizationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := oc.DB.Model(&orgModel.OrganizationModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count organizations")
	}

	var rows []orgModel.OrganizationModel
	if err := oc.DB.Order("organization_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list organizations")
	}

	return helper.JsonOK(c, "Organizations", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, paging),
	})
}

// GET /api/a/organizations/:organization_id
func (oc *OrganizationController) Detail(c *fiber.Ctx) error {
	id, err := parseOrganizationID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var org orgModel.OrganizationModel
	if err := oc.DB.First(&org, "organization_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Organization not found")
	}
	return helper.JsonOK(c, "Organization", org)
}

// PATCH /api/a/organizations/:organization_id
// Plan downgrades re-validate the capacity invariant before persisting.
func (oc *OrganizationController) Update(c *fiber.Ctx) error {
	id, err := parseOrganizationID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req orgDto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := oc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var org orgModel.OrganizationModel
	if err := oc.DB.First(&org, "organization_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Organization not found")
	}

	updates := map[string]any{}
	if req.OrganizationName != nil {
		updates["organization_name"] = *req.OrganizationName
	}
	if req.OrganizationStatus != nil {
		updates["organization_status"] = *req.OrganizationStatus
	}
	if req.OrganizationBrandingColors != nil {
		updates["organization_branding_colors"] = req.OrganizationBrandingColors
	}
	if req.OrganizationRegistrationOpen != nil {
		updates["organization_registration_open"] = *req.OrganizationRegistrationOpen
	}

	if req.OrganizationPlanTier != nil && *req.OrganizationPlanTier != org.OrganizationPlanTier {
		newMax := plans.MaxCentresFor(*req.OrganizationPlanTier)
		count, cerr := oc.countCentres(id)
		if cerr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count centres")
		}
		if !plans.CanDowngrade(int(count), newMax) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"organization has more centres than the new plan allows")
		}
		updates["organization_plan_tier"] = *req.OrganizationPlanTier
		updates["organization_max_centres"] = newMax
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", org)
	}
	if err := oc.DB.Model(&org).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update organization")
	}
	return helper.JsonOK(c, "Organization updated", org)
}

// DELETE /api/a/organizations/:organization_id
// Soft-blocked while the organization still owns centres.
func (oc *OrganizationController) Delete(c *fiber.Ctx) error {
	id, err := parseOrganizationID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	count, cerr := oc.countCentres(id)
	if cerr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count centres")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"organization still owns centres, delete or move them first")
	}

	if err := oc.DB.Delete(&orgModel.OrganizationModel{}, "organization_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete organization")
	}
	return helper.JsonOK(c, "Organization deleted", nil)
}
