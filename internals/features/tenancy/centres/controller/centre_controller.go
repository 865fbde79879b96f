package controller

import (
	"strings"

	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CentreController struct {
	DB *gorm.DB
}

func NewCentreController(db *gorm.DB) *CentreController {
	return &CentreController{DB: db}
}

// GET /api/a/centres
func (cc *CentreController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := cc.DB.Model(&centreModel.CentreModel{})
	if org := strings.TrimSpace(c.Query("organization_id")); org != "" {
		orgID, err := uuid.Parse(org)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "organization_id is not valid")
		}
		tx = tx.Where("centre_organization_id = ?", orgID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count centres")
	}

	var rows []centreModel.CentreModel
	if err := tx.Order("centre_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list centres")
	}

	return helper.JsonOK(c, "Centres", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, paging),
	})
}

// GET /api/a/centres/:centre_id
func (cc *CentreController) Detail(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("centre_id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "centre_id in path is not valid")
	}

	var centre centreModel.CentreModel
	if err := cc.DB.First(&centre, "centre_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Centre not found")
	}

	var bindings []centreModel.DomainBindingModel
	if err := cc.DB.Find(&bindings, "domain_binding_centre_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load domain bindings")
	}

	return helper.JsonOK(c, "Centre", fiber.Map{
		"centre":          centre,
		"domain_bindings": bindings,
	})
}

// GET /api/public/tenant
// Echoes the tenant that the resolver middleware attached to this request.
func (cc *CentreController) CurrentTenant(c *fiber.Ctx) error {
	ref, ok := c.Locals("tenant").(*middlewares.TenantRef)
	if !ok || ref == nil {
		return helper.JsonOK(c, "Platform root", fiber.Map{"tenant": nil})
	}
	if ref.Organization != nil {
		return helper.JsonOK(c, "Tenant resolved", fiber.Map{
			"organization_id":   ref.Organization.OrganizationID,
			"organization_slug": ref.Organization.OrganizationSlug,
			"organization_name": ref.Organization.OrganizationName,
		})
	}
	return helper.JsonOK(c, "Tenant resolved", fiber.Map{
		"centre_id":   ref.Centre.CentreID,
		"centre_slug": ref.Centre.CentreSlug,
		"centre_name": ref.Centre.CentreName,
	})
}
