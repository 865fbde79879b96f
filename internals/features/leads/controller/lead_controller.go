package controller

import (
	leadDto "edusitepro_backend/internals/features/leads/dto"
	leadModel "edusitepro_backend/internals/features/leads/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"
	"edusitepro_backend/internals/features/tenancy/plans"
	helper "edusitepro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LeadController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLeadController(db *gorm.DB, v *validator.Validate) *LeadController {
	return &LeadController{DB: db, Validate: v}
}

// POST /api/public/leads
// Estimated value assumes one solo plan per requested centre; sales refines it
// later.
func (lc *LeadController) Create(c *fiber.Ctx) error {
	var req leadDto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := lc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	lead := leadModel.LeadModel{
		LeadName:           req.LeadName,
		LeadEmail:          req.LeadEmail,
		LeadPhone:          req.LeadPhone,
		LeadCentreCount:    req.LeadCentreCount,
		LeadEstimatedValue: float64(req.LeadCentreCount) * plans.MonthlyFeeFor(orgModel.PlanSolo),
		LeadMessage:        req.LeadMessage,
	}
	if err := lc.DB.Create(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save lead")
	}
	return helper.JsonCreated(c, "Thanks, we will be in touch", fiber.Map{
		"lead_id": lead.LeadID,
	})
}

// GET /api/a/leads
func (lc *LeadController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := lc.DB.Model(&leadModel.LeadModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count leads")
	}

	var rows []leadModel.LeadModel
	if err := lc.DB.Order("lead_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list leads")
	}

	return helper.JsonOK(c, "Leads", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, paging),
	})
}
