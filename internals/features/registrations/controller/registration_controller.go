package controller

import (
	"strings"

	regDto "edusitepro_backend/internals/features/registrations/dto"
	regModel "edusitepro_backend/internals/features/registrations/model"
	regService "edusitepro_backend/internals/features/registrations/service"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/helpers/httperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationController struct {
	DB       *gorm.DB
	Service  *regService.ApprovalService
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB, svc *regService.ApprovalService, v *validator.Validate) *RegistrationController {
	return &RegistrationController{DB: db, Service: svc, Validate: v}
}

func parseRegistrationID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("registration_id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "registration_id in path is not valid")
	}
	return id, nil
}

// actingAdmin reads the admin identity placed in Locals by the JWT middleware.
func actingAdmin(c *fiber.Ctx) string {
	if email, ok := c.Locals("admin_email").(string); ok && email != "" {
		return email
	}
	return "system"
}

// GET /api/a/registrations?status=pending
func (rc *RegistrationController) List(c *fiber.Ctx) error {
	var q regDto.ListRegistrationsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := rc.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := rc.DB.Model(&regModel.RegistrationModel{})
	if q.Status != nil {
		tx = tx.Where("registration_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count registrations")
	}

	var rows []regModel.RegistrationModel
	if err := tx.Order("registration_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list registrations")
	}

	return helper.JsonOK(c, "Registrations", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, paging),
	})
}

// POST /api/a/registrations/:registration_id/approve
func (rc *RegistrationController) Approve(c *fiber.Ctx) error {
	id, err := parseRegistrationID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, warnings, err := rc.Service.ApproveRegistration(c.UserContext(), id, actingAdmin(c))
	if err != nil {
		return helper.JsonError(c, httperr.StatusOf(err), err.Error())
	}
	return helper.JsonOKWithWarnings(c, "Registration approved", result, warnings)
}

// POST /api/a/registrations/:registration_id/verify-payment
func (rc *RegistrationController) VerifyPayment(c *fiber.Ctx) error {
	id, err := parseRegistrationID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := rc.Service.VerifyPayment(c.UserContext(), id); err != nil {
		return helper.JsonError(c, httperr.StatusOf(err), err.Error())
	}
	return helper.JsonOK(c, "Payment verified", nil)
}

// POST /api/a/registrations/:registration_id/reject
func (rc *RegistrationController) Reject(c *fiber.Ctx) error {
	id, err := parseRegistrationID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req regDto.RejectRegistrationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := rc.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	if err := rc.Service.RejectRegistration(c.UserContext(), id, req.Reason); err != nil {
		return helper.JsonError(c, httperr.StatusOf(err), err.Error())
	}
	return helper.JsonOK(c, "Registration rejected", nil)
}
