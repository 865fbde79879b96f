package controller

import (
	provisionDto "edusitepro_backend/internals/features/provisioning/dto"
	provisionService "edusitepro_backend/internals/features/provisioning/service"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/helpers/httperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ProvisionController struct {
	Service  *provisionService.ProvisionService
	Validate *validator.Validate
}

func NewProvisionController(svc *provisionService.ProvisionService, v *validator.Validate) *ProvisionController {
	return &ProvisionController{Service: svc, Validate: v}
}

// POST /api/a/centres/provision
func (pc *ProvisionController) Provision(c *fiber.Ctx) error {
	var req provisionDto.ProvisionCentreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, warnings, err := pc.Service.ProvisionCentre(c.UserContext(), req)
	if err != nil {
		return helper.JsonError(c, httperr.StatusOf(err), err.Error())
	}
	return helper.JsonOKWithWarnings(c, "Centre provisioned", result, warnings)
}
