package controller

import (
	"strings"

	signupService "edusitepro_backend/internals/features/orgapproval/service"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/helpers/httperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SignupController struct {
	Service *signupService.SignupApprovalService
}

func NewSignupController(svc *signupService.SignupApprovalService) *SignupController {
	return &SignupController{Service: svc}
}

// POST /api/a/organization-signups/:signup_id/approve
func (sc *SignupController) Approve(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("signup_id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "signup_id in path is not valid")
	}

	result, err := sc.Service.ApproveSignup(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, httperr.StatusOf(err), err.Error())
	}
	return helper.JsonOK(c, "Organization signup approved", result)
}
