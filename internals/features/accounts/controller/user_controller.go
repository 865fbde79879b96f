package controller

import (
	"strings"

	userModel "edusitepro_backend/internals/features/accounts/model"
	accountService "edusitepro_backend/internals/features/accounts/service"
	helper "edusitepro_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("user_id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id in path is not valid")
	}
	return id, nil
}

// GET /api/a/users/:user_id/related
// Preview of everything that hangs off an account before it gets deleted.
func (uc *UserController) RelatedRecords(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	counts, err := accountService.CountRelatedRecords(c.UserContext(), uc.DB, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count related records")
	}

	return helper.JsonOK(c, "Related records", fiber.Map{
		"user_id":  user.UserID,
		"email":    user.UserEmail,
		"related":  counts,
		"blocking": accountService.HasBlockingRelatedRecords(counts),
	})
}
