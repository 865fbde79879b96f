package route

import (
	accountController "edusitepro_backend/internals/features/accounts/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AccountAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := accountController.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/:user_id/related", ctrl.RelatedRecords)
}
