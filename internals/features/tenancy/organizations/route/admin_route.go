package route

import (
	orgController "edusitepro_backend/internals/features/tenancy/organizations/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OrganizationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := orgController.NewOrganizationController(db, validator.New())

	orgs := admin.Group("/organizations")
	orgs.Post("/", ctrl.Create)
	orgs.Get("/", ctrl.List)
	orgs.Get("/:organization_id", ctrl.Detail)
	orgs.Patch("/:organization_id", ctrl.Update)
	orgs.Delete("/:organization_id", ctrl.Delete)
}
