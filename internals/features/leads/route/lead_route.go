package route

import (
	leadController "edusitepro_backend/internals/features/leads/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func LeadPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := leadController.NewLeadController(db, validator.New())
	public.Post("/leads", ctrl.Create)
}

func LeadAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := leadController.NewLeadController(db, validator.New())
	admin.Get("/leads", ctrl.List)
}
