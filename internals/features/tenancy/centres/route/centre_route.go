package route

import (
	centreController "edusitepro_backend/internals/features/tenancy/centres/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CentreAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := centreController.NewCentreController(db)

	centres := admin.Group("/centres")
	centres.Get("/", ctrl.List)
	centres.Get("/:centre_id", ctrl.Detail)
}

func CentrePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := centreController.NewCentreController(db)
	public.Get("/tenant", ctrl.CurrentTenant)
}
