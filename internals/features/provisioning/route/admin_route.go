package route

import (
	"edusitepro_backend/internals/configs"
	provisionController "edusitepro_backend/internals/features/provisioning/controller"
	provisionService "edusitepro_backend/internals/features/provisioning/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProvisioningAdminRoutes(admin fiber.Router, db *gorm.DB) {
	svc := provisionService.NewProvisionService(
		provisionService.NewGormTenantStore(db),
		configs.BaseSiteDomain,
	)
	ctrl := provisionController.NewProvisionController(svc, validator.New())

	centres := admin.Group("/centres")
	centres.Post("/provision", ctrl.Provision)
}
