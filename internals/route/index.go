package routes

import (
	"log"
	"time"

	"edusitepro_backend/internals/configs"
	accountRoute "edusitepro_backend/internals/features/accounts/route"
	leadRoute "edusitepro_backend/internals/features/leads/route"
	orgApprovalRoute "edusitepro_backend/internals/features/orgapproval/route"
	provisioningRoute "edusitepro_backend/internals/features/provisioning/route"
	registrationRoute "edusitepro_backend/internals/features/registrations/route"
	centreRoute "edusitepro_backend/internals/features/tenancy/centres/route"
	organizationRoute "edusitepro_backend/internals/features/tenancy/organizations/route"
	"edusitepro_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", middlewares.TenantResolver(db))
	centreRoute.CentrePublicRoutes(public, db)
	leadRoute.LeadPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		middlewares.AuthAdmin(middlewares.AuthAdminOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Setting up ProvisioningAdminRoutes...")
	provisioningRoute.ProvisioningAdminRoutes(admin, db)

	log.Println("[INFO] Setting up RegistrationAdminRoutes...")
	registrationRoute.RegistrationAdminRoutes(admin, db)

	log.Println("[INFO] Setting up OrgApprovalAdminRoutes...")
	orgApprovalRoute.OrgApprovalAdminRoutes(admin, db)

	log.Println("[INFO] Setting up OrganizationAdminRoutes...")
	organizationRoute.OrganizationAdminRoutes(admin, db)

	log.Println("[INFO] Setting up CentreAdminRoutes...")
	centreRoute.CentreAdminRoutes(admin, db)

	log.Println("[INFO] Setting up LeadAdminRoutes...")
	leadRoute.LeadAdminRoutes(admin, db)

	log.Println("[INFO] Setting up AccountAdminRoutes...")
	accountRoute.AccountAdminRoutes(admin, db)
}
