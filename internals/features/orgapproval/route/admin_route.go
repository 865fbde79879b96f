package route

import (
	"log"

	"edusitepro_backend/internals/configs"
	database "edusitepro_backend/internals/databases"
	accountService "edusitepro_backend/internals/features/accounts/service"
	"edusitepro_backend/internals/features/notify"
	signupController "edusitepro_backend/internals/features/orgapproval/controller"
	signupService "edusitepro_backend/internals/features/orgapproval/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OrgApprovalAdminRoutes(admin fiber.Router, db *gorm.DB) {
	siblingDB, err := database.ConnectSiblingDB()
	if err != nil {
		log.Printf("[WARN] sibling DB unavailable, organization-signup approvals disabled: %v", err)
		return
	}

	svc := signupService.NewSignupApprovalService(
		signupService.NewGormSignupStore(db),
		signupService.NewGormSiblingWriter(siblingDB),
		accountService.NewGormIdentityProvider(db),
		notify.NewSMTPMailerFromEnv(),
		configs.BaseSiteDomain,
		configs.PlatformURL,
		configs.SiblingAppURL,
	)
	ctrl := signupController.NewSignupController(svc)

	signups := admin.Group("/organization-signups")
	signups.Post("/:signup_id/approve", ctrl.Approve)
}
