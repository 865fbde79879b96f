package route

import (
	"edusitepro_backend/internals/configs"
	accountService "edusitepro_backend/internals/features/accounts/service"
	"edusitepro_backend/internals/features/notify"
	regController "edusitepro_backend/internals/features/registrations/controller"
	regService "edusitepro_backend/internals/features/registrations/service"
	syncService "edusitepro_backend/internals/features/sync/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	var payments regService.PaymentChecker
	if configs.MidtransServerKey != "" {
		payments = regService.NewMidtransPaymentChecker(configs.MidtransServerKey)
	}

	svc := regService.NewApprovalService(
		regService.NewGormRegistrationStore(db),
		accountService.NewGormIdentityProvider(db),
		syncService.NewHTTPSiblingNotifier(configs.SiblingAPIURL, configs.SiblingAPIKey),
		notify.NewSMTPMailerFromEnv(),
		payments,
	)
	ctrl := regController.NewRegistrationController(db, svc, validator.New())

	regs := admin.Group("/registrations")
	regs.Get("/", ctrl.List)
	regs.Post("/:registration_id/approve", ctrl.Approve)
	regs.Post("/:registration_id/verify-payment", ctrl.VerifyPayment)
	regs.Post("/:registration_id/reject", ctrl.Reject)
}
