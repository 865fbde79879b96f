package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	accountModel "edusitepro_backend/internals/features/accounts/model"
	accountService "edusitepro_backend/internals/features/accounts/service"
	"edusitepro_backend/internals/features/notify"
	regModel "edusitepro_backend/internals/features/registrations/model"
	syncService "edusitepro_backend/internals/features/sync/service"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/helpers/httperr"
	"edusitepro_backend/internals/helpers/saga"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	parentTrialDays     = 14
	studentCodeAttempts = 5
)

type ApprovalResult struct {
	AccountID     string `json:"account_id"`
	GuardianEmail string `json:"guardian_email"`
	StudentCode   string `json:"student_code"`
	ApprovedAt    string `json:"approved_at"`
}

// ApprovalService runs the registration approval saga. Gating is strict:
// approval requires a proof-of-payment URL and a verified payment, and
// verification is its own transition. Account and student creation are fatal;
// profile creation, sibling sync and the welcome mail degrade to warnings.
// A fatal failure after records exist compensates them in reverse order, so a
// caller that loses the conditional mark_approved race leaves no orphans.
type ApprovalService struct {
	Store    RegistrationStore
	Identity accountService.IdentityProvider
	Notifier syncService.SiblingNotifier
	Mailer   notify.Mailer
	Payments PaymentChecker
}

func NewApprovalService(store RegistrationStore, idp accountService.IdentityProvider, notifier syncService.SiblingNotifier, mailer notify.Mailer, payments PaymentChecker) *ApprovalService {
	return &ApprovalService{Store: store, Identity: idp, Notifier: notifier, Mailer: mailer, Payments: payments}
}

// VerifyPayment flips payment_verified false→true. When the registration
// carries a gateway reference the transaction must have settled first.
func (s *ApprovalService) VerifyPayment(ctx context.Context, id uuid.UUID) error {
	reg, err := s.Store.GetRegistration(ctx, id)
	if err != nil {
		return httperr.Wrap(httperr.KindNotFound, "registration not found", err)
	}
	if reg.RegistrationPaymentVerified {
		return nil
	}
	if reg.RegistrationPaymentReference != nil && s.Payments != nil {
		settled, perr := s.Payments.IsSettled(*reg.RegistrationPaymentReference)
		if perr != nil {
			return perr
		}
		if !settled {
			return httperr.Validation("payment has not settled at the gateway")
		}
	}
	return s.Store.SetPaymentVerified(ctx, id)
}

func (s *ApprovalService) RejectRegistration(ctx context.Context, id uuid.UUID, reason *string) error {
	rows, err := s.Store.MarkRejected(ctx, id, reason)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.Validation("registration is not pending")
	}
	return nil
}

func (s *ApprovalService) ApproveRegistration(ctx context.Context, id uuid.UUID, approvedBy string) (*ApprovalResult, []string, error) {
	reg, err := s.Store.GetRegistration(ctx, id)
	if err != nil {
		return nil, nil, httperr.Wrap(httperr.KindNotFound, "registration not found", err)
	}
	if reg.RegistrationStatus == regModel.RegistrationApproved {
		return nil, nil, httperr.Validation("registration already approved")
	}
	if reg.RegistrationStatus == regModel.RegistrationRejected {
		return nil, nil, httperr.Validation("registration was rejected and cannot be approved")
	}
	if reg.RegistrationProofOfPaymentURL == nil || !reg.RegistrationPaymentVerified {
		return nil, nil, httperr.Validation("payment must be verified (with proof of payment) before approval")
	}

	tempPassword, err := helper.GenerateTempPassword(14)
	if err != nil {
		return nil, nil, err
	}

	var (
		accountID   uuid.UUID
		studentCode string
		approvedAt  = time.Now().UTC()
	)

	steps := []saga.Step{
		{
			Name:   "create_identity_account",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				got, aerr := s.Identity.CreateAccount(ctx,
					reg.RegistrationGuardianEmail, tempPassword, true, reg.RegistrationGuardianName)
				if aerr != nil {
					if httperr.IsUniqueViolation(aerr) {
						return httperr.Wrap(httperr.KindConflict, "an account with this email already exists", aerr)
					}
					return aerr
				}
				accountID = got
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.Identity.DeleteAccount(ctx, accountID)
			},
		},
		{
			Name:   "create_parent_profile",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				trialEnds := approvedAt.Add(parentTrialDays * 24 * time.Hour)
				orgID := reg.RegistrationOrganizationID
				return s.Store.CreateProfile(ctx, &accountModel.ProfileModel{
					ProfileUserID:         accountID,
					ProfileOrganizationID: &orgID,
					ProfileRole:           "parent",
					ProfileTier:           "free",
					ProfileTrialEndsAt:    &trialEnds,
				})
			},
			Compensate: func(ctx context.Context) error {
				return s.Store.DeleteProfileByUserID(ctx, accountID)
			},
		},
		{
			Name:   "create_student_record",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				code, serr := s.createStudentWithUniqueCode(ctx, reg, accountID)
				if serr != nil {
					return serr
				}
				studentCode = code
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.Store.DeleteStudentByUserID(ctx, accountID)
			},
		},
		{
			Name:   "mark_approved",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				rows, uerr := s.Store.MarkApproved(ctx, id, approvedBy, approvedAt)
				if uerr != nil {
					return uerr
				}
				if rows == 0 {
					// someone else won the race after our precondition check
					return httperr.Validation("registration already approved")
				}
				return nil
			},
		},
		{
			Name:   "sibling_sync",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				if s.Notifier == nil {
					return nil
				}
				return s.Notifier.NotifyRegistrationApproved(ctx, id.String())
			},
		},
		{
			Name:   "welcome_email",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				if s.Mailer == nil {
					return nil
				}
				return s.Mailer.Send(reg.RegistrationGuardianEmail,
					"Welcome to EduSitePro",
					notify.WelcomeEmail(reg.RegistrationGuardianName, tempPassword))
			},
		},
	}

	res, err := saga.Run(ctx, "approve_registration", steps)
	if err != nil {
		return nil, res.Warnings, err
	}

	logrus.WithFields(logrus.Fields{
		"registration_id": id,
		"account_id":      accountID,
		"student_code":    studentCode,
	}).Info("registration approved")

	return &ApprovalResult{
		AccountID:     accountID.String(),
		GuardianEmail: reg.RegistrationGuardianEmail,
		StudentCode:   studentCode,
		ApprovedAt:    approvedAt.Format(time.RFC3339),
	}, res.Warnings, nil
}

// createStudentWithUniqueCode rolls {school_code}-{year}-{0000..9999} codes,
// retrying on unique-constraint conflicts rather than trusting one roll.
func (s *ApprovalService) createStudentWithUniqueCode(ctx context.Context, reg *regModel.RegistrationModel, accountID uuid.UUID) (string, error) {
	year := time.Now().Year()
	regID := reg.RegistrationID

	var lastErr error
	for i := 0; i < studentCodeAttempts; i++ {
		code := fmt.Sprintf("%s-%d-%04d", reg.RegistrationSchoolCode, year, rand.Intn(10000))
		student := accountModel.StudentModel{
			StudentUserID:         accountID,
			StudentOrganizationID: reg.RegistrationOrganizationID,
			StudentCode:           code,
			StudentFullName:       reg.RegistrationStudentName,
			StudentRegistrationID: &regID,
		}
		err := s.Store.CreateStudent(ctx, &student)
		if err == nil {
			return code, nil
		}
		if !httperr.IsUniqueViolation(err) {
			return "", err
		}
		lastErr = err
	}
	return "", httperr.Wrap(httperr.KindConflict, "could not allocate a unique student code", lastErr)
}
