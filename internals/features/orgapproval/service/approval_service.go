package service

import (
	"context"

	accountService "edusitepro_backend/internals/features/accounts/service"
	"edusitepro_backend/internals/features/notify"
	signupModel "edusitepro_backend/internals/features/orgapproval/model"
	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"
	"edusitepro_backend/internals/features/tenancy/plans"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/helpers/httperr"
	"edusitepro_backend/internals/helpers/saga"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SignupApprovalResult struct {
	OrganizationID string   `json:"organization_id"`
	CentreID       string   `json:"centre_id"`
	AccountID      string   `json:"account_id"`
	PrimaryURL     string   `json:"primary_url"`
	Warnings       []string `json:"warnings,omitempty"`
}

// SignupApprovalService turns a pending organization signup into a live
// tenant across both platforms. Unlike centre provisioning this saga
// compensates: every fatal step after the first undoes all earlier steps in
// reverse order when a later one fails.
type SignupApprovalService struct {
	Store      SignupStore
	Sibling    SiblingWriter
	Identity   accountService.IdentityProvider
	Mailer     notify.Mailer
	BaseDomain string

	PlatformURL   string
	SiblingAppURL string
}

func NewSignupApprovalService(store SignupStore, sibling SiblingWriter, idp accountService.IdentityProvider, mailer notify.Mailer, baseDomain, platformURL, siblingAppURL string) *SignupApprovalService {
	return &SignupApprovalService{
		Store: store, Sibling: sibling, Identity: idp, Mailer: mailer,
		BaseDomain: baseDomain, PlatformURL: platformURL, SiblingAppURL: siblingAppURL,
	}
}

func (s *SignupApprovalService) ApproveSignup(ctx context.Context, signupID uuid.UUID) (*SignupApprovalResult, error) {
	signup, err := s.Store.GetSignup(ctx, signupID)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindNotFound, "signup not found", err)
	}
	if signup.SignupStatus != signupModel.SignupPending {
		return nil, httperr.Validation("signup is not pending")
	}

	orgSlug := helper.NormalizeSlug(signup.SignupOrganizationName)
	centreSlug := helper.NormalizeSlug(signup.SignupCentreName)
	primaryDomain := helper.DefaultSubdomain(centreSlug, s.BaseDomain)

	// Generated up front so the sibling platform can reuse the exact same
	// organization id, the shared key that joins the two systems.
	orgID := uuid.New()

	var (
		accountID uuid.UUID
		centre    centreModel.CentreModel
	)

	steps := []saga.Step{
		{
			Name:   "invite_identity_account",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				got, ierr := s.Identity.InviteByEmail(ctx,
					signup.SignupContactEmail, signup.SignupContactName,
					s.PlatformURL+"/onboarding")
				if ierr != nil {
					if httperr.IsUniqueViolation(ierr) {
						return httperr.Wrap(httperr.KindConflict, "an account with this email already exists", ierr)
					}
					return ierr
				}
				accountID = got
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.Identity.DeleteAccount(ctx, accountID)
			},
		},
		{
			Name:   "create_organization",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				org := orgModel.OrganizationModel{
					OrganizationID:                 orgID,
					OrganizationName:               signup.SignupOrganizationName,
					OrganizationSlug:               orgSlug,
					OrganizationPlanTier:           signup.SignupPlanTier,
					OrganizationMaxCentres:         plans.MaxCentresFor(signup.SignupPlanTier),
					OrganizationStatus:             orgModel.OrgActive,
					OrganizationSubscriptionStatus: orgModel.SubTrialing,
				}
				if cerr := s.Store.CreateOrganization(ctx, &org); cerr != nil {
					if httperr.IsUniqueViolation(cerr) {
						return httperr.Wrap(httperr.KindConflict, "organization slug already exists", cerr)
					}
					return cerr
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.Store.DeleteOrganization(ctx, orgID)
			},
		},
		{
			Name:   "create_centre",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				centre = centreModel.CentreModel{
					CentreOrganizationID: orgID,
					CentreName:           signup.SignupCentreName,
					CentreSlug:           centreSlug,
					CentreStatus:         centreModel.CentreActive,
					CentrePlanTier:       signup.SignupPlanTier,
					CentrePrimaryDomain:  primaryDomain,
				}
				if cerr := s.Store.CreateCentre(ctx, &centre); cerr != nil {
					if httperr.IsUniqueViolation(cerr) {
						return httperr.Wrap(httperr.KindConflict, "centre slug already exists", cerr)
					}
					return cerr
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.Store.DeleteCentre(ctx, centre.CentreID)
			},
		},
		{
			Name:   "create_sibling_records",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				if serr := s.Sibling.CreateOrganization(ctx, SiblingOrganization{
					ID:       orgID, // same id on both sides
					Name:     signup.SignupOrganizationName,
					Slug:     orgSlug,
					PlanTier: string(signup.SignupPlanTier),
				}); serr != nil {
					return serr
				}
				if serr := s.Sibling.CreatePreschool(ctx, SiblingPreschool{
					ID:             uuid.New(),
					OrganizationID: orgID,
					Name:           signup.SignupCentreName,
				}); serr != nil {
					s.cleanupSibling(ctx, orgID)
					return serr
				}
				if serr := s.Sibling.CreateUser(ctx, SiblingUser{
					ID:             accountID,
					OrganizationID: orgID,
					Email:          signup.SignupContactEmail,
					FullName:       signup.SignupContactName,
				}); serr != nil {
					s.cleanupSibling(ctx, orgID)
					return serr
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.Sibling.DeleteOrganization(ctx, orgID)
			},
		},
		{
			Name:   "mark_signup_approved",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				rows, uerr := s.Store.MarkSignupApproved(ctx, signupID)
				if uerr != nil {
					return uerr
				}
				if rows == 0 {
					return httperr.Validation("signup already processed")
				}
				return nil
			},
		},
		{
			Name:   "send_combined_welcome",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				if s.Mailer == nil {
					return nil
				}
				primaryReset, rerr := s.Identity.GeneratePasswordResetLink(ctx,
					signup.SignupContactEmail, s.PlatformURL+"/reset-password")
				if rerr != nil {
					return rerr
				}
				siblingReset := s.SiblingAppURL + "/reset-password?email=" + signup.SignupContactEmail
				return s.Mailer.Send(signup.SignupContactEmail,
					"Your organization is live",
					notify.CombinedWelcomeEmail(signup.SignupContactName, primaryReset, siblingReset))
			},
		},
	}

	res, err := saga.Run(ctx, "approve_organization_signup", steps)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"signup_id":       signupID,
		"organization_id": orgID,
		"centre_id":       centre.CentreID,
	}).Info("organization signup approved on both platforms")

	return &SignupApprovalResult{
		OrganizationID: orgID.String(),
		CentreID:       centre.CentreID.String(),
		AccountID:      accountID.String(),
		PrimaryURL:     "https://" + primaryDomain,
		Warnings:       res.Warnings,
	}, nil
}

// cleanupSibling undoes a partial sibling write within the same step; the
// step's Compensate only runs when a LATER step fails.
func (s *SignupApprovalService) cleanupSibling(ctx context.Context, orgID uuid.UUID) {
	if derr := s.Sibling.DeleteOrganization(ctx, orgID); derr != nil {
		logrus.WithField("organization_id", orgID).WithError(derr).
			Error("sibling cleanup failed, orphan records left on sibling platform")
	}
}
