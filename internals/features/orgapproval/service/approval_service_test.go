package service

import (
	"context"
	"errors"
	"testing"

	signupModel "edusitepro_backend/internals/features/orgapproval/model"
	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"
	"edusitepro_backend/internals/helpers/httperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSignupStore struct {
	signups map[uuid.UUID]*signupModel.OrganizationSignupModel
	orgs    map[uuid.UUID]orgModel.OrganizationModel
	centres map[uuid.UUID]centreModel.CentreModel

	failMarkApproved error
}

func newFakeSignupStore() *fakeSignupStore {
	return &fakeSignupStore{
		signups: map[uuid.UUID]*signupModel.OrganizationSignupModel{},
		orgs:    map[uuid.UUID]orgModel.OrganizationModel{},
		centres: map[uuid.UUID]centreModel.CentreModel{},
	}
}

func (f *fakeSignupStore) GetSignup(_ context.Context, id uuid.UUID) (*signupModel.OrganizationSignupModel, error) {
	rec, ok := f.signups[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return rec, nil
}

func (f *fakeSignupStore) MarkSignupApproved(_ context.Context, id uuid.UUID) (int64, error) {
	if f.failMarkApproved != nil {
		return 0, f.failMarkApproved
	}
	rec, ok := f.signups[id]
	if !ok || rec.SignupStatus != signupModel.SignupPending {
		return 0, nil
	}
	rec.SignupStatus = signupModel.SignupApproved
	return 1, nil
}

func (f *fakeSignupStore) CreateOrganization(_ context.Context, org *orgModel.OrganizationModel) error {
	f.orgs[org.OrganizationID] = *org
	return nil
}

func (f *fakeSignupStore) DeleteOrganization(_ context.Context, id uuid.UUID) error {
	delete(f.orgs, id)
	return nil
}

func (f *fakeSignupStore) CreateCentre(_ context.Context, centre *centreModel.CentreModel) error {
	if centre.CentreID == uuid.Nil {
		centre.CentreID = uuid.New()
	}
	f.centres[centre.CentreID] = *centre
	return nil
}

func (f *fakeSignupStore) DeleteCentre(_ context.Context, id uuid.UUID) error {
	delete(f.centres, id)
	return nil
}

type fakeSiblingWriter struct {
	orgs       map[uuid.UUID]SiblingOrganization
	preschools []SiblingPreschool
	users      []SiblingUser

	failCreateUser error
	failCreateOrg  error
}

func newFakeSiblingWriter() *fakeSiblingWriter {
	return &fakeSiblingWriter{orgs: map[uuid.UUID]SiblingOrganization{}}
}

func (f *fakeSiblingWriter) CreateOrganization(_ context.Context, rec SiblingOrganization) error {
	if f.failCreateOrg != nil {
		return f.failCreateOrg
	}
	f.orgs[rec.ID] = rec
	return nil
}

func (f *fakeSiblingWriter) CreatePreschool(_ context.Context, rec SiblingPreschool) error {
	f.preschools = append(f.preschools, rec)
	return nil
}

func (f *fakeSiblingWriter) CreateUser(_ context.Context, rec SiblingUser) error {
	if f.failCreateUser != nil {
		return f.failCreateUser
	}
	f.users = append(f.users, rec)
	return nil
}

func (f *fakeSiblingWriter) DeleteOrganization(_ context.Context, id uuid.UUID) error {
	delete(f.orgs, id)
	return nil
}

type fakeInviteIdentity struct {
	invited map[string]uuid.UUID
	deleted []uuid.UUID
}

func newFakeInviteIdentity() *fakeInviteIdentity {
	return &fakeInviteIdentity{invited: map[string]uuid.UUID{}}
}

func (f *fakeInviteIdentity) CreateAccount(_ context.Context, email, _ string, _ bool, _ string) (uuid.UUID, error) {
	return f.InviteByEmail(context.Background(), email, "", "")
}

func (f *fakeInviteIdentity) DeleteAccount(_ context.Context, accountID uuid.UUID) error {
	f.deleted = append(f.deleted, accountID)
	for email, id := range f.invited {
		if id == accountID {
			delete(f.invited, email)
		}
	}
	return nil
}

func (f *fakeInviteIdentity) InviteByEmail(_ context.Context, email, _, _ string) (uuid.UUID, error) {
	if _, exists := f.invited[email]; exists {
		return uuid.Nil, gorm.ErrDuplicatedKey
	}
	id := uuid.New()
	f.invited[email] = id
	return id, nil
}

func (f *fakeInviteIdentity) GeneratePasswordResetLink(_ context.Context, _, redirectURL string) (string, error) {
	return redirectURL + "?token=fake", nil
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(to, _, _ string) error {
	m.sent = append(m.sent, to)
	return nil
}

func pendingSignup() *signupModel.OrganizationSignupModel {
	return &signupModel.OrganizationSignupModel{
		SignupID:               uuid.New(),
		SignupOrganizationName: "Bright Futures Group",
		SignupCentreName:       "Bright Futures Randburg",
		SignupPlanTier:         orgModel.PlanGroup5,
		SignupContactName:      "Naledi Dlamini",
		SignupContactEmail:     "naledi@example.com",
		SignupStatus:           signupModel.SignupPending,
	}
}

func newTestSignupService(store *fakeSignupStore, sibling *fakeSiblingWriter, idp *fakeInviteIdentity, mailer *recordingMailer) *SignupApprovalService {
	return NewSignupApprovalService(store, sibling, idp, mailer,
		"sites.edusitepro.co.za", "https://app.edusitepro.co.za", "https://app.sibling.example")
}

func TestApproveSignupHappyPath(t *testing.T) {
	store := newFakeSignupStore()
	signup := pendingSignup()
	store.signups[signup.SignupID] = signup

	sibling := newFakeSiblingWriter()
	idp := newFakeInviteIdentity()
	mailer := &recordingMailer{}
	svc := newTestSignupService(store, sibling, idp, mailer)

	result, err := svc.ApproveSignup(context.Background(), signup.SignupID)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "https://bright-futures-randburg.sites.edusitepro.co.za", result.PrimaryURL)

	// one org + one centre locally
	require.Len(t, store.orgs, 1)
	require.Len(t, store.centres, 1)
	assert.Equal(t, signupModel.SignupApproved, signup.SignupStatus)

	// same organization id on both platforms
	orgID := uuid.MustParse(result.OrganizationID)
	_, onPrimary := store.orgs[orgID]
	_, onSibling := sibling.orgs[orgID]
	assert.True(t, onPrimary)
	assert.True(t, onSibling)

	require.Len(t, sibling.preschools, 1)
	assert.Equal(t, orgID, sibling.preschools[0].OrganizationID)
	require.Len(t, sibling.users, 1)
	assert.Equal(t, "naledi@example.com", sibling.users[0].Email)

	// group_5 plan carried through
	for _, org := range store.orgs {
		assert.Equal(t, orgModel.PlanGroup5, org.OrganizationPlanTier)
		assert.Equal(t, 5, org.OrganizationMaxCentres)
	}

	assert.Equal(t, []string{"naledi@example.com"}, mailer.sent)
}

func TestApproveSignupSiblingFailureCompensatesEverything(t *testing.T) {
	store := newFakeSignupStore()
	signup := pendingSignup()
	store.signups[signup.SignupID] = signup

	sibling := newFakeSiblingWriter()
	sibling.failCreateUser = errors.New("sibling users table unreachable")
	idp := newFakeInviteIdentity()
	svc := newTestSignupService(store, sibling, idp, &recordingMailer{})

	_, err := svc.ApproveSignup(context.Background(), signup.SignupID)
	require.Error(t, err)

	// every prior step rolled back
	assert.Empty(t, store.orgs)
	assert.Empty(t, store.centres)
	assert.Empty(t, idp.invited)
	assert.Len(t, idp.deleted, 1)
	assert.Empty(t, sibling.orgs) // sibling compensation removed its org too

	// signup stays pending for a retry
	assert.Equal(t, signupModel.SignupPending, signup.SignupStatus)
}

func TestApproveSignupMarkApprovedFailureCompensates(t *testing.T) {
	store := newFakeSignupStore()
	signup := pendingSignup()
	store.signups[signup.SignupID] = signup
	store.failMarkApproved = errors.New("deadlock")

	sibling := newFakeSiblingWriter()
	idp := newFakeInviteIdentity()
	svc := newTestSignupService(store, sibling, idp, &recordingMailer{})

	_, err := svc.ApproveSignup(context.Background(), signup.SignupID)
	require.Error(t, err)

	assert.Empty(t, store.orgs)
	assert.Empty(t, store.centres)
	assert.Empty(t, sibling.orgs)
	assert.Empty(t, idp.invited)
}

func TestApproveSignupNotPending(t *testing.T) {
	store := newFakeSignupStore()
	signup := pendingSignup()
	signup.SignupStatus = signupModel.SignupApproved
	store.signups[signup.SignupID] = signup

	idp := newFakeInviteIdentity()
	svc := newTestSignupService(store, newFakeSiblingWriter(), idp, &recordingMailer{})

	_, err := svc.ApproveSignup(context.Background(), signup.SignupID)
	require.Error(t, err)
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
	assert.Empty(t, idp.invited)
}

func TestApproveSignupMissing(t *testing.T) {
	svc := newTestSignupService(newFakeSignupStore(), newFakeSiblingWriter(), newFakeInviteIdentity(), &recordingMailer{})

	_, err := svc.ApproveSignup(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestApproveSignupDuplicateContactEmail(t *testing.T) {
	store := newFakeSignupStore()
	signup := pendingSignup()
	store.signups[signup.SignupID] = signup

	idp := newFakeInviteIdentity()
	idp.invited["naledi@example.com"] = uuid.New()
	svc := newTestSignupService(store, newFakeSiblingWriter(), idp, &recordingMailer{})

	_, err := svc.ApproveSignup(context.Background(), signup.SignupID)
	require.Error(t, err)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	assert.Empty(t, store.orgs)
}
