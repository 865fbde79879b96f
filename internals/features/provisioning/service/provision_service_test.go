package service

import (
	"context"
	"errors"
	"testing"

	"edusitepro_backend/internals/features/provisioning/dto"
	siteModel "edusitepro_backend/internals/features/sites/model"
	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"
	"edusitepro_backend/internals/helpers/httperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseDomain = "sites.edusitepro.co.za"

// fakeTenantStore records every write in memory.
type fakeTenantStore struct {
	orgs     map[uuid.UUID]*orgModel.OrganizationModel
	orgSlugs map[string]bool

	centres      []centreModel.CentreModel
	centreSlugs  map[string]bool
	bindings     []centreModel.DomainBindingModel
	pages        []siteModel.PageModel
	blocks       []siteModel.BlockModel
	navItems     []siteModel.NavigationItemModel
	centreCounts map[uuid.UUID]int64

	failCreateCentre error
	failCreatePage   error
}

func newFakeTenantStore() *fakeTenantStore {
	return &fakeTenantStore{
		orgs:         map[uuid.UUID]*orgModel.OrganizationModel{},
		orgSlugs:     map[string]bool{},
		centreSlugs:  map[string]bool{},
		centreCounts: map[uuid.UUID]int64{},
	}
}

func (f *fakeTenantStore) CentreSlugExists(_ context.Context, slug string) (bool, error) {
	return f.centreSlugs[slug], nil
}

func (f *fakeTenantStore) OrganizationSlugExists(_ context.Context, slug string) (bool, error) {
	return f.orgSlugs[slug], nil
}

func (f *fakeTenantStore) GetOrganization(_ context.Context, id uuid.UUID) (*orgModel.OrganizationModel, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return org, nil
}

func (f *fakeTenantStore) CreateOrganization(_ context.Context, org *orgModel.OrganizationModel) error {
	if org.OrganizationID == uuid.Nil {
		org.OrganizationID = uuid.New()
	}
	f.orgs[org.OrganizationID] = org
	f.orgSlugs[org.OrganizationSlug] = true
	return nil
}

func (f *fakeTenantStore) CountCentres(_ context.Context, organizationID uuid.UUID) (int64, error) {
	return f.centreCounts[organizationID], nil
}

func (f *fakeTenantStore) CreateCentre(_ context.Context, centre *centreModel.CentreModel) error {
	if f.failCreateCentre != nil {
		return f.failCreateCentre
	}
	if centre.CentreID == uuid.Nil {
		centre.CentreID = uuid.New()
	}
	f.centres = append(f.centres, *centre)
	f.centreSlugs[centre.CentreSlug] = true
	f.centreCounts[centre.CentreOrganizationID]++
	return nil
}

func (f *fakeTenantStore) CreateDomainBinding(_ context.Context, binding *centreModel.DomainBindingModel) error {
	f.bindings = append(f.bindings, *binding)
	return nil
}

func (f *fakeTenantStore) CreatePage(_ context.Context, page *siteModel.PageModel) error {
	if f.failCreatePage != nil {
		return f.failCreatePage
	}
	if page.PageID == uuid.Nil {
		page.PageID = uuid.New()
	}
	f.pages = append(f.pages, *page)
	return nil
}

func (f *fakeTenantStore) CreateBlock(_ context.Context, block *siteModel.BlockModel) error {
	f.blocks = append(f.blocks, *block)
	return nil
}

func (f *fakeTenantStore) CreateNavigationItem(_ context.Context, item *siteModel.NavigationItemModel) error {
	f.navItems = append(f.navItems, *item)
	return nil
}

func TestProvisionCentreHappyPath(t *testing.T) {
	store := newFakeTenantStore()
	svc := NewProvisionService(store, testBaseDomain)

	resp, warnings, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{
		Name: "Sunny Days",
		Slug: "Sunny Days",
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "sunny-days", resp.CentreSlug)
	assert.Equal(t, "Sunny Days", resp.CentreName)
	assert.Equal(t, "https://sunny-days.sites.edusitepro.co.za", resp.PrimaryURL)
	assert.Equal(t, "https://sunny-days.sites.edusitepro.co.za", resp.PreviewURL)

	// an owning organization was synthesized
	require.Len(t, store.orgs, 1)
	for _, org := range store.orgs {
		assert.Equal(t, "Sunny Days Organization", org.OrganizationName)
		assert.Equal(t, "sunny-days-org", org.OrganizationSlug)
		assert.Equal(t, orgModel.PlanSolo, org.OrganizationPlanTier)
		assert.Equal(t, 1, org.OrganizationMaxCentres)
	}

	require.Len(t, store.centres, 1)
	assert.Equal(t, "sunny-days.sites.edusitepro.co.za", store.centres[0].CentrePrimaryDomain)

	// default subdomain gets one verified primary binding
	require.Len(t, store.bindings, 1)
	assert.True(t, store.bindings[0].DomainBindingIsPrimary)
	assert.Equal(t, centreModel.DomainVerified, store.bindings[0].DomainBindingVerificationStatus)

	assert.Len(t, store.pages, 4)
	assert.Len(t, store.blocks, 2)
	assert.Len(t, store.navItems, 4)

	// only the home page is published
	published := 0
	for _, p := range store.pages {
		if p.PageIsPublished {
			published++
			assert.Equal(t, "index", p.PageSlug)
		}
	}
	assert.Equal(t, 1, published)
}

func TestProvisionCentreCustomDomainGetsFallbackBinding(t *testing.T) {
	store := newFakeTenantStore()
	svc := NewProvisionService(store, testBaseDomain)

	custom := "www.sunnydays.example"
	_, _, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{
		Name:          "Sunny Days",
		Slug:          "sunny-days",
		PrimaryDomain: &custom,
	})
	require.NoError(t, err)

	require.Len(t, store.bindings, 2)

	primary := store.bindings[0]
	assert.Equal(t, "www.sunnydays.example", primary.DomainBindingDomain)
	assert.True(t, primary.DomainBindingIsPrimary)
	assert.Equal(t, centreModel.DomainPending, primary.DomainBindingVerificationStatus)

	fallback := store.bindings[1]
	assert.Equal(t, "sunny-days.sites.edusitepro.co.za", fallback.DomainBindingDomain)
	assert.False(t, fallback.DomainBindingIsPrimary)
	assert.Equal(t, centreModel.DomainVerified, fallback.DomainBindingVerificationStatus)
}

func TestProvisionCentreDuplicateSlugWritesNothing(t *testing.T) {
	store := newFakeTenantStore()
	store.centreSlugs["sunny-days"] = true
	svc := NewProvisionService(store, testBaseDomain)

	_, _, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{
		Name: "Sunny Days",
		Slug: "sunny-days",
	})
	require.Error(t, err)
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))

	assert.Empty(t, store.orgs)
	assert.Empty(t, store.centres)
	assert.Empty(t, store.bindings)
	assert.Empty(t, store.pages)
}

func TestProvisionCentreCapacityExceeded(t *testing.T) {
	store := newFakeTenantStore()
	org := &orgModel.OrganizationModel{
		OrganizationID:         uuid.New(),
		OrganizationName:       "Full House",
		OrganizationSlug:       "full-house",
		OrganizationPlanTier:   orgModel.PlanSolo,
		OrganizationMaxCentres: 1,
	}
	store.orgs[org.OrganizationID] = org
	store.centreCounts[org.OrganizationID] = 1
	svc := NewProvisionService(store, testBaseDomain)

	orgID := org.OrganizationID.String()
	_, _, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{
		Name:           "Second Centre",
		Slug:           "second-centre",
		OrganizationID: &orgID,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.KindCapacityExceeded, httperr.KindOf(err))
	assert.Contains(t, err.Error(), "upgrade")
	assert.Empty(t, store.centres)
}

func TestProvisionCentreUnlimitedPlanSkipsCapacityCheck(t *testing.T) {
	store := newFakeTenantStore()
	org := &orgModel.OrganizationModel{
		OrganizationID:         uuid.New(),
		OrganizationName:       "Big Group",
		OrganizationSlug:       "big-group",
		OrganizationPlanTier:   orgModel.PlanEnterprise,
		OrganizationMaxCentres: 0,
	}
	store.orgs[org.OrganizationID] = org
	store.centreCounts[org.OrganizationID] = 250
	svc := NewProvisionService(store, testBaseDomain)

	orgID := org.OrganizationID.String()
	_, _, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{
		Name:           "Centre 251",
		Slug:           "centre-251",
		OrganizationID: &orgID,
	})
	require.NoError(t, err)
	assert.Len(t, store.centres, 1)
}

func TestProvisionCentreUnknownOrganization(t *testing.T) {
	store := newFakeTenantStore()
	svc := NewProvisionService(store, testBaseDomain)

	orgID := uuid.NewString()
	_, _, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{
		Name:           "Orphan",
		Slug:           "orphan",
		OrganizationID: &orgID,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestProvisionCentrePageSeedingDegrades(t *testing.T) {
	store := newFakeTenantStore()
	store.failCreatePage = errors.New("disk full")
	svc := NewProvisionService(store, testBaseDomain)

	resp, warnings, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{
		Name: "Sunny Days",
		Slug: "sunny-days",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// centre exists, page seeding degraded to a warning, no blocks either
	assert.Len(t, store.centres, 1)
	assert.Empty(t, store.blocks)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "seed_default_pages")
}

func TestProvisionCentreValidationErrors(t *testing.T) {
	svc := NewProvisionService(newFakeTenantStore(), testBaseDomain)

	_, _, err := svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{Name: "", Slug: "x"})
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	// slug that normalizes to nothing
	_, _, err = svc.ProvisionCentre(context.Background(), dto.ProvisionCentreRequest{Name: "ok", Slug: "!!!"})
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}
