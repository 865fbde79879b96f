package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"edusitepro_backend/internals/features/provisioning/dto"
	siteModel "edusitepro_backend/internals/features/sites/model"
	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"
	"edusitepro_backend/internals/features/tenancy/plans"
	helper "edusitepro_backend/internals/helpers"
	"edusitepro_backend/internals/helpers/httperr"
	"edusitepro_backend/internals/helpers/saga"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// ProvisionService runs the centre provisioning saga: organization and centre
// creation are the fatal core, everything after the centre row exists
// (bindings, pages, blocks, nav) degrades to warnings. No step compensates:
// once the centre exists the operation is a success.
type ProvisionService struct {
	Store      TenantStore
	BaseDomain string
}

func NewProvisionService(store TenantStore, baseDomain string) *ProvisionService {
	return &ProvisionService{Store: store, BaseDomain: baseDomain}
}

var defaultPages = []struct {
	Slug      string
	Title     string
	Published bool
}{
	{"index", "Home", true},
	{"about", "About Us", false},
	{"programs", "Our Programs", false},
	{"contact", "Contact", false},
}

var defaultNav = []struct {
	Label string
	Href  string
}{
	{"Home", "/"},
	{"About", "/about"},
	{"Programs", "/programs"},
	{"Contact", "/contact"},
}

func (s *ProvisionService) ProvisionCentre(ctx context.Context, req dto.ProvisionCentreRequest) (*dto.ProvisionCentreResponse, []string, error) {
	name := strings.TrimSpace(req.Name)
	slug := helper.NormalizeSlug(req.Slug)
	if name == "" || slug == "" {
		return nil, nil, httperr.Validation("name and slug are required")
	}

	// Friendly pre-check; the unique index on centre_slug is the real guard.
	taken, err := s.Store.CentreSlugExists(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, httperr.Conflict("slug already exists")
	}

	tier := req.PlanTier
	if tier == "" {
		tier = orgModel.PlanSolo
	}

	var (
		org           *orgModel.OrganizationModel
		centre        centreModel.CentreModel
		primaryDomain string
		homePageID    uuid.UUID
	)

	steps := []saga.Step{
		{
			Name:   "resolve_organization",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				if req.OrganizationID != nil {
					id, perr := uuid.Parse(*req.OrganizationID)
					if perr != nil {
						return httperr.Validation("organization_id is not a valid UUID")
					}
					got, gerr := s.Store.GetOrganization(ctx, id)
					if gerr != nil {
						return httperr.Wrap(httperr.KindNotFound, "organization not found", gerr)
					}
					org = got
					return nil
				}
				return s.createOrganizationFor(ctx, name, slug, tier, &org)
			},
		},
		{
			Name:   "resolve_primary_domain",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				if req.PrimaryDomain != nil && strings.TrimSpace(*req.PrimaryDomain) != "" {
					primaryDomain = strings.ToLower(strings.TrimSpace(*req.PrimaryDomain))
				} else {
					primaryDomain = helper.DefaultSubdomain(slug, s.BaseDomain)
				}
				return nil
			},
		},
		{
			Name:   "create_centre",
			Policy: saga.Fatal,
			Execute: func(ctx context.Context) error {
				if org.OrganizationMaxCentres > 0 {
					count, cerr := s.Store.CountCentres(ctx, org.OrganizationID)
					if cerr != nil {
						return cerr
					}
					if count >= int64(org.OrganizationMaxCentres) {
						return httperr.CapacityExceeded(fmt.Sprintf(
							"centre limit reached for the %s plan (max %d), upgrade to add more centres",
							org.OrganizationPlanTier, org.OrganizationMaxCentres))
					}
				}
				centre = centreModel.CentreModel{
					CentreOrganizationID: org.OrganizationID,
					CentreName:           name,
					CentreSlug:           slug,
					CentreStatus:         centreModel.CentreActive,
					CentrePlanTier:       tier,
					CentrePrimaryDomain:  primaryDomain,
				}
				if cerr := s.Store.CreateCentre(ctx, &centre); cerr != nil {
					if httperr.IsUniqueViolation(cerr) {
						return httperr.Wrap(httperr.KindConflict, "slug already exists", cerr)
					}
					// The organization from step 1 is deliberately left in
					// place; log it so operators can reap the orphan.
					logrus.WithField("organization_id", org.OrganizationID).
						Warn("centre creation failed after organization creation, orphan organization left behind")
					return cerr
				}
				return nil
			},
		},
		{
			Name:   "register_domain_bindings",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				return s.registerDomainBindings(ctx, centre.CentreID, slug, primaryDomain)
			},
		},
		{
			Name:   "seed_default_pages",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				for i, p := range defaultPages {
					page := siteModel.PageModel{
						PageCentreID:    centre.CentreID,
						PageSlug:        p.Slug,
						PageTitle:       p.Title,
						PageSortOrder:   i,
						PageIsPublished: p.Published,
					}
					if perr := s.Store.CreatePage(ctx, &page); perr != nil {
						return perr
					}
					if p.Slug == "index" {
						homePageID = page.PageID
					}
				}
				return nil
			},
		},
		{
			Name:   "seed_home_blocks",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				if homePageID == uuid.Nil {
					// page seeding didn't yield a home page; degrade silently
					return nil
				}
				return s.seedHomeBlocks(ctx, homePageID, name)
			},
		},
		{
			Name:   "seed_navigation",
			Policy: saga.Degraded,
			Execute: func(ctx context.Context) error {
				for i, n := range defaultNav {
					item := siteModel.NavigationItemModel{
						NavigationItemCentreID:  centre.CentreID,
						NavigationItemLabel:     n.Label,
						NavigationItemHref:      n.Href,
						NavigationItemSortOrder: i,
					}
					if nerr := s.Store.CreateNavigationItem(ctx, &item); nerr != nil {
						return nerr
					}
				}
				return nil
			},
		},
	}

	res, err := saga.Run(ctx, "provision_centre", steps)
	if err != nil {
		return nil, res.Warnings, err
	}

	out := &dto.ProvisionCentreResponse{
		CentreID:   centre.CentreID.String(),
		CentreSlug: centre.CentreSlug,
		CentreName: centre.CentreName,
		PrimaryURL: "https://" + primaryDomain,
		PreviewURL: "https://" + helper.DefaultSubdomain(slug, s.BaseDomain),
	}
	if req.TemplateKey != nil {
		out.TemplateKey = *req.TemplateKey
	}
	return out, res.Warnings, nil
}

// createOrganizationFor synthesizes an owning organization for a stand-alone
// centre: "{name} Organization" with slug "{slug}-org", retrying with a random
// numeric suffix up to 3 times when the slug is taken.
func (s *ProvisionService) createOrganizationFor(ctx context.Context, name, slug string, tier orgModel.PlanTier, out **orgModel.OrganizationModel) error {
	orgSlug := slug + "-org"
	for attempt := 0; ; attempt++ {
		taken, err := s.Store.OrganizationSlugExists(ctx, orgSlug)
		if err != nil {
			return err
		}
		if !taken {
			break
		}
		if attempt >= 3 {
			return httperr.Conflict("could not find a free organization slug for " + slug)
		}
		orgSlug = fmt.Sprintf("%s-org-%d", slug, 1000+rand.Intn(9000))
	}

	org := orgModel.OrganizationModel{
		OrganizationName:               name + " Organization",
		OrganizationSlug:               orgSlug,
		OrganizationPlanTier:           tier,
		OrganizationMaxCentres:         plans.MaxCentresFor(tier),
		OrganizationStatus:             orgModel.OrgActive,
		OrganizationSubscriptionStatus: orgModel.SubTrialing,
	}
	if err := s.Store.CreateOrganization(ctx, &org); err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.Wrap(httperr.KindConflict, "organization slug already exists", err)
		}
		return err
	}
	*out = &org
	return nil
}

func (s *ProvisionService) registerDomainBindings(ctx context.Context, centreID uuid.UUID, slug, primaryDomain string) error {
	defaultDomain := helper.DefaultSubdomain(slug, s.BaseDomain)

	primaryStatus := centreModel.DomainPending
	if primaryDomain == defaultDomain {
		primaryStatus = centreModel.DomainVerified
	}
	primary := centreModel.DomainBindingModel{
		DomainBindingCentreID:           centreID,
		DomainBindingDomain:             primaryDomain,
		DomainBindingIsPrimary:          true,
		DomainBindingVerificationStatus: primaryStatus,
	}
	if err := s.Store.CreateDomainBinding(ctx, &primary); err != nil {
		return err
	}

	// A custom primary still gets the canonical subdomain as a verified
	// fallback so the centre stays reachable.
	if primaryDomain != defaultDomain {
		fallback := centreModel.DomainBindingModel{
			DomainBindingCentreID:           centreID,
			DomainBindingDomain:             defaultDomain,
			DomainBindingIsPrimary:          false,
			DomainBindingVerificationStatus: centreModel.DomainVerified,
		}
		if err := s.Store.CreateDomainBinding(ctx, &fallback); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProvisionService) seedHomeBlocks(ctx context.Context, homePageID uuid.UUID, centreName string) error {
	hero := siteModel.BlockModel{
		BlockPageID:    homePageID,
		BlockKind:      "hero",
		BlockSortOrder: 0,
		BlockContent: datatypes.JSON([]byte(fmt.Sprintf(
			`{"title":%q,"subtitle":"A caring place for little learners","cta_label":"Enrol Now","cta_href":"/contact"}`,
			"Welcome to "+centreName))),
	}
	if err := s.Store.CreateBlock(ctx, &hero); err != nil {
		return err
	}

	features := siteModel.BlockModel{
		BlockPageID:    homePageID,
		BlockKind:      "features",
		BlockSortOrder: 1,
		BlockContent: datatypes.JSON([]byte(
			`{"items":[{"title":"Qualified Teachers"},{"title":"Safe Environment"},{"title":"Play-Based Learning"}]}`)),
	}
	return s.Store.CreateBlock(ctx, &features)
}
