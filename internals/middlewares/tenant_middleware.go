package middlewares

import (
	"errors"
	"log"
	"strings"

	"edusitepro_backend/internals/configs"
	centreModel "edusitepro_backend/internals/features/tenancy/centres/model"
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TenantRef is the tenant a request host resolved to: a centre, or an
// organization addressed by its own slug. Exactly one side is set.
type TenantRef struct {
	Centre       *centreModel.CentreModel
	Organization *orgModel.OrganizationModel
}

// TenantResolver attaches the tenant that owns the request host to
// c.Locals("tenant") as *TenantRef. Resolution order:
//
//  1. subdomain of the base site domain  -> centre by slug, else organization
//  2. exact match on a domain binding    -> centre by binding
//  3. bare host treated as a slug        -> centre/organization (local dev),
//     else DEFAULT_TENANT_SLUG when configured
//
// Any other host means the request is for the platform root and "tenant"
// stays unset. Resolution never fails the request.
func TenantResolver(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		host := normalizeHost(c.Hostname())
		if host == "" {
			return c.Next()
		}

		if ref := resolveTenantFromHost(db, host); ref != nil {
			c.Locals("tenant", ref)
		}
		return c.Next()
	}
}

func normalizeHost(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}

func resolveTenantFromHost(db *gorm.DB, host string) *TenantRef {
	base := strings.ToLower(configs.BaseSiteDomain)

	// Platform root and the bare base domain carry no tenant.
	if host == base {
		return nil
	}

	if strings.HasSuffix(host, "."+base) {
		// An unknown subdomain stays unresolved; the default tenant is
		// reserved for local development hosts.
		return refBySlug(db, strings.TrimSuffix(host, "."+base))
	}

	if centre := centreByDomainBinding(db, host); centre != nil {
		return &TenantRef{Centre: centre}
	}

	// Local dev hits the API with plain hostnames like "sunny-days".
	if !strings.Contains(host, ".") {
		if ref := refBySlug(db, host); ref != nil {
			return ref
		}
		return refBySlug(db, configs.DefaultTenantSlug)
	}

	return nil
}

// refBySlug prefers the centre carrying the slug and falls back to an
// organization with the same slug.
func refBySlug(db *gorm.DB, slug string) *TenantRef {
	if centre := centreBySlug(db, slug); centre != nil {
		return &TenantRef{Centre: centre}
	}
	if org := organizationBySlug(db, slug); org != nil {
		return &TenantRef{Organization: org}
	}
	return nil
}

func centreBySlug(db *gorm.DB, slug string) *centreModel.CentreModel {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	var centre centreModel.CentreModel
	err := db.First(&centre, "centre_slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("[WARN] tenant resolve by slug %q: %v", slug, err)
		return nil
	}
	return &centre
}

func organizationBySlug(db *gorm.DB, slug string) *orgModel.OrganizationModel {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	var org orgModel.OrganizationModel
	err := db.First(&org, "organization_slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("[WARN] tenant resolve by organization slug %q: %v", slug, err)
		return nil
	}
	return &org
}

func centreByDomainBinding(db *gorm.DB, host string) *centreModel.CentreModel {
	var binding centreModel.DomainBindingModel
	err := db.First(&binding,
		"domain_binding_domain = ? AND domain_binding_verification_status = ?",
		host, centreModel.DomainVerified).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("[WARN] tenant resolve by domain %q: %v", host, err)
		return nil
	}

	var centre centreModel.CentreModel
	if err := db.First(&centre, "centre_id = ?", binding.DomainBindingCentreID).Error; err != nil {
		log.Printf("[WARN] domain binding %q points at missing centre: %v", host, err)
		return nil
	}
	return &centre
}
