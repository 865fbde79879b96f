package dto

import orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

/* ===================== REQUESTS ===================== */

type ProvisionCentreRequest struct {
	Name     string            `json:"name" validate:"required,min=2,max=150"`
	Slug     string            `json:"slug" validate:"required,min=2,max=120"`
	PlanTier orgModel.PlanTier `json:"plan_tier" validate:"omitempty,oneof=solo group_5 group_10 enterprise"`

	OrganizationID *string `json:"organization_id" validate:"omitempty,uuid"`
	PrimaryDomain  *string `json:"primary_domain" validate:"omitempty,fqdn"`
	TemplateKey    *string `json:"template_key" validate:"omitempty,max=40"`
}

/* ===================== RESPONSES ===================== */

type ProvisionCentreResponse struct {
	CentreID   string `json:"centre_id"`
	CentreSlug string `json:"centre_slug"`
	CentreName string `json:"centre_name"`

	PrimaryURL string `json:"primary_url"`
	PreviewURL string `json:"preview_url"`

	TemplateKey string `json:"template_key,omitempty"`
}
