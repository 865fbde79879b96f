package dto

import (
	orgModel "edusitepro_backend/internals/features/tenancy/organizations/model"

	"gorm.io/datatypes"
)

/* ===================== REQUESTS ===================== */

type CreateOrganizationRequest struct {
	OrganizationName     string            `json:"organization_name" validate:"required,min=2,max=150"`
	OrganizationSlug     string            `json:"organization_slug" validate:"omitempty,min=2,max=120"`
	OrganizationPlanTier orgModel.PlanTier `json:"organization_plan_tier" validate:"omitempty,oneof=solo group_5 group_10 enterprise"`

	OrganizationType             *string        `json:"organization_type" validate:"omitempty,max=40"`
	OrganizationBrandingColors   datatypes.JSON `json:"organization_branding_colors" validate:"omitempty"`
	OrganizationRegistrationOpen *bool          `json:"organization_registration_open" validate:"omitempty"`
}

type UpdateOrganizationRequest struct {
	OrganizationName     *string            `json:"organization_name" validate:"omitempty,min=2,max=150"`
	OrganizationPlanTier *orgModel.PlanTier `json:"organization_plan_tier" validate:"omitempty,oneof=solo group_5 group_10 enterprise"`

	OrganizationStatus           *orgModel.OrganizationStatus `json:"organization_status" validate:"omitempty,oneof=active suspended archived"`
	OrganizationBrandingColors   datatypes.JSON               `json:"organization_branding_colors" validate:"omitempty"`
	OrganizationRegistrationOpen *bool                        `json:"organization_registration_open" validate:"omitempty"`
}
