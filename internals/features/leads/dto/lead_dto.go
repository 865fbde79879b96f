package dto

type CreateLeadRequest struct {
	LeadName        string  `json:"lead_name" validate:"required,min=2,max=150"`
	LeadEmail       string  `json:"lead_email" validate:"required,email"`
	LeadPhone       *string `json:"lead_phone" validate:"omitempty,max=30"`
	LeadCentreCount int     `json:"lead_centre_count" validate:"required,min=1,max=500"`
	LeadMessage     *string `json:"lead_message" validate:"omitempty,max=2000"`
}
