package dto

import regModel "edusitepro_backend/internals/features/registrations/model"

/* ===================== REQUESTS ===================== */

type RejectRegistrationRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type ListRegistrationsQuery struct {
	Status *regModel.RegistrationStatus `query:"status" validate:"omitempty,oneof=pending approved rejected waitlisted"`
}
