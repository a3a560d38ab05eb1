// file: internals/features/academy/memberships/dto/membership_dto.go
package dto

import (
	"strings"

	"github.com/lib/pq"

	m "gymku_backend/internals/features/academy/memberships/model"
)

type CreateMembershipRequest struct {
	Name          string  `json:"membership_name" validate:"required,min=2,max=120"`
	DurationDays  int     `json:"membership_duration_days" validate:"required,min=1,max=730"`
	TotalSessions int     `json:"membership_total_sessions" validate:"required,min=1,max=500"`
	AllowedDays   []int64 `json:"membership_allowed_days" validate:"required,min=1,max=7,dive,min=0,max=6"`
	Cost          float64 `json:"membership_cost" validate:"required,min=0"`
}

func (r *CreateMembershipRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateMembershipRequest) ToModel() m.MembershipModel {
	return m.MembershipModel{
		MembershipName:          r.Name,
		MembershipDurationDays:  r.DurationDays,
		MembershipTotalSessions: r.TotalSessions,
		MembershipAllowedDays:   pq.Int64Array(r.AllowedDays),
		MembershipCost:          r.Cost,
		MembershipStatus:        m.MembershipActivo,
	}
}

type UpdateMembershipRequest struct {
	Name          *string  `json:"membership_name" validate:"omitempty,min=2,max=120"`
	DurationDays  *int     `json:"membership_duration_days" validate:"omitempty,min=1,max=730"`
	TotalSessions *int     `json:"membership_total_sessions" validate:"omitempty,min=1,max=500"`
	AllowedDays   []int64  `json:"membership_allowed_days" validate:"omitempty,min=1,max=7,dive,min=0,max=6"`
	Cost          *float64 `json:"membership_cost" validate:"omitempty,min=0"`
	Status        *string  `json:"membership_status" validate:"omitempty,oneof=activo inactivo"`
}

func (r *UpdateMembershipRequest) Changes() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Name != nil {
		out["membership_name"] = strings.TrimSpace(*r.Name)
	}
	if r.DurationDays != nil {
		out["membership_duration_days"] = *r.DurationDays
	}
	if r.TotalSessions != nil {
		out["membership_total_sessions"] = *r.TotalSessions
	}
	if r.AllowedDays != nil {
		out["membership_allowed_days"] = pq.Int64Array(r.AllowedDays)
	}
	if r.Cost != nil {
		out["membership_cost"] = *r.Cost
	}
	if r.Status != nil {
		out["membership_status"] = *r.Status
	}
	return out
}
