// file: internals/features/academy/branches/dto/branch_dto.go
package dto

import (
	"strings"

	m "gymku_backend/internals/features/academy/branches/model"
)

/* =========================
   CREATE / UPDATE
========================= */

type CreateBranchRequest struct {
	Name string `json:"branch_name" validate:"required,min=2,max=120"`
	City string `json:"branch_city" validate:"required,min=2,max=80"`
	IP   string `json:"branch_ip" validate:"omitempty,ip"`
	Mask string `json:"branch_mask" validate:"omitempty,ip"`
}

func (r *CreateBranchRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.IP = strings.TrimSpace(r.IP)
	r.Mask = strings.TrimSpace(r.Mask)
}

func (r *CreateBranchRequest) ToModel() m.BranchModel {
	return m.BranchModel{
		BranchName:   r.Name,
		BranchCity:   r.City,
		BranchIP:     r.IP,
		BranchMask:   r.Mask,
		BranchStatus: m.BranchActivo,
	}
}

type UpdateBranchRequest struct {
	Name   *string `json:"branch_name" validate:"omitempty,min=2,max=120"`
	City   *string `json:"branch_city" validate:"omitempty,min=2,max=80"`
	IP     *string `json:"branch_ip" validate:"omitempty,ip"`
	Mask   *string `json:"branch_mask" validate:"omitempty,ip"`
	Status *string `json:"branch_status" validate:"omitempty,oneof=activo inactivo"`
}

// Changes builds the column map for a partial update.
func (r *UpdateBranchRequest) Changes() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Name != nil {
		out["branch_name"] = strings.TrimSpace(*r.Name)
	}
	if r.City != nil {
		out["branch_city"] = strings.TrimSpace(*r.City)
	}
	if r.IP != nil {
		out["branch_ip"] = strings.TrimSpace(*r.IP)
	}
	if r.Mask != nil {
		out["branch_mask"] = strings.TrimSpace(*r.Mask)
	}
	if r.Status != nil {
		out["branch_status"] = *r.Status
	}
	return out
}
