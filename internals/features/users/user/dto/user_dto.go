// file: internals/features/users/user/dto/user_dto.go
package dto

import "strings"

type UpdateUserRequest struct {
	Name     *string `json:"user_name" validate:"omitempty,min=2,max=80"`
	Lastname *string `json:"user_lastname" validate:"omitempty,min=2,max=80"`
	Role     *string `json:"user_role" validate:"omitempty,oneof=admin instructor"`
	Status   *string `json:"user_status" validate:"omitempty,oneof=activo inactivo"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

// Changes excludes the password, which needs hashing in the controller.
func (r *UpdateUserRequest) Changes() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Name != nil {
		out["user_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Lastname != nil {
		out["user_lastname"] = strings.TrimSpace(*r.Lastname)
	}
	if r.Role != nil {
		out["user_role"] = *r.Role
	}
	if r.Status != nil {
		out["user_status"] = *r.Status
	}
	return out
}
