package constants

import "fmt"

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess      = "❌ Solo un administrador puede acceder a %s."
	ErrOnlyInstructorsCanAccess = "❌ Solo un instructor o administrador puede acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}
