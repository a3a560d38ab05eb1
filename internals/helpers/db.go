// file: internals/helpers/db.go
package helper

import "strings"

// IsDuplicateKey reports whether err is a unique-constraint violation.
// Drivers phrase it differently, so sniff the usual spellings.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
