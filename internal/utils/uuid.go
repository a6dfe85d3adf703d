package utils

import "github.com/google/uuid"

// IsUUID reports whether s parses as a UUID in any of the forms accepted by
// uuid.Parse.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
