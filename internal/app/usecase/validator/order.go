package validator

import (
	"strings"

	"github.com/avGenie/go-topup-store/internal/app/entity"
)

// Lookup returns the current value of a named field.
type Lookup func(field string) string

// MissingFields returns the fields whose trimmed value is blank, keeping the
// order of fields.
func MissingFields(lookup Lookup, fields []string) []string {
	missing := make([]string, 0)
	for _, field := range fields {
		if strings.TrimSpace(lookup(field)) == "" {
			missing = append(missing, field)
		}
	}

	return missing
}

type TierSelector interface {
	HasTier() bool
}

// Eligible reports whether the storefront form may be submitted. Field
// formats (expiry pattern, card checksum) are not checked here.
func Eligible(lookup Lookup, selection TierSelector) bool {
	if !selection.HasTier() {
		return false
	}

	return len(MissingFields(lookup, entity.FormRequiredFields)) == 0
}
