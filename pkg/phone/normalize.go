// Package phone normalizes customer phone numbers.
package phone

import "github.com/nyaruka/phonenumbers"

// DefaultRegion is used when a number carries no country prefix.
const DefaultRegion = "IN"

// Normalize formats raw to E.164. Parsing is best-effort: numbers that
// cannot be parsed or are invalid are stored as entered.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
