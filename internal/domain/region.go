package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	regionName         = "carlow"
	regionPostalPrefix = "R93"
	unknownRegionLabel = "Unknown"
)

// IsInRegion reports whether a business appears to be located in Carlow.
// Any one signal is enough: an exact town match, "carlow" anywhere in the
// location or address text, or a Carlow eircode routing key.
func IsInRegion(b Business) bool {
	return strings.ToLower(b.Town) == regionName ||
		strings.Contains(strings.ToLower(b.LocationText), regionName) ||
		strings.Contains(strings.ToLower(b.AddressText), regionName) ||
		strings.HasPrefix(strings.ToUpper(b.PostalPrefix), regionPostalPrefix)
}

// NormalizeTown trims s and capitalizes only its first letter, lowering the
// rest: "carlow town" becomes "Carlow town".
func NormalizeTown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// RegionLabel is the grouping key used for region distributions: the
// normalized town, else the normalized location text, else "Unknown".
// Whitespace-only values count as absent.
func RegionLabel(b Business) string {
	if town := NormalizeTown(b.Town); town != "" {
		return town
	}
	if loc := NormalizeTown(b.LocationText); loc != "" {
		return loc
	}
	return unknownRegionLabel
}
