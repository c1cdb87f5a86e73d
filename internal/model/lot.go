package model

import "strings"

// NormalizeLotNumber canonicalizes a free-text lot number at the single point
// of entry into the data model. Lot numbers are the only join key between
// purchases and production, so casing and stray whitespace must never differ
// between the two legs.
func NormalizeLotNumber(lot string) string {
	return strings.ToUpper(strings.TrimSpace(lot))
}
