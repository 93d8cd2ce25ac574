package domain

import "strings"

// Tier enumerates the access tiers a caller can be classified into.
type Tier string

const (
	TierGuest    Tier = "guest"
	TierFreemium Tier = "freemium"
	TierPremium  Tier = "premium"
)

// TierOrder lists all tiers from lowest to highest access.
var TierOrder = []Tier{TierGuest, TierFreemium, TierPremium}

// tierRank maps each tier to its position in the access order. Unknown tiers
// rank below guest so they never grant access.
func tierRank(t Tier) int {
	switch t {
	case TierGuest:
		return 0
	case TierFreemium:
		return 1
	case TierPremium:
		return 2
	default:
		return -1
	}
}

// ParseTier normalizes a tier name, reporting whether it is one of the known
// tiers.
func ParseTier(s string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierGuest:
		return TierGuest, true
	case TierFreemium:
		return TierFreemium, true
	case TierPremium:
		return TierPremium, true
	}
	return "", false
}

// HasTierAccess reports whether candidate grants at least the access level of
// required. Every known tier has access to itself.
func HasTierAccess(candidate, required Tier) bool {
	cr, rr := tierRank(candidate), tierRank(required)
	if cr < 0 || rr < 0 {
		return false
	}
	return cr >= rr
}

// TierInfo is the resolved access classification for a single call. It is a
// plain value: nothing is cached, nothing persisted.
type TierInfo struct {
	Tier            Tier
	IsPremium       bool
	IsGuest         bool
	IsAuthenticated bool
	UserID          *string // nil for guests
}
