package domain

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestResolveTierGuestFlagForcesGuest(t *testing.T) {
	info, err := ResolveTier(true, strPtr("u1"), true)
	if err != nil {
		t.Fatalf("ResolveTier() unexpected error: %v", err)
	}
	if info.Tier != TierGuest {
		t.Fatalf("Tier = %q, want %q", info.Tier, TierGuest)
	}
	if info.IsPremium {
		t.Fatalf("IsPremium = true, want false (guest override discards the premium flag)")
	}
	if info.IsAuthenticated || !info.IsGuest {
		t.Fatalf("guest flags mismatch: %+v", info)
	}
	if info.UserID != nil {
		t.Fatalf("UserID = %q, want nil", *info.UserID)
	}
}

func TestResolveTierAbsentUserIDForcesGuest(t *testing.T) {
	for _, isGuest := range []bool{true, false} {
		for _, isPremium := range []bool{true, false} {
			info, err := ResolveTier(isGuest, nil, isPremium)
			if err != nil {
				t.Fatalf("ResolveTier(%v, nil, %v) error: %v", isGuest, isPremium, err)
			}
			if info.Tier != TierGuest || info.IsPremium || info.UserID != nil {
				t.Fatalf("ResolveTier(%v, nil, %v) = %+v, want guest", isGuest, isPremium, info)
			}
		}
	}
}

func TestResolveTierPremium(t *testing.T) {
	info, err := ResolveTier(false, strPtr("u1"), true)
	if err != nil {
		t.Fatalf("ResolveTier() error: %v", err)
	}
	if info.Tier != TierPremium || !info.IsPremium || !info.IsAuthenticated || info.IsGuest {
		t.Fatalf("ResolveTier() = %+v, want premium/authenticated", info)
	}
	if info.UserID == nil || *info.UserID != "u1" {
		t.Fatalf("UserID = %v, want u1", info.UserID)
	}
}

func TestResolveTierFreemium(t *testing.T) {
	info, err := ResolveTier(false, strPtr("u1"), false)
	if err != nil {
		t.Fatalf("ResolveTier() error: %v", err)
	}
	if info.Tier != TierFreemium || info.IsPremium || !info.IsAuthenticated {
		t.Fatalf("ResolveTier() = %+v, want freemium/authenticated", info)
	}
}

func TestResolveTierIdempotent(t *testing.T) {
	a, err := ResolveTier(false, strPtr("u1"), true)
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	b, err := ResolveTier(false, strPtr("u1"), true)
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if a.Tier != b.Tier || a.IsPremium != b.IsPremium || a.IsGuest != b.IsGuest || a.IsAuthenticated != b.IsAuthenticated {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
	if (a.UserID == nil) != (b.UserID == nil) || (a.UserID != nil && *a.UserID != *b.UserID) {
		t.Fatalf("user ids differ: %v vs %v", a.UserID, b.UserID)
	}
}

func TestResolveTierBlankUserID(t *testing.T) {
	for _, id := range []string{"", "   ", "\t"} {
		if _, err := ResolveTier(false, strPtr(id), false); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ResolveTier(false, %q, false) error = %v, want ErrInvalidArgument", id, err)
		}
	}
}

func TestPredicatesAgreeWithResolver(t *testing.T) {
	cases := []struct {
		isGuest bool
		userID  *string
	}{
		{true, nil},
		{true, strPtr("u1")},
		{false, nil},
		{false, strPtr("u1")},
	}
	for _, c := range cases {
		info, err := ResolveTier(c.isGuest, c.userID, true)
		if err != nil {
			t.Fatalf("ResolveTier(%v, %v) error: %v", c.isGuest, c.userID, err)
		}
		if got := IsAuthenticated(c.isGuest, c.userID); got != info.IsAuthenticated {
			t.Fatalf("IsAuthenticated(%v, %v) = %v, resolver says %v", c.isGuest, c.userID, got, info.IsAuthenticated)
		}
		if got := IsGuestUser(c.isGuest, c.userID); got != info.IsGuest {
			t.Fatalf("IsGuestUser(%v, %v) = %v, resolver says %v", c.isGuest, c.userID, got, info.IsGuest)
		}
		if got := IsGuestUser(c.isGuest, c.userID); got == IsAuthenticated(c.isGuest, c.userID) {
			t.Fatalf("predicates must be complements for (%v, %v)", c.isGuest, c.userID)
		}
	}
}

func TestCheckPremiumAccess(t *testing.T) {
	if CheckPremiumAccess(true, strPtr("u1"), true) {
		t.Fatalf("guests never have premium access")
	}
	if CheckPremiumAccess(false, nil, true) {
		t.Fatalf("absent userID classifies as guest, no premium access")
	}
	if !CheckPremiumAccess(false, strPtr("u1"), true) {
		t.Fatalf("authenticated premium user should have access")
	}
	if CheckPremiumAccess(false, strPtr("u1"), false) {
		t.Fatalf("freemium user should not have premium access")
	}
}

func TestHasTierAccess(t *testing.T) {
	if !HasTierAccess(TierPremium, TierFreemium) {
		t.Fatalf("premium should grant freemium access")
	}
	if HasTierAccess(TierFreemium, TierPremium) {
		t.Fatalf("freemium should not grant premium access")
	}
	for _, tier := range TierOrder {
		if !HasTierAccess(tier, tier) {
			t.Fatalf("%s should grant access to itself", tier)
		}
	}
	if HasTierAccess(Tier("vip"), TierGuest) {
		t.Fatalf("unknown tier should never grant access")
	}
}

func TestParseTier(t *testing.T) {
	tier, ok := ParseTier(" Premium ")
	if !ok || tier != TierPremium {
		t.Fatalf("ParseTier(\" Premium \") = %q, %v", tier, ok)
	}
	if _, ok := ParseTier("vip"); ok {
		t.Fatalf("ParseTier(\"vip\") should not parse")
	}
}
