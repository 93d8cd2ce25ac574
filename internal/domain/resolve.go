package domain

import (
	"fmt"
	"strings"
)

// ResolveTier classifies a caller from its identity inputs and premium flag.
// A nil userID is the "no user" sentinel; guests (explicit flag or absent
// userID) always resolve to the guest tier with the premium flag discarded.
//
// A non-nil userID must carry a non-blank value, otherwise an
// ErrInvalidArgument is returned before any classification happens.
func ResolveTier(isGuest bool, userID *string, isPremium bool) (TierInfo, error) {
	if err := validateUserID(userID); err != nil {
		return TierInfo{}, err
	}

	if isGuest || userID == nil {
		return TierInfo{
			Tier:            TierGuest,
			IsPremium:       false,
			IsGuest:         true,
			IsAuthenticated: false,
			UserID:          nil,
		}, nil
	}

	tier := TierFreemium
	if isPremium {
		tier = TierPremium
	}
	id := *userID
	return TierInfo{
		Tier:            tier,
		IsPremium:       isPremium,
		IsGuest:         false,
		IsAuthenticated: true,
		UserID:          &id,
	}, nil
}

// IsAuthenticated reports whether the identity inputs describe a signed-in
// user. It always agrees with ResolveTier: guests are never authenticated.
func IsAuthenticated(isGuest bool, userID *string) bool {
	return !isGuest && hasUserID(userID)
}

// IsGuestUser is the complement of IsAuthenticated.
func IsGuestUser(isGuest bool, userID *string) bool {
	return isGuest || !hasUserID(userID)
}

// CheckPremiumAccess returns false for guest-classified callers and the
// supplied premium flag otherwise. Same answer as ResolveTier().IsPremium,
// kept separate for direct use.
func CheckPremiumAccess(isGuest bool, userID *string, isPremium bool) bool {
	if IsGuestUser(isGuest, userID) {
		return false
	}
	return isPremium
}

func hasUserID(userID *string) bool {
	return userID != nil && strings.TrimSpace(*userID) != ""
}

func validateUserID(userID *string) error {
	if userID != nil && strings.TrimSpace(*userID) == "" {
		return fmt.Errorf("%w: userID must be a non-empty string or nil, got %q", ErrInvalidArgument, *userID)
	}
	return nil
}
