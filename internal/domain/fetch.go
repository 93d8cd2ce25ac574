package domain

import (
	"context"
	"fmt"
)

// PremiumFetcher resolves a user's current premium entitlement on demand.
// Implementations may hit a database or a billing provider; callers own any
// caching or retry policy.
type PremiumFetcher interface {
	FetchPremiumStatus(ctx context.Context, userID string) (bool, error)
}

// PremiumFetcherFunc adapts a plain function to the PremiumFetcher interface.
type PremiumFetcherFunc func(ctx context.Context, userID string) (bool, error)

func (f PremiumFetcherFunc) FetchPremiumStatus(ctx context.Context, userID string) (bool, error) {
	return f(ctx, userID)
}

// ResolveTierWithFetcher resolves the tier for a caller whose premium flag is
// not known up front. Guest-classified callers resolve immediately and the
// fetcher is never invoked; fetchers can be expensive or side-effecting, so
// this is part of the contract, not an optimization that may be dropped.
//
// A fetch failure is returned wrapped under ErrFetchFailed with the cause
// preserved. No tier is substituted on failure; fallback policy belongs to
// the caller.
func ResolveTierWithFetcher(ctx context.Context, isGuest bool, userID *string, fetcher PremiumFetcher) (TierInfo, error) {
	if err := validateUserID(userID); err != nil {
		return TierInfo{}, err
	}

	if isGuest || userID == nil {
		return ResolveTier(isGuest, userID, false)
	}

	if fetcher == nil {
		return TierInfo{}, fmt.Errorf("%w: fetcher is required for authenticated users", ErrInvalidArgument)
	}

	isPremium, err := fetcher.FetchPremiumStatus(ctx, *userID)
	if err != nil {
		return TierInfo{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return ResolveTier(isGuest, userID, isPremium)
}
