package handlers

import (
	"errors"
	"net/http"

	"tiergate/internal/domain"
	"tiergate/internal/middleware"
)

type tierInfoDTO struct {
	Tier            string  `json:"tier"`
	Label           string  `json:"label"`
	IsPremium       bool    `json:"is_premium"`
	IsGuest         bool    `json:"is_guest"`
	IsAuthenticated bool    `json:"is_authenticated"`
	UserID          *string `json:"user_id"`
}

type accessCheckDTO struct {
	Tier     string `json:"tier"`
	Required string `json:"required"`
	Allowed  bool   `json:"allowed"`
}

// MeTier resolves the caller's current access tier. Requests without a bearer
// token resolve as guests and never touch the database.
func (a *App) MeTier(w http.ResponseWriter, r *http.Request) {
	info, ok := a.resolveCaller(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, a.tierDTO(r, info))
}

// MeAccess answers whether the caller's tier grants the required tier passed
// as the "required" query parameter.
func (a *App) MeAccess(w http.ResponseWriter, r *http.Request) {
	required, ok := domain.ParseTier(r.URL.Query().Get("required"))
	if !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "required must be one of guest, freemium, premium")
		return
	}
	info, ok := a.resolveCaller(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, accessCheckDTO{
		Tier:     string(info.Tier),
		Required: string(required),
		Allowed:  domain.HasTierAccess(info.Tier, required),
	})
}

// Tiers lists the tier order with localized display labels.
func (a *App) Tiers(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	items := make([]map[string]any, 0, len(domain.TierOrder))
	for rank, tier := range domain.TierOrder {
		items = append(items, map[string]any{
			"tier":  string(tier),
			"label": tierLabel(locale, tier),
			"rank":  rank,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// resolveCaller classifies the request's identity, fetching the premium flag
// through the repo for authenticated callers. On failure it writes the error
// response and reports false.
func (a *App) resolveCaller(w http.ResponseWriter, r *http.Request) (domain.TierInfo, bool) {
	var userID *string
	if id := middleware.UserIDFromContext(r.Context()); id != "" {
		userID = &id
	}

	info, err := domain.ResolveTierWithFetcher(r.Context(), userID == nil, userID, a.premium)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusUnauthorized, "unauthorized", "unknown user")
		case errors.Is(err, domain.ErrInvalidArgument):
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		default:
			a.Logger.Error().Err(err).Msg("tier resolution failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load premium status")
		}
		return domain.TierInfo{}, false
	}
	return info, true
}

func (a *App) tierDTO(r *http.Request, info domain.TierInfo) tierInfoDTO {
	return tierInfoDTO{
		Tier:            string(info.Tier),
		Label:           tierLabel(middleware.LocaleFromContext(r.Context()), info.Tier),
		IsPremium:       info.IsPremium,
		IsGuest:         info.IsGuest,
		IsAuthenticated: info.IsAuthenticated,
		UserID:          info.UserID,
	}
}
