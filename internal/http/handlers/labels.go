package handlers

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tiergate/internal/domain"
)

// tierLabels holds lowercase display names per locale; title casing is applied
// per the locale's rules.
var tierLabels = map[string]map[domain.Tier]string{
	"en": {
		domain.TierGuest:    "guest",
		domain.TierFreemium: "free",
		domain.TierPremium:  "premium",
	},
	"es": {
		domain.TierGuest:    "invitado",
		domain.TierFreemium: "gratuito",
		domain.TierPremium:  "premium",
	},
	"id": {
		domain.TierGuest:    "tamu",
		domain.TierFreemium: "gratis",
		domain.TierPremium:  "premium",
	},
}

func tierLabel(locale string, tier domain.Tier) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	labels, ok := tierLabels[locale]
	if !ok {
		labels = tierLabels["en"]
	}
	label, ok := labels[tier]
	if !ok {
		label = string(tier)
	}
	return cases.Title(tag).String(label)
}
