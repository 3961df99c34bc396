// Package billing implements the subscription lifecycle: tiers, effective
// status derivation, the entitlement gate, reactivation rules, and activation
// code handling.
package billing

import "fmt"

// Tier values mirror the subscription_tier enum in PostgreSQL.
type Tier string

const (
	TierStarter Tier = "STARTER"
	TierPro     Tier = "PRO"
	TierPremium Tier = "PREMIUM"
)

// ReactivationDiscountPercent is the discount applied to eligible
// reactivation offers.
const ReactivationDiscountPercent = 50

// ParseTier converts a raw string to a Tier, returning an error for unknown
// values.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	switch t {
	case TierStarter, TierPro, TierPremium:
		return t, nil
	}
	return "", fmt.Errorf("unknown subscription tier %q", s)
}

// NominalDays is the entitlement duration a tier grants on purchase or
// reactivation.
func (t Tier) NominalDays() int {
	switch t {
	case TierStarter:
		return 14
	case TierPro:
		return 30
	case TierPremium:
		return 365
	}
	return 0
}

// GraceDays is the duration used when provisioning a fresh subscription.
// STARTER and PRO get two extra days so the program window never expires
// mid-day; PREMIUM is long enough that no grace is added.
func (t Tier) GraceDays() int {
	switch t {
	case TierStarter:
		return 16
	case TierPro:
		return 32
	case TierPremium:
		return 365
	}
	return 0
}

// DisplayName returns the customer-facing tier name.
func (t Tier) DisplayName() string {
	switch t {
	case TierStarter:
		return "Starter"
	case TierPro:
		return "Pro"
	case TierPremium:
		return "Premium"
	}
	return string(t)
}

// HasAI reports whether the tier unlocks the AI-assisted features.
func (t Tier) HasAI() bool {
	return t == TierPro || t == TierPremium
}

// HasBonusModules reports whether the tier unlocks the salary-script,
// 90-day-plan, and weekly-wins bonus modules.
func (t Tier) HasBonusModules() bool {
	return t == TierPremium
}

// ReactivationEligible reports whether the tier qualifies for the discounted
// reactivation offer. PREMIUM runs long enough that mid-program expiry is out
// of normal flow.
func (t Tier) ReactivationEligible() bool {
	return t == TierStarter || t == TierPro
}
