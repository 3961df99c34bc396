package billing

import (
	"fmt"
	"time"
)

// Status values mirror the subscription_status enum in PostgreSQL.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusReadOnly Status = "READ_ONLY"
	StatusExpired  Status = "EXPIRED"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusReadOnly, StatusExpired:
		return st, nil
	}
	return "", fmt.Errorf("unknown subscription status %q", s)
}

// EffectiveStatus derives the status a subscription should be evaluated at
// right now, regardless of what is persisted. A stored ACTIVE row whose end
// date has passed is READ_ONLY for all gating purposes; the stored row is
// lazily corrected on next access or by the sweeper.
func EffectiveStatus(stored Status, endDate time.Time, now time.Time) Status {
	if stored == StatusActive && now.After(endDate) {
		return StatusReadOnly
	}
	return stored
}

// Entitlement is the answer to "may this user write right now".
type Entitlement struct {
	IsActive  bool `json:"isActive"`
	IsExpired bool `json:"isExpired"`
}

// CheckActive evaluates the entitlement gate for a subscription row. Every
// mutating operation on user-owned data must pass this check; reads are
// always permitted.
func CheckActive(stored Status, endDate time.Time, now time.Time) Entitlement {
	effective := EffectiveStatus(stored, endDate, now)
	return Entitlement{
		IsActive:  effective == StatusActive,
		IsExpired: effective != StatusActive,
	}
}

// NeedsLazyCorrection reports whether the stored row should be downgraded to
// READ_ONLY. Correcting an already-corrected row is a no-op, so racing
// callers are safe.
func NeedsLazyCorrection(stored Status, endDate time.Time, now time.Time) bool {
	return stored == StatusActive && now.After(endDate)
}

// ReactivationOffer describes the discounted reactivation available to a
// lapsed subscription, if any.
type ReactivationOffer struct {
	Eligible        bool `json:"eligible"`
	DiscountPercent int  `json:"discountPercent,omitempty"`
	ExtensionDays   int  `json:"extensionDays,omitempty"`
}

// ReactivationFor returns the reactivation offer for a subscription. Only
// STARTER and PRO tiers whose effective status is READ_ONLY or EXPIRED
// qualify.
func ReactivationFor(tier Tier, stored Status, endDate time.Time, now time.Time) ReactivationOffer {
	if !tier.ReactivationEligible() {
		return ReactivationOffer{}
	}
	effective := EffectiveStatus(stored, endDate, now)
	if effective != StatusReadOnly && effective != StatusExpired {
		return ReactivationOffer{}
	}
	return ReactivationOffer{
		Eligible:        true,
		DiscountPercent: ReactivationDiscountPercent,
		ExtensionDays:   tier.NominalDays(),
	}
}

// ReactivatedEndDate computes the new entitlement window after a confirmed
// reactivation payment: the tier's nominal duration from the moment of
// confirmation. Day progression is untouched.
func ReactivatedEndDate(tier Tier, confirmedAt time.Time) time.Time {
	return confirmedAt.AddDate(0, 0, tier.NominalDays())
}

// ProvisionedEndDate computes the entitlement window for a fresh
// subscription, using the tier's grace duration.
func ProvisionedEndDate(tier Tier, startedAt time.Time) time.Time {
	return startedAt.AddDate(0, 0, tier.GraceDays())
}
