package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ReactivateRequest redeems a minted reactivation code.
type ReactivateRequest struct {
	Code string `json:"code" validate:"required,min=4"`
}

// SubscriptionResponse is the subscription view returned to clients. Status
// is the effective status, derived at read time.
type SubscriptionResponse struct {
	Tier              string             `json:"tier"`
	Status            string             `json:"status"`
	StartDate         time.Time          `json:"start_date"`
	EndDate           time.Time          `json:"end_date"`
	HasAI             bool               `json:"has_ai"`
	HasBonusModules   bool               `json:"has_bonus_modules"`
	ReactivationOffer *ReactivationOffer `json:"reactivation_offer,omitempty"`
}

// ReactivationOffer describes the discounted renewal available to a lapsed
// STARTER or PRO subscriber.
type ReactivationOffer struct {
	Tier            string `json:"tier"`
	DiscountPercent int    `json:"discount_percent"`
	ExtensionDays   int    `json:"extension_days"`
}

// Validate validates the ReactivateRequest using the validator.
func (r *ReactivateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
