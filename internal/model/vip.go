package model

// PlanType identifies the duration class of a VIP plan
type PlanType string

const (
	PlanDaily   PlanType = "daily"
	PlanWeekly  PlanType = "weekly"
	PlanMonthly PlanType = "monthly"
)

// VIPEntitlement is a time-boxed record granting reward multipliers and
// feature tags. An expired entitlement stays on the player for history;
// whether it is active is always derived from the current time, never
// stored as a flag.
type VIPEntitlement struct {
	PlanType              PlanType `json:"plan_type"`
	StartDate             int64    `json:"start_date"` // epoch ms
	EndDate               int64    `json:"end_date"`   // epoch ms, strictly after StartDate
	CurrencyMultiplier    float64  `json:"currency_multiplier"`
	EnergyRegenMultiplier float64  `json:"energy_regen_multiplier"`
	Features              []string `json:"features,omitempty"`
}

// ActiveAt reports whether the entitlement grants benefits at the given
// time. The comparison is strict: an entitlement whose EndDate equals now
// is already expired.
func (v *VIPEntitlement) ActiveAt(now int64) bool {
	return v != nil && now < v.EndDate
}
