// Package config holds the static game tables: economy constants, VIP
// plans, achievement definitions and wheel segments. The tables are loaded
// once at process start, validated, and read-only afterwards.
package config

import (
	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

// EconomyConfig holds the numeric constants driving taps, energy
// regeneration and passive income.
type EconomyConfig struct {
	// TapValue is the base LP granted per tap, before VIP multipliers.
	TapValue int64 `yaml:"tap_value"`
	// EnergyCost is the energy consumed by one tap.
	EnergyCost int `yaml:"energy_cost"`
	// MaxEnergy is the energy cap for new players.
	MaxEnergy int `yaml:"max_energy"`
	// BaseRegenPerTick is the energy gained per elapsed tick.
	BaseRegenPerTick int `yaml:"base_regen_per_tick"`
	// TickIntervalMs is the length of one regeneration tick.
	TickIntervalMs int64 `yaml:"tick_interval_ms"`
	// PassiveLPRate is the LP accrued per offline hour.
	PassiveLPRate int64 `yaml:"passive_lp_rate"`
	// PassiveCapHours caps how many offline hours accrue income.
	PassiveCapHours int64 `yaml:"passive_cap_hours"`
}

// VIPPlan is one purchasable entitlement plan.
type VIPPlan struct {
	ID                    string         `yaml:"id"`
	PlanType              model.PlanType `yaml:"plan_type"`
	DurationHours         int64          `yaml:"duration_hours"`
	CurrencyMultiplier    float64        `yaml:"currency_multiplier"`
	EnergyRegenMultiplier float64        `yaml:"energy_regen_multiplier"`
	Features              []string       `yaml:"features"`
}

// DurationMs returns the plan duration in epoch-millisecond terms.
func (p VIPPlan) DurationMs() int64 {
	return p.DurationHours * millisPerHour
}

const millisPerHour = int64(60 * 60 * 1000)

// AchievementDef is the static definition of one achievement.
type AchievementDef struct {
	ID            model.AchievementID `yaml:"id"`
	Target        int                 `yaml:"target"`
	RewardLP      int64               `yaml:"reward_lp"`
	RewardFeature string              `yaml:"reward_feature"`
}

// RewardKind distinguishes what a wheel segment pays out.
type RewardKind string

const (
	RewardLP      RewardKind = "lp"
	RewardEnergy  RewardKind = "energy"
	RewardFeature RewardKind = "feature"
)

// WheelSegment is one configured wheel outcome. Declaration order is
// semantically significant: cumulative-weight selection breaks ties toward
// the earliest declared segment.
type WheelSegment struct {
	Label         string     `yaml:"label"`
	Weight        float64    `yaml:"weight"`
	RewardKind    RewardKind `yaml:"reward_kind"`
	RewardValue   int64      `yaml:"reward_value"`
	RewardFeature string     `yaml:"reward_feature"`
}

// GameConfig is the full static configuration consumed by the engine.
type GameConfig struct {
	Economy      EconomyConfig    `yaml:"economy"`
	VIPPlans     []VIPPlan        `yaml:"vip_plans"`
	Achievements []AchievementDef `yaml:"achievements"`
	Wheel        []WheelSegment   `yaml:"wheel"`
}

// Plan looks up a VIP plan by id.
func (c *GameConfig) Plan(id string) (VIPPlan, bool) {
	for _, p := range c.VIPPlans {
		if p.ID == id {
			return p, true
		}
	}
	return VIPPlan{}, false
}

// Achievement looks up an achievement definition by id.
func (c *GameConfig) Achievement(id model.AchievementID) (AchievementDef, bool) {
	for _, a := range c.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementDef{}, false
}

// Default returns the built-in game tables, used when no YAML file is
// supplied.
func Default() *GameConfig {
	return &GameConfig{
		Economy: EconomyConfig{
			TapValue:         2,
			EnergyCost:       1,
			MaxEnergy:        1000,
			BaseRegenPerTick: 1,
			TickIntervalMs:   3000,
			PassiveLPRate:    250,
			PassiveCapHours:  8,
		},
		VIPPlans: []VIPPlan{
			{
				ID:                    "vip-daily",
				PlanType:              model.PlanDaily,
				DurationHours:         24,
				CurrencyMultiplier:    1.5,
				EnergyRegenMultiplier: 1.5,
				Features:              []string{"vip_badge"},
			},
			{
				ID:                    "vip-weekly",
				PlanType:              model.PlanWeekly,
				DurationHours:         7 * 24,
				CurrencyMultiplier:    2,
				EnergyRegenMultiplier: 2,
				Features:              []string{"vip_badge", "exclusive_outfits"},
			},
			{
				ID:                    "vip-monthly",
				PlanType:              model.PlanMonthly,
				DurationHours:         30 * 24,
				CurrencyMultiplier:    3,
				EnergyRegenMultiplier: 2.5,
				Features:              []string{"vip_badge", "exclusive_outfits", "priority_wheel"},
			},
		},
		Achievements: []AchievementDef{
			{ID: "first-taps", Target: 100, RewardLP: 500},
			{ID: "dedicated-tapper", Target: 10000, RewardLP: 25000},
			{ID: "tap-legend", Target: 1000000, RewardLP: 5000000, RewardFeature: "golden_finger"},
			{ID: "daily-streak", Target: 30, RewardLP: 10000},
			{ID: "wheel-addict", Target: 50, RewardLP: 7500},
		},
		Wheel: []WheelSegment{
			{Label: "50 LP", Weight: 25, RewardKind: RewardLP, RewardValue: 50},
			{Label: "150 LP", Weight: 15, RewardKind: RewardLP, RewardValue: 150},
			{Label: "25 LP", Weight: 30, RewardKind: RewardLP, RewardValue: 25},
			{Label: "Energy Boost", Weight: 20, RewardKind: RewardEnergy, RewardValue: 200},
			{Label: "Jackpot", Weight: 5, RewardKind: RewardLP, RewardValue: 2500},
			{Label: "75 LP", Weight: 20, RewardKind: RewardLP, RewardValue: 75},
			{Label: "Full Energy", Weight: 15, RewardKind: RewardEnergy, RewardValue: 1000},
			{Label: "Lucky Charm", Weight: 30, RewardKind: RewardFeature, RewardFeature: "lucky_charm"},
		},
	}
}
