package config

import (
	"fmt"
	"strings"

	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

// Validate checks semantic constraints on the game tables. It must pass
// before the engine serves traffic; a malformed wheel table in particular
// is fatal at load time, never discovered at spin time.
func (c *GameConfig) Validate() error {
	var errs []string

	if c.Economy.TapValue <= 0 {
		errs = append(errs, "economy.tap_value must be >= 1")
	}
	if c.Economy.EnergyCost <= 0 {
		errs = append(errs, "economy.energy_cost must be >= 1")
	}
	if c.Economy.MaxEnergy <= 0 {
		errs = append(errs, "economy.max_energy must be >= 1")
	}
	if c.Economy.BaseRegenPerTick <= 0 {
		errs = append(errs, "economy.base_regen_per_tick must be >= 1")
	}
	if c.Economy.TickIntervalMs <= 0 {
		errs = append(errs, "economy.tick_interval_ms must be >= 1")
	}
	if c.Economy.PassiveLPRate < 0 {
		errs = append(errs, "economy.passive_lp_rate must be >= 0")
	}
	if c.Economy.PassiveCapHours < 0 {
		errs = append(errs, "economy.passive_cap_hours must be >= 0")
	}

	seenPlans := make(map[string]bool)
	for _, p := range c.VIPPlans {
		if p.ID == "" {
			errs = append(errs, "vip_plans: plan id must not be empty")
			continue
		}
		if seenPlans[p.ID] {
			errs = append(errs, fmt.Sprintf("vip_plans: duplicate plan id %q", p.ID))
		}
		seenPlans[p.ID] = true
		switch p.PlanType {
		case model.PlanDaily, model.PlanWeekly, model.PlanMonthly:
		default:
			errs = append(errs, fmt.Sprintf("vip_plans[%s]: plan_type must be daily, weekly or monthly", p.ID))
		}
		if p.DurationHours <= 0 {
			errs = append(errs, fmt.Sprintf("vip_plans[%s]: duration_hours must be >= 1", p.ID))
		}
		if p.CurrencyMultiplier < 1 {
			errs = append(errs, fmt.Sprintf("vip_plans[%s]: currency_multiplier must be >= 1", p.ID))
		}
		if p.EnergyRegenMultiplier < 1 {
			errs = append(errs, fmt.Sprintf("vip_plans[%s]: energy_regen_multiplier must be >= 1", p.ID))
		}
	}

	seenAchievements := make(map[model.AchievementID]bool)
	for _, a := range c.Achievements {
		if a.ID == "" {
			errs = append(errs, "achievements: achievement id must not be empty")
			continue
		}
		if seenAchievements[a.ID] {
			errs = append(errs, fmt.Sprintf("achievements: duplicate id %q", a.ID))
		}
		seenAchievements[a.ID] = true
		if a.Target <= 0 {
			errs = append(errs, fmt.Sprintf("achievements[%s]: target must be >= 1", a.ID))
		}
		if a.RewardLP < 0 {
			errs = append(errs, fmt.Sprintf("achievements[%s]: reward_lp must be >= 0", a.ID))
		}
	}

	for i, s := range c.Wheel {
		switch s.RewardKind {
		case RewardLP, RewardEnergy:
			if s.RewardValue < 0 {
				errs = append(errs, fmt.Sprintf("wheel[%d]: reward_value must be >= 0", i))
			}
		case RewardFeature:
			if s.RewardFeature == "" {
				errs = append(errs, fmt.Sprintf("wheel[%d]: reward_feature required for feature rewards", i))
			}
		default:
			errs = append(errs, fmt.Sprintf("wheel[%d]: reward_kind must be lp, energy or feature", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid game config:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
