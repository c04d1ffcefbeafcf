// Package economy holds the pure rules for energy regeneration and passive
// income accrual. Everything here is deterministic given its inputs; state
// changes are applied by the session engine.
package economy

import (
	"github.com/shadyltdcry-byte/classiklust/internal/config"
)

const millisPerHour = int64(60 * 60 * 1000)

// RegenResult is the outcome of one energy-regeneration accounting pass.
type RegenResult struct {
	Energy         int
	LastEnergyTick int64
}

// RegenerateEnergy advances a player's energy by whole elapsed ticks.
//
// The new LastEnergyTick is lastTick + elapsedTicks*tickInterval, not now:
// sub-tick progress carries over to the next call, so repeated
// short-interval calls never lose regeneration. A player already at the cap
// has its tick fast-forwarded to now instead, otherwise the elapsed-tick
// count would grow without bound while capped.
func RegenerateEnergy(now, lastTick int64, energy, maxEnergy int, regenMultiplier float64, cfg config.EconomyConfig) RegenResult {
	if lastTick > now {
		// Clock skew. Drop the window rather than producing negative ticks.
		return RegenResult{Energy: clampEnergy(energy, maxEnergy), LastEnergyTick: now}
	}

	if energy >= maxEnergy {
		return RegenResult{Energy: maxEnergy, LastEnergyTick: now}
	}

	elapsedTicks := (now - lastTick) / cfg.TickIntervalMs
	if elapsedTicks <= 0 {
		return RegenResult{Energy: clampEnergy(energy, maxEnergy), LastEnergyTick: lastTick}
	}

	gained := int(float64(elapsedTicks) * float64(cfg.BaseRegenPerTick) * regenMultiplier)
	newEnergy := energy + gained
	if newEnergy > maxEnergy {
		newEnergy = maxEnergy
	}

	return RegenResult{
		Energy:         newEnergy,
		LastEnergyTick: lastTick + elapsedTicks*cfg.TickIntervalMs,
	}
}

// PassiveIncome computes LP accrued for time spent away, capped at
// PassiveCapHours. Partial hours never pay out.
func PassiveIncome(now, lastLogin int64, currencyMultiplier float64, cfg config.EconomyConfig) int64 {
	if lastLogin > now {
		return 0
	}

	elapsedHours := (now - lastLogin) / millisPerHour
	if elapsedHours > cfg.PassiveCapHours {
		elapsedHours = cfg.PassiveCapHours
	}
	if elapsedHours <= 0 {
		return 0
	}

	return int64(float64(elapsedHours) * float64(cfg.PassiveLPRate) * currencyMultiplier)
}

// TapReward is the LP paid for one tap under the given multiplier, rounded
// down.
func TapReward(tapValue int64, currencyMultiplier float64) int64 {
	return int64(float64(tapValue) * currencyMultiplier)
}

func clampEnergy(energy, maxEnergy int) int {
	if energy < 0 {
		return 0
	}
	if energy > maxEnergy {
		return maxEnergy
	}
	return energy
}
