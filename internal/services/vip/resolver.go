// Package vip derives the effective multiplier set for a player from its
// entitlement record and the current time. Activity is never stored as a
// flag; it is recomputed on every read, so an entitlement goes inert the
// millisecond it expires.
package vip

import (
	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

// Multipliers is the effective reward multiplier set applied to a player's
// operations.
type Multipliers struct {
	Currency    float64
	EnergyRegen float64
	Features    []string
}

// Identity returns the multiplier set for a player with no active
// entitlement.
func Identity() Multipliers {
	return Multipliers{Currency: 1, EnergyRegen: 1}
}

// Resolve returns the multiplier set granted by the entitlement at the given
// time. An absent or expired entitlement resolves to the identity set; the
// record itself is left alone (it stays on the player for history).
func Resolve(ent *model.VIPEntitlement, now int64) Multipliers {
	if !ent.ActiveAt(now) {
		return Identity()
	}
	return Multipliers{
		Currency:    ent.CurrencyMultiplier,
		EnergyRegen: ent.EnergyRegenMultiplier,
		Features:    ent.Features,
	}
}

// StatusInfo is the read-only view of a player's VIP state.
type StatusInfo struct {
	IsActive bool
	PlanType model.PlanType
	EndDate  int64
	Features []string
}

// Status derives the VIP status view. Expired entitlements report their
// historical plan type and end date with IsActive false.
func Status(ent *model.VIPEntitlement, now int64) StatusInfo {
	if ent == nil {
		return StatusInfo{}
	}
	info := StatusInfo{
		IsActive: ent.ActiveAt(now),
		PlanType: ent.PlanType,
		EndDate:  ent.EndDate,
	}
	if info.IsActive {
		info.Features = ent.Features
	}
	return info
}
