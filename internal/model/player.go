package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is the full economy state for one player.
//
// All timestamps are epoch milliseconds: every economy rule is integer
// millisecond arithmetic, so storing time.Time would just force conversions
// at each call site.
type Player struct {
	ID             PlayerID                               `json:"id"`
	Currency       int64                                  `json:"currency"` // LP, never negative
	Energy         int                                    `json:"energy"`
	MaxEnergy      int                                    `json:"max_energy"`
	LastEnergyTick int64                                  `json:"last_energy_tick"`
	LastLogin      int64                                  `json:"last_login"`
	VIP            *VIPEntitlement                        `json:"vip,omitempty"`
	Achievements   map[AchievementID]*AchievementProgress `json:"achievements,omitempty"`
	Features       map[string]bool                        `json:"features,omitempty"`
	CreatedAt      int64                                  `json:"created_at"`

	// Version is the optimistic-concurrency token. It increases by exactly
	// one on every committed mutation; the store rejects a commit whose
	// expected version no longer matches (ErrVersionConflict).
	Version int64 `json:"version"`
}

// NewPlayer returns the default state for a player seen for the first time:
// full energy, zero LP, no entitlement.
func NewPlayer(id PlayerID, maxEnergy int, now int64) *Player {
	return &Player{
		ID:             id,
		Currency:       0,
		Energy:         maxEnergy,
		MaxEnergy:      maxEnergy,
		LastEnergyTick: now,
		LastLogin:      now,
		Achievements:   make(map[AchievementID]*AchievementProgress),
		Features:       make(map[string]bool),
		CreatedAt:      now,
		Version:        0,
	}
}

// Clone returns a deep copy. Stores and the engine hand out clones so no
// caller ever aliases committed state.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	if p.VIP != nil {
		vip := *p.VIP
		vip.Features = append([]string(nil), p.VIP.Features...)
		cp.VIP = &vip
	}
	if p.Achievements != nil {
		cp.Achievements = make(map[AchievementID]*AchievementProgress, len(p.Achievements))
		for id, ap := range p.Achievements {
			apCopy := *ap
			cp.Achievements[id] = &apCopy
		}
	}
	if p.Features != nil {
		cp.Features = make(map[string]bool, len(p.Features))
		for tag, ok := range p.Features {
			cp.Features[tag] = ok
		}
	}
	return &cp
}

// GrantFeature records a capability tag on the player.
func (p *Player) GrantFeature(tag string) {
	if tag == "" {
		return
	}
	if p.Features == nil {
		p.Features = make(map[string]bool)
	}
	p.Features[tag] = true
}

// HasFeature reports whether the player holds the given capability tag.
func (p *Player) HasFeature(tag string) bool {
	return p.Features[tag]
}
