package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAchievementStatusDerivation(t *testing.T) {
	tests := []struct {
		name     string
		progress AchievementProgress
		want     AchievementStatus
	}{
		{
			name:     "untouched is locked",
			progress: AchievementProgress{Progress: 0, Target: 100},
			want:     AchievementLocked,
		},
		{
			name:     "partial progress is in progress",
			progress: AchievementProgress{Progress: 1, Target: 100},
			want:     AchievementInProgress,
		},
		{
			name:     "at target is claimable",
			progress: AchievementProgress{Progress: 100, Target: 100},
			want:     AchievementClaimable,
		},
		{
			name:     "claimed wins over progress",
			progress: AchievementProgress{Progress: 100, Target: 100, Claimed: true},
			want:     AchievementClaimed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.progress.Status())
		})
	}
}

func TestVIPActiveAt(t *testing.T) {
	ent := &VIPEntitlement{StartDate: 1_000, EndDate: 10_000}

	assert.True(t, ent.ActiveAt(9_999))
	assert.False(t, ent.ActiveAt(10_000), "expiry boundary is exclusive")
	assert.False(t, ent.ActiveAt(20_000))

	var nilEnt *VIPEntitlement
	assert.False(t, nilEnt.ActiveAt(0))
}

func TestNewPlayerStartsAtFullEnergy(t *testing.T) {
	p := NewPlayer("alice", 1000, 5_000)

	assert.Equal(t, PlayerID("alice"), p.ID)
	assert.Equal(t, int64(0), p.Currency)
	assert.Equal(t, 1000, p.Energy)
	assert.Equal(t, 1000, p.MaxEnergy)
	assert.Equal(t, int64(5_000), p.LastEnergyTick)
	assert.Equal(t, int64(5_000), p.LastLogin)
	assert.Equal(t, int64(0), p.Version)
}

func TestPlayerCloneIsDeep(t *testing.T) {
	p := NewPlayer("alice", 1000, 5_000)
	p.VIP = &VIPEntitlement{PlanType: PlanDaily, EndDate: 10_000, Features: []string{"vip_badge"}}
	p.Achievements["first-taps"] = &AchievementProgress{AchievementID: "first-taps", Progress: 5, Target: 100}
	p.GrantFeature("lucky_charm")

	clone := p.Clone()
	clone.VIP.EndDate = 99_999
	clone.VIP.Features[0] = "changed"
	clone.Achievements["first-taps"].Progress = 77
	clone.Features["lucky_charm"] = false

	assert.Equal(t, int64(10_000), p.VIP.EndDate)
	assert.Equal(t, "vip_badge", p.VIP.Features[0])
	assert.Equal(t, 5, p.Achievements["first-taps"].Progress)
	assert.True(t, p.HasFeature("lucky_charm"))
}

func TestCloneNil(t *testing.T) {
	var p *Player
	assert.Nil(t, p.Clone())
}
