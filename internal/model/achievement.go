package model

// AchievementID identifies a statically configured achievement
type AchievementID string

// AchievementStatus is the observable state of a player's progress toward
// one achievement. It is always derived from Progress, Target and the
// claimed bit; it is never stored independently.
type AchievementStatus string

const (
	AchievementLocked     AchievementStatus = "locked"
	AchievementInProgress AchievementStatus = "in_progress"
	AchievementClaimable  AchievementStatus = "claimable"
	AchievementClaimed    AchievementStatus = "claimed"
)

// AchievementProgress tracks one player's advancement toward a static
// achievement target. Claimed is monotone: once true it stays true.
type AchievementProgress struct {
	AchievementID AchievementID `json:"achievement_id"`
	Progress      int           `json:"progress"`
	Target        int           `json:"target"`
	Claimed       bool          `json:"claimed"`
}

// Status derives the observable state. A completed achievement is
// immediately claimable; claiming is the separate explicit step that
// moves it to claimed.
func (a *AchievementProgress) Status() AchievementStatus {
	switch {
	case a.Claimed:
		return AchievementClaimed
	case a.Progress >= a.Target:
		return AchievementClaimable
	case a.Progress > 0:
		return AchievementInProgress
	default:
		return AchievementLocked
	}
}
