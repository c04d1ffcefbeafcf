package response

import (
	"sort"

	"github.com/shadyltdcry-byte/classiklust/internal/config"
	"github.com/shadyltdcry-byte/classiklust/internal/model"
	"github.com/shadyltdcry-byte/classiklust/internal/services/session"
	"github.com/shadyltdcry-byte/classiklust/internal/services/vip"
)

// Player is the API view of a player's economy state
type Player struct {
	ID             string        `json:"id"`
	Currency       int64         `json:"currency"`
	Energy         int           `json:"energy"`
	MaxEnergy      int           `json:"max_energy"`
	LastEnergyTick int64         `json:"last_energy_tick"`
	LastLogin      int64         `json:"last_login"`
	Version        int64         `json:"version"`
	VIP            *VipStatus    `json:"vip,omitempty"`
	Achievements   []Achievement `json:"achievements,omitempty"`
	Features       []string      `json:"features,omitempty"`
}

// VipStatus is the API view of a player's VIP entitlement
type VipStatus struct {
	IsActive bool     `json:"is_active"`
	PlanType string   `json:"plan_type,omitempty"`
	EndDate  int64    `json:"end_date,omitempty"`
	Features []string `json:"features,omitempty"`
}

// Achievement is the API view of one achievement's progress
type Achievement struct {
	ID       string `json:"id"`
	Progress int    `json:"progress"`
	Target   int    `json:"target"`
	Status   string `json:"status"`
}

// SpinResult is the API view of a wheel spin outcome
type SpinResult struct {
	SegmentIndex int    `json:"segment_index"`
	Label        string `json:"label"`
	RewardKind   string `json:"reward_kind"`
	RewardValue  int64  `json:"reward_value,omitempty"`
	Feature      string `json:"feature,omitempty"`
	Player       Player `json:"player"`
}

// PlayerFromModel converts a model.Player to a response Player. VIP status
// is derived against now so the response never carries a stale active flag.
func PlayerFromModel(p *model.Player, now int64) Player {
	out := Player{
		ID:             string(p.ID),
		Currency:       p.Currency,
		Energy:         p.Energy,
		MaxEnergy:      p.MaxEnergy,
		LastEnergyTick: p.LastEnergyTick,
		LastLogin:      p.LastLogin,
		Version:        p.Version,
	}

	if p.VIP != nil {
		status := vip.Status(p.VIP, now)
		out.VIP = vipStatusFromInfo(status)
	}

	for id, ap := range p.Achievements {
		out.Achievements = append(out.Achievements, Achievement{
			ID:       string(id),
			Progress: ap.Progress,
			Target:   ap.Target,
			Status:   string(ap.Status()),
		})
	}
	sort.Slice(out.Achievements, func(i, j int) bool {
		return out.Achievements[i].ID < out.Achievements[j].ID
	})

	for tag := range p.Features {
		out.Features = append(out.Features, tag)
	}
	sort.Strings(out.Features)

	return out
}

// VipStatusFromInfo converts a resolver status to its API view
func VipStatusFromInfo(info vip.StatusInfo) VipStatus {
	return *vipStatusFromInfo(info)
}

func vipStatusFromInfo(info vip.StatusInfo) *VipStatus {
	return &VipStatus{
		IsActive: info.IsActive,
		PlanType: string(info.PlanType),
		EndDate:  info.EndDate,
		Features: info.Features,
	}
}

// SpinResultFromModel converts an engine spin outcome to its API view
func SpinResultFromModel(result *session.SpinResult, now int64) SpinResult {
	out := SpinResult{
		SegmentIndex: result.SegmentIndex,
		Label:        result.Segment.Label,
		RewardKind:   string(result.Segment.RewardKind),
		Player:       PlayerFromModel(result.Player, now),
	}
	switch result.Segment.RewardKind {
	case config.RewardFeature:
		out.Feature = result.Segment.RewardFeature
	default:
		out.RewardValue = result.Segment.RewardValue
	}
	return out
}
