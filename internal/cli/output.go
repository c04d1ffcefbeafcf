package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case VipStatus:
		o.printVipStatus(v)
	case SpinResult:
		o.printSpinResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID           string        `json:"id"`
	Currency     int64         `json:"currency"`
	Energy       int           `json:"energy"`
	MaxEnergy    int           `json:"max_energy"`
	LastLogin    int64         `json:"last_login"`
	Version      int64         `json:"version"`
	VIP          *VipStatus    `json:"vip,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty"`
	Features     []string      `json:"features,omitempty"`
}

// VipStatus response type
type VipStatus struct {
	IsActive bool     `json:"is_active"`
	PlanType string   `json:"plan_type,omitempty"`
	EndDate  int64    `json:"end_date,omitempty"`
	Features []string `json:"features,omitempty"`
}

// Achievement response type
type Achievement struct {
	ID       string `json:"id"`
	Progress int    `json:"progress"`
	Target   int    `json:"target"`
	Status   string `json:"status"`
}

// SpinResult response type
type SpinResult struct {
	SegmentIndex int    `json:"segment_index"`
	Label        string `json:"label"`
	RewardKind   string `json:"reward_kind"`
	RewardValue  int64  `json:"reward_value,omitempty"`
	Feature      string `json:"feature,omitempty"`
	Player       Player `json:"player"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.ID)
	fmt.Printf("LP: %d\n", p.Currency)
	fmt.Printf("Energy: %d/%d\n", p.Energy, p.MaxEnergy)
	if p.VIP != nil {
		o.printVipStatus(*p.VIP)
	}
	if len(p.Achievements) > 0 {
		fmt.Printf("Achievements (%d):\n", len(p.Achievements))
		for _, a := range p.Achievements {
			fmt.Printf("  - %s: %d/%d [%s]\n", a.ID, a.Progress, a.Target, a.Status)
		}
	}
	if len(p.Features) > 0 {
		fmt.Printf("Features: %s\n", strings.Join(p.Features, ", "))
	}
}

func (o *Output) printVipStatus(v VipStatus) {
	if !v.IsActive {
		if v.PlanType == "" {
			fmt.Println("VIP: none")
		} else {
			fmt.Printf("VIP: expired (%s)\n", v.PlanType)
		}
		return
	}
	until := time.UnixMilli(v.EndDate).Format(time.RFC3339)
	fmt.Printf("VIP: %s, active until %s\n", v.PlanType, until)
	if len(v.Features) > 0 {
		fmt.Printf("VIP Features: %s\n", strings.Join(v.Features, ", "))
	}
}

func (o *Output) printSpinResult(s SpinResult) {
	fmt.Printf("The wheel landed on: %s\n", s.Label)
	switch s.RewardKind {
	case "lp":
		fmt.Printf("Reward: %d LP\n", s.RewardValue)
	case "energy":
		fmt.Printf("Reward: %d energy\n", s.RewardValue)
	case "feature":
		fmt.Printf("Reward: feature %q\n", s.Feature)
	}
	o.printPlayer(s.Player)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
