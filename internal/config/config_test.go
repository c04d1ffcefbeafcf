package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaultValidates() {
	s.Require().NoError(Default().Validate())
}

func (s *ConfigSuite) TestPlanLookup() {
	cfg := Default()

	plan, ok := cfg.Plan("vip-weekly")
	s.Require().True(ok)
	s.Equal(model.PlanWeekly, plan.PlanType)
	s.Equal(int64(7*24*3_600_000), plan.DurationMs())

	_, ok = cfg.Plan("vip-yearly")
	s.False(ok)
}

func (s *ConfigSuite) TestAchievementLookup() {
	cfg := Default()

	def, ok := cfg.Achievement("first-taps")
	s.Require().True(ok)
	s.Equal(100, def.Target)

	_, ok = cfg.Achievement("no-such-thing")
	s.False(ok)
}

func (s *ConfigSuite) TestLoadOverridesDefaults() {
	path := s.writeConfig(`
economy:
  tap_value: 5
  max_energy: 2000
vip_plans:
  - id: vip-test
    plan_type: daily
    duration_hours: 12
    currency_multiplier: 2
    energy_regen_multiplier: 2
`)

	cfg, err := Load(path)
	s.Require().NoError(err)

	// Overridden fields take the file's values.
	s.Equal(int64(5), cfg.Economy.TapValue)
	s.Equal(2000, cfg.Economy.MaxEnergy)

	// Untouched fields keep defaults.
	s.Equal(int64(3000), cfg.Economy.TickIntervalMs)
	s.Len(cfg.Wheel, 8)

	// List tables are replaced wholesale.
	s.Require().Len(cfg.VIPPlans, 1)
	s.Equal("vip-test", cfg.VIPPlans[0].ID)
}

func (s *ConfigSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.T().TempDir(), "nope.yaml"))

	s.Require().Error(err)
}

func (s *ConfigSuite) TestLoadRejectsInvalidConfig() {
	path := s.writeConfig(`
economy:
  tap_value: 0
`)

	_, err := Load(path)

	s.Require().Error(err)
	s.Contains(err.Error(), "tap_value")
}

func (s *ConfigSuite) TestValidateRejectsBadPlan() {
	cfg := Default()
	cfg.VIPPlans = append(cfg.VIPPlans, VIPPlan{
		ID:                    "vip-daily",
		PlanType:              "fortnightly",
		DurationHours:         0,
		CurrencyMultiplier:    0.5,
		EnergyRegenMultiplier: 1,
	})

	err := cfg.Validate()

	s.Require().Error(err)
	s.Contains(err.Error(), "duplicate plan id")
	s.Contains(err.Error(), "plan_type")
	s.Contains(err.Error(), "duration_hours")
	s.Contains(err.Error(), "currency_multiplier")
}

func (s *ConfigSuite) TestValidateRejectsBadWheelRewards() {
	cfg := Default()
	cfg.Wheel = append(cfg.Wheel,
		WheelSegment{Label: "bad kind", Weight: 1, RewardKind: "gold"},
		WheelSegment{Label: "bad feature", Weight: 1, RewardKind: RewardFeature},
	)

	err := cfg.Validate()

	s.Require().Error(err)
	s.Contains(err.Error(), "reward_kind")
	s.Contains(err.Error(), "reward_feature")
}

func (s *ConfigSuite) TestValidateRejectsBadAchievement() {
	cfg := Default()
	cfg.Achievements = append(cfg.Achievements, AchievementDef{ID: "broken", Target: 0, RewardLP: -1})

	err := cfg.Validate()

	s.Require().Error(err)
	s.Contains(err.Error(), "target")
	s.Contains(err.Error(), "reward_lp")
}

func (s *ConfigSuite) writeConfig(content string) string {
	path := filepath.Join(s.T().TempDir(), "game.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}
