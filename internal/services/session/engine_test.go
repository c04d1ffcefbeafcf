package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/shadyltdcry-byte/classiklust/internal/config"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/mocks"
	"github.com/shadyltdcry-byte/classiklust/internal/model"
	"github.com/shadyltdcry-byte/classiklust/internal/services/wheel"
	"github.com/shadyltdcry-byte/classiklust/internal/storage"
	"github.com/shadyltdcry-byte/classiklust/internal/storage/memory"
	"github.com/shadyltdcry-byte/classiklust/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	ctx    context.Context
	store  *memory.Storage
	cfg    *config.GameConfig
	clock  *mocks.MockClock
	random *mocks.MockRandom
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.New()
	s.cfg = config.Default()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()

	selector, err := wheel.New(s.cfg.Wheel)
	s.Require().NoError(err)

	s.engine = NewEngine(s.store, s.cfg, selector, s.clock, s.random, testutil.NopLogger())
}

func (s *EngineSuite) TearDownTest() {
	s.engine.Close()
}

// seedPlayer stores a player whose regeneration and passive-income windows
// start at the current mock time.
func (s *EngineSuite) seedPlayer(id model.PlayerID, energy int) *model.Player {
	now := s.clock.NowMillis()
	player := model.NewPlayer(id, s.cfg.Economy.MaxEnergy, now)
	player.Energy = energy
	s.Require().NoError(s.store.CreatePlayer(s.ctx, player))
	return player
}

// Tap tests

func (s *EngineSuite) TestTapCreatesPlayerAndPaysReward() {
	player, err := s.engine.Tap(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(int64(2), player.Currency)
	s.Equal(999, player.Energy)
	s.Equal(int64(1), player.Version)
}

func (s *EngineSuite) TestTapInsufficientEnergyCommitsNothing() {
	s.seedPlayer("alice", 0)

	_, err := s.engine.Tap(s.ctx, "alice")
	s.Require().ErrorIs(err, model.ErrInsufficientEnergy)

	stored, err := s.store.LoadPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(int64(0), stored.Currency)
	s.Equal(0, stored.Energy)
	s.Equal(int64(0), stored.Version)
}

func (s *EngineSuite) TestTapRegeneratesBeforeEnergyCheck() {
	s.seedPlayer("alice", 0)
	s.clock.AdvanceMillis(s.cfg.Economy.TickIntervalMs)

	player, err := s.engine.Tap(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(int64(2), player.Currency)
	s.Equal(0, player.Energy)
}

func (s *EngineSuite) TestTapAppliesVipCurrencyMultiplier() {
	s.seedPlayer("alice", 10)
	_, err := s.engine.PurchaseVip(s.ctx, "alice", "vip-monthly")
	s.Require().NoError(err)

	before, err := s.store.LoadPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	player, err := s.engine.Tap(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(before.Currency+6, player.Currency)
}

func (s *EngineSuite) TestTapInvariantsHold() {
	s.seedPlayer("alice", 3)

	var lastErr error
	for i := 0; i < 10; i++ {
		player, err := s.engine.Tap(s.ctx, "alice")
		if err != nil {
			lastErr = err
			continue
		}
		s.GreaterOrEqual(player.Energy, 0)
		s.LessOrEqual(player.Energy, player.MaxEnergy)
		s.GreaterOrEqual(player.Currency, int64(0))
	}
	s.Require().ErrorIs(lastErr, model.ErrInsufficientEnergy)
}

// Login tests

func (s *EngineSuite) TestLoginCreatesPlayerWithoutIncome() {
	player, err := s.engine.Login(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(int64(0), player.Currency)
	s.Equal(s.clock.NowMillis(), player.LastLogin)
}

func (s *EngineSuite) TestLoginAccruesPassiveIncome() {
	s.seedPlayer("alice", 500)
	s.clock.Advance(3 * time.Hour)

	player, err := s.engine.Login(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(int64(750), player.Currency)
	s.Equal(s.clock.NowMillis(), player.LastLogin)
}

func (s *EngineSuite) TestLoginPassiveIncomeCapped() {
	s.seedPlayer("alice", 500)
	s.clock.Advance(100 * time.Hour)

	player, err := s.engine.Login(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(int64(2000), player.Currency)
}

func (s *EngineSuite) TestLoginTwiceInSameMillisecond() {
	s.seedPlayer("alice", 500)
	s.clock.Advance(3 * time.Hour)

	first, err := s.engine.Login(s.ctx, "alice")
	s.Require().NoError(err)

	// Without time advancing, a second login changes nothing but the
	// version: no income, no regeneration, same tick.
	second, err := s.engine.Login(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(first.Currency, second.Currency)
	s.Equal(first.Energy, second.Energy)
	s.Equal(first.LastEnergyTick, second.LastEnergyTick)
	s.Equal(first.LastLogin, second.LastLogin)
	s.Equal(first.Version+1, second.Version)
}

func (s *EngineSuite) TestLoginRegeneratesEnergy() {
	s.seedPlayer("alice", 0)
	s.clock.Advance(100 * time.Hour)

	player, err := s.engine.Login(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(s.cfg.Economy.MaxEnergy, player.Energy)
}

// VIP tests

func (s *EngineSuite) TestPurchaseVipInvalidPlan() {
	_, err := s.engine.PurchaseVip(s.ctx, "alice", "vip-yearly")

	s.Require().ErrorIs(err, model.ErrInvalidPlan)
}

func (s *EngineSuite) TestPurchaseVipSetsEntitlement() {
	now := s.clock.NowMillis()

	player, err := s.engine.PurchaseVip(s.ctx, "alice", "vip-daily")

	s.Require().NoError(err)
	s.Require().NotNil(player.VIP)
	s.Equal(model.PlanDaily, player.VIP.PlanType)
	s.Equal(now, player.VIP.StartDate)
	s.Equal(now+24*3_600_000, player.VIP.EndDate)
	s.Equal(1.5, player.VIP.CurrencyMultiplier)
}

func (s *EngineSuite) TestPurchaseVipReplacesWithoutStacking() {
	_, err := s.engine.PurchaseVip(s.ctx, "alice", "vip-monthly")
	s.Require().NoError(err)

	// 10 days of the monthly plan remain; they must not carry over.
	s.clock.Advance(20 * 24 * time.Hour)
	now := s.clock.NowMillis()

	player, err := s.engine.PurchaseVip(s.ctx, "alice", "vip-weekly")
	s.Require().NoError(err)
	s.Equal(model.PlanWeekly, player.VIP.PlanType)
	s.Equal(now+7*24*3_600_000, player.VIP.EndDate)
}

func (s *EngineSuite) TestVipStatusNotFoundForUnknownPlayer() {
	_, err := s.engine.VipStatus(s.ctx, "nobody")

	s.Require().ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *EngineSuite) TestVipStatusExpires() {
	_, err := s.engine.PurchaseVip(s.ctx, "alice", "vip-daily")
	s.Require().NoError(err)

	active, err := s.engine.VipStatus(s.ctx, "alice")
	s.Require().NoError(err)
	s.True(active.IsActive)
	s.Equal([]string{"vip_badge"}, active.Features)

	s.clock.Advance(24 * time.Hour)

	expired, err := s.engine.VipStatus(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(expired.IsActive)
	s.Equal(model.PlanDaily, expired.PlanType)
	s.Nil(expired.Features)
}

// Wheel tests

func (s *EngineSuite) TestSpinWheelLPReward() {
	s.random.QueueFloat64(0) // segment 0: 50 LP

	result, err := s.engine.SpinWheel(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(0, result.SegmentIndex)
	s.Equal(int64(50), result.Player.Currency)
}

func (s *EngineSuite) TestSpinWheelLPRewardWithVipMultiplier() {
	_, err := s.engine.PurchaseVip(s.ctx, "alice", "vip-weekly")
	s.Require().NoError(err)
	before, err := s.store.LoadPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	s.random.QueueFloat64(0) // segment 0: 50 LP, doubled

	result, err := s.engine.SpinWheel(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(before.Currency+100, result.Player.Currency)
}

func (s *EngineSuite) TestSpinWheelEnergyRewardClampsAtMax() {
	s.seedPlayer("alice", 950)
	s.random.QueueFloat64(70.0 / 160) // segment 3: +200 energy

	result, err := s.engine.SpinWheel(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(3, result.SegmentIndex)
	s.Equal(s.cfg.Economy.MaxEnergy, result.Player.Energy)
}

func (s *EngineSuite) TestSpinWheelFeatureReward() {
	s.random.QueueFloat64(130.0 / 160) // segment 7: lucky_charm

	result, err := s.engine.SpinWheel(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(7, result.SegmentIndex)
	s.True(result.Player.HasFeature("lucky_charm"))
}

// Achievement tests

func (s *EngineSuite) TestAchievementProgressUnknownID() {
	_, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "no-such-thing", 1)

	s.Require().ErrorIs(err, model.ErrUnknownAchievement)
}

func (s *EngineSuite) TestAchievementProgressCreatesRecord() {
	player, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "first-taps", 40)

	s.Require().NoError(err)
	progress := player.Achievements["first-taps"]
	s.Require().NotNil(progress)
	s.Equal(40, progress.Progress)
	s.Equal(100, progress.Target)
	s.Equal(model.AchievementInProgress, progress.Status())
}

func (s *EngineSuite) TestAchievementProgressClamps() {
	player, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "first-taps", 500)
	s.Require().NoError(err)
	s.Equal(100, player.Achievements["first-taps"].Progress)
	s.Equal(model.AchievementClaimable, player.Achievements["first-taps"].Status())

	player, err = s.engine.UpdateAchievementProgress(s.ctx, "alice", "first-taps", -500)
	s.Require().NoError(err)
	s.Equal(0, player.Achievements["first-taps"].Progress)
}

func (s *EngineSuite) TestClaimAchievementNoProgress() {
	_, err := s.engine.Login(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.engine.ClaimAchievement(s.ctx, "alice", "first-taps")
	s.Require().ErrorIs(err, model.ErrNotClaimable)
}

func (s *EngineSuite) TestClaimAchievementIncomplete() {
	_, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "first-taps", 99)
	s.Require().NoError(err)

	_, err = s.engine.ClaimAchievement(s.ctx, "alice", "first-taps")
	s.Require().ErrorIs(err, model.ErrNotClaimable)
}

func (s *EngineSuite) TestClaimAchievementPaysOnce() {
	_, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "first-taps", 100)
	s.Require().NoError(err)

	player, err := s.engine.ClaimAchievement(s.ctx, "alice", "first-taps")
	s.Require().NoError(err)
	s.Equal(int64(500), player.Currency)
	s.Equal(model.AchievementClaimed, player.Achievements["first-taps"].Status())

	_, err = s.engine.ClaimAchievement(s.ctx, "alice", "first-taps")
	s.Require().ErrorIs(err, model.ErrAlreadyClaimed)

	stored, err := s.store.LoadPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(int64(500), stored.Currency)
}

func (s *EngineSuite) TestClaimAchievementGrantsFeature() {
	_, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "tap-legend", 1_000_000)
	s.Require().NoError(err)

	player, err := s.engine.ClaimAchievement(s.ctx, "alice", "tap-legend")
	s.Require().NoError(err)
	s.True(player.HasFeature("golden_finger"))
}

func (s *EngineSuite) TestClaimedAchievementIgnoresFurtherProgress() {
	_, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "first-taps", 100)
	s.Require().NoError(err)
	claimed, err := s.engine.ClaimAchievement(s.ctx, "alice", "first-taps")
	s.Require().NoError(err)

	player, err := s.engine.UpdateAchievementProgress(s.ctx, "alice", "first-taps", -50)
	s.Require().NoError(err)
	s.Equal(100, player.Achievements["first-taps"].Progress)
	// No commit happened; the stored version is unchanged.
	s.Equal(claimed.Version, player.Version)
}

// Concurrency tests

func (s *EngineSuite) TestConcurrentTapsSingleEnergyUnit() {
	s.seedPlayer("alice", 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.engine.Tap(s.ctx, "alice")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			s.Require().ErrorIs(err, model.ErrInsufficientEnergy)
		}
	}
	s.Equal(1, successes)

	stored, err := s.store.LoadPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(int64(2), stored.Currency)
	s.Equal(0, stored.Energy)
}

// wrappingStore decorates load errors the way a remote backend would,
// wrapping the sentinel instead of returning it bare.
type wrappingStore struct {
	storage.PlayerStore
}

func (w *wrappingStore) LoadPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	player, err := w.PlayerStore.LoadPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}
	return player, nil
}

func (s *EngineSuite) TestAutoCreateOnWrappedNotFound() {
	selector, err := wheel.New(s.cfg.Wheel)
	s.Require().NoError(err)
	engine := NewEngine(&wrappingStore{PlayerStore: s.store}, s.cfg, selector, s.clock, s.random, testutil.NopLogger())
	defer engine.Close()

	player, err := engine.Tap(s.ctx, "alice")

	s.Require().NoError(err)
	s.Equal(int64(2), player.Currency)
}

// conflictingStore injects an out-of-band commit between a load and the
// engine's commit, simulating another process sharing the store.
type conflictingStore struct {
	storage.PlayerStore
	once   sync.Once
	onLoad func(player *model.Player)
}

func (c *conflictingStore) LoadPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	player, err := c.PlayerStore.LoadPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	c.once.Do(func() { c.onLoad(player) })
	return player, nil
}

func (s *EngineSuite) TestExternalWriterSurfacesVersionConflict() {
	s.seedPlayer("alice", 100)

	conflicting := &conflictingStore{PlayerStore: s.store}
	conflicting.onLoad = func(player *model.Player) {
		rival := player.Clone()
		rival.Currency += 1000
		s.Require().NoError(s.store.CommitPlayer(s.ctx, rival.Version, rival))
	}

	selector, err := wheel.New(s.cfg.Wheel)
	s.Require().NoError(err)
	engine := NewEngine(conflicting, s.cfg, selector, s.clock, s.random, testutil.NopLogger())
	defer engine.Close()

	_, err = engine.Tap(s.ctx, "alice")
	s.Require().ErrorIs(err, model.ErrVersionConflict)

	// The rival's write survived untouched.
	stored, err := s.store.LoadPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(int64(1000), stored.Currency)
	s.Equal(int64(1), stored.Version)
}
