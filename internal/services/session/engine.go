// Package session orchestrates every mutating operation against one
// player's economy state.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/shadyltdcry-byte/classiklust/internal/config"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/random"
	"github.com/shadyltdcry-byte/classiklust/internal/model"
	"github.com/shadyltdcry-byte/classiklust/internal/services/economy"
	"github.com/shadyltdcry-byte/classiklust/internal/services/vip"
	"github.com/shadyltdcry-byte/classiklust/internal/services/wheel"
	"github.com/shadyltdcry-byte/classiklust/internal/storage"
)

// lockTTL bounds how long an idle player keeps an entry in the lock
// registry. Eviction only removes idle entries; correctness under any
// interleaving is guaranteed by the version CAS on commit.
const lockTTL = 30 * time.Minute

// Engine runs tap, login, VIP, wheel and achievement operations for one
// player at a time per player id.
//
// Each mutating operation acquires the player's lock, reads state, applies
// the pure rules, and commits through the store's compare-and-swap. The
// per-id lock is the single-process fast path that keeps read-modify-write
// cycles from interleaving; the version guard on commit is the formal
// fallback, so a conflicting writer that slips past (e.g. another process
// sharing the store) surfaces model.ErrVersionConflict instead of a lost
// update. The engine never retries; retry policy belongs to the caller.
type Engine struct {
	store  storage.PlayerStore
	cfg    *config.GameConfig
	wheel  *wheel.Selector
	clock  clock.Clock
	random random.Random
	logger *slog.Logger

	locks *ttlcache.Cache[model.PlayerID, *sync.Mutex]
}

// NewEngine creates a session engine. Callers own the config's lifetime; it
// must already be validated.
func NewEngine(
	store storage.PlayerStore,
	cfg *config.GameConfig,
	selector *wheel.Selector,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Engine {
	locks := ttlcache.New[model.PlayerID, *sync.Mutex](
		ttlcache.WithTTL[model.PlayerID, *sync.Mutex](lockTTL),
	)
	go locks.Start()

	return &Engine{
		store:  store,
		cfg:    cfg,
		wheel:  selector,
		clock:  clk,
		random: rnd,
		logger: logger,
		locks:  locks,
	}
}

// Close stops the lock registry's eviction loop.
func (e *Engine) Close() {
	e.locks.Stop()
}

// lock acquires the per-player mutex and returns its release func. The
// release runs on every exit path of each operation.
func (e *Engine) lock(id model.PlayerID) func() {
	item, _ := e.locks.GetOrSet(id, &sync.Mutex{})
	mu := item.Value()
	mu.Lock()
	return mu.Unlock
}

// loadOrCreate fetches the player's state, creating the default record on
// first contact. Must be called with the player's lock held.
func (e *Engine) loadOrCreate(ctx context.Context, id model.PlayerID, now int64) (*model.Player, error) {
	player, err := e.store.LoadPlayer(ctx, id)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player = model.NewPlayer(id, e.cfg.Economy.MaxEnergy, now)
	if err := e.store.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	e.logger.Info("player created",
		slog.String("player_id", string(id)),
		slog.Int("energy", player.Energy),
	)
	return player, nil
}

// regenerate applies lazy energy regeneration in place.
func (e *Engine) regenerate(player *model.Player, now int64, mult vip.Multipliers) {
	result := economy.RegenerateEnergy(
		now, player.LastEnergyTick,
		player.Energy, player.MaxEnergy,
		mult.EnergyRegen, e.cfg.Economy,
	)
	player.Energy = result.Energy
	player.LastEnergyTick = result.LastEnergyTick
}

// Tap spends energy for LP. Energy earned since the last accounting pass is
// credited first, so a player whose stored energy is zero but who has
// waited out a tick may still tap. Fails with model.ErrInsufficientEnergy
// and commits nothing when energy cannot cover the cost.
func (e *Engine) Tap(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	unlock := e.lock(id)
	defer unlock()

	now := e.clock.NowMillis()
	player, err := e.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}
	expected := player.Version

	mult := vip.Resolve(player.VIP, now)
	e.regenerate(player, now, mult)

	if player.Energy < e.cfg.Economy.EnergyCost {
		return nil, model.ErrInsufficientEnergy
	}

	reward := economy.TapReward(e.cfg.Economy.TapValue, mult.Currency)
	player.Currency += reward
	player.Energy -= e.cfg.Economy.EnergyCost

	if err := e.store.CommitPlayer(ctx, expected, player); err != nil {
		return nil, err
	}

	e.logger.Debug("tap",
		slog.String("player_id", string(id)),
		slog.Int64("reward", reward),
		slog.Int("energy", player.Energy),
	)
	return player, nil
}

// Login runs energy regeneration and passive income accrual as a single
// commit, then advances LastLogin unconditionally. The player record is
// created on first contact.
func (e *Engine) Login(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	unlock := e.lock(id)
	defer unlock()

	now := e.clock.NowMillis()
	player, err := e.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}
	expected := player.Version

	mult := vip.Resolve(player.VIP, now)
	e.regenerate(player, now, mult)

	earned := economy.PassiveIncome(now, player.LastLogin, mult.Currency, e.cfg.Economy)
	player.Currency += earned
	player.LastLogin = now

	if err := e.store.CommitPlayer(ctx, expected, player); err != nil {
		return nil, err
	}

	e.logger.Info("login",
		slog.String("player_id", string(id)),
		slog.Int64("passive_income", earned),
		slog.Int64("currency", player.Currency),
	)
	return player, nil
}

// PurchaseVip replaces the player's entitlement with a fresh record for the
// given plan. A later purchase always wins: the new end date is computed
// from now, never from the remaining time of a prior entitlement.
func (e *Engine) PurchaseVip(ctx context.Context, id model.PlayerID, planID string) (*model.Player, error) {
	plan, ok := e.cfg.Plan(planID)
	if !ok {
		return nil, model.ErrInvalidPlan
	}

	unlock := e.lock(id)
	defer unlock()

	now := e.clock.NowMillis()
	player, err := e.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}
	expected := player.Version

	player.VIP = &model.VIPEntitlement{
		PlanType:              plan.PlanType,
		StartDate:             now,
		EndDate:               now + plan.DurationMs(),
		CurrencyMultiplier:    plan.CurrencyMultiplier,
		EnergyRegenMultiplier: plan.EnergyRegenMultiplier,
		Features:              append([]string(nil), plan.Features...),
	}

	if err := e.store.CommitPlayer(ctx, expected, player); err != nil {
		return nil, err
	}

	e.logger.Info("vip purchased",
		slog.String("player_id", string(id)),
		slog.String("plan_id", planID),
		slog.Int64("end_date", player.VIP.EndDate),
	)
	return player, nil
}

// VipStatus derives the player's VIP view. Read-only: a missing player is
// model.ErrPlayerNotFound, never auto-created.
func (e *Engine) VipStatus(ctx context.Context, id model.PlayerID) (vip.StatusInfo, error) {
	player, err := e.store.LoadPlayer(ctx, id)
	if err != nil {
		return vip.StatusInfo{}, err
	}
	return vip.Status(player.VIP, e.clock.NowMillis()), nil
}

// GetPlayer returns a read-only snapshot of the player's state.
func (e *Engine) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return e.store.LoadPlayer(ctx, id)
}

// SpinResult reports the outcome of one wheel spin.
type SpinResult struct {
	SegmentIndex int
	Segment      config.WheelSegment
	Player       *model.Player
}

// SpinWheel picks one weighted segment and applies its reward. The engine
// enforces no cooldown; that is the caller's policy.
func (e *Engine) SpinWheel(ctx context.Context, id model.PlayerID) (*SpinResult, error) {
	unlock := e.lock(id)
	defer unlock()

	now := e.clock.NowMillis()
	player, err := e.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}
	expected := player.Version

	mult := vip.Resolve(player.VIP, now)
	idx, segment := e.wheel.Spin(e.random)

	switch segment.RewardKind {
	case config.RewardLP:
		player.Currency += int64(float64(segment.RewardValue) * mult.Currency)
	case config.RewardEnergy:
		player.Energy += int(segment.RewardValue)
		if player.Energy > player.MaxEnergy {
			player.Energy = player.MaxEnergy
		}
	case config.RewardFeature:
		player.GrantFeature(segment.RewardFeature)
	}

	if err := e.store.CommitPlayer(ctx, expected, player); err != nil {
		return nil, err
	}

	e.logger.Info("wheel spin",
		slog.String("player_id", string(id)),
		slog.Int("segment", idx),
		slog.String("label", segment.Label),
	)
	return &SpinResult{SegmentIndex: idx, Segment: segment, Player: player}, nil
}

// UpdateAchievementProgress moves a player's progress toward a configured
// achievement, clamped to [0, target]. The progress record is created from
// the static definition on first touch. Claimed achievements are terminal;
// further deltas are ignored without a commit.
func (e *Engine) UpdateAchievementProgress(ctx context.Context, id model.PlayerID, achievementID model.AchievementID, delta int) (*model.Player, error) {
	def, ok := e.cfg.Achievement(achievementID)
	if !ok {
		return nil, model.ErrUnknownAchievement
	}

	unlock := e.lock(id)
	defer unlock()

	now := e.clock.NowMillis()
	player, err := e.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}
	expected := player.Version

	if player.Achievements == nil {
		player.Achievements = make(map[model.AchievementID]*model.AchievementProgress)
	}
	progress, ok := player.Achievements[achievementID]
	if !ok {
		progress = &model.AchievementProgress{
			AchievementID: achievementID,
			Target:        def.Target,
		}
		player.Achievements[achievementID] = progress
	}

	if progress.Claimed {
		return player, nil
	}

	next := progress.Progress + delta
	if next < 0 {
		next = 0
	}
	if next > progress.Target {
		next = progress.Target
	}
	progress.Progress = next

	if err := e.store.CommitPlayer(ctx, expected, player); err != nil {
		return nil, err
	}

	e.logger.Debug("achievement progress",
		slog.String("player_id", string(id)),
		slog.String("achievement_id", string(achievementID)),
		slog.Int("progress", progress.Progress),
		slog.Int("target", progress.Target),
	)
	return player, nil
}

// ClaimAchievement pays out a completed achievement exactly once. A repeat
// claim fails with model.ErrAlreadyClaimed and grants nothing.
func (e *Engine) ClaimAchievement(ctx context.Context, id model.PlayerID, achievementID model.AchievementID) (*model.Player, error) {
	def, ok := e.cfg.Achievement(achievementID)
	if !ok {
		return nil, model.ErrUnknownAchievement
	}

	unlock := e.lock(id)
	defer unlock()

	now := e.clock.NowMillis()
	player, err := e.loadOrCreate(ctx, id, now)
	if err != nil {
		return nil, err
	}
	expected := player.Version

	progress, ok := player.Achievements[achievementID]
	if !ok {
		return nil, model.ErrNotClaimable
	}
	if progress.Claimed {
		return nil, model.ErrAlreadyClaimed
	}
	if progress.Progress < progress.Target {
		return nil, model.ErrNotClaimable
	}

	mult := vip.Resolve(player.VIP, now)
	reward := int64(float64(def.RewardLP) * mult.Currency)
	player.Currency += reward
	player.GrantFeature(def.RewardFeature)
	progress.Claimed = true

	if err := e.store.CommitPlayer(ctx, expected, player); err != nil {
		return nil, err
	}

	e.logger.Info("achievement claimed",
		slog.String("player_id", string(id)),
		slog.String("achievement_id", string(achievementID)),
		slog.Int64("reward", reward),
	)
	return player, nil
}
