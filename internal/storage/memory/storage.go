package memory

import (
	"context"
	"sync"

	"github.com/shadyltdcry-byte/classiklust/internal/model"
	"github.com/shadyltdcry-byte/classiklust/internal/storage"
)

// Storage is an in-memory implementation of the player store. It deep-copies
// on every read and write so callers never alias committed state.
type Storage struct {
	mu      sync.RWMutex
	players map[model.PlayerID]*model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.PlayerStore = (*Storage)(nil)

func (s *Storage) LoadPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player.Clone(), nil
}

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player.Clone()
	return nil
}

func (s *Storage) CommitPlayer(ctx context.Context, expectedVersion int64, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.players[player.ID]
	if !ok {
		return model.ErrPlayerNotFound
	}
	if stored.Version != expectedVersion {
		return model.ErrVersionConflict
	}

	committed := player.Clone()
	committed.Version = expectedVersion + 1
	s.players[player.ID] = committed

	// Reflect the committed version back to the caller's copy.
	player.Version = committed.Version
	return nil
}
