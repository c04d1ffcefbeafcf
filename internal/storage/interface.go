package storage

import (
	"context"

	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

// PlayerStore defines keyed access to a single player's durable state.
//
// CommitPlayer is a compare-and-swap: the write succeeds only if the stored
// version still equals expectedVersion, in which case the player is stored
// with Version = expectedVersion + 1. A mismatch means another writer
// committed in between and surfaces model.ErrVersionConflict; the caller
// retries by re-reading and reapplying its logic.
type PlayerStore interface {
	// LoadPlayer returns the player's state, or model.ErrPlayerNotFound.
	LoadPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// CreatePlayer stores an initial state for a player with no record.
	CreatePlayer(ctx context.Context, player *model.Player) error

	// CommitPlayer atomically replaces the player's state, guarded by
	// expectedVersion.
	CommitPlayer(ctx context.Context, expectedVersion int64, player *model.Player) error
}
