package redis

import (
	"fmt"

	"github.com/shadyltdcry-byte/classiklust/internal/model"
)

// Key prefix for all economy data
const keyPrefix = "clust"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}
