package repository

import (
	"context"
	"time"
)

// CacheRepository caches rendered board snapshots. A miss returns
// (nil, nil); cache failures must never fail the request being served.
type CacheRepository interface {
	// GetBoardSnapshot returns the cached snapshot bytes for a board, or
	// nil on a miss.
	GetBoardSnapshot(ctx context.Context, boardID string) ([]byte, error)

	// SetBoardSnapshot stores a board snapshot with a TTL.
	SetBoardSnapshot(ctx context.Context, boardID string, data []byte, ttl time.Duration) error

	// InvalidateBoard drops the cached snapshot of a board.
	InvalidateBoard(ctx context.Context, boardID string) error
}
