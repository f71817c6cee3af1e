package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainRepo "github.com/itsmardochee/Planit-sub003/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const boardSnapshotKeyPrefix = "board:snapshot:"

type redisCacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCacheRepository creates a Redis-backed board snapshot cache.
func NewRedisCacheRepository(client *redis.Client, logger *zap.Logger) domainRepo.CacheRepository {
	return &redisCacheRepository{
		client: client,
		logger: logger,
	}
}

func (r *redisCacheRepository) GetBoardSnapshot(ctx context.Context, boardID string) ([]byte, error) {
	data, err := r.client.Get(ctx, boardSnapshotKeyPrefix+boardID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read board snapshot: %w", err)
	}
	return data, nil
}

func (r *redisCacheRepository) SetBoardSnapshot(ctx context.Context, boardID string, data []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, boardSnapshotKeyPrefix+boardID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store board snapshot: %w", err)
	}
	return nil
}

func (r *redisCacheRepository) InvalidateBoard(ctx context.Context, boardID string) error {
	if err := r.client.Del(ctx, boardSnapshotKeyPrefix+boardID).Err(); err != nil {
		r.logger.Warn("failed to invalidate board snapshot",
			zap.String("board_id", boardID),
			zap.Error(err))
		return fmt.Errorf("failed to invalidate board snapshot: %w", err)
	}
	return nil
}
