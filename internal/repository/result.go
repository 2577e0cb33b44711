package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const resultKeyPrefix = "arena:"

type ResultRepository interface {
	Record(ctx context.Context, matchup string, outcome entity.Outcome) error
	GetByMatchup(ctx context.Context, matchup string) (*entity.Tally, error)
	DeleteByMatchup(ctx context.Context, matchup string) error
}

// dbResult keeps one hash per matchup, one counter field per outcome.
type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Record(ctx context.Context, matchup string, outcome entity.Outcome) error {
	if err := entity.NewTally(matchup).Record(outcome); err != nil {
		return fmt.Errorf("could not record result: %w", err)
	}

	if err := that.client.HIncrBy(ctx, resultKeyPrefix+matchup, string(outcome), 1).Err(); err != nil {
		return fmt.Errorf("failed to increment %s for %s: %w", outcome, matchup, err)
	}

	return nil
}

func (that *dbResult) GetByMatchup(ctx context.Context, matchup string) (*entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, resultKeyPrefix+matchup).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results for %s: %w", matchup, err)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchupNotFound, matchup)
	}

	tally := entity.NewTally(matchup)
	for field, value := range fields {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s counter for %s: %w", field, matchup, err)
		}

		if err = tally.Add(entity.Outcome(field), count); err != nil {
			return nil, fmt.Errorf("unexpected field in %s: %w", matchup, err)
		}
	}

	return tally, nil
}

func (that *dbResult) DeleteByMatchup(ctx context.Context, matchup string) error {
	deleted, err := that.client.Del(ctx, resultKeyPrefix+matchup).Result()
	if err != nil {
		return fmt.Errorf("failed to delete results for %s: %w", matchup, err)
	}

	if deleted == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrMatchupNotFound, matchup)
	}

	return nil
}
