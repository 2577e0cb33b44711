package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// memoryResult is the ResultRepository used when Redis is disabled. Tallies live for the process only.
type memoryResult struct {
	mu      sync.Mutex
	tallies map[string]*entity.Tally
}

func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{
		tallies: make(map[string]*entity.Tally),
	}
}

func (that *memoryResult) Record(_ context.Context, matchup string, outcome entity.Outcome) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	tally, ok := that.tallies[matchup]
	if !ok {
		tally = entity.NewTally(matchup)
	}

	if err := tally.Record(outcome); err != nil {
		return fmt.Errorf("could not record result: %w", err)
	}

	that.tallies[matchup] = tally

	return nil
}

func (that *memoryResult) GetByMatchup(_ context.Context, matchup string) (*entity.Tally, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	tally, ok := that.tallies[matchup]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchupNotFound, matchup)
	}

	copied := *tally

	return &copied, nil
}

func (that *memoryResult) DeleteByMatchup(_ context.Context, matchup string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.tallies[matchup]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrMatchupNotFound, matchup)
	}

	delete(that.tallies, matchup)

	return nil
}
