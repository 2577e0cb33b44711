package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/report"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var searchOpts []minimax.Option
	if conf.Search.Parallelism > 0 {
		searchOpts = append(searchOpts, minimax.WithParallelism(conf.Search.Parallelism))
	}

	switch conf.Mode {
	case config.ModePlay:
		return runPlay(ctx, logger, conf, searchOpts)
	case config.ModeArena:
		return runArena(ctx, logger, conf, searchOpts)
	default:
		return fmt.Errorf("%w: unknown mode %q", config.ErrInvalidConfig, conf.Mode)
	}
}

// runPlay - one console game between the human and the configured opponent.
func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, searchOpts []minimax.Option) error {
	log := logger.With("component", "play")

	opponentFactory, err := agent.NewFactory(conf.Play.Opponent, searchOpts...)
	if err != nil {
		return fmt.Errorf("failed to create opponent: %w", err)
	}

	cli := console.New(os.Stdin, os.Stdout, conf.Play.Colors)

	// reads from stdin do not observe ctx, a signal stops waiting for the game instead
	done := make(chan error, 1)
	go func() {
		done <- playConsoleGame(ctx, logger, cli, opponentFactory)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		log.Info("Game interrupted")
		return nil
	}

	if errors.Is(err, apperror.ErrGameAborted) {
		log.Info("Game aborted by player")
		return nil
	}

	return err
}

func playConsoleGame(ctx context.Context, logger *slog.Logger, cli *console.Console, opponentFactory agent.Factory) error {
	human, first, err := cli.Setup()
	if err != nil {
		return err
	}

	opponent, err := opponentFactory(human.Opponent(), uint64(time.Now().UnixNano()))
	if err != nil {
		return fmt.Errorf("failed to create opponent: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), first)
	gamePlayService := service.NewGamePlayService(logger.With("component", "gameplay"), cli)

	logger.Info("Game started", "game_id", game.ID, "human", human, "opponent", human.Opponent())
	cli.Begin(game)

	if err = gamePlayService.Play(ctx, game, map[entity.Player]agent.Agent{
		human:            cli.Human(),
		human.Opponent(): opponent,
	}); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	cli.Announce(game)

	return nil
}

// runArena - plays the configured series and writes the report when asked to.
func runArena(ctx context.Context, logger *slog.Logger, conf *config.Config, searchOpts []minimax.Option) error {
	log := logger.With("component", "arena")

	firstFactory, err := agent.NewFactory(conf.Arena.First, searchOpts...)
	if err != nil {
		return fmt.Errorf("failed to create first contender: %w", err)
	}

	secondFactory, err := agent.NewFactory(conf.Arena.Second, searchOpts...)
	if err != nil {
		return fmt.Errorf("failed to create second contender: %w", err)
	}

	resultRepo, closeRepo, err := newResultRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close result storage", "error", closeErr)
		}
	}()

	gamePlayService := service.NewGamePlayService(logger.With("component", "gameplay"), nil)
	arenaService := service.NewArenaService(logger.With("component", "arena"), gamePlayService, resultRepo)

	series := service.Series{
		First:   service.Contender{Name: conf.Arena.First, Factory: firstFactory},
		Second:  service.Contender{Name: conf.Arena.Second, Factory: secondFactory},
		Games:   conf.Arena.Games,
		Workers: conf.Arena.Workers,
		Seed:    conf.Arena.Seed,
	}

	tally, err := arenaService.Run(ctx, series)
	if err != nil {
		return fmt.Errorf("arena run failed: %w", err)
	}

	if total, err := resultRepo.GetByMatchup(ctx, series.Matchup()); err == nil {
		log.Info("Matchup totals",
			"matchup", total.Matchup,
			"games", total.Games(),
			"first_wins", total.FirstWins,
			"second_wins", total.SecondWins,
			"draws", total.Draws)
	}

	if conf.Arena.ReportPath == "" {
		return nil
	}

	file, err := os.Create(conf.Arena.ReportPath)
	if err != nil {
		return fmt.Errorf("could not create report file: %w", err)
	}
	defer file.Close()

	if err = report.RenderTally(file, tally); err != nil {
		return err
	}

	log.Info("Report written", "path", conf.Arena.ReportPath)

	return nil
}

// newResultRepository - Redis when enabled, otherwise tallies live in memory.
func newResultRepository(ctx context.Context, conf *config.Config) (repository.ResultRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryResultRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewResultRepository(redisStorage), redisStorage.Close, nil
}
