package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/game"
	"github.com/lixenwraith/starfall/game/dogfight"
	"github.com/lixenwraith/starfall/game/shooter"
	"github.com/lixenwraith/starfall/game/tether"
	"github.com/lixenwraith/starfall/portfolio"
	"github.com/lixenwraith/starfall/storage"
)

var (
	debugFlag      = flag.Bool("debug", false, "Write debug logs under the data directory")
	dataFlag       = flag.String("data", "", "Data directory for config, saves and logs")
	gameFlag       = flag.String("game", "", "Skip the launcher and play: dogfight, tether, shooter")
	difficultyFlag = flag.String("difficulty", "medium", "Shooter difficulty with -game: easy, medium, hard")
	stageFlag      = flag.Int("stage", 1, "Tether stage with -game, 100 for infinity")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
)

func main() {
	// Panic Recovery: restore the terminal of whichever screen is active
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starfall: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load(*dataFlag, nil)
	logger, logFile := setupLogging(cfg.DataDir, *debugFlag || cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
		// Reload so config warnings reach the log
		cfg = config.Load(*dataFlag, logger)
	}

	store := storage.OpenFile(cfg.StorePath(), logger)
	player := newPlayer(cfg, logger)
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := game.Deps{
		Audio:  player,
		Store:  store,
		Logger: logger,
		Input:  cfg.Input.HoldWindow,
		Frame:  cfg.FrameInterval(),
	}

	direct := *gameFlag != ""
	for ctx.Err() == nil {
		sel, err := choose(direct, store, logger)
		if errors.Is(err, portfolio.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		g, err := build(sel, deps)
		if err != nil {
			if direct {
				return err
			}
			logger.Warn("game not started", "game", sel.GameID, "error", err)
			continue
		}

		exit, err := play(ctx, g, deps)
		if err != nil {
			return err
		}
		if direct || exit == game.ExitQuit {
			return nil
		}
	}
	return nil
}

// choose returns the flag selection or runs the launcher
func choose(direct bool, store storage.KV, logger *slog.Logger) (portfolio.Selection, error) {
	if direct {
		return portfolio.Selection{
			GameID:     *gameFlag,
			Difficulty: core.ParseDifficulty(*difficultyFlag),
			Stage:      *stageFlag,
		}, nil
	}
	return portfolio.NewLauncher(store, logger).Run()
}

func build(sel portfolio.Selection, deps game.Deps) (game.Game, error) {
	switch sel.GameID {
	case dogfight.ID:
		return dogfight.New(deps), nil
	case shooter.ID:
		return shooter.New(sel.Difficulty, deps), nil
	case tether.ID:
		return tether.New(sel.Stage, deps)
	default:
		return nil, fmt.Errorf("unknown game %q", sel.GameID)
	}
}

// play owns one terminal screen for the length of a game
func play(ctx context.Context, g game.Game, deps game.Deps) (game.Exit, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.ExitQuit, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.ExitQuit, fmt.Errorf("initialize screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	exit := game.Run(ctx, screen, g, deps)
	g.Close()
	return exit, nil
}

// newPlayer opens the sound device, falling back to silence
func newPlayer(cfg *config.Config, logger *slog.Logger) audio.Player {
	if *muteFlag || !cfg.Audio.Enabled {
		return &audio.Silent{}
	}
	sm := audio.NewSoundManager(cfg.Audio, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return &audio.Silent{}
	}
	return sm
}
