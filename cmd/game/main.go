package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/younwookim/scenestack/internal/application/game"
	"github.com/younwookim/scenestack/internal/application/replay"
	"github.com/younwookim/scenestack/internal/application/scene"
	"github.com/younwookim/scenestack/internal/application/scene/demo"
	"github.com/younwookim/scenestack/internal/infrastructure/config"
	"github.com/younwookim/scenestack/internal/infrastructure/logging"
)

// Options holds the command line flags.
type Options struct {
	ConfigDir  string
	LogLevel   string
	RecordPath string
	ReplayPath string
}

func newRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "scenestack-demo",
		Short:         "Run the scene stack demo",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigDir, "config", "", "directory containing app.toml (defaults to the embedded config)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "override the configured log level")
	cmd.Flags().StringVar(&opts.RecordPath, "record", "", "record input to file (e.g. --record replay.json)")
	cmd.Flags().StringVar(&opts.ReplayPath, "replay", "", "play input back from a recorded file")

	return cmd
}

func loadConfig(dir string) (*config.AppConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).Load()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load()
}

func newInput(opts *Options) (game.InputSource, *replay.Recorder, error) {
	var input game.InputSource = game.NewEbitenInput()

	if opts.ReplayPath != "" {
		data, err := replay.LoadReplay(opts.ReplayPath)
		if err != nil {
			return nil, nil, err
		}
		player, err := replay.NewReplayer(*data)
		if err != nil {
			return nil, nil, err
		}
		input = game.NewWindowCloseInput(player)
	}

	var recorder *replay.Recorder
	if opts.RecordPath != "" {
		recorder = replay.NewRecorder(input)
		input = recorder
	}
	return input, recorder, nil
}

func run(ctx context.Context, opts *Options) error {
	cfg, err := loadConfig(opts.ConfigDir)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logging.Configure(logging.Config{Level: level})
	log := logging.WithComponent("main")

	input, recorder, err := newInput(opts)
	if err != nil {
		return err
	}

	d := cfg.Display
	manager := scene.New(demo.Context{
		ScreenW: d.ScreenWidth,
		ScreenH: d.ScreenHeight,
		Log:     logging.WithComponent("demo"),
	}, scene.WithLogger(logging.WithComponent("scene")))
	if err := manager.Apply(scene.Push[demo.Context](demo.NewTitle())); err != nil {
		return fmt.Errorf("failed to enter title: %w", err)
	}

	g := game.New(manager, input, d.ScreenWidth, d.ScreenHeight)
	g.SetDT(d.DT())
	g.SetLogger(logging.WithComponent("game"))

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(d.TPS)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		g.RequestQuit()
	}()

	log.Info().
		Int("width", d.ScreenWidth).
		Int("height", d.ScreenHeight).
		Int("tps", d.TPS).
		Bool("replay", opts.ReplayPath != "").
		Msg("starting")

	runErr := g.Run()

	if recorder != nil {
		if err := recorder.Err(); err != nil {
			log.Warn().Err(err).Msg("some events were not recorded")
		}
		if err := recorder.Save(opts.RecordPath); err != nil {
			log.Error().Err(err).Msg("failed to save recording")
		} else {
			log.Info().Str("file", opts.RecordPath).Int("frames", recorder.FrameCount()).Msg("recording saved")
		}
	}

	if errors.Is(runErr, game.ErrNoScenes) {
		return runErr
	}
	if runErr != nil {
		return fmt.Errorf("game stopped: %w", runErr)
	}
	log.Info().Int("frames", g.Frame()).Msg("bye")
	return nil
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
