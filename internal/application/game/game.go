// Package game runs a scene stack inside the ebiten frame loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/younwookim/scenestack/internal/application/scene"
	"go.uber.org/atomic"
)

// ErrNoScenes is returned by Run when the stack is empty at startup.
var ErrNoScenes = errors.New("game: no scene to run")

// Application is the contract the frame loop drives.
// *scene.Manager satisfies it.
type Application interface {
	OnCreate() bool
	OnUpdate(elapsed float64) (bool, error)
	OnEvent(ev scene.Event) (bool, error)
}

var _ Application = (*scene.Manager[struct{}])(nil)

// Drawer is implemented by scenes that render themselves.
type Drawer[C any] interface {
	Draw(ctx *C, screen *ebiten.Image)
}

// Game implements ebiten.Game on top of a scene.Manager.
type Game[C any] struct {
	manager *scene.Manager[C]
	input   InputSource
	screenW int
	screenH int
	dt      float64
	frame   int
	quit    atomic.Bool
	log     zerolog.Logger
}

// New creates a Game driving manager with the given logical screen size.
func New[C any](manager *scene.Manager[C], input InputSource, screenW, screenH int) *Game[C] {
	return &Game[C]{
		manager: manager,
		input:   input,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 TPS
		log:     zerolog.Nop(),
	}
}

// SetDT sets the elapsed time passed to every update.
func (g *Game[C]) SetDT(dt float64) {
	g.dt = dt
}

// SetLogger sets the logger used to report frame failures.
func (g *Game[C]) SetLogger(l zerolog.Logger) {
	g.log = l
}

// Frame returns the number of completed ticks.
func (g *Game[C]) Frame() int {
	return g.frame
}

// RequestQuit asks the loop to stop at the next tick.
// Safe to call from any goroutine.
func (g *Game[C]) RequestQuit() {
	g.quit.Store(true)
}

// Start checks that there is something to run.
func (g *Game[C]) Start() error {
	if !g.manager.OnCreate() {
		return ErrNoScenes
	}
	return nil
}

// Run starts the ebiten loop and blocks until the stack empties, a quit is
// requested, or a scene fails.
func (g *Game[C]) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

// Update dispatches this tick's events, then updates the active scenes.
// Implements ebiten.Game interface.
func (g *Game[C]) Update() error {
	if g.quit.Load() {
		return ebiten.Termination
	}
	if f, ok := g.input.(FiniteSource); ok && f.Done() {
		g.log.Info().Int("frame", g.frame).Msg("input exhausted")
		return ebiten.Termination
	}

	for _, ev := range g.input.Poll() {
		handled, err := g.manager.OnEvent(ev)
		if err != nil {
			g.log.Error().Err(err).Int("frame", g.frame).Msg("event dispatch failed")
			return err
		}
		if _, ok := ev.(CloseEvent); ok && !handled {
			g.log.Info().Msg("window closed")
			return ebiten.Termination
		}
	}

	running, err := g.manager.OnUpdate(g.dt)
	if err != nil {
		g.log.Error().Err(err).Int("frame", g.frame).Msg("update failed")
		return err
	}
	g.frame++
	if !running {
		g.log.Info().Int("frame", g.frame).Msg("scene stack empty")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the visible scenes from the bottom up.
// Implements ebiten.Game interface.
func (g *Game[C]) Draw(screen *ebiten.Image) {
	ctx := g.manager.Context()
	g.manager.EachVisible(func(s scene.Scene[C]) {
		if d, ok := s.(Drawer[C]); ok {
			d.Draw(ctx, screen)
		}
	})
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game[C]) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
