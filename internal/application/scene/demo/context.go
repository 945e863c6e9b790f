// Package demo provides a small set of scenes that exercise the stack:
// a title screen, an arena and a draw-through pause overlay.
package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/younwookim/scenestack/internal/application/game"
	"github.com/younwookim/scenestack/internal/application/scene"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// Context is shared by every demo scene.
type Context struct {
	ScreenW int
	ScreenH int
	Log     zerolog.Logger

	// Rounds counts arenas entered since start.
	Rounds int
	// BestTime is the longest arena run in seconds.
	BestTime float64
	// QuitToTitle is set by the pause menu and consumed by the arena.
	QuitToTitle bool
}

// Transition is the demo's transition type.
type Transition = scene.Transition[Context]

func keyPressed(ev scene.Event, key ebiten.Key) bool {
	k, ok := ev.(game.KeyEvent)
	return ok && k.Pressed && k.Key == key
}

func keyChanged(ev scene.Event, key ebiten.Key) (pressed, ok bool) {
	k, isKey := ev.(game.KeyEvent)
	if !isKey || k.Key != key {
		return false, false
	}
	return k.Pressed, true
}
