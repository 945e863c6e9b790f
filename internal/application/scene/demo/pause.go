package demo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenestack/internal/application/game"
	"github.com/younwookim/scenestack/internal/application/scene"
)

// Pause is an overlay drawn on top of the scene below it.
type Pause struct {
	scene.Base[Context]
}

// NewPause creates the pause overlay.
func NewPause() *Pause {
	return &Pause{}
}

func (p *Pause) String() string { return "pause" }

// DrawNext keeps the paused scene visible under the overlay.
func (p *Pause) DrawNext(*Context) bool {
	return true
}

func (p *Pause) OnUpdate(*Context, float64) (Transition, error) {
	return scene.None[Context](), nil
}

// OnEvent consumes every key press so nothing reaches the paused scene.
func (p *Pause) OnEvent(ctx *Context, ev scene.Event) (bool, Transition, error) {
	switch {
	case keyPressed(ev, ebiten.KeyEscape):
		return true, scene.Pop[Context](), nil
	case keyPressed(ev, ebiten.KeyQ):
		ctx.QuitToTitle = true
		return true, scene.Pop[Context](), nil
	}
	_, isKey := ev.(game.KeyEvent)
	return isKey, scene.None[Context](), nil
}

func (p *Pause) Draw(ctx *Context, screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(ctx.ScreenW), float64(ctx.ScreenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nESC: resume\nQ: quit to title", ctx.ScreenW/2-50, ctx.ScreenH/2-20)
}
