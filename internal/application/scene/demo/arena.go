package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenestack/internal/application/scene"
)

const (
	playerSize  = 12.0
	playerSpeed = 120.0 // pixels per second
)

// Arena moves a square around with the arrow keys. Escape pauses.
type Arena struct {
	scene.Base[Context]
	x, y    float64
	dirX    float64
	dirY    float64
	elapsed float64
	paused  bool
	dimmed  bool
}

// NewArena creates a fresh arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) String() string { return "arena" }

func (a *Arena) OnEnter(ctx *Context) error {
	ctx.Rounds++
	a.x = float64(ctx.ScreenW)/2 - playerSize/2
	a.y = float64(ctx.ScreenH)/2 - playerSize/2
	ctx.Log.Info().Int("round", ctx.Rounds).Msg("arena entered")
	return nil
}

func (a *Arena) OnLeave(ctx *Context) error {
	if a.elapsed > ctx.BestTime {
		ctx.BestTime = a.elapsed
	}
	ctx.Log.Info().Float64("time", a.elapsed).Msg("arena left")
	return nil
}

// OnPause remembers whether the overlay still shows the arena underneath.
func (a *Arena) OnPause(_ *Context, shouldDraw bool) error {
	a.paused = true
	a.dimmed = shouldDraw
	return nil
}

// OnUnpause drops any held direction; releases may have been consumed by
// the overlay.
func (a *Arena) OnUnpause(*Context) error {
	a.paused = false
	a.dimmed = false
	a.dirX, a.dirY = 0, 0
	return nil
}

func (a *Arena) OnUpdate(ctx *Context, elapsed float64) (Transition, error) {
	if ctx.QuitToTitle {
		ctx.QuitToTitle = false
		return scene.Replace[Context](NewTitle()), nil
	}
	if a.paused {
		return scene.None[Context](), nil
	}

	a.elapsed += elapsed
	a.x = clamp(a.x+a.dirX*playerSpeed*elapsed, 0, float64(ctx.ScreenW)-playerSize)
	a.y = clamp(a.y+a.dirY*playerSpeed*elapsed, 0, float64(ctx.ScreenH)-playerSize)
	return scene.None[Context](), nil
}

func (a *Arena) OnEvent(_ *Context, ev scene.Event) (bool, Transition, error) {
	if keyPressed(ev, ebiten.KeyEscape) {
		return true, scene.Push[Context](NewPause()), nil
	}
	for _, m := range moves {
		pressed, ok := keyChanged(ev, m.key)
		if !ok {
			continue
		}
		switch {
		case pressed && m.dx != 0:
			a.dirX = m.dx
		case pressed:
			a.dirY = m.dy
		case m.dx != 0 && a.dirX == m.dx:
			a.dirX = 0
		case m.dy != 0 && a.dirY == m.dy:
			a.dirY = 0
		}
		return true, scene.None[Context](), nil
	}
	return false, scene.None[Context](), nil
}

// Position returns the player's top-left corner.
func (a *Arena) Position() (x, y float64) {
	return a.x, a.y
}

// Paused reports whether a scene sits on top of the arena, and whether that
// scene lets the arena show through.
func (a *Arena) Paused() (paused, visible bool) {
	return a.paused, a.dimmed
}

func (a *Arena) Draw(ctx *Context, screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DrawRect(screen, a.x, a.y, playerSize, playerSize, colorPlayer)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Round %d  Time %.1fs | Arrows: Move | ESC: Pause", ctx.Rounds, a.elapsed))
}

var moves = []struct {
	key    ebiten.Key
	dx, dy float64
}{
	{ebiten.KeyArrowLeft, -1, 0},
	{ebiten.KeyArrowRight, 1, 0},
	{ebiten.KeyArrowUp, 0, -1},
	{ebiten.KeyArrowDown, 0, 1},
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
