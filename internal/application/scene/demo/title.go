package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenestack/internal/application/scene"
)

// Title waits for the player to start a round or quit.
type Title struct {
	scene.Base[Context]
	blink float64
}

// NewTitle creates the title scene.
func NewTitle() *Title {
	return &Title{}
}

func (t *Title) String() string { return "title" }

func (t *Title) OnEnter(ctx *Context) error {
	t.blink = 0
	ctx.Log.Debug().Int("rounds", ctx.Rounds).Msg("title entered")
	return nil
}

func (t *Title) OnUpdate(_ *Context, elapsed float64) (Transition, error) {
	t.blink += elapsed
	return scene.None[Context](), nil
}

// OnEvent starts a round on Enter and quits on Escape.
func (t *Title) OnEvent(_ *Context, ev scene.Event) (bool, Transition, error) {
	switch {
	case keyPressed(ev, ebiten.KeyEnter):
		return true, scene.Replace[Context](NewArena()), nil
	case keyPressed(ev, ebiten.KeyEscape):
		return true, scene.Pop[Context](), nil
	}
	return false, scene.None[Context](), nil
}

func (t *Title) Draw(ctx *Context, screen *ebiten.Image) {
	screen.Fill(colorBG)
	text := fmt.Sprintf("SCENE STACK\n\nBest run: %.1fs", ctx.BestTime)
	if int(t.blink*2)%2 == 0 {
		text += "\n\nPress ENTER to start"
	}
	text += "\nESC to quit"
	ebitenutil.DebugPrintAt(screen, text, ctx.ScreenW/2-60, ctx.ScreenH/2-30)
}
