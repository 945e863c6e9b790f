package demo

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/scenestack/internal/application/game"
	"github.com/younwookim/scenestack/internal/application/scene"
)

const dt = 1.0 / 60.0

func newManager(t *testing.T) *scene.Manager[Context] {
	t.Helper()
	m := scene.New(Context{ScreenW: 320, ScreenH: 240, Log: zerolog.Nop()})
	require.NoError(t, m.Apply(scene.Push[Context](NewTitle())))
	return m
}

func press(t *testing.T, m *scene.Manager[Context], key ebiten.Key) bool {
	t.Helper()
	handled, err := m.OnEvent(game.KeyEvent{Key: key, Pressed: true})
	require.NoError(t, err)
	return handled
}

func release(t *testing.T, m *scene.Manager[Context], key ebiten.Key) bool {
	t.Helper()
	handled, err := m.OnEvent(game.KeyEvent{Key: key, Pressed: false})
	require.NoError(t, err)
	return handled
}

func tick(t *testing.T, m *scene.Manager[Context], frames int) bool {
	t.Helper()
	running := true
	for i := 0; i < frames; i++ {
		var err error
		running, err = m.OnUpdate(dt)
		require.NoError(t, err)
	}
	return running
}

func TestTitle_EnterStartsArena(t *testing.T) {
	m := newManager(t)

	assert.True(t, press(t, m, ebiten.KeyEnter))
	require.Equal(t, 1, m.Len())
	assert.IsType(t, &Arena{}, m.Top())
	assert.Equal(t, 1, m.Context().Rounds)
}

func TestTitle_EscapeQuits(t *testing.T) {
	m := newManager(t)

	assert.True(t, press(t, m, ebiten.KeyEscape))
	assert.Equal(t, 0, m.Len())
	assert.False(t, tick(t, m, 1))
}

func TestTitle_IgnoresOtherInput(t *testing.T) {
	m := newManager(t)

	assert.False(t, press(t, m, ebiten.KeyA))
	assert.False(t, release(t, m, ebiten.KeyEnter))
	assert.IsType(t, &Title{}, m.Top())
}

func TestArena_MovesWithArrows(t *testing.T) {
	m := newManager(t)
	press(t, m, ebiten.KeyEnter)
	arena := m.Top().(*Arena)
	x0, y0 := arena.Position()

	assert.True(t, press(t, m, ebiten.KeyArrowRight))
	tick(t, m, 30)
	x1, y1 := arena.Position()
	assert.InDelta(t, x0+playerSpeed*0.5, x1, 1e-6)
	assert.Equal(t, y0, y1)

	assert.True(t, release(t, m, ebiten.KeyArrowRight))
	tick(t, m, 30)
	x2, _ := arena.Position()
	assert.Equal(t, x1, x2)
}

func TestArena_ClampedToScreen(t *testing.T) {
	m := newManager(t)
	press(t, m, ebiten.KeyEnter)
	arena := m.Top().(*Arena)

	press(t, m, ebiten.KeyArrowUp)
	tick(t, m, 600)
	_, y := arena.Position()
	assert.Equal(t, 0.0, y)
}

func TestPause_DrawsThroughAndFreezesArena(t *testing.T) {
	m := newManager(t)
	press(t, m, ebiten.KeyEnter)
	arena := m.Top().(*Arena)
	press(t, m, ebiten.KeyArrowLeft)

	assert.True(t, press(t, m, ebiten.KeyEscape))
	require.Equal(t, 2, m.Len())
	assert.IsType(t, &Pause{}, m.Top())

	paused, visible := arena.Paused()
	assert.True(t, paused)
	assert.True(t, visible, "pause overlay draws through to the arena")
	assert.Equal(t, []scene.Scene[Context]{arena, m.Top()}, m.Visible())

	x0, _ := arena.Position()
	tick(t, m, 30)
	x1, _ := arena.Position()
	assert.Equal(t, x0, x1, "arena does not move while paused")

	assert.True(t, press(t, m, ebiten.KeyArrowRight), "overlay swallows keys")
	assert.True(t, press(t, m, ebiten.KeyEscape))
	assert.Same(t, arena, m.Top())
	paused, _ = arena.Paused()
	assert.False(t, paused)

	tick(t, m, 30)
	x2, _ := arena.Position()
	assert.Equal(t, x1, x2, "held direction is dropped on unpause")
}

func TestPause_QuitToTitle(t *testing.T) {
	m := newManager(t)
	press(t, m, ebiten.KeyEnter)
	tick(t, m, 90)
	press(t, m, ebiten.KeyEscape)

	assert.True(t, press(t, m, ebiten.KeyQ))
	assert.IsType(t, &Arena{}, m.Top())

	assert.True(t, tick(t, m, 1))
	require.Equal(t, 1, m.Len())
	assert.IsType(t, &Title{}, m.Top())
	assert.False(t, m.Context().QuitToTitle)
	assert.InDelta(t, 1.5, m.Context().BestTime, 1e-6)
}

func TestRounds_Counted(t *testing.T) {
	m := newManager(t)
	for i := 0; i < 3; i++ {
		press(t, m, ebiten.KeyEnter)
		press(t, m, ebiten.KeyEscape)
		press(t, m, ebiten.KeyQ)
		tick(t, m, 1)
	}
	assert.Equal(t, 3, m.Context().Rounds)
	assert.IsType(t, &Title{}, m.Top())
}
