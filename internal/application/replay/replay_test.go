package replay

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/scenestack/internal/application/game"
	"github.com/younwookim/scenestack/internal/application/scene"
)

// scriptedInput hands out one scripted batch of events per Poll
type scriptedInput struct {
	frames [][]scene.Event
}

func (s *scriptedInput) Poll() []scene.Event {
	if len(s.frames) == 0 {
		return nil
	}
	evs := s.frames[0]
	s.frames = s.frames[1:]
	return evs
}

func sampleFrames() [][]scene.Event {
	return [][]scene.Event{
		{game.KeyEvent{Key: ebiten.KeyEnter, Pressed: true}},
		nil,
		{
			game.KeyEvent{Key: ebiten.KeyEnter, Pressed: false},
			game.MouseButtonEvent{Button: ebiten.MouseButtonRight, Pressed: true, X: 10, Y: 20},
		},
		{game.CloseEvent{}},
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, frame := range sampleFrames() {
		for _, ev := range frame {
			rec, err := Encode(ev)
			require.NoError(t, err)

			decoded, err := rec.Decode()
			require.NoError(t, err)
			assert.Equal(t, ev, decoded)
		}
	}
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := Encode("not an input event")
	assert.Error(t, err)
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := EventRecord{K: "gamepad"}.Decode()
	assert.Error(t, err)
}

func TestRecorder_ForwardsAndRecords(t *testing.T) {
	rec := NewRecorder(&scriptedInput{frames: sampleFrames()})

	for i, want := range sampleFrames() {
		got := rec.Poll()
		assert.Equal(t, want, got, "frame %d should pass through unchanged", i)
	}

	assert.Equal(t, 4, rec.FrameCount())
	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 2, data.Frames[2].F)
	assert.Len(t, data.Frames[2].Events, 2)
	assert.Empty(t, data.Frames[1].Events)
	assert.NoError(t, rec.Err())
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(&scriptedInput{frames: sampleFrames()})
	rec.Poll()
	rec.Stop()
	assert.False(t, rec.IsRecording())

	evs := rec.Poll()
	assert.Len(t, evs, 0, "stopped recorder still forwards")
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_UnsupportedEventSkipped(t *testing.T) {
	rec := NewRecorder(&scriptedInput{})
	rec.RecordFrame([]scene.Event{42, game.CloseEvent{}})

	assert.Error(t, rec.Err())
	require.Equal(t, 1, rec.FrameCount())
	assert.Len(t, rec.Data().Frames[0].Events, 1)
}

func TestRecorderAndReplayer_RoundTrip(t *testing.T) {
	rec := NewRecorder(&scriptedInput{frames: sampleFrames()})
	for range sampleFrames() {
		rec.Poll()
	}

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)

	player, err := NewReplayer(*data)
	require.NoError(t, err)
	assert.Equal(t, 4, player.TotalFrames())

	for i, want := range sampleFrames() {
		assert.False(t, player.Done())
		got := player.Poll()
		if len(want) == 0 {
			assert.Empty(t, got, "frame %d", i)
			continue
		}
		assert.Equal(t, want, got, "frame %d", i)
	}

	assert.True(t, player.Done())
	assert.Nil(t, player.Poll())

	player.Reset()
	assert.Equal(t, 0, player.CurrentFrame())
	assert.False(t, player.Done())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(&scriptedInput{})
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestNewReplayer_BadEvent(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Frames: []FrameInput{
			{F: 0, Events: []EventRecord{{K: KindKey, C: int(ebiten.KeyA), P: true}}},
			{F: 1, Events: []EventRecord{{K: "joystick"}}},
		},
	}
	_, err := NewReplayer(data)
	assert.Error(t, err)
}

func TestLoadReplay_Missing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

type titleCtx struct{}

// idleScene never leaves on its own, like a title screen.
type idleScene struct {
	scene.Base[titleCtx]
	updates int
}

func (s *idleScene) OnUpdate(*titleCtx, float64) (scene.Transition[titleCtx], error) {
	s.updates++
	return scene.None[titleCtx](), nil
}

func TestReplayer_FinishedPlaybackStopsGame(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Frames: []FrameInput{
			{F: 0, Events: []EventRecord{{K: KindKey, C: int(ebiten.KeyA), P: true}}},
			{F: 1},
		},
	}
	player, err := NewReplayer(data)
	require.NoError(t, err)

	idle := &idleScene{}
	m := scene.New(titleCtx{})
	require.NoError(t, m.Push(idle))
	rec := NewRecorder(player)
	g := game.New(m, rec, 320, 240)

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.True(t, rec.Done())

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 2, idle.updates)
	assert.Equal(t, 2, rec.FrameCount())
}
