package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/scenestack/internal/application/scene"
)

// KeyEvent reports a key changing state this tick.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// MouseButtonEvent reports a mouse button changing state this tick.
// X and Y are the cursor position in logical screen pixels.
type MouseButtonEvent struct {
	Button  ebiten.MouseButton
	Pressed bool
	X, Y    int
}

// CloseEvent is sent when the user asks to close the window.
type CloseEvent struct{}

// InputSource produces the events for one tick.
type InputSource interface {
	Poll() []scene.Event
}

// FiniteSource is an InputSource that can run out, such as a replay.
// Game stops once Done reports true.
type FiniteSource interface {
	InputSource
	Done() bool
}

// WindowCloseInput adds a CloseEvent to a source that does not read the
// window itself, so the window can still be closed during a replay.
type WindowCloseInput struct {
	source InputSource
	events []scene.Event
	// closing is replaced in tests.
	closing func() bool
}

// NewWindowCloseInput wraps source.
func NewWindowCloseInput(source InputSource) *WindowCloseInput {
	return &WindowCloseInput{source: source, closing: ebiten.IsWindowBeingClosed}
}

// Poll returns the wrapped source's events followed by a CloseEvent if the
// window is closing. The returned slice is reused by the next call.
func (w *WindowCloseInput) Poll() []scene.Event {
	w.events = append(w.events[:0], w.source.Poll()...)
	if w.closing() {
		w.events = append(w.events, CloseEvent{})
	}
	return w.events
}

// Done forwards to the wrapped source when it is finite.
func (w *WindowCloseInput) Done() bool {
	f, ok := w.source.(FiniteSource)
	return ok && f.Done()
}

var trackedButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenInput reads edge-triggered input from ebiten.
type EbitenInput struct {
	keys   []ebiten.Key
	events []scene.Event
}

// NewEbitenInput creates an input source backed by inpututil.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll returns the keys and buttons that changed state since the last tick,
// pressed before released, followed by a CloseEvent if the window is closing.
// The returned slice is reused by the next call.
func (in *EbitenInput) Poll() []scene.Event {
	in.events = in.events[:0]

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.events = append(in.events, KeyEvent{Key: k, Pressed: true})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.events = append(in.events, KeyEvent{Key: k, Pressed: false})
	}

	x, y := ebiten.CursorPosition()
	for _, b := range trackedButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.events = append(in.events, MouseButtonEvent{Button: b, Pressed: true, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			in.events = append(in.events, MouseButtonEvent{Button: b, Pressed: false, X: x, Y: y})
		}
	}

	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, CloseEvent{})
	}
	return in.events
}
