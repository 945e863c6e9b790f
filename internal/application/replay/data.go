// Package replay records the per-tick input event stream and plays it back.
package replay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/scenestack/internal/application/game"
	"github.com/younwookim/scenestack/internal/application/scene"
)

// Version is written into every recording.
const Version = "2.0"

// Event kinds
const (
	KindKey   = "key"
	KindMouse = "mouse"
	KindClose = "close"
)

// EventRecord is the serialized form of a single input event
type EventRecord struct {
	K  string `json:"k"`            // Kind
	C  int    `json:"c,omitempty"`  // Key or mouse button code
	P  bool   `json:"p,omitempty"`  // Pressed
	MX int    `json:"mx,omitempty"` // MouseX
	MY int    `json:"my,omitempty"` // MouseY
}

// FrameInput records the events of a single tick
type FrameInput struct {
	F      int           `json:"f"` // Frame number
	Events []EventRecord `json:"e,omitempty"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Encode converts a host event into its record form.
func Encode(ev scene.Event) (EventRecord, error) {
	switch e := ev.(type) {
	case game.KeyEvent:
		return EventRecord{K: KindKey, C: int(e.Key), P: e.Pressed}, nil
	case game.MouseButtonEvent:
		return EventRecord{K: KindMouse, C: int(e.Button), P: e.Pressed, MX: e.X, MY: e.Y}, nil
	case game.CloseEvent:
		return EventRecord{K: KindClose}, nil
	default:
		return EventRecord{}, fmt.Errorf("replay: unsupported event %T", ev)
	}
}

// Decode converts a record back into a host event.
func (r EventRecord) Decode() (scene.Event, error) {
	switch r.K {
	case KindKey:
		return game.KeyEvent{Key: ebiten.Key(r.C), Pressed: r.P}, nil
	case KindMouse:
		return game.MouseButtonEvent{Button: ebiten.MouseButton(r.C), Pressed: r.P, X: r.MX, Y: r.MY}, nil
	case KindClose:
		return game.CloseEvent{}, nil
	default:
		return nil, fmt.Errorf("replay: unknown event kind %q", r.K)
	}
}
