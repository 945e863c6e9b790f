// Package scene implements a stack of mutually exclusive application states.
//
// Scenes are stacked on top of each other. The top scene is active; scenes
// below it are paused unless the scene above asks for them to keep being
// processed through DrawNext. Scenes never mutate the stack directly: they
// return a Transition from OnUpdate or OnEvent, and the Manager applies every
// collected transition once the frame walk is over.
package scene

// Event is an opaque input value delivered by the host.
type Event any

// Scene is a single unit of application state living on the stack.
//
// C is the application-defined context shared by every scene. Embed Base to
// get no-op defaults for everything except OnUpdate.
type Scene[C any] interface {
	// OnEnter is called before the scene is placed on the stack.
	OnEnter(ctx *C) error

	// OnLeave is called after the scene has been removed from the stack.
	OnLeave(ctx *C) error

	// OnPause is called when another scene is pushed on top of this one.
	// shouldDraw reports whether the incoming scene draws through to this one.
	OnPause(ctx *C, shouldDraw bool) error

	// OnUnpause is called when this scene becomes the top again.
	OnUnpause(ctx *C) error

	// OnUpdate advances the scene by elapsed seconds.
	OnUpdate(ctx *C, elapsed float64) (Transition[C], error)

	// OnEvent handles an input event. handled stops propagation to the
	// scenes below.
	OnEvent(ctx *C, ev Event) (handled bool, t Transition[C], err error)

	// DrawNext reports whether the scene below should also be processed
	// this frame.
	DrawNext(ctx *C) bool
}

// Base provides no-op implementations of the optional Scene hooks.
type Base[C any] struct{}

func (Base[C]) OnEnter(*C) error { return nil }

func (Base[C]) OnLeave(*C) error { return nil }

func (Base[C]) OnPause(*C, bool) error { return nil }

func (Base[C]) OnUnpause(*C) error { return nil }

func (Base[C]) OnEvent(*C, Event) (bool, Transition[C], error) {
	return false, Transition[C]{}, nil
}

func (Base[C]) DrawNext(*C) bool { return false }
