package scene

// Kind identifies the stack mutation a Transition requests.
type Kind int

const (
	TransitionNone Kind = iota
	TransitionPush
	TransitionPop
	TransitionReplace
)

// String returns the string representation of the transition kind
func (k Kind) String() string {
	switch k {
	case TransitionNone:
		return "None"
	case TransitionPush:
		return "Push"
	case TransitionPop:
		return "Pop"
	case TransitionReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Transition is a one-shot request to change the scene stack.
// The zero value requests nothing.
//
// Applying a Push or Replace hands its scene to the stack. Build a fresh
// Transition for every request: returning the same stored value on two
// frames puts the same scene instance on the stack twice.
type Transition[C any] struct {
	kind  Kind
	scene Scene[C]
}

// None returns a transition that leaves the stack untouched.
func None[C any]() Transition[C] {
	return Transition[C]{}
}

// Push returns a transition that pauses the current top and puts s above it.
func Push[C any](s Scene[C]) Transition[C] {
	if s == nil {
		invariant("push", "nil scene")
	}
	return Transition[C]{kind: TransitionPush, scene: s}
}

// Pop returns a transition that removes the current top.
func Pop[C any]() Transition[C] {
	return Transition[C]{kind: TransitionPop}
}

// Replace returns a transition that swaps the current top for s.
func Replace[C any](s Scene[C]) Transition[C] {
	if s == nil {
		invariant("replace", "nil scene")
	}
	return Transition[C]{kind: TransitionReplace, scene: s}
}

// Kind returns the requested mutation.
func (t Transition[C]) Kind() Kind {
	return t.kind
}

// Scene returns the incoming scene for Push and Replace, nil otherwise.
func (t Transition[C]) Scene() Scene[C] {
	return t.scene
}

// applyTo performs the transition on stack and returns the resulting stack.
// A failing callback aborts the remaining steps; effects already performed
// are kept.
func (t Transition[C]) applyTo(stack []Scene[C], ctx *C) ([]Scene[C], error) {
	switch t.kind {
	case TransitionPush:
		next := t.scene
		if n := len(stack); n > 0 {
			drawNext := next.DrawNext(ctx)
			if err := stack[n-1].OnPause(ctx, drawNext); err != nil {
				return stack, err
			}
		}
		if err := next.OnEnter(ctx); err != nil {
			return stack, err
		}
		return append(stack, next), nil

	case TransitionPop:
		n := len(stack)
		if n == 0 {
			return stack, nil
		}
		old := stack[n-1]
		stack[n-1] = nil
		stack = stack[:n-1]
		if err := old.OnLeave(ctx); err != nil {
			return stack, err
		}
		if n > 1 {
			if err := stack[n-2].OnUnpause(ctx); err != nil {
				return stack, err
			}
		}
		return stack, nil

	case TransitionReplace:
		n := len(stack)
		if n == 0 {
			invariant("replace", "tried to replace a scene that does not exist")
		}
		next := t.scene
		old := stack[n-1]
		drawNext := next.DrawNext(ctx)
		if err := old.OnPause(ctx, drawNext); err != nil {
			return stack, err
		}
		if err := next.OnEnter(ctx); err != nil {
			return stack, err
		}
		stack[n-1] = next
		if err := old.OnLeave(ctx); err != nil {
			return stack, err
		}
		return stack, nil
	}

	return stack, nil
}
