package scene

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Option configures a Manager.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used to trace applied transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Manager owns the scene stack and the shared context and drives them once
// per frame.
//
// Manager is not safe for concurrent use. The host calls exactly one of
// OnUpdate or OnEvent at a time from its frame loop.
type Manager[C any] struct {
	scenes []Scene[C]
	// Reused between frames; always empty outside OnUpdate and OnEvent.
	operations []Transition[C]
	ctx        C
	log        zerolog.Logger
}

// New creates a Manager with an empty stack and the given context.
func New[C any](ctx C, opts ...Option) *Manager[C] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[C]{
		ctx: ctx,
		log: o.logger,
	}
}

// Context returns the shared context passed to every scene.
func (m *Manager[C]) Context() *C {
	return &m.ctx
}

// Len returns the number of scenes on the stack.
func (m *Manager[C]) Len() int {
	return len(m.scenes)
}

// Top returns the active scene, or nil if the stack is empty.
func (m *Manager[C]) Top() Scene[C] {
	if len(m.scenes) == 0 {
		return nil
	}
	return m.scenes[len(m.scenes)-1]
}

// Visible returns the scenes processed by a frame walk, ordered bottom to
// top so a renderer can paint them in order.
func (m *Manager[C]) Visible() []Scene[C] {
	first := m.firstVisible()
	if first < 0 {
		return nil
	}
	out := make([]Scene[C], len(m.scenes)-first)
	copy(out, m.scenes[first:])
	return out
}

// EachVisible calls fn for every scene Visible would return, in the same
// order, without allocating.
func (m *Manager[C]) EachVisible(fn func(Scene[C])) {
	first := m.firstVisible()
	if first < 0 {
		return
	}
	for _, s := range m.scenes[first:] {
		fn(s)
	}
}

// firstVisible returns the index of the lowest scene reached by a frame
// walk, or -1 for an empty stack.
func (m *Manager[C]) firstVisible() int {
	first := len(m.scenes) - 1
	for first > 0 && m.scenes[first].DrawNext(&m.ctx) {
		first--
	}
	return first
}

// Apply performs t on the stack immediately.
func (m *Manager[C]) Apply(t Transition[C]) error {
	if t.kind == TransitionNone {
		return nil
	}
	var err error
	m.scenes, err = t.applyTo(m.scenes, &m.ctx)
	if err != nil {
		return err
	}
	ev := m.log.Debug().
		Stringer("transition", t.kind).
		Int("depth", len(m.scenes))
	if t.scene != nil {
		ev = ev.Str("scene", sceneName(t.scene))
	}
	ev.Msg("transition applied")
	return nil
}

// Push enters s and puts it on top of the stack. The previous top is not
// paused; use Apply(Push(s)) for the full sequence.
func (m *Manager[C]) Push(s Scene[C]) error {
	if s == nil {
		invariant("push", "nil scene")
	}
	if err := s.OnEnter(&m.ctx); err != nil {
		return err
	}
	m.scenes = append(m.scenes, s)
	return nil
}

// Pop removes the top scene, calls its OnLeave and hands it back.
// It returns nil when the stack is already empty. The new top is not
// unpaused; use Apply(Pop()) for the full sequence.
func (m *Manager[C]) Pop() (Scene[C], error) {
	n := len(m.scenes)
	if n == 0 {
		return nil, nil
	}
	old := m.scenes[n-1]
	m.scenes[n-1] = nil
	m.scenes = m.scenes[:n-1]
	if err := old.OnLeave(&m.ctx); err != nil {
		return old, err
	}
	return old, nil
}

// Replace enters s, swaps it into the top slot and calls OnLeave on the
// scene it displaced, which is returned. Replace panics with an
// *InvariantError if the stack is empty.
func (m *Manager[C]) Replace(s Scene[C]) (Scene[C], error) {
	n := len(m.scenes)
	if n == 0 {
		invariant("replace", "tried to replace a scene that does not exist")
	}
	if s == nil {
		invariant("replace", "nil scene")
	}
	if err := s.OnEnter(&m.ctx); err != nil {
		return nil, err
	}
	old := m.scenes[n-1]
	m.scenes[n-1] = s
	if err := old.OnLeave(&m.ctx); err != nil {
		return old, err
	}
	return old, nil
}

// OnCreate reports whether there is anything to run.
func (m *Manager[C]) OnCreate() bool {
	return len(m.scenes) > 0
}

// OnUpdate updates the active scenes from the top down, then applies the
// transitions they requested in visit order. It returns false once the
// stack is empty.
func (m *Manager[C]) OnUpdate(elapsed float64) (bool, error) {
	defer m.resetOperations()

	for i := len(m.scenes) - 1; i >= 0; i-- {
		s := m.scenes[i]
		t, err := s.OnUpdate(&m.ctx, elapsed)
		if err != nil {
			return false, err
		}
		m.operations = append(m.operations, t)
		if !s.DrawNext(&m.ctx) {
			break
		}
	}
	if err := m.applyOperations(); err != nil {
		return false, err
	}
	return len(m.scenes) > 0, nil
}

// OnEvent offers ev to the active scenes from the top down until one
// handles it, then applies the transitions they requested in visit order.
// It reports whether any visited scene handled the event.
func (m *Manager[C]) OnEvent(ev Event) (bool, error) {
	defer m.resetOperations()

	wasHandled := false
	for i := len(m.scenes) - 1; i >= 0; i-- {
		s := m.scenes[i]
		handled, t, err := s.OnEvent(&m.ctx, ev)
		if err != nil {
			return wasHandled, err
		}
		wasHandled = wasHandled || handled
		m.operations = append(m.operations, t)
		if handled || !s.DrawNext(&m.ctx) {
			break
		}
	}
	if err := m.applyOperations(); err != nil {
		return wasHandled, err
	}
	return wasHandled, nil
}

func (m *Manager[C]) applyOperations() error {
	for _, t := range m.operations {
		if err := m.Apply(t); err != nil {
			return err
		}
	}
	return nil
}

// resetOperations empties the buffer without giving up its capacity and
// drops the scene references it held.
func (m *Manager[C]) resetOperations() {
	clear(m.operations)
	m.operations = m.operations[:0]
}

func sceneName(s any) string {
	if st, ok := s.(fmt.Stringer); ok {
		return st.String()
	}
	return fmt.Sprintf("%T", s)
}
