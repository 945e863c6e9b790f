package scene

import "fmt"

// InvariantError is the panic value used when the stack is driven in a way
// that can only be a caller bug, such as replacing the top of an empty stack.
// Callback failures are never reported this way; they are returned as is.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("scene: %s: %s", e.Op, e.Msg)
}

func invariant(op, msg string) {
	panic(&InvariantError{Op: op, Msg: msg})
}
