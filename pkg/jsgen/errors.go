package jsgen

import "fmt"

// UnregisteredTypeError is returned when generation encounters a tag
// with no registered handler.
type UnregisteredTypeError struct {
	Tag string
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("no generator registered for tag %q", e.Tag)
}
