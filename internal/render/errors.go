package render

import "fmt"

// DrawError wraps a renderer failure for one body or star.
type DrawError struct {
	Index int
	Name  string
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("draw %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
