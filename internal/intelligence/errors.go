package intelligence

import "errors"

// ErrMissingInput means the employee lacks the data a task needs, so the
// model is never asked.
var ErrMissingInput = errors.New("missing input")
