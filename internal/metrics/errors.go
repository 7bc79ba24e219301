package metrics

import "errors"

// ErrExportFailed wraps textfile export failures.
var ErrExportFailed = errors.New("metrics export failed")
