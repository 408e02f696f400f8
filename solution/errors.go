package solution

import "errors"

// ErrUnknownFormat is returned by Format when given an OutputFormat value other
// than FormatText or FormatJSON.
var ErrUnknownFormat = errors.New("solution: unknown format")
