package webmap

import "errors"

// ErrConfiguration marks caller configuration problems: a missing or
// malformed center, a missing API key or attribution, an incomplete template
// bundle, or an unknown map kind at render time. Use errors.Is to test for it;
// the wrapped error carries the detail.
var ErrConfiguration = errors.New("webmap: configuration error")
