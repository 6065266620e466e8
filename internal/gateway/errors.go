package gateway

import "errors"

// ErrNoAnswer indicates every tier of the degradation ladder exhausted
// without producing text. Not an error to show users — the resolver
// supplies a local fallback message.
var ErrNoAnswer = errors.New("no answer from any tier")
