package gamestate

import "github.com/rotisserie/eris"

// ErrSingletonNotFound is returned when a singleton is read before anything
// installed it. Per-entity reads degrade to a miss instead; singletons are
// the one read path that fails loudly.
var ErrSingletonNotFound = eris.New("singleton not found")
