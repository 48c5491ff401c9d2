package astar

import "errors"

// ErrNoPath indicates the search frontier emptied before reaching the goal.
// Callers must treat this as a recoverable condition, not a programmer
// error.
var ErrNoPath = errors.New("astar: no path found")
