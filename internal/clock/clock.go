package clock

import "time"

// NowFunc returns the wall-clock time stamped on processes and trace events.
// Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
