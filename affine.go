// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

import "sync/atomic"

// onceGuard enforces the exactly-once contract: during a single run, at
// most one of onThen/onElse/onCrash may reach the user's callbacks. An
// atomic.Uintptr compare-via-Add claim, not a mutex, guards a triple of
// callbacks sharing one flag instead of a single resume function.
type onceGuard struct {
	fired atomic.Uintptr
}

// claim returns true the first time it is called, false on every
// subsequent call. Safe for concurrent use.
func (g *onceGuard) claim() bool {
	return g.fired.Add(1) == 1
}

// fire calls f() if this is the first claim, otherwise panics: a second
// notification on the same run is a programming error, not a value to
// propagate.
func (g *onceGuard) fire(f func()) {
	if !g.claim() {
		panic("tricont: observer notified more than once for a single run")
	}
	f()
}
