// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// RunCallbacks holds the callbacks Run dispatches to. Any nil field gets
// its documented default (no-op for OnThen/OnElse/OnCrash, rethrow for
// OnPanic) — see NewObserver.
type RunCallbacks[F, A any] struct {
	OnThen  func(A)
	OnElse  func(F)
	OnCrash func(ContCrash)
	OnPanic func(NormalCrash)
}

// Run constructs a Runtime bound to env and a fresh Observer from cb,
// invokes c's runner exactly once, and returns the cancellation token.
// Omitted callbacks receive the defaults documented on RunCallbacks.
func Run[E, F, A any](c Continuation[E, F, A], env E, cb RunCallbacks[F, A]) *CancelToken {
	rt := NewRuntime(env)
	obs := NewObserver(cb.OnThen, cb.OnElse, cb.OnCrash, cb.OnPanic)
	c.run(rt, obs)
	return rt.Token()
}
