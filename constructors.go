// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Of lifts a pure success value: running it immediately invokes onThen.
func Of[E, F, A any](a A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		if rt.IsCancelled() {
			return
		}
		obs.notifyThen(a)
	})
}

// Err lifts an expected, business-level failure: running it immediately
// invokes onElse.
func Err[E, F, A any](f F) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		if rt.IsCancelled() {
			return
		}
		obs.notifyElse(f)
	})
}

// CrashC lifts a crash outcome directly: running it immediately invokes
// onCrash. Named CrashC (not Crash) to avoid colliding with the
// Outcome-level CrashOutcome/Match vocabulary in error.go.
func CrashC[E, F, A any](c ContCrash) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		if rt.IsCancelled() {
			return
		}
		obs.notifyCrash(c)
	})
}

// FromDeferred invokes thunk() at run time to produce a continuation,
// then delegates to it. If thunk panics, the panic becomes a Crash of
// the continuation being built, not of whatever partial state thunk
// left behind.
func FromDeferred[E, F, A any](thunk func() Continuation[E, F, A]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		if rt.IsCancelled() {
			return
		}
		next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, thunk)
		if !ok {
			return
		}
		next.run(rt, obs)
	})
}

// Ask reads the environment from the runtime and delivers it on the
// success channel.
func Ask[E, F any]() Continuation[E, F, E] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, E]) {
		if rt.IsCancelled() {
			return
		}
		obs.notifyThen(rt.Env())
	})
}

// CancelSelf cancels the run's token and delivers nothing at all: no
// Then, no Else, no Crash. A continuation built with ThenDo/ElseDo/etc.
// that reaches CancelSelf mid-chain causes every subsequent
// cancellation check — the next loop iteration, the next combinator's
// leaf — to silently stop.
func CancelSelf[E, F, A any]() Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		rt.Token().Cancel()
	})
}
