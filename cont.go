// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Runner is the function a [Continuation] wraps: given a [*Runtime] and
// an [Observer], it must eventually invoke the observer exactly once
// (or, if the runtime is cancelled, not at all). It is a plain closure,
// not an interface hierarchy, widened from a single success callback to
// the four-callback Observer the three-channel outcome algebra needs.
type Runner[E, F, A any] func(rt *Runtime[E], obs Observer[F, A])

// Continuation represents a suspended computation parameterized over an
// environment E, an expected-error type F, and a success type A. It is
// a pure descriptor — building one has no side effects — and it is
// restartable: [Run] may invoke it any number of times, and each run is
// independent.
type Continuation[E, F, A any] struct {
	run Runner[E, F, A]
}

// FromRun wraps a runner closure directly. This is the primitive
// constructor every other constructor and combinator is built from.
func FromRun[E, F, A any](r Runner[E, F, A]) Continuation[E, F, A] {
	return Continuation[E, F, A]{run: r}
}

// protect invokes f and, if it panics, converts the panic into a Crash
// delivered to onCrash instead of letting it escape. Returns the zero
// value and false when recovery fired. This is the sole seam between
// user-supplied functions passed to combinators and the crash channel;
// panics inside an Observer's own callbacks are handled separately (see
// notifyGuarded in observer.go) and become Panic, not Crash.
func protect[T any](onCrash func(ContCrash), f func() T) (result T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			var zero T
			result = zero
			onCrash(CrashFromRecover(r))
		}
	}()
	result = f()
	ok = true
	return
}

// protect0 is protect's no-result variant, for side-effecting callbacks
// that return nothing. Tap and Fork bodies return a Continuation and go
// through protect itself.
func protect0(onCrash func(ContCrash), f func()) (ok bool) {
	_, ok = protect(onCrash, func() struct{} {
		f()
		return struct{}{}
	})
	return ok
}
