// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Never models an uninhabited payload type on the then or else channel.
// Its field is unexported and the type has no exported constructor, so
// no value of type Never can be built outside this package — a value-
// level approximation of an uninhabited type. Continuations typed
// Continuation[E, F, Never] on the then channel (or
// Continuation[E, Never, A] on the else channel) can never actually
// invoke the corresponding callback; [WidenThen] and [WidenElse] make
// that provable fact visible to the type system.
type Never struct{ never struct{} }

// WidenThen widens a continuation whose success channel is Never to any
// concrete success type A. At the value level this is a no-op: the
// inner continuation can never call onThen, so the installed callback
// panics defensively but is provably unreachable.
func WidenThen[E, F, A any](c Continuation[E, F, Never]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, NewObserver(
			func(Never) { panic("tricont: observed a value on a Never-typed then channel") },
			obs.onElse,
			obs.onCrash,
			obs.onPanic,
		))
	})
}

// WidenElse widens a continuation whose expected-error channel is Never
// to any concrete error type F. Mirror of WidenThen for the else
// channel.
func WidenElse[E, F, A any](c Continuation[E, Never, A]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, NewObserver(
			obs.onThen,
			func(Never) { panic("tricont: observed a value on a Never-typed else channel") },
			obs.onCrash,
			obs.onPanic,
		))
	})
}
