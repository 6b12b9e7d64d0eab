// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Sequential combinators on the success (then) channel. Each function
// passes Else and Crash outcomes through unchanged and only intercepts
// Then. User callbacks run inside protect, so a panic inside one becomes
// a Crash of the surrounding continuation rather than escaping.
//
// The *0 / *WithEnv / *WithEnv0 variants are one-line wrappers over the
// base combinator (Do/Map/Tap/Fork/If/Unless/Zip), each a fused
// convenience constructor rather than its own independent algorithm.

// ThenDo is the monadic bind on the then channel: when c lands on Then
// with value a, runs f(a) and delegates its outcome.
func ThenDo[E, F, A, B any](c Continuation[E, F, A], f func(A) Continuation[E, F, B]) Continuation[E, F, B] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, B]) {
		c.run(rt, NewObserver(
			func(a A) {
				if rt.IsCancelled() {
					return
				}
				next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, B] { return f(a) })
				if !ok {
					return
				}
				next.run(rt, obs)
			},
			func(fv F) { obs.notifyElse(fv) },
			func(cr ContCrash) { obs.notifyCrash(cr) },
			obs.onPanic,
		))
	})
}

// ThenDo0 ignores the success payload.
func ThenDo0[E, F, A, B any](c Continuation[E, F, A], thunk func() Continuation[E, F, B]) Continuation[E, F, B] {
	return ThenDo(c, func(A) Continuation[E, F, B] { return thunk() })
}

// ThenDoWithEnv is ThenDo with the environment also passed to f.
func ThenDoWithEnv[E, F, A, B any](c Continuation[E, F, A], f func(E, A) Continuation[E, F, B]) Continuation[E, F, B] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, B]) {
		ThenDo(c, func(a A) Continuation[E, F, B] { return f(rt.Env(), a) }).run(rt, obs)
	})
}

// ThenDoWithEnv0 is ThenDoWithEnv ignoring the success payload.
func ThenDoWithEnv0[E, F, A, B any](c Continuation[E, F, A], f func(E) Continuation[E, F, B]) Continuation[E, F, B] {
	return ThenDoWithEnv(c, func(e E, _ A) Continuation[E, F, B] { return f(e) })
}

// ThenMap transforms the success payload in place; Else/Crash pass
// through unchanged. Equivalent to ThenDo(c, func(a A) { return Of(f(a)) }).
func ThenMap[E, F, A, B any](c Continuation[E, F, A], f func(A) B) Continuation[E, F, B] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, B]) {
		c.run(rt, NewObserver(
			func(a A) {
				if rt.IsCancelled() {
					return
				}
				b, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() B { return f(a) })
				if !ok {
					return
				}
				obs.notifyThen(b)
			},
			func(fv F) { obs.notifyElse(fv) },
			func(cr ContCrash) { obs.notifyCrash(cr) },
			obs.onPanic,
		))
	})
}

// ThenMap0 ignores the success payload.
func ThenMap0[E, F, A, B any](c Continuation[E, F, A], f func() B) Continuation[E, F, B] {
	return ThenMap(c, func(A) B { return f() })
}

// ThenMapTo replaces the success payload with a constant.
func ThenMapTo[E, F, A, B any](c Continuation[E, F, A], b B) Continuation[E, F, B] {
	return ThenMap(c, func(A) B { return b })
}

// ThenTap runs f(a) for its side effect. If f's continuation lands on
// Then, its value replaces the original success value. If it lands on
// Else or Crash — necessarily "a different channel" from Then, since
// Then itself cannot be a failure outcome — that failure wins and
// replaces the original Then. This is what distinguishes Tap from Fork:
// Tap's side effect can override the primary outcome; Fork's cannot.
func ThenTap[E, F, A any](c Continuation[E, F, A], f func(A) Continuation[E, F, A]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnThen(func(a A) {
			if rt.IsCancelled() {
				return
			}
			side, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return f(a) })
			if !ok {
				return
			}
			side.run(rt, obs)
		}))
	})
}

// ThenTap0 ignores the success payload.
func ThenTap0[E, F, A any](c Continuation[E, F, A], thunk func() Continuation[E, F, A]) Continuation[E, F, A] {
	return ThenTap(c, func(A) Continuation[E, F, A] { return thunk() })
}

// ThenTapWithEnv is ThenTap with the environment also passed to f.
func ThenTapWithEnv[E, F, A any](c Continuation[E, F, A], f func(E, A) Continuation[E, F, A]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ThenTap(c, func(a A) Continuation[E, F, A] { return f(rt.Env(), a) }).run(rt, obs)
	})
}

// ThenTapWithEnv0 ignores the success payload.
func ThenTapWithEnv0[E, F, A any](c Continuation[E, F, A], f func(E) Continuation[E, F, A]) Continuation[E, F, A] {
	return ThenTapWithEnv(c, func(e E, _ A) Continuation[E, F, A] { return f(e) })
}

// ForkSinks routes a forked side effect's own outcome. Any nil field is
// ignored, except OnPanic which still defaults to rethrow (NewObserver).
type ForkSinks[F, S any] struct {
	OnThen  func(S)
	OnElse  func(F)
	OnCrash func(ContCrash)
	OnPanic func(NormalCrash)
}

// ThenFork starts f(a) as a fire-and-forget side effect: the primary
// Then(a) is delivered immediately, before the side effect's own outcome
// is known, and the side effect's outcome is routed to sinks instead of
// affecting the primary. Building f(a) is still guarded: a panic while
// constructing the side-effect continuation crashes the primary, since
// the primary hasn't been delivered yet at that point.
func ThenFork[E, F, A, S any](c Continuation[E, F, A], f func(A) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnThen(func(a A) {
			if rt.IsCancelled() {
				return
			}
			side, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, S] { return f(a) })
			if !ok {
				return
			}
			obs.notifyThen(a)
			side.run(rt, NewObserver(sinks.OnThen, sinks.OnElse, sinks.OnCrash, sinks.OnPanic))
		}))
	})
}

// ThenFork0 ignores the success payload.
func ThenFork0[E, F, A, S any](c Continuation[E, F, A], thunk func() Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return ThenFork(c, func(A) Continuation[E, F, S] { return thunk() }, sinks)
}

// ThenForkWithEnv is ThenFork with the environment also passed to f.
func ThenForkWithEnv[E, F, A, S any](c Continuation[E, F, A], f func(E, A) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ThenFork(c, func(a A) Continuation[E, F, S] { return f(rt.Env(), a) }, sinks).run(rt, obs)
	})
}

// ThenForkWithEnv0 ignores the success payload.
func ThenForkWithEnv0[E, F, A, S any](c Continuation[E, F, A], f func(E) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return ThenForkWithEnv(c, func(e E, _ A) Continuation[E, F, S] { return f(e) }, sinks)
}

// ThenIf conditionally replaces the success payload: if pred(a) holds,
// the outcome becomes Then(value); otherwise it is left unchanged. Else
// and Crash outcomes are never touched.
func ThenIf[E, F, A any](c Continuation[E, F, A], pred func(A) bool, value A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnThen(func(a A) {
			if rt.IsCancelled() {
				return
			}
			hold, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() bool { return pred(a) })
			if !ok {
				return
			}
			if hold {
				obs.notifyThen(value)
				return
			}
			obs.notifyThen(a)
		}))
	})
}

// ThenIf0 applies a predicate that ignores the payload.
func ThenIf0[E, F, A any](c Continuation[E, F, A], pred func() bool, value A) Continuation[E, F, A] {
	return ThenIf(c, func(A) bool { return pred() }, value)
}

// ThenIfWithEnv is ThenIf with the environment also passed to pred.
func ThenIfWithEnv[E, F, A any](c Continuation[E, F, A], pred func(E, A) bool, value A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ThenIf(c, func(a A) bool { return pred(rt.Env(), a) }, value).run(rt, obs)
	})
}

// ThenIfWithEnv0 applies a predicate that only reads the environment.
func ThenIfWithEnv0[E, F, A any](c Continuation[E, F, A], pred func(E) bool, value A) Continuation[E, F, A] {
	return ThenIfWithEnv(c, func(e E, _ A) bool { return pred(e) }, value)
}

// ThenUnless is ThenIf's mirror: replaces the payload with fallback
// unless pred(a) holds.
func ThenUnless[E, F, A any](c Continuation[E, F, A], pred func(A) bool, fallback A) Continuation[E, F, A] {
	return ThenIf(c, func(a A) bool { return !pred(a) }, fallback)
}

// ThenUnless0 applies a predicate that ignores the payload.
func ThenUnless0[E, F, A any](c Continuation[E, F, A], pred func() bool, fallback A) Continuation[E, F, A] {
	return ThenUnless(c, func(A) bool { return pred() }, fallback)
}

// ThenUnlessWithEnv is ThenUnless with the environment also passed to pred.
func ThenUnlessWithEnv[E, F, A any](c Continuation[E, F, A], pred func(E, A) bool, fallback A) Continuation[E, F, A] {
	return ThenIfWithEnv(c, func(e E, a A) bool { return !pred(e, a) }, fallback)
}

// ThenUnlessWithEnv0 applies a predicate that only reads the environment.
func ThenUnlessWithEnv0[E, F, A any](c Continuation[E, F, A], pred func(E) bool, fallback A) Continuation[E, F, A] {
	return ThenUnlessWithEnv(c, func(e E, _ A) bool { return pred(e) }, fallback)
}

// ThenZip runs a fallback alongside c's success value: if the fallback
// also lands on Then, the two payloads are merged via combine; if the
// fallback lands on Else or Crash, that outcome wins outright.
func ThenZip[E, F, A any](c Continuation[E, F, A], fallback func(A) Continuation[E, F, A], combine func(A, A) A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnThen(func(a A) {
			if rt.IsCancelled() {
				return
			}
			fb, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return fallback(a) })
			if !ok {
				return
			}
			fb.run(rt, obs.WithOnThen(func(a2 A) {
				merged, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() A { return combine(a, a2) })
				if !ok {
					return
				}
				obs.notifyThen(merged)
			}))
		}))
	})
}

// ThenZip0 runs a fallback that ignores the payload.
func ThenZip0[E, F, A any](c Continuation[E, F, A], fallback func() Continuation[E, F, A], combine func(A, A) A) Continuation[E, F, A] {
	return ThenZip(c, func(A) Continuation[E, F, A] { return fallback() }, combine)
}

// ThenZipWithEnv is ThenZip with the environment also passed to fallback.
func ThenZipWithEnv[E, F, A any](c Continuation[E, F, A], fallback func(E, A) Continuation[E, F, A], combine func(A, A) A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ThenZip(c, func(a A) Continuation[E, F, A] { return fallback(rt.Env(), a) }, combine).run(rt, obs)
	})
}

// ThenZipWithEnv0 runs a fallback that only reads the environment.
func ThenZipWithEnv0[E, F, A any](c Continuation[E, F, A], fallback func(E) Continuation[E, F, A], combine func(A, A) A) Continuation[E, F, A] {
	return ThenZipWithEnv(c, func(e E, _ A) Continuation[E, F, A] { return fallback(e) }, combine)
}

// ThenDemote converts a success outcome into an expected failure via a
// pure function. Equivalent to ThenDo(c, func(a A) Continuation[E,F,A] { return Err(f(a)) }).
func ThenDemote[E, F, A any](c Continuation[E, F, A], f func(A) F) Continuation[E, F, A] {
	return ThenDo(c, func(a A) Continuation[E, F, A] {
		return Err[E, F, A](f(a))
	})
}

// ThenAbort is ThenDemote under the name used when F is instantiated to
// a collection of errors (f: A -> errors) rather than a single value;
// the implementation is identical, since F's shape is the caller's
// choice, not the combinator's.
func ThenAbort[E, F, A any](c Continuation[E, F, A], f func(A) F) Continuation[E, F, A] {
	return ThenDemote(c, f)
}
