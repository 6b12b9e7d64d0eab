// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Sequential combinators on the expected-failure (else) channel. Mirror
// of then.go: each function intercepts only Else, leaving Then and
// Crash untouched.

// ElseDo is the monadic bind on the else channel: when c lands on Else
// with value fv, runs f(fv) and delegates its outcome. The result's
// success type is unchanged (A), since f cannot turn a failure into a
// differently-typed success value without also changing what the
// overall continuation's Then payload means; ElseRecover/Promote exist
// for pure-function recovery into A.
func ElseDo[E, F, A, G any](c Continuation[E, F, A], f func(F) Continuation[E, G, A]) Continuation[E, G, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[G, A]) {
		c.run(rt, NewObserver(
			func(a A) { obs.notifyThen(a) },
			func(fv F) {
				if rt.IsCancelled() {
					return
				}
				next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, G, A] { return f(fv) })
				if !ok {
					return
				}
				next.run(rt, obs)
			},
			func(cr ContCrash) { obs.notifyCrash(cr) },
			obs.onPanic,
		))
	})
}

// ElseDo0 ignores the failure payload.
func ElseDo0[E, F, A, G any](c Continuation[E, F, A], thunk func() Continuation[E, G, A]) Continuation[E, G, A] {
	return ElseDo(c, func(F) Continuation[E, G, A] { return thunk() })
}

// ElseDoWithEnv is ElseDo with the environment also passed to f.
func ElseDoWithEnv[E, F, A, G any](c Continuation[E, F, A], f func(E, F) Continuation[E, G, A]) Continuation[E, G, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[G, A]) {
		ElseDo(c, func(fv F) Continuation[E, G, A] { return f(rt.Env(), fv) }).run(rt, obs)
	})
}

// ElseDoWithEnv0 ignores the failure payload.
func ElseDoWithEnv0[E, F, A, G any](c Continuation[E, F, A], f func(E) Continuation[E, G, A]) Continuation[E, G, A] {
	return ElseDoWithEnv(c, func(e E, _ F) Continuation[E, G, A] { return f(e) })
}

// ElseMap transforms the failure payload in place; Then/Crash pass
// through unchanged.
func ElseMap[E, F, A, G any](c Continuation[E, F, A], f func(F) G) Continuation[E, G, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[G, A]) {
		c.run(rt, NewObserver(
			func(a A) { obs.notifyThen(a) },
			func(fv F) {
				if rt.IsCancelled() {
					return
				}
				g, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() G { return f(fv) })
				if !ok {
					return
				}
				obs.notifyElse(g)
			},
			func(cr ContCrash) { obs.notifyCrash(cr) },
			obs.onPanic,
		))
	})
}

// ElseMap0 ignores the failure payload.
func ElseMap0[E, F, A, G any](c Continuation[E, F, A], f func() G) Continuation[E, G, A] {
	return ElseMap(c, func(F) G { return f() })
}

// ElseMapTo replaces the failure payload with a constant.
func ElseMapTo[E, F, A, G any](c Continuation[E, F, A], g G) Continuation[E, G, A] {
	return ElseMap(c, func(F) G { return g })
}

// ElseTap runs f(fv) for its side effect. If f's continuation lands on
// Then, its value replaces the original failure (the replacement type
// must be F, the same as the original payload, since the overall
// outcome stays on the else channel). If it lands on Else too — "fails
// on the same channel" — the original failure is preserved. If it lands
// on Crash — "a different channel" — the crash wins.
func ElseTap[E, F, A any](c Continuation[E, F, A], f func(F) Continuation[E, F, F]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnElse(func(origF F) {
			if rt.IsCancelled() {
				return
			}
			side, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, F] { return f(origF) })
			if !ok {
				return
			}
			side.run(rt, NewObserver(
				func(replaced F) { obs.notifyElse(replaced) },
				func(F) { obs.notifyElse(origF) },
				func(cr ContCrash) { obs.notifyCrash(cr) },
				obs.onPanic,
			))
		}))
	})
}

// ElseTap0 ignores the failure payload.
func ElseTap0[E, F, A any](c Continuation[E, F, A], thunk func() Continuation[E, F, F]) Continuation[E, F, A] {
	return ElseTap(c, func(F) Continuation[E, F, F] { return thunk() })
}

// ElseTapWithEnv is ElseTap with the environment also passed to f.
func ElseTapWithEnv[E, F, A any](c Continuation[E, F, A], f func(E, F) Continuation[E, F, F]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ElseTap(c, func(fv F) Continuation[E, F, F] { return f(rt.Env(), fv) }).run(rt, obs)
	})
}

// ElseTapWithEnv0 ignores the failure payload.
func ElseTapWithEnv0[E, F, A any](c Continuation[E, F, A], f func(E) Continuation[E, F, F]) Continuation[E, F, A] {
	return ElseTapWithEnv(c, func(e E, _ F) Continuation[E, F, F] { return f(e) })
}

// ElseFork starts f(fv) as a fire-and-forget side effect alongside the
// original failure: the primary Else(fv) is delivered immediately and
// the side effect's own outcome is routed to sinks. See ThenFork for the
// building-panic-crashes-the-primary rule.
func ElseFork[E, F, A, S any](c Continuation[E, F, A], f func(F) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnElse(func(fv F) {
			if rt.IsCancelled() {
				return
			}
			side, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, S] { return f(fv) })
			if !ok {
				return
			}
			obs.notifyElse(fv)
			side.run(rt, NewObserver(sinks.OnThen, sinks.OnElse, sinks.OnCrash, sinks.OnPanic))
		}))
	})
}

// ElseFork0 ignores the failure payload.
func ElseFork0[E, F, A, S any](c Continuation[E, F, A], thunk func() Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return ElseFork(c, func(F) Continuation[E, F, S] { return thunk() }, sinks)
}

// ElseForkWithEnv is ElseFork with the environment also passed to f.
func ElseForkWithEnv[E, F, A, S any](c Continuation[E, F, A], f func(E, F) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ElseFork(c, func(fv F) Continuation[E, F, S] { return f(rt.Env(), fv) }, sinks).run(rt, obs)
	})
}

// ElseForkWithEnv0 ignores the failure payload.
func ElseForkWithEnv0[E, F, A, S any](c Continuation[E, F, A], f func(E) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return ElseForkWithEnv(c, func(e E, _ F) Continuation[E, F, S] { return f(e) }, sinks)
}

// ElseIf conditionally promotes a failure to success: if pred(fv) holds,
// the outcome becomes Then(value); otherwise the original Else is kept.
func ElseIf[E, F, A any](c Continuation[E, F, A], pred func(F) bool, value A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnElse(func(fv F) {
			if rt.IsCancelled() {
				return
			}
			hold, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() bool { return pred(fv) })
			if !ok {
				return
			}
			if hold {
				obs.notifyThen(value)
				return
			}
			obs.notifyElse(fv)
		}))
	})
}

// ElseIf0 applies a predicate that ignores the payload.
func ElseIf0[E, F, A any](c Continuation[E, F, A], pred func() bool, value A) Continuation[E, F, A] {
	return ElseIf(c, func(F) bool { return pred() }, value)
}

// ElseIfWithEnv is ElseIf with the environment also passed to pred.
func ElseIfWithEnv[E, F, A any](c Continuation[E, F, A], pred func(E, F) bool, value A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ElseIf(c, func(fv F) bool { return pred(rt.Env(), fv) }, value).run(rt, obs)
	})
}

// ElseIfWithEnv0 applies a predicate that only reads the environment.
func ElseIfWithEnv0[E, F, A any](c Continuation[E, F, A], pred func(E) bool, value A) Continuation[E, F, A] {
	return ElseIfWithEnv(c, func(e E, _ F) bool { return pred(e) }, value)
}

// ElseUnless is ElseIf's mirror: promotes to Then(fallback) unless
// pred(fv) holds.
func ElseUnless[E, F, A any](c Continuation[E, F, A], pred func(F) bool, fallback A) Continuation[E, F, A] {
	return ElseIf(c, func(fv F) bool { return !pred(fv) }, fallback)
}

// ElseUnless0 applies a predicate that ignores the payload.
func ElseUnless0[E, F, A any](c Continuation[E, F, A], pred func() bool, fallback A) Continuation[E, F, A] {
	return ElseUnless(c, func(F) bool { return pred() }, fallback)
}

// ElseUnlessWithEnv is ElseUnless with the environment also passed to pred.
func ElseUnlessWithEnv[E, F, A any](c Continuation[E, F, A], pred func(E, F) bool, fallback A) Continuation[E, F, A] {
	return ElseIfWithEnv(c, func(e E, fv F) bool { return !pred(e, fv) }, fallback)
}

// ElseUnlessWithEnv0 applies a predicate that only reads the environment.
func ElseUnlessWithEnv0[E, F, A any](c Continuation[E, F, A], pred func(E) bool, fallback A) Continuation[E, F, A] {
	return ElseUnlessWithEnv(c, func(e E, _ F) bool { return pred(e) }, fallback)
}

// ElseZip runs a fallback alongside c's failure value: if the fallback
// also lands on Else, the two payloads are merged via combine; if it
// lands on Then or Crash, that outcome wins outright.
func ElseZip[E, F, A any](c Continuation[E, F, A], fallback func(F) Continuation[E, F, A], combine func(F, F) F) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnElse(func(fv F) {
			if rt.IsCancelled() {
				return
			}
			fb, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return fallback(fv) })
			if !ok {
				return
			}
			fb.run(rt, obs.WithOnElse(func(fv2 F) {
				merged, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() F { return combine(fv, fv2) })
				if !ok {
					return
				}
				obs.notifyElse(merged)
			}))
		}))
	})
}

// ElseZip0 runs a fallback that ignores the payload.
func ElseZip0[E, F, A any](c Continuation[E, F, A], fallback func() Continuation[E, F, A], combine func(F, F) F) Continuation[E, F, A] {
	return ElseZip(c, func(F) Continuation[E, F, A] { return fallback() }, combine)
}

// ElseZipWithEnv is ElseZip with the environment also passed to fallback.
func ElseZipWithEnv[E, F, A any](c Continuation[E, F, A], fallback func(E, F) Continuation[E, F, A], combine func(F, F) F) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		ElseZip(c, func(fv F) Continuation[E, F, A] { return fallback(rt.Env(), fv) }, combine).run(rt, obs)
	})
}

// ElseZipWithEnv0 runs a fallback that only reads the environment.
func ElseZipWithEnv0[E, F, A any](c Continuation[E, F, A], fallback func(E) Continuation[E, F, A], combine func(F, F) F) Continuation[E, F, A] {
	return ElseZipWithEnv(c, func(e E, _ F) Continuation[E, F, A] { return fallback(e) }, combine)
}

// ElseRecover converts an expected failure into success via a pure
// function. Equivalent to ElseDo(c, func(fv F) Continuation[E,F,A] { return Of(f(fv)) }).
func ElseRecover[E, F, A any](c Continuation[E, F, A], f func(F) A) Continuation[E, F, A] {
	return ElseDo(c, func(fv F) Continuation[E, F, A] {
		return Of[E, F, A](f(fv))
	})
}

// Promote is ElseRecover under the name used at call sites that read as
// "promote the error to a value" (see the recover-then-demote scenario).
func Promote[E, F, A any](c Continuation[E, F, A], f func(F) A) Continuation[E, F, A] {
	return ElseRecover(c, f)
}
