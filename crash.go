// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Sequential combinators on the crash channel. Mirror of then.go/else.go:
// each function intercepts only Crash, leaving Then and Else untouched.
// Unlike Else, Crash's payload type (ContCrash) never changes across a
// single continuation's F/A — there is no CrashMap-to-a-different-type,
// since ContCrash is not parameterized.

// CrashDo is the monadic bind on the crash channel: when c lands on
// Crash with value cr, runs f(cr) and delegates its outcome.
func CrashDo[E, F, A any](c Continuation[E, F, A], f func(ContCrash) Continuation[E, F, A]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnCrash(func(cr ContCrash) {
			if rt.IsCancelled() {
				return
			}
			next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return f(cr) })
			if !ok {
				return
			}
			next.run(rt, obs)
		}))
	})
}

// CrashDo0 ignores the crash payload.
func CrashDo0[E, F, A any](c Continuation[E, F, A], thunk func() Continuation[E, F, A]) Continuation[E, F, A] {
	return CrashDo(c, func(ContCrash) Continuation[E, F, A] { return thunk() })
}

// CrashDoWithEnv is CrashDo with the environment also passed to f.
func CrashDoWithEnv[E, F, A any](c Continuation[E, F, A], f func(E, ContCrash) Continuation[E, F, A]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		CrashDo(c, func(cr ContCrash) Continuation[E, F, A] { return f(rt.Env(), cr) }).run(rt, obs)
	})
}

// CrashDoWithEnv0 ignores the crash payload.
func CrashDoWithEnv0[E, F, A any](c Continuation[E, F, A], f func(E) Continuation[E, F, A]) Continuation[E, F, A] {
	return CrashDoWithEnv(c, func(e E, _ ContCrash) Continuation[E, F, A] { return f(e) })
}

// CrashMap transforms the crash payload in place; Then/Else pass through
// unchanged.
func CrashMap[E, F, A any](c Continuation[E, F, A], f func(ContCrash) ContCrash) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnCrash(func(cr ContCrash) {
			if rt.IsCancelled() {
				return
			}
			cr2, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() ContCrash { return f(cr) })
			if !ok {
				return
			}
			obs.notifyCrash(cr2)
		}))
	})
}

// CrashMap0 ignores the crash payload.
func CrashMap0[E, F, A any](c Continuation[E, F, A], f func() ContCrash) Continuation[E, F, A] {
	return CrashMap(c, func(ContCrash) ContCrash { return f() })
}

// CrashMapTo replaces the crash payload with a constant.
func CrashMapTo[E, F, A any](c Continuation[E, F, A], cr ContCrash) Continuation[E, F, A] {
	return CrashMap(c, func(ContCrash) ContCrash { return cr })
}

// CrashTap runs f(cr) for its side effect. If f's continuation lands on
// Then, its value replaces the original crash. If it lands on Crash too
// — "fails on the same channel" — the original crash is preserved. If it
// lands on Else — "a different channel" — the else value wins.
func CrashTap[E, F, A any](c Continuation[E, F, A], f func(ContCrash) Continuation[E, F, ContCrash]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnCrash(func(origCr ContCrash) {
			if rt.IsCancelled() {
				return
			}
			side, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, ContCrash] { return f(origCr) })
			if !ok {
				return
			}
			side.run(rt, NewObserver(
				func(replaced ContCrash) { obs.notifyCrash(replaced) },
				func(fv F) { obs.notifyElse(fv) },
				func(ContCrash) { obs.notifyCrash(origCr) },
				obs.onPanic,
			))
		}))
	})
}

// CrashTap0 ignores the crash payload.
func CrashTap0[E, F, A any](c Continuation[E, F, A], thunk func() Continuation[E, F, ContCrash]) Continuation[E, F, A] {
	return CrashTap(c, func(ContCrash) Continuation[E, F, ContCrash] { return thunk() })
}

// CrashTapWithEnv is CrashTap with the environment also passed to f.
func CrashTapWithEnv[E, F, A any](c Continuation[E, F, A], f func(E, ContCrash) Continuation[E, F, ContCrash]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		CrashTap(c, func(cr ContCrash) Continuation[E, F, ContCrash] { return f(rt.Env(), cr) }).run(rt, obs)
	})
}

// CrashTapWithEnv0 ignores the crash payload.
func CrashTapWithEnv0[E, F, A any](c Continuation[E, F, A], f func(E) Continuation[E, F, ContCrash]) Continuation[E, F, A] {
	return CrashTapWithEnv(c, func(e E, _ ContCrash) Continuation[E, F, ContCrash] { return f(e) })
}

// CrashFork starts f(cr) as a fire-and-forget side effect alongside the
// original crash: the primary Crash(cr) is delivered immediately and the
// side effect's own outcome is routed to sinks.
func CrashFork[E, F, A, S any](c Continuation[E, F, A], f func(ContCrash) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnCrash(func(cr ContCrash) {
			if rt.IsCancelled() {
				return
			}
			side, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, S] { return f(cr) })
			if !ok {
				return
			}
			obs.notifyCrash(cr)
			side.run(rt, NewObserver(sinks.OnThen, sinks.OnElse, sinks.OnCrash, sinks.OnPanic))
		}))
	})
}

// CrashFork0 ignores the crash payload.
func CrashFork0[E, F, A, S any](c Continuation[E, F, A], thunk func() Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return CrashFork(c, func(ContCrash) Continuation[E, F, S] { return thunk() }, sinks)
}

// CrashForkWithEnv is CrashFork with the environment also passed to f.
func CrashForkWithEnv[E, F, A, S any](c Continuation[E, F, A], f func(E, ContCrash) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		CrashFork(c, func(cr ContCrash) Continuation[E, F, S] { return f(rt.Env(), cr) }, sinks).run(rt, obs)
	})
}

// CrashForkWithEnv0 ignores the crash payload.
func CrashForkWithEnv0[E, F, A, S any](c Continuation[E, F, A], f func(E) Continuation[E, F, S], sinks ForkSinks[F, S]) Continuation[E, F, A] {
	return CrashForkWithEnv(c, func(e E, _ ContCrash) Continuation[E, F, S] { return f(e) }, sinks)
}

// CrashIf conditionally promotes a crash to success: if pred(cr) holds,
// the outcome becomes Then(value); otherwise the original Crash is kept.
func CrashIf[E, F, A any](c Continuation[E, F, A], pred func(ContCrash) bool, value A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnCrash(func(cr ContCrash) {
			if rt.IsCancelled() {
				return
			}
			hold, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() bool { return pred(cr) })
			if !ok {
				return
			}
			if hold {
				obs.notifyThen(value)
				return
			}
			obs.notifyCrash(cr)
		}))
	})
}

// CrashIf0 applies a predicate that ignores the payload.
func CrashIf0[E, F, A any](c Continuation[E, F, A], pred func() bool, value A) Continuation[E, F, A] {
	return CrashIf(c, func(ContCrash) bool { return pred() }, value)
}

// CrashIfWithEnv is CrashIf with the environment also passed to pred.
func CrashIfWithEnv[E, F, A any](c Continuation[E, F, A], pred func(E, ContCrash) bool, value A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		CrashIf(c, func(cr ContCrash) bool { return pred(rt.Env(), cr) }, value).run(rt, obs)
	})
}

// CrashIfWithEnv0 applies a predicate that only reads the environment.
func CrashIfWithEnv0[E, F, A any](c Continuation[E, F, A], pred func(E) bool, value A) Continuation[E, F, A] {
	return CrashIfWithEnv(c, func(e E, _ ContCrash) bool { return pred(e) }, value)
}

// CrashUnless is CrashIf's mirror: promotes to Then(fallback) unless
// pred(cr) holds.
func CrashUnless[E, F, A any](c Continuation[E, F, A], pred func(ContCrash) bool, fallback A) Continuation[E, F, A] {
	return CrashIf(c, func(cr ContCrash) bool { return !pred(cr) }, fallback)
}

// CrashUnless0 applies a predicate that ignores the payload.
func CrashUnless0[E, F, A any](c Continuation[E, F, A], pred func() bool, fallback A) Continuation[E, F, A] {
	return CrashUnless(c, func(ContCrash) bool { return pred() }, fallback)
}

// CrashUnlessWithEnv is CrashUnless with the environment also passed to pred.
func CrashUnlessWithEnv[E, F, A any](c Continuation[E, F, A], pred func(E, ContCrash) bool, fallback A) Continuation[E, F, A] {
	return CrashIfWithEnv(c, func(e E, cr ContCrash) bool { return !pred(e, cr) }, fallback)
}

// CrashUnlessWithEnv0 applies a predicate that only reads the environment.
func CrashUnlessWithEnv0[E, F, A any](c Continuation[E, F, A], pred func(E) bool, fallback A) Continuation[E, F, A] {
	return CrashUnlessWithEnv(c, func(e E, _ ContCrash) bool { return pred(e) }, fallback)
}

// CrashZip runs a fallback alongside c's crash value: if the fallback
// also lands on Crash, the two are merged via combine (commonly
// MergedCrash); if it lands on Then or Else, that outcome wins outright.
func CrashZip[E, F, A any](c Continuation[E, F, A], fallback func(ContCrash) Continuation[E, F, A], combine func(ContCrash, ContCrash) ContCrash) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		c.run(rt, obs.WithOnCrash(func(cr ContCrash) {
			if rt.IsCancelled() {
				return
			}
			fb, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return fallback(cr) })
			if !ok {
				return
			}
			fb.run(rt, obs.WithOnCrash(func(cr2 ContCrash) {
				merged, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() ContCrash { return combine(cr, cr2) })
				if !ok {
					return
				}
				obs.notifyCrash(merged)
			}))
		}))
	})
}

// CrashZip0 runs a fallback that ignores the payload.
func CrashZip0[E, F, A any](c Continuation[E, F, A], fallback func() Continuation[E, F, A], combine func(ContCrash, ContCrash) ContCrash) Continuation[E, F, A] {
	return CrashZip(c, func(ContCrash) Continuation[E, F, A] { return fallback() }, combine)
}

// CrashZipWithEnv is CrashZip with the environment also passed to fallback.
func CrashZipWithEnv[E, F, A any](c Continuation[E, F, A], fallback func(E, ContCrash) Continuation[E, F, A], combine func(ContCrash, ContCrash) ContCrash) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		CrashZip(c, func(cr ContCrash) Continuation[E, F, A] { return fallback(rt.Env(), cr) }, combine).run(rt, obs)
	})
}

// CrashZipWithEnv0 runs a fallback that only reads the environment.
func CrashZipWithEnv0[E, F, A any](c Continuation[E, F, A], fallback func(E) Continuation[E, F, A], combine func(ContCrash, ContCrash) ContCrash) Continuation[E, F, A] {
	return CrashZipWithEnv(c, func(e E, _ ContCrash) Continuation[E, F, A] { return fallback(e) }, combine)
}

// CrashRecover converts a crash into success via a pure function.
// Equivalent to CrashDo(c, func(cr ContCrash) Continuation[E,F,A] { return Of(f(cr)) }).
// Recovering from Crash is categorically different from ElseRecover: a
// crash represents a failure the program did not anticipate, so use of
// CrashRecover should be rare and deliberate.
func CrashRecover[E, F, A any](c Continuation[E, F, A], f func(ContCrash) A) Continuation[E, F, A] {
	return CrashDo(c, func(cr ContCrash) Continuation[E, F, A] {
		return Of[E, F, A](f(cr))
	})
}
