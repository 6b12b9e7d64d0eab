// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Stack-safe looping combinators. Instead of a recursive call chain —
// each iteration's continuation nested inside the previous one's
// callback, which grows the Go call stack by a constant factor per
// iteration — every loop here drives iteration from a single `for`
// statement in the combinator's own Runner. Each iteration's body runs
// and returns control to that `for` loop before the next iteration
// starts, so the call stack depth is independent of iteration count.
//
// A loop observes cancellation before each iteration and terminates
// silently (no notification at all) the moment it is observed: there is
// no "cancelled" outcome, only the absence of one.

// ThenWhile repeatedly runs body on the current success value while
// pred holds, threading body's result into the next iteration. It stops
// and delivers Then(current) as soon as pred(current) is false. If body
// lands on Else or Crash, that outcome is delivered immediately and the
// loop stops.
func ThenWhile[E, F, A any](pred func(A) bool, body func(A) Continuation[E, F, A], initial A) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		current := initial
		for {
			if rt.IsCancelled() {
				return
			}
			hold, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() bool { return pred(current) })
			if !ok {
				return
			}
			if !hold {
				obs.notifyThen(current)
				return
			}
			next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return body(current) })
			if !ok {
				return
			}
			var advanced, halted bool
			var nextVal A
			next.run(rt, NewObserver(
				func(a A) { advanced = true; nextVal = a },
				func(fv F) { halted = true; obs.notifyElse(fv) },
				func(cr ContCrash) { halted = true; obs.notifyCrash(cr) },
				obs.onPanic,
			))
			if halted || !advanced {
				return
			}
			current = nextVal
		}
	})
}

// ThenUntil is ThenWhile's mirror: loops while pred does not hold.
func ThenUntil[E, F, A any](pred func(A) bool, body func(A) Continuation[E, F, A], initial A) Continuation[E, F, A] {
	return ThenWhile(func(a A) bool { return !pred(a) }, body, initial)
}

// ThenForever loops body indefinitely, stopping only on Else, Crash, or
// cancellation. It can never itself deliver a value on the then channel,
// so its then payload is typed Never; widen it to a concrete type with
// [WidenThen] once composed with something that can actually escape.
func ThenForever[E, F, A any](body func(A) Continuation[E, F, A], initial A) Continuation[E, F, Never] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, Never]) {
		current := initial
		for {
			if rt.IsCancelled() {
				return
			}
			next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return body(current) })
			if !ok {
				return
			}
			var advanced, halted bool
			var nextVal A
			next.run(rt, NewObserver(
				func(a A) { advanced = true; nextVal = a },
				func(fv F) { halted = true; obs.notifyElse(fv) },
				func(cr ContCrash) { halted = true; obs.notifyCrash(cr) },
				obs.onPanic,
			))
			if halted || !advanced {
				return
			}
			current = nextVal
		}
	})
}

// ElseWhile repeatedly runs body on the current failure value while
// pred holds. It stops and delivers Else(current) once pred is false. A
// Then or Crash from body stops the loop and wins immediately.
func ElseWhile[E, F, A any](pred func(F) bool, body func(F) Continuation[E, F, A], fallbackThen A, initial F) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		current := initial
		for {
			if rt.IsCancelled() {
				return
			}
			hold, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() bool { return pred(current) })
			if !ok {
				return
			}
			if !hold {
				obs.notifyElse(current)
				return
			}
			next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return body(current) })
			if !ok {
				return
			}
			var advanced, halted bool
			var nextVal F
			next.run(rt, NewObserver(
				func(a A) { halted = true; obs.notifyThen(a) },
				func(fv F) { advanced = true; nextVal = fv },
				func(cr ContCrash) { halted = true; obs.notifyCrash(cr) },
				obs.onPanic,
			))
			if halted || !advanced {
				return
			}
			current = nextVal
		}
	})
}

// ElseUntil is ElseWhile's mirror: loops while pred does not hold.
func ElseUntil[E, F, A any](pred func(F) bool, body func(F) Continuation[E, F, A], fallbackThen A, initial F) Continuation[E, F, A] {
	return ElseWhile(func(fv F) bool { return !pred(fv) }, body, fallbackThen, initial)
}

// ElseForever loops body indefinitely, stopping only on Then, Crash, or
// cancellation. It can never itself deliver a value on the else channel,
// so its else payload is typed Never; widen it to a concrete type with
// [WidenElse] once composed with something that can actually escape.
func ElseForever[E, F, A any](body func(F) Continuation[E, F, A], initial F) Continuation[E, Never, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[Never, A]) {
		current := initial
		for {
			if rt.IsCancelled() {
				return
			}
			next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return body(current) })
			if !ok {
				return
			}
			var advanced, halted bool
			var nextVal F
			next.run(rt, NewObserver(
				func(a A) { halted = true; obs.notifyThen(a) },
				func(fv F) { advanced = true; nextVal = fv },
				func(cr ContCrash) { halted = true; obs.notifyCrash(cr) },
				obs.onPanic,
			))
			if halted || !advanced {
				return
			}
			current = nextVal
		}
	})
}

// CrashWhile repeatedly runs body on the current crash value while pred
// holds. It stops and delivers Crash(current) once pred is false. A Then
// or Else from body stops the loop and wins immediately.
func CrashWhile[E, F, A any](pred func(ContCrash) bool, body func(ContCrash) Continuation[E, F, A], fallbackThen A, initial ContCrash) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		current := initial
		for {
			if rt.IsCancelled() {
				return
			}
			hold, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() bool { return pred(current) })
			if !ok {
				return
			}
			if !hold {
				obs.notifyCrash(current)
				return
			}
			next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return body(current) })
			if !ok {
				return
			}
			var advanced, halted bool
			var nextVal ContCrash
			next.run(rt, NewObserver(
				func(a A) { halted = true; obs.notifyThen(a) },
				func(fv F) { halted = true; obs.notifyElse(fv) },
				func(cr ContCrash) { advanced = true; nextVal = cr },
				obs.onPanic,
			))
			if halted || !advanced {
				return
			}
			current = nextVal
		}
	})
}

// CrashUntil is CrashWhile's mirror: loops while pred does not hold.
func CrashUntil[E, F, A any](pred func(ContCrash) bool, body func(ContCrash) Continuation[E, F, A], fallbackThen A, initial ContCrash) Continuation[E, F, A] {
	return CrashWhile(func(cr ContCrash) bool { return !pred(cr) }, body, fallbackThen, initial)
}

// CrashForever loops body indefinitely, stopping only on Then, Else, or
// cancellation. A crash has no user-chosen payload type to widen to
// Never — ContCrash is concrete on every channel — so unlike
// ThenForever/ElseForever this keeps A and F as its escape types. A
// Crash that body's continuation delivers feeds the next iteration; the
// only Crash this loop delivers is one from a panic while calling body.
func CrashForever[E, F, A any](body func(ContCrash) Continuation[E, F, A], fallbackThen A, initial ContCrash) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		current := initial
		for {
			if rt.IsCancelled() {
				return
			}
			next, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return body(current) })
			if !ok {
				return
			}
			var advanced, halted bool
			var nextVal ContCrash
			next.run(rt, NewObserver(
				func(a A) { halted = true; obs.notifyThen(a) },
				func(fv F) { halted = true; obs.notifyElse(fv) },
				func(cr ContCrash) { advanced = true; nextVal = cr },
				obs.onPanic,
			))
			if halted || !advanced {
				return
			}
			current = nextVal
		}
	})
}
