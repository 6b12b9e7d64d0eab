// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Resource safety built on top of the three-channel protocol: an
// acquire/use/release pattern where release always runs once acquire
// has succeeded, regardless of how use ends.

// Bracket acquires a resource, runs use on it, and always runs release
// afterward — even if use lands on Else or Crash. If acquire itself
// fails, release never runs (there is nothing to release). If release
// crashes after use already crashed, the two crashes merge via Merge;
// otherwise any release failure (Else or Crash) wins over use's outcome,
// since a failed cleanup means
// the resource's final state is unknown regardless of what use reported.
func Bracket[E, F, R, A any](acquire Continuation[E, F, R], use func(R) Continuation[E, F, A], release func(R) Continuation[E, F, struct{}]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		observeSide(rt, acquire, obs.onPanic, func(acqOut Outcome[F, R]) {
			if rt.IsCancelled() {
				return
			}
			if !acqOut.IsThen() {
				deliverTranslated(obs, acqOut)
				return
			}
			r, _ := acqOut.ThenValue()

			useC, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, A] { return use(r) })
			if !ok {
				return
			}
			observeSide(rt, useC, obs.onPanic, func(useOut Outcome[F, A]) {
				if rt.IsCancelled() {
					return
				}
				relC, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, struct{}] { return release(r) })
				if !ok {
					return
				}
				observeSide(rt, relC, obs.onPanic, func(relOut Outcome[F, struct{}]) {
					if rt.IsCancelled() {
						return
					}
					if relOut.IsThen() {
						dispatch(useOut, obs)
						return
					}
					if relOut.IsCrash() && useOut.IsCrash() {
						uc, _ := useOut.CrashValue()
						rc, _ := relOut.CrashValue()
						obs.notifyCrash(Merge(uc, rc))
						return
					}
					deliverTranslated(obs, relOut)
				})
			})
		})
	})
}

// OnError runs cleanup only when body lands on Else, then re-delivers
// the original Else value regardless of what cleanup itself produced —
// unless cleanup crashes, in which case the crash wins, since an
// unexpected failure during cleanup outranks the expected failure being
// handled.
func OnError[E, F, A any](body Continuation[E, F, A], cleanup func(F) Continuation[E, F, struct{}]) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		body.run(rt, obs.WithOnElse(func(fv F) {
			if rt.IsCancelled() {
				return
			}
			cl, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() Continuation[E, F, struct{}] { return cleanup(fv) })
			if !ok {
				return
			}
			cl.run(rt, NewObserver(
				func(struct{}) { obs.notifyElse(fv) },
				func(F) { obs.notifyElse(fv) },
				func(cr ContCrash) { obs.notifyCrash(cr) },
				obs.onPanic,
			))
		}))
	})
}
