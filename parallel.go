// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Parallel combinators. There are no goroutines anywhere in this
// package: every "parallel" combinator here evaluates its sides
// cooperatively, in a fixed left-to-right order, inside a single
// Runner. What makes them distinct from plain sequencing (then.go's
// ThenZip and friends) is that they're expressed generically over N
// sides (All/Any) and they carry the same Policy type (policy.go)
// uniformly.

// observeSide runs c and routes its terminal outcome to done instead of
// delivering it to an outer observer directly, so the caller can inspect
// and reconcile it before deciding what — if anything — to deliver
// downstream. Unlike capturing into a local and reading it back after
// c.run returns, done is invoked exactly when the outcome actually
// arrives: a leaf that defers its notification (see [FromRun]) still
// drives the caller's continuation correctly, because nothing here reads
// the outcome except from inside done itself.
func observeSide[E, F, A any](rt *Runtime[E], c Continuation[E, F, A], onPanic func(NormalCrash), done func(Outcome[F, A])) {
	c.run(rt, NewObserver(
		func(a A) { done(Then[F, A](a)) },
		func(f F) { done(ElseOutcome[F, A](f)) },
		func(cr ContCrash) { done(CrashOutcome[F, A](cr)) },
		onPanic,
	))
}

// Merge combines two crashes into a single Merged crash tree.
func Merge(left, right ContCrash) ContCrash {
	return MergedCrash(left, right)
}

// MergeAll folds a non-empty slice of crashes into one Merged crash
// tree, left-associatively.
func MergeAll(crashes []ContCrash) ContCrash {
	if len(crashes) == 0 {
		panic("tricont: MergeAll requires at least one crash")
	}
	acc := crashes[0]
	for _, c := range crashes[1:] {
		acc = MergedCrash(acc, c)
	}
	return acc
}

// Coalesce returns the first crash found in outs, in order, and true;
// or a zero ContCrash and false if none of outs is a crash.
func Coalesce[F, A any](outs []Outcome[F, A]) (ContCrash, bool) {
	for _, o := range outs {
		if o.IsCrash() {
			cv, _ := o.CrashValue()
			return cv, true
		}
	}
	return ContCrash{}, false
}

// Both requires both sides to succeed: if they do, their values combine
// via combine; otherwise the failing side wins, or — when both sides
// fail — the failures are reconciled (combineElse may be nil to default
// to the left-most Else). Under PolicySequence, right is never evaluated
// once left has already failed — both/all stop at the first failure.
// Under PolicyQuitFast and PolicyRunAll, right always runs regardless of
// what left produced; PolicyQuitFast then delivers the left-most
// disqualifying outcome without merging, while PolicyRunAll reconciles.
func Both[E, F, A, B, C any](left Continuation[E, F, A], right Continuation[E, F, B], policy Policy, combine func(A, B) C, combineElse func(F, F) F) Continuation[E, F, C] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, C]) {
		observeSide(rt, left, obs.onPanic, func(leftOut Outcome[F, A]) {
			if rt.IsCancelled() {
				return
			}
			if policy == PolicySequence && !leftOut.IsThen() {
				deliverTranslated(obs, leftOut)
				return
			}
			observeSide(rt, right, obs.onPanic, func(rightOut Outcome[F, B]) {
				if rt.IsCancelled() {
					return
				}
				switch {
				case leftOut.IsThen() && rightOut.IsThen():
					a, _ := leftOut.ThenValue()
					b, _ := rightOut.ThenValue()
					c, ok := protect(func(cr ContCrash) { obs.notifyCrash(cr) }, func() C { return combine(a, b) })
					if !ok {
						return
					}
					obs.notifyThen(c)
				case leftOut.IsThen():
					deliverTranslated(obs, rightOut)
				case rightOut.IsThen():
					deliverTranslated(obs, leftOut)
				default:
					reconcileCrossType(obs, leftOut, rightOut, policy, combineElse)
				}
			})
		})
	})
}

// reconcileCrossType is reconcileFail generalized to two Outcome values
// whose success types differ (A vs B) — only reachable once both are
// confirmed non-Then, so the differing success types never matter.
func reconcileCrossType[F, A, B, C any](obs Observer[F, C], left Outcome[F, A], right Outcome[F, B], policy Policy, combineElse func(F, F) F) {
	if policy == PolicyQuitFast {
		deliverTranslated(obs, left)
		return
	}
	switch {
	case left.IsCrash() && right.IsCrash():
		lc, _ := left.CrashValue()
		rc, _ := right.CrashValue()
		obs.notifyCrash(Merge(lc, rc))
	case left.IsCrash():
		lc, _ := left.CrashValue()
		obs.notifyCrash(lc)
	case right.IsCrash():
		rc, _ := right.CrashValue()
		obs.notifyCrash(rc)
	default:
		lf, _ := left.ElseValue()
		if combineElse != nil {
			rf, _ := right.ElseValue()
			fv, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() F { return combineElse(lf, rf) })
			if !ok {
				return
			}
			obs.notifyElse(fv)
			return
		}
		obs.notifyElse(lf)
	}
}

// All requires every side to succeed, collecting their values in order.
// Under PolicySequence, evaluation stops at the first failure and later
// sides never run. Under PolicyQuitFast/PolicyRunAll every side always
// runs: PolicyQuitFast delivers the left-most failure outright, while
// PolicyRunAll folds every crash into one Merged tree (crash always
// outranks Else) and combines every Else via combineElse.
func All[E, F, A any](cs []Continuation[E, F, A], policy Policy, combineElse func(F, F) F) Continuation[E, F, []A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, []A]) {
		outs := make([]Outcome[F, A], len(cs))
		var step func(i int)
		step = func(i int) {
			if rt.IsCancelled() {
				return
			}
			if i == len(cs) {
				finishAll(obs, outs, policy, combineElse)
				return
			}
			observeSide(rt, cs[i], obs.onPanic, func(out Outcome[F, A]) {
				outs[i] = out
				if rt.IsCancelled() {
					return
				}
				if policy == PolicySequence && !out.IsThen() {
					deliverTranslated(obs, out)
					return
				}
				step(i + 1)
			})
		}
		step(0)
	})
}

// finishAll runs once every side of an All has been observed.
func finishAll[F, A any](obs Observer[F, []A], outs []Outcome[F, A], policy Policy, combineElse func(F, F) F) {
	values := make([]A, len(outs))
	allThen := true
	for i, o := range outs {
		if v, ok := o.ThenValue(); ok {
			values[i] = v
		} else {
			allThen = false
		}
	}
	if allThen {
		obs.notifyThen(values)
		return
	}
	// Sequence never reaches here with more than zero failures — step
	// above already short-circuited on the first one — so the sequence
	// path of deliverFold is structurally unreachable for All, but the
	// shared helper still needs a value for the parameter.
	deliverFold(obs, outs, policy, combineElse, false)
}

// deliverFold reconciles one or more failing outcomes sharing one
// payload type, per policy. combineUnderSequence distinguishes All
// (Sequence stops at the first failure — deliverFold should never
// actually reach a multi-failure fold for it) from Any (Sequence keeps
// trying every side and, once the list is exhausted without a success,
// must concatenate the accumulated failures exactly as PolicyRunAll
// would).
func deliverFold[F, A any](obs Observer[F, A], outs []Outcome[F, A], policy Policy, combineElse func(F, F) F, combineUnderSequence bool) {
	var crashes []ContCrash
	var elses []F
	firstFailIdx := -1
	for i, o := range outs {
		if o.IsThen() {
			continue
		}
		if firstFailIdx == -1 {
			firstFailIdx = i
		}
		if cv, ok := o.CrashValue(); ok {
			crashes = append(crashes, cv)
		} else if fv, ok := o.ElseValue(); ok {
			elses = append(elses, fv)
		}
	}
	pickFirst := policy == PolicyQuitFast || (policy == PolicySequence && !combineUnderSequence)
	if pickFirst {
		deliverTranslated(obs, outs[firstFailIdx])
		return
	}
	if len(crashes) > 0 {
		obs.notifyCrash(MergeAll(crashes))
		return
	}
	result := elses[0]
	if combineElse != nil {
		for _, fv := range elses[1:] {
			r, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() F { return combineElse(result, fv) })
			if !ok {
				return
			}
			result = r
		}
	}
	obs.notifyElse(result)
}

// Either returns whichever side lands on Then. Under PolicySequence it
// stops at the first success: right is only evaluated once left has
// failed, and if both fail the failures combine via combineElse exactly
// as PolicyRunAll combines them. Under PolicyQuitFast/PolicyRunAll both
// sides always run: PolicyQuitFast delivers the left-most qualifying
// outcome without merging, while PolicyRunAll combines every success
// pairwise via combineThen (when both sides succeed) and folds failures
// the same way as Sequence.
func Either[E, F, A any](left, right Continuation[E, F, A], policy Policy, combineThen func(A, A) A, combineElse func(F, F) F) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		observeSide(rt, left, obs.onPanic, func(leftOut Outcome[F, A]) {
			if rt.IsCancelled() {
				return
			}
			if policy == PolicySequence && leftOut.IsThen() {
				v, _ := leftOut.ThenValue()
				obs.notifyThen(v)
				return
			}
			observeSide(rt, right, obs.onPanic, func(rightOut Outcome[F, A]) {
				if rt.IsCancelled() {
					return
				}
				switch {
				case leftOut.IsThen() && rightOut.IsThen():
					if policy == PolicyRunAll && combineThen != nil {
						a, _ := leftOut.ThenValue()
						b, _ := rightOut.ThenValue()
						c, ok := protect(func(cr ContCrash) { obs.notifyCrash(cr) }, func() A { return combineThen(a, b) })
						if !ok {
							return
						}
						obs.notifyThen(c)
						return
					}
					v, _ := leftOut.ThenValue()
					obs.notifyThen(v)
				case leftOut.IsThen():
					v, _ := leftOut.ThenValue()
					obs.notifyThen(v)
				case rightOut.IsThen():
					v, _ := rightOut.ThenValue()
					obs.notifyThen(v)
				default:
					reconcileFail(obs, leftOut, rightOut, policy, combineElse)
				}
			})
		})
	})
}

// Any returns the first side (in order) that lands on Then. Under
// PolicySequence it stops at the first success and later sides never
// run; if every side fails, the failures combine via combineElse exactly
// as PolicyRunAll combines them. Under PolicyQuitFast/PolicyRunAll every
// side always runs: PolicyQuitFast delivers the left-most success (or,
// failing that, the left-most failure) without merging, while
// PolicyRunAll combines every success pairwise via combineThen. An empty
// cs has no side to try and delivers the zero value of F on the else
// channel — the empty error combination.
func Any[E, F, A any](cs []Continuation[E, F, A], policy Policy, combineThen func(A, A) A, combineElse func(F, F) F) Continuation[E, F, A] {
	return FromRun(func(rt *Runtime[E], obs Observer[F, A]) {
		if len(cs) == 0 {
			var zero F
			obs.notifyElse(zero)
			return
		}
		outs := make([]Outcome[F, A], len(cs))
		var step func(i int)
		step = func(i int) {
			if rt.IsCancelled() {
				return
			}
			if i == len(cs) {
				finishAny(obs, outs, policy, combineThen, combineElse)
				return
			}
			observeSide(rt, cs[i], obs.onPanic, func(out Outcome[F, A]) {
				outs[i] = out
				if rt.IsCancelled() {
					return
				}
				if policy == PolicySequence && out.IsThen() {
					v, _ := out.ThenValue()
					obs.notifyThen(v)
					return
				}
				step(i + 1)
			})
		}
		step(0)
	})
}

// finishAny runs once every side of an Any has been observed (or, under
// PolicySequence, once the list was exhausted without a success).
func finishAny[F, A any](obs Observer[F, A], outs []Outcome[F, A], policy Policy, combineThen func(A, A) A, combineElse func(F, F) F) {
	var successes []A
	firstThenIdx := -1
	for i, o := range outs {
		if v, ok := o.ThenValue(); ok {
			if firstThenIdx == -1 {
				firstThenIdx = i
			}
			successes = append(successes, v)
		}
	}
	if len(successes) == 0 {
		deliverFold(obs, outs, policy, combineElse, true)
		return
	}
	if policy == PolicyRunAll && combineThen != nil && len(successes) > 1 {
		result := successes[0]
		for _, v := range successes[1:] {
			r, ok := protect(func(c ContCrash) { obs.notifyCrash(c) }, func() A { return combineThen(result, v) })
			if !ok {
				return
			}
			result = r
		}
		obs.notifyThen(result)
		return
	}
	v, _ := outs[firstThenIdx].ThenValue()
	obs.notifyThen(v)
}
