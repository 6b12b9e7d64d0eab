// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Policy governs how the parallel combinators (parallel.go) reconcile
// two or more independently evaluated outcomes. This package has no
// goroutines: sides are evaluated one at a time, in a fixed
// left-to-right order, and Policy decides whether later sides still run
// once the result is decided and how disagreeing outcomes are resolved.
type Policy int

const (
	// PolicyQuitFast evaluates every side unconditionally, then delivers
	// the left-most deciding outcome (for Both/All the left-most failure,
	// for Either/Any the left-most success) outright, without
	// reconciliation.
	PolicyQuitFast Policy = iota

	// PolicySequence evaluates sides in order and stops at the first
	// deciding outcome: Both/All stop at the first failure and deliver
	// it, Either/Any stop at the first success. Later sides are never
	// run. When Either/Any exhaust every side without a success, the
	// failures are combined the same way PolicyRunAll combines them.
	PolicySequence

	// PolicyRunAll evaluates every side unconditionally and merges
	// disagreeing outcomes instead of preferring one arbitrarily:
	// multiple crashes fold into a single Merged crash tree (see
	// Merge/MergeAll), a crash alongside an Else always wins over the
	// Else (crash outranks an expected failure), and multiple Elses
	// combine via a caller-supplied combine function (falling back to
	// the left-most Else when none is supplied).
	PolicyRunAll
)

// deliverTranslated delivers a non-Then outcome of one payload type onto
// an Observer of a different payload type. Panics if out is Then, since
// a Then value cannot be translated without a combine function — callers
// must only reach this after confirming out.IsThen() is false.
func deliverTranslated[F, A, C any](obs Observer[F, C], out Outcome[F, A]) {
	switch {
	case out.IsElse():
		fv, _ := out.ElseValue()
		obs.notifyElse(fv)
	case out.IsCrash():
		cv, _ := out.CrashValue()
		obs.notifyCrash(cv)
	default:
		panic("tricont: deliverTranslated requires a non-Then outcome")
	}
}

// reconcileFail resolves two outcomes that have already been confirmed
// non-Then, per policy. combineElse may be nil, in which case the
// left-most Else wins when both sides land on Else under PolicyRunAll or
// PolicySequence. Only PolicyQuitFast keeps the left-most failure without
// folding in right — every other policy has already let both sides run
// to completion and owes right the same reconciliation as left.
func reconcileFail[F, A any](obs Observer[F, A], left, right Outcome[F, A], policy Policy, combineElse func(F, F) F) {
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
