// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

// Observer is the sink a single run of a [Continuation] dispatches to.
// It is an immutable record: the With* helpers return a copy with one
// field replaced rather than mutating the receiver, so a combinator can
// intercept one channel while leaving the others untouched.
//
// At most one of onThen/onElse/onCrash fires during a run of the
// continuation this particular Observer value was handed to; a second
// notification is a programming error and panics via the embedded
// onceGuard. onPanic is the exception: it fires only when a user
// callback throws, and is itself never guarded against a prior
// Then/Else/Crash notification — see notifyGuarded.
type Observer[F, A any] struct {
	onThen  func(A)
	onElse  func(F)
	onCrash func(ContCrash)
	onPanic func(NormalCrash)
	guard   *onceGuard
}

// NormalCrash is the payload delivered to onPanic: a failure captured
// from a panic inside an observer callback itself.
type NormalCrash = ContError[any]

// defaultOnPanic rethrows to the host unless a custom onPanic is given.
func defaultOnPanic(c NormalCrash) {
	panic(c.Value)
}

// NewObserver builds an Observer from up to four callbacks; nil entries
// get the documented defaults (no-op for onThen/onElse/onCrash, rethrow
// for onPanic). Each call allocates a fresh guard: a fresh Observer
// value is a fresh exactly-once scope.
func NewObserver[F, A any](onThen func(A), onElse func(F), onCrash func(ContCrash), onPanic func(NormalCrash)) Observer[F, A] {
	if onThen == nil {
		onThen = func(A) {}
	}
	if onElse == nil {
		onElse = func(F) {}
	}
	if onCrash == nil {
		onCrash = func(ContCrash) {}
	}
	if onPanic == nil {
		onPanic = defaultOnPanic
	}
	return Observer[F, A]{onThen: onThen, onElse: onElse, onCrash: onCrash, onPanic: onPanic, guard: &onceGuard{}}
}

// WithOnThen returns a copy of o with onThen replaced.
func (o Observer[F, A]) WithOnThen(f func(A)) Observer[F, A] {
	o.onThen = f
	return o
}

// WithOnElse returns a copy of o with onElse replaced.
func (o Observer[F, A]) WithOnElse(f func(F)) Observer[F, A] {
	o.onElse = f
	return o
}

// WithOnCrash returns a copy of o with onCrash replaced.
func (o Observer[F, A]) WithOnCrash(f func(ContCrash)) Observer[F, A] {
	o.onCrash = f
	return o
}

// WithOnPanic returns a copy of o with onPanic replaced.
func (o Observer[F, A]) WithOnPanic(f func(NormalCrash)) Observer[F, A] {
	o.onPanic = f
	return o
}

// notifyThen delivers a to onThen, guarding exactly-once and routing any
// panic from the user callback to onPanic.
func (o Observer[F, A]) notifyThen(a A) {
	o.notifyGuarded(func() { o.onThen(a) })
}

// notifyElse delivers f to onElse, with the same guard/panic discipline.
func (o Observer[F, A]) notifyElse(f F) {
	o.notifyGuarded(func() { o.onElse(f) })
}

// notifyCrash delivers c to onCrash, with the same guard/panic discipline.
func (o Observer[F, A]) notifyCrash(c ContCrash) {
	o.notifyGuarded(func() { o.onCrash(c) })
}

// notifyGuarded enforces exactly-once and converts a panic inside the
// delivered callback into an onPanic notification. onPanic itself is
// never wrapped — a throw there is a host-level failure.
func (o Observer[F, A]) notifyGuarded(deliver func()) {
	g := o.guard
	if g == nil {
		g = &onceGuard{}
	}
	g.fire(func() {
		defer func() {
			if r := recover(); r != nil {
				o.onPanic(Capture[any](r))
			}
		}()
		deliver()
	})
}

// Outcome delivers o directly to the matching channel of this observer,
// reusing the same guard/panic discipline as notifyThen/notifyElse/
// notifyCrash. Constructors and combinators that already hold a
// computed Outcome call this instead of re-deriving the match.
func (o Observer[F, A]) Outcome(out Outcome[F, A]) {
	dispatch(out, o)
}
