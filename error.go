// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

import (
	"fmt"

	"github.com/pkg/errors"
)

// Outcome algebra. A terminal outcome is one of three variants carried by
// [Observer]: Then (success), Else (expected, business-level failure), or
// Crash (unexpected failure). Panic is not representable as an Outcome —
// it never flows through combinators, only through [Observer.onPanic].

// outcomeKind discriminates the tagged union below. Kept unexported: the
// only way to build or inspect an Outcome is through its constructors and
// [Outcome.Match].
type outcomeKind uint8

const (
	kindThen outcomeKind = iota
	kindElse
	kindCrash
)

// Outcome is the closed, three-way result of running a [Continuation].
// It is a tagged struct rather than an interface: this avoids a heap-
// allocated wrapper per outcome and keeps matching a plain field read
// instead of a type assertion.
type Outcome[F, A any] struct {
	kind  outcomeKind
	then  A
	elseV F
	crash ContCrash
}

// Then builds a success outcome.
func Then[F, A any](a A) Outcome[F, A] {
	return Outcome[F, A]{kind: kindThen, then: a}
}

// ElseOutcome builds an expected-failure outcome.
func ElseOutcome[F, A any](f F) Outcome[F, A] {
	return Outcome[F, A]{kind: kindElse, elseV: f}
}

// CrashOutcome builds an unexpected-failure outcome.
func CrashOutcome[F, A any](c ContCrash) Outcome[F, A] {
	return Outcome[F, A]{kind: kindCrash, crash: c}
}

// IsThen reports whether this outcome landed on the success channel.
func (o Outcome[F, A]) IsThen() bool { return o.kind == kindThen }

// IsElse reports whether this outcome landed on the expected-error channel.
func (o Outcome[F, A]) IsElse() bool { return o.kind == kindElse }

// IsCrash reports whether this outcome landed on the crash channel.
func (o Outcome[F, A]) IsCrash() bool { return o.kind == kindCrash }

// ThenValue returns the success payload and true, or zero and false.
func (o Outcome[F, A]) ThenValue() (A, bool) {
	if o.kind == kindThen {
		return o.then, true
	}
	var zero A
	return zero, false
}

// ElseValue returns the expected-error payload and true, or zero and false.
func (o Outcome[F, A]) ElseValue() (F, bool) {
	if o.kind == kindElse {
		return o.elseV, true
	}
	var zero F
	return zero, false
}

// CrashValue returns the crash payload and true, or zero and false.
func (o Outcome[F, A]) CrashValue() (ContCrash, bool) {
	if o.kind == kindCrash {
		return o.crash, true
	}
	return ContCrash{}, false
}

// Match pattern-matches on the outcome, invoking exactly one branch.
func Match[F, A, T any](o Outcome[F, A], onThen func(A) T, onElse func(F) T, onCrash func(ContCrash) T) T {
	switch o.kind {
	case kindThen:
		return onThen(o.then)
	case kindElse:
		return onElse(o.elseV)
	default:
		return onCrash(o.crash)
	}
}

// dispatch delivers o to the matching callback of obs. Used internally by
// combinators and by [Run]; not part of the public surface because
// [Observer]'s exactly-once contract is enforced by the caller.
func dispatch[F, A any](o Outcome[F, A], obs Observer[F, A]) {
	switch o.kind {
	case kindThen:
		obs.notifyThen(o.then)
	case kindElse:
		obs.notifyElse(o.elseV)
	default:
		obs.notifyCrash(o.crash)
	}
}

// ContError pairs a captured value with the stack trace present at the
// point of capture. Stack is diagnostic only. ContError defines no
// equality of its own: == compares Stack as well as Value, and every
// Capture builds a new Stack, so two captures of the same value are not
// == to each other; their Value fields are.
type ContError[F any] struct {
	Value F
	Stack error
}

// Capture builds a ContError carrying the current stack trace, using
// pkg/errors.WithStack the way dcos-go's exec and zkstore packages do to
// attach a stack to an arbitrary value at the point something goes wrong.
func Capture[F any](v F) ContError[F] {
	return ContError[F]{
		Value: v,
		Stack: errors.WithStack(fmt.Errorf("%v", v)),
	}
}

// StackTrace renders the captured stack, following pkg/errors' %+v
// convention for stack-trace-carrying errors.
func (e ContError[F]) StackTrace() string {
	if e.Stack == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.Stack)
}

// crashKind discriminates ContCrash's two shapes.
type crashKind uint8

const (
	crashNormal crashKind = iota
	crashMerged
)

// ContCrash is the payload of the crash channel: either a single captured
// failure (Normal) or the combination of two crashes accumulated by a
// RunAll-policy parallel combinator (Merged). Merged nodes preserve full
// diagnostic context instead of collapsing to the first or last crash.
type ContCrash struct {
	kind   crashKind
	normal ContError[any]
	left   *ContCrash
	right  *ContCrash
}

// CrashNormal builds a Normal crash from a recovered panic value, capturing
// its stack trace at the point of construction.
func CrashNormal(v any) ContCrash {
	return ContCrash{kind: crashNormal, normal: Capture(v)}
}

// MergedCrash combines two crashes into one Merged node.
func MergedCrash(left, right ContCrash) ContCrash {
	l, r := left, right
	return ContCrash{kind: crashMerged, left: &l, right: &r}
}

// IsNormal reports whether c is a single captured failure.
func (c ContCrash) IsNormal() bool { return c.kind == crashNormal }

// IsMerged reports whether c combines two crashes.
func (c ContCrash) IsMerged() bool { return c.kind == crashMerged }

// Normal returns the captured failure and true, or zero and false.
func (c ContCrash) Normal() (ContError[any], bool) {
	if c.kind == crashNormal {
		return c.normal, true
	}
	return ContError[any]{}, false
}

// Merged returns the two combined crashes and true, or zero and false.
func (c ContCrash) Merged() (left, right ContCrash, ok bool) {
	if c.kind == crashMerged {
		return *c.left, *c.right, true
	}
	return ContCrash{}, ContCrash{}, false
}

// Error implements the error interface so a ContCrash can be logged or
// wrapped like any other error value.
func (c ContCrash) Error() string {
	switch c.kind {
	case crashNormal:
		return fmt.Sprintf("%v", c.normal.Value)
	default:
		return fmt.Sprintf("%s; %s", c.left.Error(), c.right.Error())
	}
}

// CrashFromRecover builds a Normal crash from a value obtained from the
// builtin recover(). Shared by every combinator that wraps a
// user-supplied callback (see protect in cont.go).
func CrashFromRecover(r any) ContCrash {
	return CrashNormal(r)
}
