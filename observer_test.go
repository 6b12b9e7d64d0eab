// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObserverDefaultsAreNoOpsExceptPanic(t *testing.T) {
	obs := NewObserver[string, int](nil, nil, nil, nil)
	require.NotPanics(t, func() { obs.notifyThen(1) })

	obs2 := NewObserver[string, int](nil, nil, nil, nil)
	require.NotPanics(t, func() { obs2.notifyElse("x") })

	obs3 := NewObserver[string, int](nil, nil, nil, nil)
	require.NotPanics(t, func() { obs3.notifyCrash(CrashNormal("boom")) })

	obs4 := NewObserver[string, int](nil, nil, nil, nil)
	require.PanicsWithValue(t, "rethrown", func() {
		obs4.notifyGuarded(func() { panic("rethrown") })
	})
}

func TestObserverExactlyOnce(t *testing.T) {
	var thenCalls int
	obs := NewObserver[string, int](func(int) { thenCalls++ }, nil, nil, nil)
	obs.notifyThen(1)
	require.PanicsWithValue(t, "tricont: observer notified more than once for a single run", func() {
		obs.notifyThen(2)
	})
	require.Equal(t, 1, thenCalls)
}

func TestObserverPanicInCallbackRoutesToOnPanic(t *testing.T) {
	var captured NormalCrash
	var gotPanic bool
	obs := NewObserver[string, int](
		func(int) { panic("inner failure") },
		nil, nil,
		func(c NormalCrash) { gotPanic = true; captured = c },
	)
	obs.notifyThen(1)
	require.True(t, gotPanic)
	require.Equal(t, "inner failure", captured.Value)
}

func TestObserverWithOnThenReplacesOnlyThatCallback(t *testing.T) {
	var elseCalls int
	base := NewObserver[string, int](nil, func(string) { elseCalls++ }, nil, nil)

	var replacedCalls int
	replaced := base.WithOnThen(func(int) { replacedCalls++ })

	replaced.notifyElse("x")
	require.Equal(t, 1, elseCalls)
	require.Equal(t, 0, replacedCalls)
}

func TestObserverOutcomeDispatchesToMatchingChannel(t *testing.T) {
	var gotElse string
	obs := NewObserver[string, int](nil, func(f string) { gotElse = f }, nil, nil)
	obs.Outcome(ElseOutcome[string, int]("nope"))
	require.Equal(t, "nope", gotElse)
}
