// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tricont"
)

type env struct{}

func runThen[A any](t *testing.T, c tricont.Continuation[env, string, A]) (A, string, bool, bool) {
	t.Helper()
	var then A
	var els string
	var gotThen, gotElse bool
	tricont.Run(c, env{}, tricont.RunCallbacks[string, A]{
		OnThen: func(a A) { then = a; gotThen = true },
		OnElse: func(f string) { els = f; gotElse = true },
	})
	return then, els, gotThen, gotElse
}

func TestThenDoChainsAndPreservesElse(t *testing.T) {
	ok := tricont.ThenDo(tricont.Of[env, string, int](2), func(a int) tricont.Continuation[env, string, int] {
		return tricont.Of[env, string, int](a * 10)
	})
	then, _, gotThen, _ := runThen(t, ok)
	require.True(t, gotThen)
	require.Equal(t, 20, then)

	short := tricont.ThenDo(tricont.Err[env, string, int]("boom"), func(a int) tricont.Continuation[env, string, int] {
		t.Fatal("f must not run when original is Else")
		return tricont.Of[env, string, int](a)
	})
	_, els, _, gotElse := runThen(t, short)
	require.True(t, gotElse)
	require.Equal(t, "boom", els)
}

func TestThenMapTransformsPayload(t *testing.T) {
	c := tricont.ThenMap(tricont.Of[env, string, int](3), func(a int) string {
		return "n=3"
	})
	then, _, gotThen, _ := runThen(t, c)
	require.True(t, gotThen)
	require.Equal(t, "n=3", then)
}

func TestThenTapReplacesOnSuccessAndWinsOnFailure(t *testing.T) {
	replaced := tricont.ThenTap(tricont.Of[env, string, int](1), func(a int) tricont.Continuation[env, string, int] {
		return tricont.Of[env, string, int](a + 100)
	})
	then, _, gotThen, _ := runThen(t, replaced)
	require.True(t, gotThen)
	require.Equal(t, 101, then)

	overridden := tricont.ThenTap(tricont.Of[env, string, int](1), func(a int) tricont.Continuation[env, string, int] {
		return tricont.Err[env, string, int]("side effect failed")
	})
	_, els, _, gotElse := runThen(t, overridden)
	require.True(t, gotElse)
	require.Equal(t, "side effect failed", els)
}

func TestThenForkDeliversPrimaryImmediatelyAndRoutesSideEffect(t *testing.T) {
	var sideResult int
	c := tricont.ThenFork(tricont.Of[env, string, int](5), func(a int) tricont.Continuation[env, string, int] {
		return tricont.Of[env, string, int](a * 2)
	}, tricont.ForkSinks[string, int]{OnThen: func(s int) { sideResult = s }})

	then, _, gotThen, _ := runThen(t, c)
	require.True(t, gotThen)
	require.Equal(t, 5, then)
	require.Equal(t, 10, sideResult)
}

func TestThenForkBuildPanicCrashesPrimary(t *testing.T) {
	c := tricont.ThenFork(tricont.Of[env, string, int](5), func(int) tricont.Continuation[env, string, int] {
		panic("cannot build side effect")
	}, tricont.ForkSinks[string, int]{})

	var gotCrash bool
	var gotThen bool
	tricont.Run(c, env{}, tricont.RunCallbacks[string, int]{
		OnThen:  func(int) { gotThen = true },
		OnCrash: func(tricont.ContCrash) { gotCrash = true },
	})
	require.True(t, gotCrash)
	require.False(t, gotThen)
}

func TestThenIfAndUnless(t *testing.T) {
	positive := tricont.ThenIf(tricont.Of[env, string, int](5), func(a int) bool { return a > 0 }, 1000)
	then, _, _, _ := runThen(t, positive)
	require.Equal(t, 1000, then)

	negative := tricont.ThenIf(tricont.Of[env, string, int](-5), func(a int) bool { return a > 0 }, 1000)
	then2, _, _, _ := runThen(t, negative)
	require.Equal(t, -5, then2)

	unless := tricont.ThenUnless(tricont.Of[env, string, int](-5), func(a int) bool { return a > 0 }, -1)
	then3, _, _, _ := runThen(t, unless)
	require.Equal(t, -1, then3)
}

func TestThenZipMergesOnMatchingChannelAndFailsOtherwise(t *testing.T) {
	merged := tricont.ThenZip(tricont.Of[env, string, int](2), func(a int) tricont.Continuation[env, string, int] {
		return tricont.Of[env, string, int](a + 3)
	}, func(a, b int) int { return a + b })
	then, _, _, _ := runThen(t, merged)
	require.Equal(t, 7, then)

	failed := tricont.ThenZip(tricont.Of[env, string, int](2), func(int) tricont.Continuation[env, string, int] {
		return tricont.Err[env, string, int]("fallback failed")
	}, func(a, b int) int { return a + b })
	_, els, _, gotElse := runThen(t, failed)
	require.True(t, gotElse)
	require.Equal(t, "fallback failed", els)
}

func TestThenDemoteConvertsSuccessToElse(t *testing.T) {
	c := tricont.ThenDemote(tricont.Of[env, string, int](7), func(a int) string {
		return "rejected:7"
	})
	_, els, _, gotElse := runThen(t, c)
	require.True(t, gotElse)
	require.Equal(t, "rejected:7", els)
}
