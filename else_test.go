// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tricont"
)

func TestElseDoRecoversOrPassesThenThrough(t *testing.T) {
	recovered := tricont.ElseDo(tricont.Err[env, string, int]("bad"), func(f string) tricont.Continuation[env, int, int] {
		return tricont.Of[env, int, int](len(f))
	})
	var got int
	tricont.Run(recovered, env{}, tricont.RunCallbacks[int, int]{OnThen: func(a int) { got = a }})
	require.Equal(t, 3, got)

	untouched := tricont.ElseDo(tricont.Of[env, string, int](42), func(f string) tricont.Continuation[env, int, int] {
		t.Fatal("f must not run when original is Then")
		return tricont.Of[env, int, int](0)
	})
	var gotThen int
	tricont.Run(untouched, env{}, tricont.RunCallbacks[int, int]{OnThen: func(a int) { gotThen = a }})
	require.Equal(t, 42, gotThen)
}

func TestElseRecoverAndPromote(t *testing.T) {
	c := tricont.ElseRecover(tricont.Err[env, string, int]("abc"), func(f string) int { return len(f) })
	var got int
	tricont.Run(c, env{}, tricont.RunCallbacks[string, int]{OnThen: func(a int) { got = a }})
	require.Equal(t, 3, got)

	p := tricont.Promote(tricont.Err[env, string, int]("abcd"), func(f string) int { return len(f) })
	var got2 int
	tricont.Run(p, env{}, tricont.RunCallbacks[string, int]{OnThen: func(a int) { got2 = a }})
	require.Equal(t, 4, got2)
}

func TestElseTapReplacePreserveAndDifferentChannelWins(t *testing.T) {
	replace := tricont.ElseTap(tricont.Err[env, string, int]("orig"), func(f string) tricont.Continuation[env, string, string] {
		return tricont.Of[env, string, string]("replaced")
	})
	var gotReplace string
	tricont.Run(replace, env{}, tricont.RunCallbacks[string, int]{OnElse: func(f string) { gotReplace = f }})
	require.Equal(t, "replaced", gotReplace)

	preserve := tricont.ElseTap(tricont.Err[env, string, int]("orig"), func(f string) tricont.Continuation[env, string, string] {
		return tricont.Err[env, string, string]("side failed, same channel")
	})
	var gotPreserve string
	tricont.Run(preserve, env{}, tricont.RunCallbacks[string, int]{OnElse: func(f string) { gotPreserve = f }})
	require.Equal(t, "orig", gotPreserve)

	crashWins := tricont.ElseTap(tricont.Err[env, string, int]("orig"), func(f string) tricont.Continuation[env, string, string] {
		return tricont.CrashC[env, string, string](tricont.CrashNormal("side crashed"))
	})
	var gotCrash bool
	tricont.Run(crashWins, env{}, tricont.RunCallbacks[string, int]{OnCrash: func(tricont.ContCrash) { gotCrash = true }})
	require.True(t, gotCrash)
}

func TestElseIfPromotesConditionally(t *testing.T) {
	promoted := tricont.ElseIf(tricont.Err[env, string, int]("retryable"), func(f string) bool { return f == "retryable" }, -1)
	var got int
	var gotThen bool
	tricont.Run(promoted, env{}, tricont.RunCallbacks[string, int]{OnThen: func(a int) { got = a; gotThen = true }})
	require.True(t, gotThen)
	require.Equal(t, -1, got)

	kept := tricont.ElseIf(tricont.Err[env, string, int]("fatal"), func(f string) bool { return f == "retryable" }, -1)
	var gotElse string
	tricont.Run(kept, env{}, tricont.RunCallbacks[string, int]{OnElse: func(f string) { gotElse = f }})
	require.Equal(t, "fatal", gotElse)
}
