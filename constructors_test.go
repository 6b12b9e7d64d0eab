// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tricont"
)

func TestOfDeliversThen(t *testing.T) {
	var got int
	tricont.Run(tricont.Of[struct{}, string, int](5), struct{}{}, tricont.RunCallbacks[string, int]{
		OnThen: func(a int) { got = a },
	})
	require.Equal(t, 5, got)
}

func TestErrDeliversElse(t *testing.T) {
	var got string
	tricont.Run(tricont.Err[struct{}, string, int]("nope"), struct{}{}, tricont.RunCallbacks[string, int]{
		OnElse: func(f string) { got = f },
	})
	require.Equal(t, "nope", got)
}

func TestCrashCDeliversCrash(t *testing.T) {
	var got bool
	tricont.Run(tricont.CrashC[struct{}, string, int](tricont.CrashNormal("boom")), struct{}{}, tricont.RunCallbacks[string, int]{
		OnCrash: func(c tricont.ContCrash) { got = true },
	})
	require.True(t, got)
}

func TestFromDeferredBuildsLazily(t *testing.T) {
	var built bool
	c := tricont.FromDeferred(func() tricont.Continuation[struct{}, string, int] {
		built = true
		return tricont.Of[struct{}, string, int](9)
	})
	require.False(t, built)

	var got int
	tricont.Run(c, struct{}{}, tricont.RunCallbacks[string, int]{OnThen: func(a int) { got = a }})
	require.True(t, built)
	require.Equal(t, 9, got)
}

func TestFromDeferredPanicBecomesCrash(t *testing.T) {
	c := tricont.FromDeferred(func() tricont.Continuation[struct{}, string, int] {
		panic("build failed")
	})
	var gotCrash bool
	tricont.Run(c, struct{}{}, tricont.RunCallbacks[string, int]{
		OnCrash: func(cr tricont.ContCrash) { gotCrash = true },
	})
	require.True(t, gotCrash)
}

func TestAskReadsEnvironment(t *testing.T) {
	var got string
	tricont.Run(tricont.Ask[string, int](), "hello-env", tricont.RunCallbacks[int, string]{
		OnThen: func(s string) { got = s },
	})
	require.Equal(t, "hello-env", got)
}
