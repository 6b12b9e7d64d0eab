// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tricont"
)

func TestWidenThenPreservesElseAndCrash(t *testing.T) {
	neverThen := tricont.Err[struct{}, string, tricont.Never]("business error")
	widened := tricont.WidenThen[struct{}, string, int](neverThen)

	var got string
	tricont.Run(widened, struct{}{}, tricont.RunCallbacks[string, int]{OnElse: func(f string) { got = f }})
	require.Equal(t, "business error", got)

	crashed := tricont.WidenThen[struct{}, string, int](tricont.CrashC[struct{}, string, tricont.Never](tricont.CrashNormal("boom")))
	var gotCrash bool
	tricont.Run(crashed, struct{}{}, tricont.RunCallbacks[string, int]{OnCrash: func(tricont.ContCrash) { gotCrash = true }})
	require.True(t, gotCrash)
}

func TestWidenElsePreservesThenAndCrash(t *testing.T) {
	neverElse := tricont.Of[struct{}, tricont.Never, int](99)
	widened := tricont.WidenElse[struct{}, string, int](neverElse)

	var got int
	tricont.Run(widened, struct{}{}, tricont.RunCallbacks[string, int]{OnThen: func(a int) { got = a }})
	require.Equal(t, 99, got)

	crashed := tricont.WidenElse[struct{}, string, int](tricont.CrashC[struct{}, tricont.Never, int](tricont.CrashNormal("boom")))
	var gotCrash bool
	tricont.Run(crashed, struct{}{}, tricont.RunCallbacks[string, int]{OnCrash: func(tricont.ContCrash) { gotCrash = true }})
	require.True(t, gotCrash)
}
