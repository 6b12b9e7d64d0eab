// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tricont"
)

func TestRunReturnsTokenUsableAfterCompletion(t *testing.T) {
	tok := tricont.Run(tricont.Of[struct{}, string, int](1), struct{}{}, tricont.RunCallbacks[string, int]{})
	require.NotNil(t, tok)
	require.False(t, tok.IsCancelled())
}

func TestRunDefaultOnPanicRethrows(t *testing.T) {
	require.PanicsWithValue(t, "rethrown", func() {
		tricont.Run(tricont.Of[struct{}, string, int](1), struct{}{}, tricont.RunCallbacks[string, int]{
			OnThen: func(int) { panic("rethrown") },
		})
	})
}

func TestRunIsRestartable(t *testing.T) {
	c := tricont.Of[struct{}, string, int](3)
	var first, second int
	tricont.Run(c, struct{}{}, tricont.RunCallbacks[string, int]{OnThen: func(a int) { first = a }})
	tricont.Run(c, struct{}{}, tricont.RunCallbacks[string, int]{OnThen: func(a int) { second = a }})
	require.Equal(t, 3, first)
	require.Equal(t, 3, second)
}
