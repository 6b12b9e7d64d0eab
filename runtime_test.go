// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tricont"
)

func TestCancelTokenStartsUncancelled(t *testing.T) {
	tok := tricont.NewRuntime("env").Token()
	require.False(t, tok.IsCancelled())
}

func TestCancelTokenCancelIsMonotonic(t *testing.T) {
	tok := tricont.NewRuntime("env").Token()
	tok.Cancel()
	require.True(t, tok.IsCancelled())
	tok.Cancel()
	require.True(t, tok.IsCancelled())
}

func TestRuntimeExposesEnvAndToken(t *testing.T) {
	rt := tricont.NewRuntime(42)
	require.Equal(t, 42, rt.Env())
	require.False(t, rt.IsCancelled())
	rt.Token().Cancel()
	require.True(t, rt.IsCancelled())
}
