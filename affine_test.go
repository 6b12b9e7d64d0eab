// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnceGuardClaimFiresOnlyOnce(t *testing.T) {
	g := &onceGuard{}
	require.True(t, g.claim())
	require.False(t, g.claim())
	require.False(t, g.claim())
}

func TestOnceGuardFireRunsDeliverOnce(t *testing.T) {
	g := &onceGuard{}
	var calls int
	g.fire(func() { calls++ })
	require.Equal(t, 1, calls)

	require.PanicsWithValue(t, "tricont: observer notified more than once for a single run", func() {
		g.fire(func() { calls++ })
	})
	require.Equal(t, 1, calls)
}
