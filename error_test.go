// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/tricont"
)

func TestOutcomeConstructorsAndPredicates(t *testing.T) {
	cases := []struct {
		name           string
		out            tricont.Outcome[string, int]
		wantThen       bool
		wantElse       bool
		wantCrash      bool
		wantThenValue  int
		wantElseValue  string
	}{
		{
			name:          "then",
			out:           tricont.Then[string, int](7),
			wantThen:      true,
			wantThenValue: 7,
		},
		{
			name:          "else",
			out:           tricont.ElseOutcome[string, int]("bad input"),
			wantElse:      true,
			wantElseValue: "bad input",
		},
		{
			name:      "crash",
			out:       tricont.CrashOutcome[string, int](tricont.CrashNormal("boom")),
			wantCrash: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantThen, tc.out.IsThen())
			assert.Equal(t, tc.wantElse, tc.out.IsElse())
			assert.Equal(t, tc.wantCrash, tc.out.IsCrash())

			v, ok := tc.out.ThenValue()
			assert.Equal(t, tc.wantThen, ok)
			if tc.wantThen {
				assert.Equal(t, tc.wantThenValue, v)
			}

			f, ok := tc.out.ElseValue()
			assert.Equal(t, tc.wantElse, ok)
			if tc.wantElse {
				assert.Equal(t, tc.wantElseValue, f)
			}

			_, ok = tc.out.CrashValue()
			assert.Equal(t, tc.wantCrash, ok)
		})
	}
}

func TestMatchInvokesExactlyOneBranch(t *testing.T) {
	var calls []string
	record := func(name string) { calls = append(calls, name) }

	got := tricont.Match(tricont.Then[string, int](3),
		func(a int) string { record("then"); return "then" },
		func(f string) string { record("else"); return "else" },
		func(c tricont.ContCrash) string { record("crash"); return "crash" },
	)
	require.Equal(t, "then", got)
	require.Equal(t, []string{"then"}, calls)
}

func TestCaptureAttachesStackTrace(t *testing.T) {
	e := tricont.Capture("oops")
	require.Equal(t, "oops", e.Value)
	require.NotEmpty(t, e.StackTrace())
}

func TestContCrashNormalAndMerged(t *testing.T) {
	n := tricont.CrashNormal("first failure")
	require.True(t, n.IsNormal())
	require.False(t, n.IsMerged())
	normal, ok := n.Normal()
	require.True(t, ok)
	require.Equal(t, "first failure", normal.Value)

	m := tricont.MergedCrash(tricont.CrashNormal("left"), tricont.CrashNormal("right"))
	require.True(t, m.IsMerged())
	left, right, ok := m.Merged()
	require.True(t, ok)
	leftNormal, _ := left.Normal()
	rightNormal, _ := right.Normal()
	require.Equal(t, "left", leftNormal.Value)
	require.Equal(t, "right", rightNormal.Value)

	require.Contains(t, m.Error(), "left")
	require.Contains(t, m.Error(), "right")
}

func TestCrashFromRecoverCapturesPanicValue(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		c := tricont.CrashFromRecover(r)
		normal, ok := c.Normal()
		require.True(t, ok)
		require.Equal(t, "boom", normal.Value)
	}()
	panic("boom")
}
