// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tricont provides a compositional effect library built around a
// single abstraction, the [Continuation]: a suspended computation that
// produces exactly one of four terminal outcomes — success, an expected
// business error, an unexpected crash, or an observer panic — on a
// three-way result channel, parameterized over an ambient environment and
// an expected error type.
//
// # Design Philosophy
//
// tricont provides:
//   - A closed, three-way outcome algebra ([Outcome]) distinct from a flat
//     error union
//   - Cooperative cancellation that races with in-flight callbacks rather
//     than interrupting them
//   - A stack-safe trampoline for looping combinators, independent of any
//     hosting async runtime
//   - Composable parallel policies (sequential, quit-fast, run-all) that
//     merge outcomes deterministically
//
// # Core Type
//
// [Continuation] wraps a runner func(*Runtime[E], Observer[F, A]). It is a
// descriptor: building one has no side effects, and it is restartable —
// running it any number of times replays independent outcomes.
//
// # Outcome Algebra
//
//   - [Outcome]: the closed sum of Then/Else/Crash
//   - [ContCrash]: Normal(error, stack) or Merged(left, right)
//   - [ContError]: a captured value plus its stack trace ([Capture])
//   - [Never]: an uninhabited payload type; see [WidenThen], [WidenElse]
//
// # Observer and Runtime
//
//   - [Observer]: the four-callback sink a run dispatches to exactly once
//   - [Runtime]: carries the environment and the cancellation token
//   - [CancelToken]: a monotonic, cooperative cancellation flag
//
// # Constructors
//
//   - [Of]: lift a pure success value
//   - [Err]: lift an expected error
//   - [CrashC]: lift a crash outcome directly
//   - [FromRun]: wrap a runner closure directly
//   - [FromDeferred]: build the continuation lazily at run time
//   - [Ask]: read the environment
//
// # Sequential Combinators
//
// Each of the three channels (then/else/crash) exposes a parallel family
// of combinators in its own file ([ThenDo] et al. in then.go, [ElseDo] et
// al. in else.go, [CrashDo] et al. in crash.go): Do/Do0/DoWithEnv/
// DoWithEnv0 (bind), Map/Map0/MapTo (functor), Tap/TapWithEnv (replacement
// side effects), Fork/ForkWithEnv (fire-and-forget side effects), If/
// Unless (conditional promotion), Zip (fallback with accumulation), and
// channel-specific Recover/Promote/Demote/Abort convenience wrappers.
//
// # Looping
//
//   - [ThenWhile], [ThenUntil], [ThenForever] and their else/crash
//     counterparts drive a stack-safe trampoline (loop.go) that never
//     grows the call stack with iteration count.
//
// # Parallel Combinators
//
//   - [Both], [All]: require every success
//   - [Either], [Any]: race to the first success
//   - [Merge], [MergeAll], [Coalesce]: the crash-channel analogues
//   - [Policy]: selects how failing children are reconciled
//     ([PolicyQuitFast], [PolicySequence], [PolicyRunAll])
//
// # Run Entry Point
//
//   - [Run]: dispatches observer callbacks and returns a [*CancelToken]
//
// # Resource Safety
//
//   - [Bracket]: acquire-release-use with guaranteed, crash-safe cleanup
package tricont
