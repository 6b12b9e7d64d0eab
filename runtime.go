// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tricont

import "sync/atomic"

// CancelToken is the handle [Run] returns. Cancellation is a single
// monotonic bit: once Cancel is called, IsCancelled reports true for the
// remaining lifetime of the token. There is no resume — a one-shot
// atomic flag, not a resettable signal.
type CancelToken struct {
	cancelled atomic.Bool
}

// Cancel sets the cancellation flag. Safe to call more than once and
// from outside the run's own logical task; every check against the flag
// is a cooperative read, never a forced interrupt.
func (t *CancelToken) Cancel() {
	t.cancelled.Store(true)
}

// IsCancelled reports whether Cancel has been called.
func (t *CancelToken) IsCancelled() bool {
	return t.cancelled.Load()
}

// Runtime carries the read-only environment and the cancellation token
// threaded through a single run. The environment is fixed once at run
// construction and held for the run's whole lifetime — there is no
// mechanism to install a different one partway through.
type Runtime[E any] struct {
	env   E
	token *CancelToken
}

// NewRuntime builds a Runtime bound to env with a fresh cancellation
// token.
func NewRuntime[E any](env E) *Runtime[E] {
	return &Runtime[E]{env: env, token: &CancelToken{}}
}

// Env returns the environment value supplied to Run.
func (r *Runtime[E]) Env() E {
	return r.env
}

// IsCancelled returns true once Cancel has been called on this
// runtime's token. Leaves must check this as the first action at every
// asynchronous continuation point and no-op if set.
func (r *Runtime[E]) IsCancelled() bool {
	return r.token.IsCancelled()
}

// Token returns the cancellation token backing this runtime. The token
// exposes both IsCancelled and Cancel, so its holder can trigger
// cancellation as well as observe it (see [CancelSelf]).
func (r *Runtime[E]) Token() *CancelToken {
	return r.token
}
