package testutil

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
)

// errInjectedCommit forces the real transaction to roll back when FailCommit
// is set; callers see FailCommit instead.
var errInjectedCommit = errors.New("injected commit failure")

// InjectedTxRunner fails a write at begin, before the body or at commit.
// With DB set the body runs in a real transaction, so rows written before an
// injected commit failure are rolled back.
type InjectedTxRunner struct {
	DB *gorm.DB

	FailBegin      error
	FailBeforeBody error
	FailCommit     error

	mu            sync.Mutex
	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.count(&r.BeginCalls)
	if r.FailBegin != nil {
		return r.FailBegin
	}
	if r.FailBeforeBody != nil {
		r.count(&r.RollbackCalls)
		return r.FailBeforeBody
	}

	var err error
	if r.DB == nil {
		err = r.body(dbctx.Context{Ctx: ctx}, fn)
	} else {
		err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return r.body(dbctx.Context{Ctx: ctx, Tx: tx}, fn)
		})
	}
	switch {
	case errors.Is(err, errInjectedCommit):
		r.count(&r.RollbackCalls)
		return r.FailCommit
	case err != nil:
		r.count(&r.RollbackCalls)
		return err
	}
	r.count(&r.CommitCalls)
	return nil
}

func (r *InjectedTxRunner) body(dbc dbctx.Context, fn func(dbc dbctx.Context) error) error {
	if fn != nil {
		if err := fn(dbc); err != nil {
			return err
		}
	}
	if r.FailCommit != nil {
		return errInjectedCommit
	}
	return nil
}

func (r *InjectedTxRunner) count(n *int) {
	r.mu.Lock()
	*n++
	r.mu.Unlock()
}
