package binding

import (
	"context"
	"io"
	"slices"

	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/executor"
	"github.com/goodnatureofminers/chainexec/internal/handle"
	"github.com/goodnatureofminers/chainexec/internal/query"
	"go.uber.org/zap"
)

// Construct loads the node configuration at path and registers a new
// executor logging to stdout and stderr. Sinks implementing io.Closer are
// owned by the registry and closed with the executor. It returns the null
// handle when the configuration cannot be loaded.
func (r *Registry) Construct(path string, stdout, stderr io.Writer) handle.Handle {
	n := &node{sinks: closers(stdout, stderr)}
	e, err := executor.NewFromFile(path, stdout, stderr)
	if err != nil {
		r.logger.Error("construct executor", zap.String("path", path), zap.Error(err))
		if err := n.closeSinks(); err != nil {
			r.logger.Warn("close log sinks", zap.Error(err))
		}
		return 0
	}
	n.Executor = e
	return r.executors.Put(n)
}

// Destruct stops the executor, closes its sinks and releases its handle.
func (r *Registry) Destruct(exec handle.Handle) {
	n, ok := release(r, r.executors, exec)
	if !ok {
		return
	}
	if err := n.close(); err != nil {
		r.logger.Warn("close log sinks", zap.Error(err))
	}
}

func closers(writers ...io.Writer) []io.Closer {
	var out []io.Closer
	for _, w := range writers {
		c, ok := w.(io.Closer)
		if ok && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// InitChain creates the block store of the executor.
func (r *Registry) InitChain(exec handle.Handle) bool {
	return r.call(exec, "initchain", (*executor.Executor).InitChain)
}

// Run starts the executor without waiting for it to stop.
func (r *Registry) Run(exec handle.Handle) bool {
	return r.call(exec, "run", func(e *executor.Executor) error {
		return e.Run(context.Background())
	})
}

// RunWait runs the executor until Stop is called.
func (r *Registry) RunWait(exec handle.Handle) bool {
	return r.call(exec, "run_wait", func(e *executor.Executor) error {
		return e.RunWait(context.Background())
	})
}

// Stop stops a running executor.
func (r *Registry) Stop(exec handle.Handle) {
	if e, ok := lookup(r, r.executors, exec); ok {
		e.Stop()
	}
}

func (r *Registry) call(exec handle.Handle, operation string, fn func(*executor.Executor) error) bool {
	n, ok := lookup(r, r.executors, exec)
	if !ok {
		return false
	}
	if err := fn(n.Executor); err != nil {
		n.Logger().Error("executor "+operation+" failed", zap.Error(err))
		return false
	}
	return true
}

// querier returns the query surface of a running executor. An unknown
// handle fails the operation; an executor that is not running reports
// chain.ServiceStopped.
func (r *Registry) querier(exec handle.Handle) (*query.Querier, chain.Code) {
	e, ok := lookup(r, r.executors, exec)
	if !ok {
		return nil, chain.OperationFailed
	}
	q := e.Querier()
	if q == nil {
		return nil, chain.ServiceStopped
	}
	return q, chain.Success
}
