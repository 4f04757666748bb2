// Package binding owns every object handed out through the C library.
//
// Objects cross the boundary as handle.Handle values. Each kind lives in
// its own table, so a handle of the wrong kind, a released handle or a
// stale copy of one resolves to nothing instead of foreign memory.
package binding

import (
	"errors"
	"io"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/executor"
	"github.com/goodnatureofminers/chainexec/internal/handle"
	"go.uber.org/zap"
)

// node is a registered executor and the log sinks it owns.
type node struct {
	*executor.Executor
	sinks []io.Closer
}

func (n *node) close() error {
	n.Close()
	return n.closeSinks()
}

func (n *node) closeSinks() error {
	var errs []error
	for _, sink := range n.sinks {
		errs = append(errs, sink.Close())
	}
	return errors.Join(errs...)
}

// Registry holds the live objects of one library instance.
type Registry struct {
	logger *zap.Logger

	executors    *handle.Table[*node]
	headers      *handle.Table[*wire.BlockHeader]
	blocks       *handle.Table[*wire.MsgBlock]
	transactions *handle.Table[*wire.MsgTx]
	outputs      *handle.Table[*wire.TxOut]
	inputs       *handle.Table[*wire.TxIn]
	scripts      *handle.Table[chain.Script]
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger:       logger.Named("binding"),
		executors:    handle.NewTable[*node](handle.KindExecutor),
		headers:      handle.NewTable[*wire.BlockHeader](handle.KindHeader),
		blocks:       handle.NewTable[*wire.MsgBlock](handle.KindBlock),
		transactions: handle.NewTable[*wire.MsgTx](handle.KindTransaction),
		outputs:      handle.NewTable[*wire.TxOut](handle.KindOutput),
		inputs:       handle.NewTable[*wire.TxIn](handle.KindInput),
		scripts:      handle.NewTable[chain.Script](handle.KindScript),
	}
}

// Live reports the number of unreleased handles of every kind.
func (r *Registry) Live() int {
	return r.executors.Len() + r.headers.Len() + r.blocks.Len() + r.transactions.Len() +
		r.outputs.Len() + r.inputs.Len() + r.scripts.Len()
}

func lookup[T any](r *Registry, table *handle.Table[T], h handle.Handle) (T, bool) {
	v, err := table.Get(h)
	if err != nil {
		r.logger.Debug("lookup of invalid handle", zap.Uint64("handle", uint64(h)), zap.Error(err))
		return v, false
	}
	return v, true
}

func release[T any](r *Registry, table *handle.Table[T], h handle.Handle) (T, bool) {
	v, err := table.Release(h)
	if err != nil {
		r.logger.Warn("release of invalid handle", zap.Uint64("handle", uint64(h)), zap.Error(err))
		return v, false
	}
	return v, true
}

// putOr issues a handle for v, or the null handle when ok is false.
func putOr[T any](table *handle.Table[T], v T, ok bool) handle.Handle {
	if !ok {
		return 0
	}
	return table.Put(v)
}
