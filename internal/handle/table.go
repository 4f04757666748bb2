// Package handle maps owned Go values to opaque 64-bit handles that can
// cross the C boundary.
//
// A handle packs a kind tag, a slot generation and a slot index. The zero
// handle is never issued. Releasing a handle bumps the slot generation, so
// a second release or a lookup through a stale copy is detected.
package handle

import (
	"errors"
	"sync"
)

// Handle is an opaque reference to a value held by a Table.
type Handle uint64

// Kind tags the value type a handle refers to.
type Kind uint8

const (
	KindExecutor Kind = iota + 1
	KindHeader
	KindBlock
	KindTransaction
	KindOutput
	KindInput
	KindScript
)

// ErrInvalidHandle is returned for null, stale, released or foreign handles.
var ErrInvalidHandle = errors.New("invalid handle")

const (
	indexBits      = 32
	generationBits = 24
	generationMask = 1<<generationBits - 1
)

func pack(kind Kind, generation uint32, index uint32) Handle {
	return Handle(uint64(kind)<<(indexBits+generationBits) | uint64(generation&generationMask)<<indexBits | uint64(index))
}

// Kind returns the kind tag of h.
func (h Handle) Kind() Kind {
	return Kind(h >> (indexBits + generationBits))
}

func (h Handle) generation() uint32 {
	return uint32(h>>indexBits) & generationMask
}

func (h Handle) index() uint32 {
	return uint32(h)
}

type slot[T any] struct {
	value      T
	generation uint32
	used       bool
}

// Table stores values of one kind.
type Table[T any] struct {
	kind  Kind
	mu    sync.Mutex
	slots []slot[T]
	free  []uint32
}

// NewTable creates an empty table issuing handles of kind.
func NewTable[T any](kind Kind) *Table[T] {
	return &Table[T]{kind: kind}
}

// Put stores value and returns its handle.
func (t *Table[T]) Put(value T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.slots))
		// generation starts at 1 so that no issued handle is zero
		t.slots = append(t.slots, slot[T]{generation: 1})
	}
	s := &t.slots[index]
	s.value = value
	s.used = true
	return pack(t.kind, s.generation, index)
}

// Get returns the value referenced by h.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Release removes the value referenced by h and returns it. Releasing the
// same handle twice returns ErrInvalidHandle.
func (t *Table[T]) Release(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	s, err := t.lookup(h)
	if err != nil {
		return zero, err
	}
	value := s.value
	s.value = zero
	s.used = false
	s.generation = (s.generation + 1) & generationMask
	if s.generation == 0 {
		s.generation = 1
	}
	t.free = append(t.free, h.index())
	return value, nil
}

// Len returns the number of live handles.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots) - len(t.free)
}

func (t *Table[T]) lookup(h Handle) (*slot[T], error) {
	if h == 0 || h.Kind() != t.kind {
		return nil, ErrInvalidHandle
	}
	index := h.index()
	if int(index) >= len(t.slots) {
		return nil, ErrInvalidHandle
	}
	s := &t.slots[index]
	if !s.used || s.generation != h.generation() {
		return nil, ErrInvalidHandle
	}
	return s, nil
}
