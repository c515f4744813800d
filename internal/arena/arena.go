// Package arena provides a bump allocator with pointer-stable addresses
// for lexer tokens, payloads, and interned byte strings. Everything
// allocated through an Arena shares its lifetime and is freed as a
// unit when the arena is dropped (spec section 3, "Arena").
//
// Grounded on the teacher's own slice-and-index data structures
// (internal/graph.Graph keeps nodes behind stable map-allocated
// pointers rather than a single growable slice); this package
// generalizes that idea into a typed, chunked slab so that a handle
// obtained from Alloc never dangles even as more values are allocated.
package arena

// defaultChunkSize is the element count of each backing chunk. Chosen
// so that small sources (a handful of tokens) cost one chunk and large
// ones amortize allocation overhead across growth.
const defaultChunkSize = 256

// Pool is a typed bump allocator for values of type T. Unlike a single
// growable slice, Pool never reallocates an existing chunk, so a
// pointer returned by Alloc stays valid for the pool's entire lifetime.
type Pool[T any] struct {
	chunks    [][]T
	chunkSize int
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{chunkSize: defaultChunkSize}
}

// Alloc returns a pointer to a new zero-valued T living in the pool.
func (p *Pool[T]) Alloc() *T {
	if len(p.chunks) == 0 || len(p.chunks[len(p.chunks)-1]) == cap(p.chunks[len(p.chunks)-1]) {
		p.chunks = append(p.chunks, make([]T, 0, p.chunkSize))
	}
	last := &p.chunks[len(p.chunks)-1]
	*last = append(*last, *new(T))
	return &(*last)[len(*last)-1]
}

// AllocValue copies v into the pool and returns a stable pointer to the copy.
func (p *Pool[T]) AllocValue(v T) *T {
	ptr := p.Alloc()
	*ptr = v
	return ptr
}

// Len returns the total number of values allocated so far.
func (p *Pool[T]) Len() int {
	n := 0
	for _, c := range p.chunks {
		n += len(c)
	}
	return n
}

// Arena holds the lexer's interned byte strings. Tokens and their
// kind-specific payloads are returned by value from the lexer; only the
// byte slices passed through InternBytes/InternString are arena-owned.
type Arena struct {
	bytes [][]byte // interned byte-string storage, one slice per intern call
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{}
}

// InternBytes copies src into arena-owned storage and returns a stable
// slice backed by it. Interning is needed for decoded string literals
// and escaped-identifier lexemes whose content differs from the raw
// source bytes, so they cannot simply alias the source buffer.
func (a *Arena) InternBytes(src []byte) []byte {
	owned := make([]byte, len(src))
	copy(owned, src)
	a.bytes = append(a.bytes, owned)
	return owned
}

// InternString is a convenience wrapper around InternBytes for string data.
func (a *Arena) InternString(s string) []byte {
	return a.InternBytes([]byte(s))
}
