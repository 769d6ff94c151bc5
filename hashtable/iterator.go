package hashtable

// Iterator walks the live entries of a table in slot order. The zero value
// is not usable; obtain one via a table's Iterate method. Mutating the
// table while an iterator is in flight invalidates the iterator.
type Iterator[E any] struct {
	hash    []uint32
	entries []E
	pos     int
}

func newIterator[E any](hash []uint32, entries []E) Iterator[E] {
	it := Iterator[E]{hash: hash, entries: entries, pos: -1}
	return it
}

// Start positions the iterator at the first live entry, if any.
func (it *Iterator[E]) Start() {
	it.pos = -1
	it.Advance()
}

// Advance moves to the next live entry.
func (it *Iterator[E]) Advance() {
	it.pos++
	for it.pos < len(it.hash) && (it.hash[it.pos] == emptyHash || it.hash[it.pos] == tombstoneHash) {
		it.pos++
	}
}

// Finished reports whether the iterator has run past the last entry.
func (it *Iterator[E]) Finished() bool {
	return it.pos >= len(it.hash)
}

// Entry returns a pointer to the current entry. Only valid when Finished
// returns false.
func (it *Iterator[E]) Entry() *E {
	return &it.entries[it.pos]
}

// Iterate returns an iterator over t's live entries, already positioned at
// the first one.
func (t *Quadratic[K, E]) Iterate() Iterator[E] {
	it := newIterator(t.hash, t.entries)
	it.Start()
	return it
}

// Iterate returns an iterator over t's live entries, already positioned at
// the first one.
func (t *Hopscotch[K, E]) Iterate() Iterator[E] {
	it := newIterator(t.hash, t.entries)
	it.Start()
	return it
}

// Iterate returns an iterator over t's live entries, already positioned at
// the first one.
func (t *RobinHood[K, E]) Iterate() Iterator[E] {
	it := newIterator(t.hash, t.entries)
	it.Start()
	return it
}
