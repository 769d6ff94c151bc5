package hashtable

import "github.com/TomTonic/adlib/internal/bitmap"

// Quadratic is an open-addressed table that resolves collisions by
// quadratic probing (triangular-number offsets) and marks removed slots
// with tombstones so later lookups keep probing past them. Grounded on the
// C original's DEFINE_HASHTABLE macro (original_source/include/hashtable.h).
type Quadratic[K any, E any] struct {
	core[K, E]
}

// NewQuadratic creates an empty table with the given initial capacity hint
// and load-factor threshold (max load is threshold/10).
func NewQuadratic[K any, E any](capacityHint, threshold int, hasher Hasher[K], match KeysMatch[K, E]) *Quadratic[K, E] {
	return &Quadratic[K, E]{core: newCore(capacityHint, threshold, hasher, match)}
}

// probeIndex returns the i-th quadratic probe offset from home: home, home+1,
// home+3, home+6, home+10, ... (triangular numbers), wrapped mod capacity.
func (t *Quadratic[K, E]) probeIndex(home, i int) int {
	return (home + i*(i+1)/2) % t.capacity
}

// Lookup returns a pointer to the entry matching key, or nil.
func (t *Quadratic[K, E]) Lookup(key K) *E {
	h := t.Hash(key)
	home := indexFor(h, t.capacity)
	for i := 0; i < t.capacity; i++ {
		idx := t.probeIndex(home, i)
		slot := t.hash[idx]
		if slot == emptyHash {
			return nil
		}
		if slot == tombstoneHash {
			continue
		}
		if slot == h && t.match(key, &t.entries[idx]) {
			return &t.entries[idx]
		}
	}
	return nil
}

// Insert places entry under key's hash, growing the table first if the
// load factor would be exceeded. Returns false without modification if key
// is already present.
func (t *Quadratic[K, E]) Insert(key K, entry E) bool {
	if t.Lookup(key) != nil {
		return false
	}
	if t.needsGrowForOneMore() {
		t.Resize(minCapacityForEntries(t.numEntry+1, t.threshold))
	}
	h := t.Hash(key)
	t.insertRaw(h, entry)
	t.numEntry++
	return true
}

// insertRaw places (h, entry) into the first empty-or-tombstone slot along
// h's probe sequence, assuming h is not already present.
func (t *Quadratic[K, E]) insertRaw(h uint32, entry E) {
	home := indexFor(h, t.capacity)
	for i := 0; i < t.capacity; i++ {
		idx := t.probeIndex(home, i)
		if t.hash[idx] == emptyHash {
			t.hash[idx] = h
			t.entries[idx] = entry
			return
		}
		if t.hash[idx] == tombstoneHash {
			t.hash[idx] = h
			t.entries[idx] = entry
			t.numTomb--
			return
		}
	}
	panic("hashtable: quadratic probe exhausted capacity")
}

// Remove deletes the entry matching key, leaving a tombstone. Reports
// whether a matching entry was found. A flood of tombstones degrades every
// later probe even when the live load factor itself is fine, so once
// tombstones exceed half of capacity the table is rebuilt in place at the
// same capacity to clear them (spec-mandated degenerate-case cleanup).
func (t *Quadratic[K, E]) Remove(key K) bool {
	h := t.Hash(key)
	home := indexFor(h, t.capacity)
	for i := 0; i < t.capacity; i++ {
		idx := t.probeIndex(home, i)
		slot := t.hash[idx]
		if slot == emptyHash {
			return false
		}
		if slot == h && t.match(key, &t.entries[idx]) {
			var zero E
			t.entries[idx] = zero
			t.hash[idx] = tombstoneHash
			t.numEntry--
			t.numTomb++
			switch {
			case t.needsShrink():
				t.Resize(minCapacityForEntries(t.numEntry, t.threshold))
			case t.numTomb*2 > t.capacity:
				t.rebuildProbeSequences()
			}
			return true
		}
	}
	return false
}

// rebuildProbeSequences reinserts every live entry at the current capacity
// and clears all tombstones, without changing capacity.
func (t *Quadratic[K, E]) rebuildProbeSequences() {
	t.rehash(t.capacity)
}

// Resize changes capacity to newCapacity (rounded to a power of two, floored
// at the table minimum) and rehashes every live entry in place.
func (t *Quadratic[K, E]) Resize(newCapacity int) {
	newCapacity = nextPow2(newCapacity)
	if newCapacity == t.capacity {
		return
	}
	t.rehash(newCapacity)
}

// rehash rebuilds the table at newCapacity (which may equal the current
// capacity, for the tombstone-driven in-place rebuild), using an external
// bitmap to track which of the original slots have already been resettled
// so cooperative displacement along a probe chain never revisits a slot
// twice.
func (t *Quadratic[K, E]) rehash(newCapacity int) {
	oldCapacity := t.capacity
	workCapacity := oldCapacity
	if newCapacity > workCapacity {
		workCapacity = newCapacity
	}
	// The sweep below walks every pre-resize slot [0, oldCapacity) and
	// reinserts its live entry using newCapacity-relative probing. When
	// shrinking, that reinsertion must still have somewhere to land for
	// slots in [newCapacity, oldCapacity) to draw from, so the backing
	// arrays are only ever grown here, never truncated up front; the
	// trailing slots are cut off after every entry has been relocated into
	// [0, newCapacity).
	growBacking(&t.hash, &t.entries, workCapacity)
	t.capacity = newCapacity
	t.numTomb = 0

	settled := bitmap.New(oldCapacity)
	for i := 0; i < oldCapacity; i++ {
		if settled.Get(i) {
			continue
		}
		switch t.hash[i] {
		case emptyHash:
			settled.Set(i)
			continue
		case tombstoneHash:
			t.hash[i] = emptyHash
			settled.Set(i)
			continue
		}
		curHash := t.hash[i]
		curEntry := t.entries[i]
		var zero E
		t.hash[i] = emptyHash
		t.entries[i] = zero
		settled.Set(i)

		for {
			_, _, displacedHash, displacedEntry, hadDisplaced :=
				t.placeDuringResize(curHash, curEntry, oldCapacity, &settled)
			if !hadDisplaced {
				break
			}
			curHash, curEntry = displacedHash, displacedEntry
		}
	}

	if len(t.hash) != newCapacity {
		t.hash = t.hash[:newCapacity]
		t.entries = t.entries[:newCapacity]
	}
}

// placeDuringResize inserts (h, entry) along its probe chain in the
// already-extended backing arrays. A slot within [0, oldCapacity) that the
// outer sweep has not yet settled still holds genuine pre-resize data —
// probing past it as if it were a normal occupant would strand that data
// behind a slot that later turns permanently EMPTY when the outer sweep
// finally lifts it, breaking Lookup's EMPTY early-stop (original_source's
// hashtable.c resize walks the same way: displace, don't skip). Such a
// slot is therefore always displaced: its contents are carried out and
// returned to the caller to continue inserting, exactly like Insert's
// eviction-free probing except that here an "occupant" can still move.
// Slots at or past oldCapacity, and already-settled slots below it, are
// either fresh table tail or finalized placements for this resize, and are
// probed past like ordinary open addressing.
func (t *Quadratic[K, E]) placeDuringResize(h uint32, entry E, oldCapacity int, settled *bitmap.Bitmap) (landedAt, displacedFrom int, displacedHash uint32, displacedEntry E, hadDisplaced bool) {
	home := indexFor(h, t.capacity)
	for i := 0; i < t.capacity; i++ {
		idx := t.probeIndex(home, i)
		cur := t.hash[idx]
		if cur == emptyHash || cur == tombstoneHash {
			t.hash[idx] = h
			t.entries[idx] = entry
			if idx < oldCapacity {
				settled.Set(idx)
			}
			return idx, 0, 0, displacedEntry, false
		}
		if idx < oldCapacity && !settled.Get(idx) {
			displacedHash = cur
			displacedEntry = t.entries[idx]
			t.hash[idx] = h
			t.entries[idx] = entry
			settled.Set(idx)
			return idx, idx, displacedHash, displacedEntry, true
		}
	}
	panic("hashtable: quadratic probe exhausted capacity during resize")
}

// growBacking replaces hash and entries with newly allocated slices of
// length newCapacity, keeping existing content at its original indices and
// zero-filling the new tail.
func growBacking[E any](hash *[]uint32, entries *[]E, newCapacity int) {
	oldCapacity := len(*hash)
	if newCapacity <= oldCapacity {
		newHash := make([]uint32, newCapacity)
		copy(newHash, (*hash)[:newCapacity])
		newEntries := make([]E, newCapacity)
		copy(newEntries, (*entries)[:newCapacity])
		*hash, *entries = newHash, newEntries
		return
	}
	newHash := make([]uint32, newCapacity)
	copy(newHash, *hash)
	newEntries := make([]E, newCapacity)
	copy(newEntries, *entries)
	*hash, *entries = newHash, newEntries
}
