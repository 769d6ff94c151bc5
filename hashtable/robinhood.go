package hashtable

import "github.com/TomTonic/adlib/internal/bitmap"

// RobinHood is an open-addressed table using linear probing with Robin
// Hood displacement: on insert, an entry that has probed farther from its
// home than the occupant of its current slot steals that slot, and the
// displaced occupant continues probing in its place ("the rich give to the
// poor"). This bounds variance in probe length across the table. Deletion
// uses backward-shift instead of tombstones. Grounded on
// other_examples/5b853ca3_EinfachAndy-hashmaps__robin_hood.go.go, adapted
// from its fixed Key/Value buckets to this package's generic K/E and shared
// core bookkeeping.
//
// Resolves spec's wrap-around displacement Open Question: distance from
// home is always computed as the wrapped difference (idx - home) mod
// capacity, never a raw unwrapped probe counter, so entries whose home is
// near the end of the table and whose probe chain wraps to low indices are
// still compared on equal footing.
type RobinHood[K any, E any] struct {
	core[K, E]
}

// NewRobinHood creates an empty table with the given initial capacity hint
// and load-factor threshold.
func NewRobinHood[K any, E any](capacityHint, threshold int, hasher Hasher[K], match KeysMatch[K, E]) *RobinHood[K, E] {
	return &RobinHood[K, E]{core: newCore(capacityHint, threshold, hasher, match)}
}

func (t *RobinHood[K, E]) wrap(i int) int { return i & (t.capacity - 1) }

func (t *RobinHood[K, E]) distanceOf(idx int) int {
	home := indexFor(t.hash[idx], t.capacity)
	return t.wrap(idx - home)
}

// Lookup returns a pointer to the entry matching key, or nil. Probing stops
// early the moment the current slot's own distance from its home is less
// than how far we have already probed: by the Robin Hood invariant, no
// later slot in the chain could hold key either.
func (t *RobinHood[K, E]) Lookup(key K) *E {
	h := t.Hash(key)
	home := indexFor(h, t.capacity)
	idx := home
	for dist := 0; dist < t.capacity; dist++ {
		if t.hash[idx] == emptyHash {
			return nil
		}
		if dist > t.distanceOf(idx) {
			return nil
		}
		if t.hash[idx] == h && t.match(key, &t.entries[idx]) {
			return &t.entries[idx]
		}
		idx = t.wrap(idx + 1)
	}
	return nil
}

// Insert places entry under key's hash, growing the table first if the
// load factor would be exceeded. Returns false without modification if key
// is already present.
func (t *RobinHood[K, E]) Insert(key K, entry E) bool {
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

// insertRaw places (h, entry), assuming h is not already present, bubbling
// any richer-claimed occupant it passes forward per the Robin Hood creed.
func (t *RobinHood[K, E]) insertRaw(h uint32, entry E) {
	home := indexFor(h, t.capacity)
	idx := home
	dist := 0
	for {
		if t.hash[idx] == emptyHash {
			t.hash[idx] = h
			t.entries[idx] = entry
			return
		}
		existingDist := t.distanceOf(idx)
		if existingDist < dist {
			h, t.hash[idx] = t.hash[idx], h
			entry, t.entries[idx] = t.entries[idx], entry
			dist = existingDist
		}
		idx = t.wrap(idx + 1)
		dist++
	}
}

// Remove deletes the entry matching key and closes the gap by shifting
// each following run of displaced entries back one slot (backward-shift
// deletion), stopping once an empty slot or a slot already at its own home
// is reached. Reports whether a matching entry was found.
func (t *RobinHood[K, E]) Remove(key K) bool {
	h := t.Hash(key)
	home := indexFor(h, t.capacity)
	idx := home
	found := -1
	for dist := 0; dist < t.capacity; dist++ {
		if t.hash[idx] == emptyHash {
			return false
		}
		if dist > t.distanceOf(idx) {
			return false
		}
		if t.hash[idx] == h && t.match(key, &t.entries[idx]) {
			found = idx
			break
		}
		idx = t.wrap(idx + 1)
	}
	if found == -1 {
		return false
	}

	cur := found
	for {
		next := t.wrap(cur + 1)
		if t.hash[next] == emptyHash || t.distanceOf(next) == 0 {
			break
		}
		t.hash[cur] = t.hash[next]
		t.entries[cur] = t.entries[next]
		cur = next
	}
	var zero E
	t.hash[cur] = emptyHash
	t.entries[cur] = zero
	t.numEntry--
	if t.needsShrink() {
		t.Resize(minCapacityForEntries(t.numEntry, t.threshold))
	}
	return true
}

// Resize changes capacity to newCapacity and rehashes every live entry in
// place.
func (t *RobinHood[K, E]) Resize(newCapacity int) {
	newCapacity = nextPow2(newCapacity)
	oldCapacity := t.capacity
	if newCapacity == oldCapacity {
		return
	}
	workCapacity := oldCapacity
	if newCapacity > workCapacity {
		workCapacity = newCapacity
	}
	// See Quadratic.rehash: the backing arrays are only ever grown here, so
	// the sweep below can still read every pre-resize slot even when
	// shrinking; the trailing slots are cut off once every live entry has
	// been relocated into [0, newCapacity).
	growBacking(&t.hash, &t.entries, workCapacity)
	t.capacity = newCapacity

	settled := bitmap.New(oldCapacity)
	for i := 0; i < oldCapacity; i++ {
		if settled.Get(i) {
			continue
		}
		if t.hash[i] == emptyHash {
			settled.Set(i)
			continue
		}
		h := t.hash[i]
		entry := t.entries[i]
		var zero E
		t.hash[i] = emptyHash
		t.entries[i] = zero
		settled.Set(i)
		t.insertDuringResize(h, entry, oldCapacity, &settled)
	}

	if len(t.hash) != newCapacity {
		t.hash = t.hash[:newCapacity]
		t.entries = t.entries[:newCapacity]
	}
}

// insertDuringResize places (h, entry), the same way insertRaw does, except
// that a slot within [0, oldCapacity) the outer sweep has not yet settled
// is always displaced rather than compared by distance: that slot still
// holds genuine pre-resize data, whose displacement was computed against
// the OLD capacity and says nothing about its place under the new one, so
// the live-table Robin Hood invariant does not hold there yet. Relying on
// it (as a plain insertRaw call would) can strand the lifted entry behind
// a slot that later empties out, breaking Lookup's early-stop. Already
// rehashed slots (settled, or at/past oldCapacity) hold finalized new-table
// entries and are compared by the ordinary creed.
func (t *RobinHood[K, E]) insertDuringResize(h uint32, entry E, oldCapacity int, settled *bitmap.Bitmap) {
	home := indexFor(h, t.capacity)
	idx := home
	dist := 0
	for {
		cur := t.hash[idx]
		if cur == emptyHash {
			t.hash[idx] = h
			t.entries[idx] = entry
			if idx < oldCapacity {
				settled.Set(idx)
			}
			return
		}
		if idx < oldCapacity && !settled.Get(idx) {
			curHome := indexFor(cur, t.capacity)
			dist = t.wrap(idx - curHome)
			h, t.hash[idx] = t.hash[idx], h
			entry, t.entries[idx] = t.entries[idx], entry
			settled.Set(idx)
		} else {
			existingDist := t.distanceOf(idx)
			if existingDist < dist {
				h, t.hash[idx] = t.hash[idx], h
				entry, t.entries[idx] = t.entries[idx], entry
				dist = existingDist
			}
		}
		idx = t.wrap(idx + 1)
		dist++
	}
}
