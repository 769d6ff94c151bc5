// Command adlib-bench times insert, lookup, and remove throughput for each
// hash table strategy over a random key set, and reports how long the
// dynamic array took to build and shuffle that key set.
package main

import (
	"fmt"
	"math/rand"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/TomTonic/adlib/array"
	"github.com/TomTonic/adlib/hashtable"
	"github.com/TomTonic/adlib/internal/xhash"
)

type entry struct {
	key uint32
	val uint32
}

func main() {
	n := flag.Int("n", 1_000_000, "number of keys")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	keys := buildKeys(*n, *seed)

	fmt.Printf("benchmarking %d keys\n", *n)
	benchStrategy("quadratic", keys, func() table {
		return hashtable.NewQuadratic(8, 7, xhash.Default[uint32](), matchFn())
	})
	benchStrategy("hopscotch", keys, func() table {
		return hashtable.NewHopscotch(8, 7, xhash.Default[uint32](), matchFn())
	})
	benchStrategy("robinhood", keys, func() table {
		return hashtable.NewRobinHood(8, 7, xhash.Default[uint32](), matchFn())
	})
}

func matchFn() hashtable.KeysMatch[uint32, entry] {
	return func(key uint32, e *entry) bool { return e.key == key }
}

type table interface {
	Insert(uint32, entry) bool
	Lookup(uint32) *entry
	Remove(uint32) bool
}

// buildKeys fills an array.Array[uint32] with a random permutation of
// [0, n), preallocated to n so the appends never reallocate, before
// handing the keys to each hash table strategy.
func buildKeys(n int, seed int64) *array.Array[uint32] {
	start := time.Now()
	a := array.NewWithCapacity[uint32](n)
	for i := 0; i < n; i++ {
		a.Add(uint32(i))
	}
	rng := rand.New(rand.NewSource(seed))
	a.Shuffle(func() int { return rng.Int() })
	fmt.Printf("array: built %d keys in %s\n", n, time.Since(start))
	return a
}

func benchStrategy(name string, keys *array.Array[uint32], newTable func() table) {
	tbl := newTable()

	start := time.Now()
	keys.ForeachValue(func(k uint32) bool {
		tbl.Insert(k, entry{key: k, val: k})
		return true
	})
	insertElapsed := time.Since(start)

	start = time.Now()
	var hits int
	keys.ForeachValue(func(k uint32) bool {
		if tbl.Lookup(k) != nil {
			hits++
		}
		return true
	})
	lookupElapsed := time.Since(start)

	start = time.Now()
	keys.ForeachValue(func(k uint32) bool {
		tbl.Remove(k)
		return true
	})
	removeElapsed := time.Since(start)

	fmt.Printf("%-10s insert=%-12s lookup=%-12s (%d/%d hits) remove=%-12s\n",
		name, insertElapsed, lookupElapsed, hits, keys.Len(), removeElapsed)
}
