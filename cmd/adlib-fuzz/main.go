// Command adlib-fuzz drives randomized insert/lookup/remove sequences
// against every hash table strategy and both balanced trees, checking each
// observation against an independent reference set, reports every
// mismatch, and exits non-zero if there was any. It exists to run the library's randomized scenarios
// at sizes and durations larger than a unit test budget comfortably allows.
package main

import (
	"fmt"
	"math/rand"
	"os"

	set3 "github.com/TomTonic/Set3"
	flag "github.com/spf13/pflag"

	"github.com/TomTonic/adlib/hashtable"
	"github.com/TomTonic/adlib/internal/xhash"
	"github.com/TomTonic/adlib/tree/avl"
	"github.com/TomTonic/adlib/tree/rbtree"
)

func main() {
	seed := flag.Int64("seed", 1, "PRNG seed")
	iterations := flag.Int("iterations", 500_000, "number of random operations per structure")
	keySpace := flag.Int("keyspace", 50_000, "range of keys drawn from")
	flag.Parse()

	fails := 0
	fails += fuzzHashtable("quadratic", *seed, *iterations, *keySpace)
	fails += fuzzHashtable("hopscotch", *seed+1, *iterations, *keySpace)
	fails += fuzzHashtable("robinhood", *seed+2, *iterations, *keySpace)
	fails += fuzzAVL(*seed+3, *iterations, *keySpace)
	fails += fuzzRBTree(*seed+4, *iterations, *keySpace)

	if fails > 0 {
		fmt.Fprintf(os.Stderr, "adlib-fuzz: %d mismatch(es) found\n", fails)
		os.Exit(1)
	}
	fmt.Println("adlib-fuzz: all scenarios passed")
}

type intEntry struct {
	key int
	val int
}

func fuzzHashtable(strategy string, seed int64, iterations, keySpace int) int {
	hasher := xhash.Default[int]()
	match := func(key int, e *intEntry) bool { return e.key == key }

	var tbl interface {
		Insert(int, intEntry) bool
		Remove(int) bool
		Lookup(int) *intEntry
		NumEntries() int
	}
	switch strategy {
	case "quadratic":
		tbl = hashtable.NewQuadratic(16, 7, hasher, match)
	case "hopscotch":
		tbl = hashtable.NewHopscotch(16, 7, hasher, match)
	case "robinhood":
		tbl = hashtable.NewRobinHood(16, 7, hasher, match)
	default:
		panic("unknown strategy " + strategy)
	}

	rng := rand.New(rand.NewSource(seed))
	reference := set3.Empty[int]()
	fails := 0
	for i := 0; i < iterations; i++ {
		k := rng.Intn(keySpace)
		switch rng.Intn(3) {
		case 0:
			want := !reference.Contains(k)
			if got := tbl.Insert(k, intEntry{key: k, val: k}); got != want {
				fmt.Printf("[%s] iteration %d: Insert(%d)=%v want %v\n", strategy, i, k, got, want)
				fails++
			}
			reference.Add(k)
		case 1:
			want := reference.Contains(k)
			if got := tbl.Remove(k); got != want {
				fmt.Printf("[%s] iteration %d: Remove(%d)=%v want %v\n", strategy, i, k, got, want)
				fails++
			}
			reference.Remove(k)
		case 2:
			want := reference.Contains(k)
			if got := tbl.Lookup(k) != nil; got != want {
				fmt.Printf("[%s] iteration %d: Lookup(%d)=%v want %v\n", strategy, i, k, got, want)
				fails++
			}
		}
	}
	if tbl.NumEntries() != int(reference.Size()) {
		fmt.Printf("[%s] final NumEntries()=%d want %d\n", strategy, tbl.NumEntries(), reference.Size())
		fails++
	}
	return fails
}

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func fuzzAVL(seed int64, iterations, keySpace int) int {
	r := avl.New[int](intCmp)
	rng := rand.New(rand.NewSource(seed))
	reference := set3.Empty[int]()
	fails := 0
	for i := 0; i < iterations; i++ {
		k := rng.Intn(keySpace)
		if rng.Intn(2) == 0 {
			want := !reference.Contains(k)
			if _, got := r.Insert(k); got != want {
				fmt.Printf("[avl] iteration %d: Insert(%d) mismatch\n", i, k)
				fails++
			}
			reference.Add(k)
		} else {
			want := reference.Contains(k)
			if got := r.RemoveValue(k); got != want {
				fmt.Printf("[avl] iteration %d: RemoveValue(%d) mismatch\n", i, k)
				fails++
			}
			reference.Remove(k)
		}
	}
	if r.Len() != int(reference.Size()) {
		fmt.Printf("[avl] final Len()=%d want %d\n", r.Len(), reference.Size())
		fails++
	}
	return fails
}

func fuzzRBTree(seed int64, iterations, keySpace int) int {
	r := rbtree.New[int](intCmp)
	rng := rand.New(rand.NewSource(seed))
	reference := set3.Empty[int]()
	fails := 0
	for i := 0; i < iterations; i++ {
		k := rng.Intn(keySpace)
		if rng.Intn(2) == 0 {
			want := !reference.Contains(k)
			if _, got := r.Insert(k); got != want {
				fmt.Printf("[rbtree] iteration %d: Insert(%d) mismatch\n", i, k)
				fails++
			}
			reference.Add(k)
		} else {
			want := reference.Contains(k)
			if got := r.RemoveValue(k); got != want {
				fmt.Printf("[rbtree] iteration %d: RemoveValue(%d) mismatch\n", i, k)
				fails++
			}
			reference.Remove(k)
		}
	}
	if r.Len() != int(reference.Size()) {
		fmt.Printf("[rbtree] final Len()=%d want %d\n", r.Len(), reference.Size())
		fails++
	}
	return fails
}
