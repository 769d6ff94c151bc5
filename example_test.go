package adlib

import (
	"fmt"

	"github.com/TomTonic/adlib/array"
	"github.com/TomTonic/adlib/bytekey"
	"github.com/TomTonic/adlib/hashtable"
	"github.com/TomTonic/adlib/tree/avl"
)

func Example_array() {
	a := array.New[int]()
	a.Add(1)
	a.Add(2)
	a.Add(3)
	fmt.Println(a.Len(), a.Data())
	// Output:
	// 3 [1 2 3]
}

func Example_hashtable() {
	type entry struct {
		key bytekey.Key
		val int
	}
	hasher := func(k bytekey.Key) uint32 { return k.Hash() }
	match := func(k bytekey.Key, e *entry) bool { return e.key.Equal(k) }

	t := hashtable.NewRobinHood(8, 7, hasher, match)
	alice := bytekey.FromString("Alice")
	t.Insert(alice, entry{key: alice, val: 1})

	found := t.Lookup(bytekey.FromString("Alice"))
	fmt.Println(found != nil, found.val)
	// Output:
	// true 1
}

func Example_tree() {
	cmp := func(a, b bytekey.Key) int { return a.Cmp(b) }
	r := avl.New[bytekey.Key](cmp)
	for _, s := range []string{"banana", "apple", "cherry"} {
		r.Insert(bytekey.FromString(s))
	}
	for n := r.First(); n != nil; n = n.Next() {
		fmt.Println(n.Value.String() != "")
	}
	// Output:
	// true
	// true
	// true
}
