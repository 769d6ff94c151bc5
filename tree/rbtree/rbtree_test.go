package rbtree

import (
	"math/rand"
	"testing"
)

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

// checkInvariants walks the whole tree verifying parent pointers, ordering,
// the no-red-red-child rule, and equal black height on every path,
// mirroring the debug checks implied by original_source/rb_tree.c's
// invariants (never red parent over red child; every path same black
// count).
func checkInvariants[T any](t *testing.T, r *Root[T], cmp func(a, b T) int) {
	t.Helper()
	if r.node != nil && r.node.color != black {
		t.Fatal("root is not black")
	}
	var count int
	var walk func(n *Node[T]) int
	walk = func(n *Node[T]) int {
		if n == nil {
			return 1
		}
		count++
		if n.color == red {
			if isRed(n.left) || isRed(n.right) {
				t.Fatalf("red node %v has a red child", n.Value)
			}
		}
		if n.left != nil {
			if n.left.parent != n {
				t.Fatalf("left child's parent pointer broken at value %v", n.Value)
			}
			if cmp(n.left.Value, n.Value) >= 0 {
				t.Fatalf("left child %v not less than parent %v", n.left.Value, n.Value)
			}
		}
		if n.right != nil {
			if n.right.parent != n {
				t.Fatalf("right child's parent pointer broken at value %v", n.Value)
			}
			if cmp(n.right.Value, n.Value) <= 0 {
				t.Fatalf("right child %v not greater than parent %v", n.right.Value, n.Value)
			}
		}
		lh := walk(n.left)
		rh := walk(n.right)
		if lh != rh {
			t.Fatalf("value %v: unequal black heights %d vs %d", n.Value, lh, rh)
		}
		if n.color == black {
			return lh + 1
		}
		return lh
	}
	walk(r.node)
	if count != r.count {
		t.Fatalf("tree reports %d nodes, walk found %d", r.count, count)
	}
}

func TestInsertFindRemove(t *testing.T) {
	r := New[int](intCmp)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
		if _, inserted := r.Insert(v); !inserted {
			t.Fatalf("Insert(%d) reported duplicate", v)
		}
	}
	checkInvariants(t, r, intCmp)
	for v := 0; v <= 9; v++ {
		if r.Find(v) == nil {
			t.Fatalf("Find(%d) missing", v)
		}
	}
	if !r.RemoveValue(4) {
		t.Fatal("RemoveValue(4) reported missing")
	}
	checkInvariants(t, r, intCmp)
	if r.Find(4) != nil {
		t.Fatal("4 still findable after removal")
	}
}

// findTwoChildNode returns some node in the subtree rooted at n that has
// both children, or nil if none does.
func findTwoChildNode(n *Node[int]) *Node[int] {
	if n == nil {
		return nil
	}
	if n.Left() != nil && n.Right() != nil {
		return n
	}
	if f := findTwoChildNode(n.Left()); f != nil {
		return f
	}
	return findTwoChildNode(n.Right())
}

// TestRemoveTwoChildrenKeepsSuccessorNodeAttached removes a node with two
// children and confirms that the in-order successor's own *Node[int] stays
// attached to the tree at the removed node's former position, rather than
// the removal copying the successor's Value into the removed node and
// detaching the successor object itself: node pointers must stay stable for
// the lifetime of the node.
func TestRemoveTwoChildrenKeepsSuccessorNodeAttached(t *testing.T) {
	r := New[int](intCmp)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
		r.Insert(v)
	}
	n := findTwoChildNode(r.Root())
	if n == nil {
		t.Fatal("test setup: no node with two children found")
	}
	succ := n.Next()
	succVal := succ.Value

	r.Remove(n)
	checkInvariants(t, r, intCmp)
	if succ.Value != succVal {
		t.Fatalf("successor node's Value changed to %d, want unchanged %d", succ.Value, succVal)
	}
	if r.Find(succVal) != succ {
		t.Fatal("successor node is no longer reachable from the tree at its new position")
	}
}

func TestInsertRejectsDuplicate(t *testing.T) {
	r := New[int](intCmp)
	r.Insert(1)
	_, inserted := r.Insert(1)
	if inserted {
		t.Fatal("duplicate insert reported success")
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
}

func TestInOrderTraversalMatchesSortedOrder(t *testing.T) {
	r := New[int](intCmp)
	rng := rand.New(rand.NewSource(5))
	values := rng.Perm(500)
	for _, v := range values {
		r.Insert(v)
	}
	checkInvariants(t, r, intCmp)

	prev := -1
	count := 0
	for n := r.First(); n != nil; n = n.Next() {
		if n.Value <= prev {
			t.Fatalf("traversal out of order: %d after %d", n.Value, prev)
		}
		prev = n.Value
		count++
	}
	if count != 500 {
		t.Fatalf("traversal visited %d nodes, want 500", count)
	}
}

func TestRandomizedInsertRemoveMaintainsInvariants(t *testing.T) {
	const n = 20_000
	r := New[int](intCmp)
	rng := rand.New(rand.NewSource(13))

	insertOrder := rng.Perm(n)
	for _, v := range insertOrder {
		r.Insert(v)
	}
	checkInvariants(t, r, intCmp)
	if r.Len() != n {
		t.Fatalf("Len() = %d, want %d", r.Len(), n)
	}

	removeOrder := rng.Perm(n)
	for i, v := range removeOrder {
		if !r.RemoveValue(v) {
			t.Fatalf("RemoveValue(%d) reported missing", v)
		}
		if i%2000 == 0 {
			checkInvariants(t, r, intCmp)
		}
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d after removing everything, want 0", r.Len())
	}
}

func TestBlackHeightStaysLogarithmic(t *testing.T) {
	const n = 10_000
	r := New[int](intCmp)
	for i := 0; i < n; i++ {
		r.Insert(i)
	}
	bh := BlackHeight(r.Root())
	if bh == -1 {
		t.Fatal("black-height invariant violated")
	}
	if bh > 20 {
		t.Fatalf("black height %d, expected logarithmic (<=20) for n=%d", bh, n)
	}
}
