// Package rangemap provides an ordered mapping from disjoint, non-empty
// address intervals to values.
//
// The map keeps its entries canonical through a Policy: whenever an insert
// makes two entries adjacent, the policy decides whether they coalesce into
// one entry, and whenever an insert or erase cuts through an existing entry,
// the policy produces the value for the piece that is carved off. The map
// itself stays agnostic to what the values mean, so it can back address
// spaces, allocation tables, or any other interval-keyed structure.
package rangemap

import (
	"math"

	"github.com/google/btree"

	"github.com/memtopo/memspace/interval"
)

// A Node is one entry of the map: a non-empty interval and its value.
type Node[V any] struct {
	Interval interval.Interval
	Value    V
}

// A Policy supplies the structural operations the map invokes to keep
// adjacent entries canonical.
//
// All three operations are only ever called with non-empty intervals. Merge
// is only called when the left interval ends immediately before the right
// one begins. Split and Truncate are only called with a split point strictly
// inside the interval. Implementations should treat violated preconditions
// as fatal.
type Policy[V any] interface {
	// Merge reports whether the two adjacent entries represent one logical
	// run. When it returns true the entries are replaced by a single entry
	// spanning both intervals, keeping the left value.
	Merge(leftIv interval.Interval, left V, rightIv interval.Interval, right V) bool

	// Split returns the value for the right-hand part of an entry divided
	// at splitPoint. The left part keeps the original value.
	Split(iv interval.Interval, v V, splitPoint uint64) V

	// Truncate validates shrinking an entry from the right at splitPoint.
	// The kept left part retains the original value.
	Truncate(iv interval.Interval, v V, splitPoint uint64)
}

// NoMergePolicy is the identity policy: entries never coalesce and values
// carry across splits unchanged.
type NoMergePolicy[V any] struct{}

// Merge always returns false.
func (NoMergePolicy[V]) Merge(interval.Interval, V, interval.Interval, V) bool {
	return false
}

// Split returns the value unchanged.
func (NoMergePolicy[V]) Split(_ interval.Interval, v V, _ uint64) V {
	return v
}

// Truncate does nothing.
func (NoMergePolicy[V]) Truncate(interval.Interval, V, uint64) {}

// A Map is an ordered mapping from disjoint, non-empty intervals to values.
// Entries are kept in ascending address order and are coalesced or divided
// by the map's policy as inserts and erases reshape them.
//
// A Map is not safe for concurrent mutation.
type Map[V any] struct {
	tree   *btree.BTreeG[Node[V]]
	policy Policy[V]
}

const btreeDegree = 8

// New creates an empty map governed by the given policy. A nil policy
// behaves like NoMergePolicy.
func New[V any](policy Policy[V]) *Map[V] {
	if policy == nil {
		policy = NoMergePolicy[V]{}
	}
	return &Map[V]{
		tree: btree.NewG(btreeDegree, func(a, b Node[V]) bool {
			return a.Interval.Lower() < b.Interval.Lower()
		}),
		policy: policy,
	}
}

func pivot[V any](addr uint64) Node[V] {
	return Node[V]{Interval: interval.Single(addr)}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.tree.Len()
}

// Clear removes all entries.
func (m *Map[V]) Clear() {
	m.tree.Clear(false)
}

// Copy returns a map with the same entries and policy. Values are copied as
// values; what they reference is shared.
func (m *Map[V]) Copy() *Map[V] {
	return &Map[V]{tree: m.tree.Clone(), policy: m.policy}
}

// Find returns the entry whose interval contains addr.
func (m *Map[V]) Find(addr uint64) (Node[V], bool) {
	var out Node[V]
	found := false

	m.tree.DescendLessOrEqual(pivot[V](addr), func(n Node[V]) bool {
		if n.Interval.Contains(addr) {
			out = n
			found = true
		}
		return false
	})

	return out, found
}

// FindNext returns the entry whose interval contains addr, or the first
// entry beginning after addr if no entry contains it.
func (m *Map[V]) FindNext(addr uint64) (Node[V], bool) {
	if n, ok := m.Find(addr); ok {
		return n, true
	}

	var out Node[V]
	found := false

	m.tree.AscendGreaterOrEqual(pivot[V](addr), func(n Node[V]) bool {
		out = n
		found = true
		return false
	})

	return out, found
}

// Ascend visits every entry in ascending address order until fn returns
// false.
func (m *Map[V]) Ascend(fn func(Node[V]) bool) {
	m.tree.Ascend(fn)
}

// AscendFrom visits entries in ascending order, starting with the entry
// containing addr (if any) and continuing with every entry beginning after
// addr, until fn returns false.
func (m *Map[V]) AscendFrom(addr uint64, fn func(Node[V]) bool) {
	if n, ok := m.Find(addr); ok && n.Interval.Lower() < addr {
		if !fn(n) {
			return
		}
	}
	m.tree.AscendGreaterOrEqual(pivot[V](addr), fn)
}

// Insert maps iv to v. Parts of existing entries covered by iv are replaced;
// entries partially covered are divided at the boundary through the policy.
// The new entry is then coalesced with each neighbor the policy accepts.
// Inserting an empty interval does nothing.
func (m *Map[V]) Insert(iv interval.Interval, v V) {
	if iv.IsEmpty() {
		return
	}

	m.Erase(iv)
	node := Node[V]{Interval: iv, Value: v}

	if iv.Lower() > 0 {
		if left, ok := m.Find(iv.Lower() - 1); ok && left.Interval.IsLeftAdjacent(node.Interval) {
			if m.policy.Merge(left.Interval, left.Value, node.Interval, node.Value) {
				m.tree.Delete(left)
				node = Node[V]{
					Interval: left.Interval.Hull(node.Interval),
					Value:    left.Value,
				}
			}
		}
	}

	if iv.Upper() < math.MaxUint64 {
		if right, ok := m.Find(iv.Upper() + 1); ok && node.Interval.IsLeftAdjacent(right.Interval) {
			if m.policy.Merge(node.Interval, node.Value, right.Interval, right.Value) {
				m.tree.Delete(right)
				node.Interval = node.Interval.Hull(right.Interval)
			}
		}
	}

	m.tree.ReplaceOrInsert(node)
}

// Erase unmaps iv. Entries partially covered by iv are divided at the
// boundary through the policy and their uncovered remainders are kept.
// Erasing an empty interval does nothing.
func (m *Map[V]) Erase(iv interval.Interval) {
	if iv.IsEmpty() {
		return
	}

	var overlapping []Node[V]
	m.AscendFrom(iv.Lower(), func(n Node[V]) bool {
		if !n.Interval.Overlaps(iv) {
			return false
		}
		overlapping = append(overlapping, n)
		return true
	})

	for _, n := range overlapping {
		m.tree.Delete(n)
	}

	for _, n := range overlapping {
		if n.Interval.Lower() < iv.Lower() {
			rightValue := m.policy.Split(n.Interval, n.Value, iv.Lower())
			m.policy.Truncate(n.Interval, n.Value, iv.Lower())

			m.tree.ReplaceOrInsert(Node[V]{
				Interval: interval.New(n.Interval.Lower(), iv.Lower()-1),
				Value:    n.Value,
			})

			n = Node[V]{
				Interval: interval.New(iv.Lower(), n.Interval.Upper()),
				Value:    rightValue,
			}
		}

		if n.Interval.Upper() > iv.Upper() {
			rightValue := m.policy.Split(n.Interval, n.Value, iv.Upper()+1)

			m.tree.ReplaceOrInsert(Node[V]{
				Interval: interval.New(iv.Upper()+1, n.Interval.Upper()),
				Value:    rightValue,
			})
		}
	}
}
