package dsu

// linkBy selects which tree becomes the root on Union.
type linkBy int

const (
	byRank linkBy = iota
	bySize
)

// DisjointSet partitions the elements 0..n-1 into mergeable sets.
// Each element starts in its own singleton set.
type DisjointSet struct {
	parent []int
	rank   []int
	size   []int
	count  int
	link   linkBy
}

// New returns a DisjointSet of n singleton sets using union by rank.
func New(n int) *DisjointSet { return newSet(n, byRank) }

// NewBySize returns a DisjointSet of n singleton sets using union by size.
func NewBySize(n int) *DisjointSet { return newSet(n, bySize) }

func newSet(n int, link linkBy) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
		link:   link,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the representative of x's set, compressing the path as it goes.
func (d *DisjointSet) Find(x int) int {
	// Iterative two-pass compression: walk up to the root, pointing each
	// visited node at its grandparent.
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing a and b.
// It reports whether the sets were previously disjoint.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	// Keep the heavier tree as root.
	switch d.link {
	case bySize:
		if d.size[ra] < d.size[rb] {
			ra, rb = rb, ra
		}
	default:
		if d.rank[ra] < d.rank[rb] {
			ra, rb = rb, ra
		}
	}

	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }

// SizeOf returns the number of elements in x's set.
func (d *DisjointSet) SizeOf(x int) int { return d.size[d.Find(x)] }

// Count returns the current number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Len returns the total number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }
