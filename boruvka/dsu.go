// SPDX-License-Identifier: MIT
//
// File: dsu.go
// Role: Disjoint-set forest over vertex indices (path halving, union by rank).

package boruvka

// dsu tracks the components of the tree under construction.
type dsu struct {
	parent []int
	rank   []int
	sets   int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n), sets: n}
	for v := range d.parent {
		d.parent[v] = v
	}

	return d
}

// find returns the representative of u, halving the path on the way up.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets holding u and v; false if they were already one set.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}
	d.sets--

	return true
}
