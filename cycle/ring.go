package cycle

import "github.com/katalvlaran/townmesh/core"

// ring is one cycle stored as a doubly linked list over vertex IDs.
// start is a stable entry point for ordered walks.
type ring struct {
	start string
	next  map[string]string
	prev  map[string]string
	size  int
}

func newRing(ids []string) *ring {
	r := &ring{
		start: ids[0],
		next:  make(map[string]string, len(ids)),
		prev:  make(map[string]string, len(ids)),
		size:  len(ids),
	}
	for i, id := range ids {
		nx := ids[(i+1)%len(ids)]
		r.next[id] = nx
		r.prev[nx] = id
	}
	return r
}

// walk returns the vertex IDs from `from` following next until `to`
// (inclusive on both ends).
func (r *ring) walk(from, to string) []string {
	out := []string{from}
	for cur := from; cur != to; {
		cur = r.next[cur]
		out = append(out, cur)
	}
	return out
}

// order returns the full cycle starting at r.start.
func (r *ring) order() []string {
	return r.walk(r.start, r.prev[r.start])
}

// edges returns the cycle's edges in traversal order.
func (r *ring) edges() []core.Edge {
	out := make([]core.Edge, 0, r.size)
	cur := r.start
	for i := 0; i < r.size; i++ {
		nx := r.next[cur]
		out = append(out, core.NewEdge(cur, nx))
		cur = nx
	}
	return out
}

// insertBetween splices chain between u and its successor v. The chain is
// given in u→v order.
func (r *ring) insertBetween(u, v string, chain []string) {
	prev := u
	for _, id := range chain {
		r.next[prev] = id
		r.prev[id] = prev
		prev = id
	}
	r.next[prev] = v
	r.prev[v] = prev
	r.size += len(chain)
}
