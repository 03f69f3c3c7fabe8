// File: dijkstra.go
// Role: Dijkstra's shortest-path algorithm on the street mesh.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Edge lengths are non-negative by construction, so no pre-scan is needed.
//   - Edges matched by Options.Avoid are skipped as impassable.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Ties in the heap break on vertex ID so the predecessor map is deterministic.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/townmesh/core"
)

// Dijkstra computes street distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → shortest distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath (nil otherwise); prev[v] == "" for
//     the source and unreachable vertices.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("Dijkstra(%s): %w", cfg.Source, ErrVertexNotFound)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		pos:     make(map[string]core.Vertex, len(vertices)),
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	for _, v := range g.VertexList() {
		r.pos[v.ID] = v
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source → … → target from prev.
// It returns nil when target is unreachable.
func PathTo(prev map[string]string, source, target string) []string {
	if prev == nil {
		return nil
	}
	var rev []string
	for cur := target; cur != ""; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == source {
			out := make([]string, len(rev))
			for i, id := range rev {
				out[len(rev)-1-i] = id
			}
			return out
		}
	}
	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	pos     map[string]core.Vertex
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = +Inf for all v and pushes the source at 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// streets, until the heap empties or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}
	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	pu := r.pos[u].Pos
	for _, v := range neighbors {
		if r.options.Avoid != nil && r.options.Avoid(core.NewEdge(u, v)) {
			continue
		}
		newDist := r.dist[u] + pu.Sub(r.pos[v].Pos).Norm()
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
