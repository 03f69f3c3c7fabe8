// SPDX-License-Identifier: MIT
// Package: townmesh/network
//
// faces.go — planar face extraction by half-edge walk.
//
// Determinism:
//   - Walks start from vertices in Vertices() order and neighbors in
//     ascending ID order, so faces come out in a stable order.

package network

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/geom"
)

// face is one bounded face: a simple counterclockwise boundary plus the
// outer walks of the components nested directly inside it.
type face struct {
	ids   []string
	holes [][]string
}

// faceSet is the result of one face extraction.
type faceSet struct {
	// bounded are the quarters.
	bounded []face
	// outer are the edges on an unbounded (clockwise) face walk, including
	// the outlines of nested components.
	outer map[core.Edge]struct{}
}

// extractFaces finds the faces of the embedded graph g.
//
// Implementation:
//   - Stage 1: Prune dangling trees (repeatedly drop vertices of degree ≤ 1).
//   - Stage 2: Sort every vertex's neighbors counterclockwise by angle.
//   - Stage 3: Walk each unvisited half-edge u→v, continuing at v with the
//     neighbor just clockwise of u, which keeps the face on the left.
//   - Stage 4: Negative-area walks are outer boundaries. A positive-area
//     walk is a quarter when it is simple; the outer walks of components
//     lying inside it become its holes. A walk holding a vertex covered by
//     none of its holes is dropped.
//
// Complexity: O(V·d log d + E + F·V) for the containment tests.
func extractFaces(g *core.Graph) faceSet {
	pos := make(map[string]r2.Point, g.VertexCount())
	for _, v := range g.VertexList() {
		pos[v.ID] = v.Pos
	}

	adj := pruneDangling(g)
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rot := make(map[string][]string, len(adj))
	for _, v := range ids {
		nb := append([]string(nil), adj[v]...)
		pv := pos[v]
		sort.SliceStable(nb, func(i, j int) bool {
			return angleOf(pos[nb[i]].Sub(pv)) < angleOf(pos[nb[j]].Sub(pv))
		})
		rot[v] = nb
	}

	fs := faceSet{outer: make(map[core.Edge]struct{})}
	var candidates, outlines [][]string
	visited := make(map[[2]string]bool)
	for _, u := range ids {
		for _, v := range adj[u] {
			if visited[[2]string{u, v}] {
				continue
			}
			walk := walkFace(rot, visited, u, v)
			if geom.SignedArea(positions(walk, pos)) <= 0 {
				for i := range walk {
					fs.outer[core.NewEdge(walk[i], walk[(i+1)%len(walk)])] = struct{}{}
				}
				outlines = append(outlines, walk)
				continue
			}
			if isSimple(walk) {
				candidates = append(candidates, walk)
			}
		}
	}

	for _, walk := range candidates {
		holes := nestedOutlines(walk, outlines, pos)
		if holdsOtherVertex(walk, holes, ids, pos) {
			continue
		}
		fs.bounded = append(fs.bounded, face{ids: walk, holes: holes})
	}

	return fs
}

func positions(ids []string, pos map[string]r2.Point) []r2.Point {
	pts := make([]r2.Point, len(ids))
	for i, id := range ids {
		pts[i] = pos[id]
	}
	return pts
}

// nestedOutlines returns the outer walks lying inside walk and inside no
// other such walk.
func nestedOutlines(walk []string, outlines [][]string, pos map[string]r2.Point) [][]string {
	poly := positions(walk, pos)
	on := make(map[string]bool, len(walk))
	for _, id := range walk {
		on[id] = true
	}
	var inside [][]string
	for _, o := range outlines {
		if !on[o[0]] && geom.ContainsPoint(poly, pos[o[0]]) {
			inside = append(inside, o)
		}
	}

	var direct [][]string
	for i, o := range inside {
		nested := false
		for j, other := range inside {
			if i != j && geom.ContainsPoint(positions(other, pos), pos[o[0]]) {
				nested = true
				break
			}
		}
		if !nested {
			direct = append(direct, o)
		}
	}
	return direct
}

// walkFace follows half-edges from u→v until it returns to u→v.
func walkFace(rot map[string][]string, visited map[[2]string]bool, u, v string) []string {
	var walk []string
	start := [2]string{u, v}
	cur := start
	for {
		visited[cur] = true
		walk = append(walk, cur[0])
		from, at := cur[0], cur[1]
		nb := rot[at]
		k := indexOf(nb, from)
		next := nb[(k-1+len(nb))%len(nb)]
		cur = [2]string{at, next}
		if cur == start {
			return walk
		}
	}
}

// pruneDangling returns sorted adjacency lists of g without its dangling trees.
func pruneDangling(g *core.Graph) map[string][]string {
	deg := make(map[string]int)
	nbs := make(map[string][]string)
	for _, id := range g.Vertices() {
		nb, _ := g.NeighborIDs(id)
		nbs[id] = nb
		deg[id] = len(nb)
	}
	var queue []string
	for _, id := range g.Vertices() {
		if deg[id] <= 1 {
			queue = append(queue, id)
		}
	}
	removed := make(map[string]bool)
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		if removed[v] {
			continue
		}
		removed[v] = true
		for _, w := range nbs[v] {
			if removed[w] {
				continue
			}
			deg[w]--
			if deg[w] == 1 {
				queue = append(queue, w)
			}
		}
	}

	adj := make(map[string][]string, len(nbs)-len(removed))
	for id, nb := range nbs {
		if removed[id] {
			continue
		}
		kept := make([]string, 0, len(nb))
		for _, w := range nb {
			if !removed[w] {
				kept = append(kept, w)
			}
		}
		adj[id] = kept
	}
	return adj
}

// angleOf maps a direction to [0, 2π).
func angleOf(d r2.Point) float64 {
	a := math.Atan2(d.Y, d.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func isSimple(walk []string) bool {
	seen := make(map[string]bool, len(walk))
	for _, id := range walk {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	return len(walk) >= 3
}

// holdsOtherVertex reports whether any cycle vertex (ids, dangling trees
// already pruned) off the walk lies inside it without being on or inside
// one of its holes.
func holdsOtherVertex(walk []string, holes [][]string, ids []string, pos map[string]r2.Point) bool {
	on := make(map[string]bool, len(walk))
	for _, id := range walk {
		on[id] = true
	}
	for _, h := range holes {
		for _, id := range h {
			on[id] = true
		}
	}
	poly := positions(walk, pos)
	holePolys := make([][]r2.Point, len(holes))
	for i, h := range holes {
		holePolys[i] = positions(h, pos)
	}
	box := geom.BoundingRect(poly)
	for _, id := range ids {
		p := pos[id]
		if on[id] || !box.ContainsPoint(p) || !geom.ContainsPoint(poly, p) {
			continue
		}
		if !insideAny(holePolys, p) {
			return true
		}
	}
	return false
}

// insideAny reports whether p lies strictly inside one of polys.
func insideAny(polys [][]r2.Point, p r2.Point) bool {
	for _, poly := range polys {
		if geom.ContainsPoint(poly, p) {
			return true
		}
	}
	return false
}
