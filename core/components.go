package core

// Components finds the connected components of g.
// Each component lists vertex IDs in BFS discovery order; components are
// ordered by their smallest vertex ID, so the result is deterministic.
//
// Time:   O(V log V + E log d).
// Memory: O(V) for visited flags and output.
func (g *Graph) Components() [][]string {
	verts := g.Vertices()
	seen := make(map[string]bool, len(verts))
	var comps [][]string

	for _, start := range verts {
		if seen[start] {
			continue
		}
		queue := []string{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nbs, err := g.NeighborIDs(u)
			if err != nil {
				continue // vertex vanished concurrently; not reachable in single-writer use
			}
			for _, v := range nbs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether all the given vertices lie in one component.
// Unknown IDs make the result false; zero or one ID is trivially connected.
// Complexity: O(V + E) worst case.
func (g *Graph) Connected(ids ...string) bool {
	if len(ids) == 0 {
		return true
	}
	if !g.HasVertex(ids[0]) {
		return false
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !g.HasVertex(id) {
			return false
		}
		want[id] = true
	}

	seen := map[string]bool{ids[0]: true}
	queue := []string{ids[0]}
	found := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if want[u] {
			found++
			if found == len(want) {
				return true
			}
		}
		nbs, _ := g.NeighborIDs(u)
		for _, v := range nbs {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return found == len(want)
}
