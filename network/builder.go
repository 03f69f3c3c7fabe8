// SPDX-License-Identifier: MIT
// Package: townmesh/network
//
// builder.go — the check-and-retry densification loop.

package network

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/townmesh/core"
	"github.com/katalvlaran/townmesh/cycle"
	"github.com/katalvlaran/townmesh/internal/xlog"
)

// Builder turns one seed graph into a Network. It never mutates the seed.
// Independent Builders share no state; one Builder must not run Build
// concurrently with itself when WithRand is set.
type Builder struct {
	seed *core.Graph
	cfg  Config
	log  *slog.Logger
	rng  *rand.Rand

	seedQuarters [][]string
	seedHoles    [][][]r2.Point
	seedEdges    []core.Edge
	components   [][]string
}

// New validates cfg (after WithDefaults) and snapshots the seed.
//
// Errors: ErrNilSeed, ErrInvalidConfig.
// Complexity: O(V + E) plus face extraction of the seed.
func New(seed *core.Graph, cfg Config, opts ...Option) (*Builder, error) {
	if seed == nil {
		return nil, ErrNilSeed
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	b := &Builder{seed: seed.Clone(), cfg: cfg, log: xlog.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	for _, f := range extractFaces(b.seed).bounded {
		b.seedQuarters = append(b.seedQuarters, f.ids)
		b.seedHoles = append(b.seedHoles, outlinePolygons(b.seed, f.holes))
	}
	b.seedEdges = b.seed.Edges()
	for _, comp := range b.seed.Components() {
		if len(comp) > 1 {
			b.components = append(b.components, comp)
		}
	}

	return b, nil
}

// Config returns the resolved configuration.
func (b *Builder) Config() Config { return b.cfg }

// Build runs up to MaxAttempts attempts and returns the first valid Network.
//
// Implementation:
//   - Stage 1: Pick the parent seed (Config.RandomSeed, or one draw from WithRand).
//   - Stage 2: For attempt k, derive its stream, clone the seed and subdivide.
//   - Stage 3: Accept the attempt only if the mesh is planar, every seed
//     edge survives as a straight chain of pieces, and every seed component
//     (hence every seed cycle) is still connected.
//   - Stage 4: Derive quarters and the exclusion overlay from the accepted graph.
//
// Errors: ErrUnsatisfiableMesh after MaxAttempts rejections; no graph is
// returned in that case.
func (b *Builder) Build() (*Network, error) {
	parent := b.cfg.RandomSeed
	if b.rng != nil {
		parent = b.rng.Int63()
	}

	var last error
	for k := 0; k < b.cfg.MaxAttempts; k++ {
		rng := attemptRNG(parent, k)
		g, sp, holes, splits, err := b.attempt(rng)
		if err == nil {
			err = b.check(g)
		}
		if err != nil {
			last = err
			b.log.Warn("network: attempt rejected", slog.Int("attempt", k), slog.Any("err", err))
			continue
		}
		n := newNetwork(g, sp, holes, b.seedQuarters, b.cfg.MinLotCompactness, k+1)
		b.log.Info("network: built",
			slog.Int("attempts", k+1),
			slog.Int("splits", splits),
			slog.Int("vertices", g.VertexCount()),
			slog.Int("edges", g.EdgeCount()),
			slog.Int("quarters", len(n.quarters)),
			slog.Int("excluded", len(n.excluded)))
		return n, nil
	}

	return nil, fmt.Errorf("Build: %d attempts: %w: %w", b.cfg.MaxAttempts, ErrUnsatisfiableMesh, last)
}

// attempt subdivides a clone of the seed with rng. The returned holes are
// indexed like the splitter's cycles.
func (b *Builder) attempt(rng *rand.Rand) (*core.Graph, *cycle.Splitter, [][][]r2.Point, int, error) {
	g := b.seed.Clone()
	sp, err := cycle.NewSplitter(g, b.seedQuarters...)
	if err != nil {
		return nil, nil, nil, 0, fmt.Errorf("attempt: %w", err)
	}
	holes := append([][][]r2.Point(nil), b.seedHoles...)
	prob := *b.cfg.SubdivisionProbability

	root := make([]int, sp.CycleCount())
	for i := range root {
		root[i] = i
	}
	used := make([]int, len(root))
	work := make([]int, 0, len(root))
	for i := range root {
		work = append(work, i)
	}

	splits := 0
	for head := 0; head < len(work); head++ {
		i := work[head]
		if rng.Float64() >= prob || used[root[i]] >= b.cfg.MaxSplitsPerQuarter {
			continue
		}
		j, ok, err := splitQuarter(sp, i, holes[i], b.cfg.MinimumEdgeLength, rng)
		if err != nil {
			return nil, nil, nil, 0, fmt.Errorf("attempt: quarter %d: %w", i, err)
		}
		if !ok {
			b.log.Debug("network: quarter kept", slog.Int("quarter", i))
			continue
		}
		holes = append(holes, nil)
		if len(holes[i]) > 0 {
			half, err := sp.Polygon(j)
			if err != nil {
				return nil, nil, nil, 0, fmt.Errorf("attempt: quarter %d: %w", j, err)
			}
			holes[i], holes[j] = splitHoles(holes[i], half)
		}
		root = append(root, root[i])
		used[root[i]]++
		splits++
		work = append(work, i, j)
	}

	return g, sp, holes, splits, nil
}

// check is the global acceptance test of an attempt.
func (b *Builder) check(g *core.Graph) error {
	if err := g.ValidatePlanar(); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	for _, e := range b.seedEdges {
		if !g.HasChain(e.U, e.V) {
			return fmt.Errorf("check: seed edge %s lost: %w", e, ErrUnsatisfiableMesh)
		}
	}
	for _, comp := range b.components {
		if !g.Connected(comp...) {
			return fmt.Errorf("check: seed component at %s disconnected: %w", comp[0], ErrUnsatisfiableMesh)
		}
	}
	return nil
}

// outlinePolygons resolves outline walks to positions in g.
func outlinePolygons(g *core.Graph, walks [][]string) [][]r2.Point {
	out := make([][]r2.Point, 0, len(walks))
	for _, w := range walks {
		poly := make([]r2.Point, len(w))
		for i, id := range w {
			poly[i], _ = g.Position(id)
		}
		out = append(out, poly)
	}
	return out
}
