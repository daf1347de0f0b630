// Package connect derives, for every entity of a current-shape canvas, the
// set of customer segments it is transitively connected to. The renderer
// consumes this to assign grouping colors; an empty set means the entity is
// orphaned.
//
// Segment sets are roaring bitmaps over interned segment ids. The relation
// is acyclic by construction, so the build is a fixed sequence of layered
// passes over previously computed results — no search, no cycle detection.
package connect

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
	"github.com/canvaskit/canvaslint/internal/canvas"
)

// Graph maps entity ids to customer-segment sets. Absence of a key is
// equivalent to an empty set.
type Graph struct {
	sets     map[string]*roaring.Bitmap
	segIDs   map[string]uint32
	segNames []string
}

// Build evaluates the five layers in dependency order:
//
//  1. every customer segment connects to itself;
//  2. every value proposition named by a fit collects that fit's segments;
//  3. fits, channels, relationships and revenue streams connect to the
//     segments their own relation block names;
//  4. key resources and activities collect through their value propositions;
//  5. partnerships and costs collect through resources and activities.
//
// Steps 4 and 5 read only the sets steps 2 and 4 produced, so evaluation is
// two-phase rather than recursive. Ids that are referenced but never
// declared still receive sets — downstream consumers must not crash on
// dangling-but-locally-consistent references.
func Build(c *canvas.Canvas) *Graph {
	g := &Graph{
		sets:   make(map[string]*roaring.Bitmap),
		segIDs: make(map[string]uint32),
	}

	// Step 1: reflexive base case, which also fixes the interning order.
	for _, cs := range c.CustomerSegments {
		g.set(cs.ID).Add(g.intern(cs.ID))
	}

	// Step 2: propositions via fits. Declared propositions without fits
	// keep an explicit empty set.
	for _, vp := range c.ValuePropositions {
		g.set(vp.ID)
	}
	for _, fit := range c.Fits {
		segs := g.internAll(fit.For.CustomerSegments)
		for _, vp := range fit.For.ValuePropositions {
			g.set(vp).Or(segs)
		}
	}

	// Step 3: direct segment links.
	for _, fit := range c.Fits {
		g.set(fit.ID).Or(g.internAll(fit.For.CustomerSegments))
	}
	for _, ch := range c.Channels {
		g.set(ch.ID).Or(g.internAll(ch.For.CustomerSegments))
	}
	for _, cr := range c.CustomerRelationships {
		g.set(cr.ID).Or(g.internAll(cr.For.CustomerSegments))
	}
	for _, rs := range c.RevenueStreams {
		g.set(rs.ID).Or(g.internAll(rs.From.CustomerSegments))
	}

	// Step 4: resources and activities via their propositions.
	for _, kr := range c.KeyResources {
		g.unionInto(kr.ID, kr.For.ValuePropositions)
	}
	for _, ka := range c.KeyActivities {
		g.unionInto(ka.ID, ka.For.ValuePropositions)
	}

	// Step 5: partnerships and costs via resources and activities,
	// consuming step 4's output.
	for _, kp := range c.KeyPartnerships {
		g.unionInto(kp.ID, kp.For.KeyResources)
		g.unionInto(kp.ID, kp.For.KeyActivities)
	}
	for _, cost := range c.Costs {
		g.unionInto(cost.ID, cost.For.KeyResources)
		g.unionInto(cost.ID, cost.For.KeyActivities)
	}

	return g
}

// SegmentsOf returns the sorted customer-segment ids connected to id.
// Unknown ids yield an empty slice.
func (g *Graph) SegmentsOf(id string) []string {
	bm, ok := g.sets[id]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, g.segNames[it.Next()])
	}
	sort.Strings(out)
	return out
}

// AsMap flattens the graph for serialization: entity id to sorted segment
// ids, every known entity present even when its set is empty.
func (g *Graph) AsMap() map[string][]string {
	out := make(map[string][]string, len(g.sets))
	for id := range g.sets {
		out[id] = g.SegmentsOf(id)
	}
	return out
}

// Entities returns all ids with a set, sorted.
func (g *Graph) Entities() []string {
	ids := make([]string, 0, len(g.sets))
	for id := range g.sets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (g *Graph) set(id string) *roaring.Bitmap {
	bm, ok := g.sets[id]
	if !ok {
		bm = roaring.New()
		g.sets[id] = bm
	}
	return bm
}

func (g *Graph) intern(segID string) uint32 {
	if n, ok := g.segIDs[segID]; ok {
		return n
	}
	n := uint32(len(g.segNames))
	g.segIDs[segID] = n
	g.segNames = append(g.segNames, segID)
	return n
}

func (g *Graph) internAll(segIDs []string) *roaring.Bitmap {
	bm := roaring.New()
	for _, s := range segIDs {
		bm.Add(g.intern(s))
	}
	return bm
}

// unionInto ors the already-computed sets of refs into id's set. Refs
// without a set contribute nothing.
func (g *Graph) unionInto(id string, refs []string) {
	dst := g.set(id)
	for _, ref := range refs {
		if src, ok := g.sets[ref]; ok && src != dst {
			dst.Or(src)
		}
	}
}
