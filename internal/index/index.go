// Package index builds the per-document lookup structures the linter
// resolves references against. Building is a single pass over the document;
// absent optional arrays are simply empty sets. The index is treated as
// read-only once built and is passed explicitly to every rule — there is no
// package-level state.
package index

import "github.com/canvaskit/canvaslint/internal/canvas"

// Profile holds the identifier sets of one customer segment's profile.
type Profile struct {
	Jobs  map[string]bool
	Pains map[string]bool
	Gains map[string]bool
}

// ValueMap holds the identifier sets of one value proposition's value map.
// Relievers and Creators stay empty for legacy documents, where relief and
// creation are inline on fits rather than declared entities.
type ValueMap struct {
	Products  map[string]bool
	Relievers map[string]bool
	Creators  map[string]bool
}

// Index is the resolved lookup structure for one document snapshot.
type Index struct {
	Segments     map[string]*Profile
	Propositions map[string]*ValueMap
	Resources    map[string]bool
	Activities   map[string]bool
}

// HasSegment reports whether id is a declared customer segment.
func (ix *Index) HasSegment(id string) bool {
	_, ok := ix.Segments[id]
	return ok
}

// HasProposition reports whether id is a declared value proposition.
func (ix *Index) HasProposition(id string) bool {
	_, ok := ix.Propositions[id]
	return ok
}

// IsResourceOrActivity reports whether id is a declared key resource or key
// activity. Partnerships and costs may target either kind, so their rules
// check both sets with one predicate.
func (ix *Index) IsResourceOrActivity(id string) bool {
	return ix.Resources[id] || ix.Activities[id]
}

// Build indexes a current-shape canvas.
func Build(c *canvas.Canvas) *Index {
	ix := newIndex()
	for _, cs := range c.CustomerSegments {
		ix.Segments[cs.ID] = profileOf(cs)
	}
	for _, vp := range c.ValuePropositions {
		vm := &ValueMap{
			Products:  make(map[string]bool, len(vp.ProductsServices)),
			Relievers: make(map[string]bool, len(vp.PainRelievers)),
			Creators:  make(map[string]bool, len(vp.GainCreators)),
		}
		for _, ps := range vp.ProductsServices {
			vm.Products[ps.ID] = true
		}
		for _, pr := range vp.PainRelievers {
			vm.Relievers[pr.ID] = true
		}
		for _, gc := range vp.GainCreators {
			vm.Creators[gc.ID] = true
		}
		ix.Propositions[vp.ID] = vm
	}
	for _, kr := range c.KeyResources {
		ix.Resources[kr.ID] = true
	}
	for _, ka := range c.KeyActivities {
		ix.Activities[ka.ID] = true
	}
	return ix
}

// BuildLegacy indexes a legacy-shape canvas. The nesting differs (no
// reliever/creator entities, flat resource fields), the result shape does
// not.
func BuildLegacy(c *canvas.LegacyCanvas) *Index {
	ix := newIndex()
	for _, cs := range c.CustomerSegments {
		ix.Segments[cs.ID] = profileOf(cs)
	}
	for _, vp := range c.ValuePropositions {
		vm := &ValueMap{
			Products:  make(map[string]bool, len(vp.ProductsServices)),
			Relievers: map[string]bool{},
			Creators:  map[string]bool{},
		}
		for _, ps := range vp.ProductsServices {
			vm.Products[ps.ID] = true
		}
		ix.Propositions[vp.ID] = vm
	}
	for _, kr := range c.KeyResources {
		ix.Resources[kr.ID] = true
	}
	for _, ka := range c.KeyActivities {
		ix.Activities[ka.ID] = true
	}
	return ix
}

func newIndex() *Index {
	return &Index{
		Segments:     make(map[string]*Profile),
		Propositions: make(map[string]*ValueMap),
		Resources:    make(map[string]bool),
		Activities:   make(map[string]bool),
	}
}

func profileOf(cs canvas.CustomerSegment) *Profile {
	p := &Profile{
		Jobs:  make(map[string]bool, len(cs.Jobs)),
		Pains: make(map[string]bool, len(cs.Pains)),
		Gains: make(map[string]bool, len(cs.Gains)),
	}
	for _, j := range cs.Jobs {
		p.Jobs[j.ID] = true
	}
	for _, pa := range cs.Pains {
		p.Pains[pa.ID] = true
	}
	for _, g := range cs.Gains {
		p.Gains[g.ID] = true
	}
	return p
}
