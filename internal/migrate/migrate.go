// Package migrate rewrites a legacy-shape canvas into the current shape in
// one pass: flat reference fields become for/from relation blocks, the
// cost_structure wrapper unnests, and inline relief/creation claims on fits
// are promoted to first-class pain relievers and gain creators on the
// linked value proposition, with a mapping pair recording the original
// claim. The output should re-validate and re-lint cleanly whenever the
// input did.
package migrate

import (
	"strings"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/google/uuid"
)

// Transform converts a legacy canvas to the current shape. The input is
// not mutated. Synthesized reliever/creator entities appear in fit order,
// so two runs differ only in their generated id suffixes.
func Transform(l *canvas.LegacyCanvas) *canvas.Canvas {
	c := &canvas.Canvas{
		Version:          string(canvas.VersionCurrent),
		Meta:             l.Meta,
		CustomerSegments: append([]canvas.CustomerSegment(nil), l.CustomerSegments...),
	}

	vpIndex := make(map[string]int, len(l.ValuePropositions))
	for i, vp := range l.ValuePropositions {
		vpIndex[vp.ID] = i
		c.ValuePropositions = append(c.ValuePropositions, canvas.ValueProposition{
			ID:               vp.ID,
			Name:             vp.Name,
			Description:      vp.Description,
			ProductsServices: append([]canvas.ValueMapItem(nil), vp.ProductsServices...),
		})
	}

	for _, fit := range l.Fits {
		out := canvas.Fit{
			ID: fit.ID,
			For: canvas.Relation{
				ValuePropositions: []string{fit.ValueProposition},
				CustomerSegments:  []string{fit.CustomerSegment},
			},
		}

		// Promote inline claims. A fit pointing at an undeclared value
		// proposition has nowhere to host the promoted entity; the claim
		// is dropped and the dangling reference surfaces in the re-lint.
		vi, hasVP := vpIndex[fit.ValueProposition]
		for _, pr := range fit.PainRelievers {
			if !hasVP {
				continue
			}
			id := newID("pr")
			c.ValuePropositions[vi].PainRelievers = append(c.ValuePropositions[vi].PainRelievers,
				canvas.ValueMapItem{ID: id, Description: pr.Description})
			out.Mappings = append(out.Mappings, []string{id, pr.Pain})
		}
		for _, gc := range fit.GainCreators {
			if !hasVP {
				continue
			}
			id := newID("gc")
			c.ValuePropositions[vi].GainCreators = append(c.ValuePropositions[vi].GainCreators,
				canvas.ValueMapItem{ID: id, Description: gc.Description})
			out.Mappings = append(out.Mappings, []string{id, gc.Gain})
		}
		// job_addressers and through have no current-shape equivalent:
		// jobs are not mapping targets and products never appear in
		// mappings. Both are dropped.

		c.Fits = append(c.Fits, out)
	}

	for _, ch := range l.Channels {
		c.Channels = append(c.Channels, canvas.Channel{
			ID:   ch.ID,
			Name: ch.Name,
			For:  canvas.Relation{CustomerSegments: append([]string(nil), ch.CustomerSegments...)},
		})
	}
	for _, cr := range l.CustomerRelationships {
		c.CustomerRelationships = append(c.CustomerRelationships, canvas.CustomerRelationship{
			ID:   cr.ID,
			Name: cr.Name,
			For:  canvas.Relation{CustomerSegments: append([]string(nil), cr.CustomerSegments...)},
		})
	}
	for _, rs := range l.RevenueStreams {
		out := canvas.RevenueStream{
			ID:   rs.ID,
			Name: rs.Name,
			From: canvas.Relation{CustomerSegments: append([]string(nil), rs.CustomerSegments...)},
		}
		if rs.ValueProposition != "" {
			out.For = canvas.Relation{ValuePropositions: []string{rs.ValueProposition}}
		}
		c.RevenueStreams = append(c.RevenueStreams, out)
	}
	for _, kr := range l.KeyResources {
		c.KeyResources = append(c.KeyResources, canvas.KeyResource{
			ID:   kr.ID,
			Name: kr.Name,
			For:  canvas.Relation{ValuePropositions: append([]string(nil), kr.ValuePropositions...)},
		})
	}
	for _, ka := range l.KeyActivities {
		c.KeyActivities = append(c.KeyActivities, canvas.KeyActivity{
			ID:   ka.ID,
			Name: ka.Name,
			For:  canvas.Relation{ValuePropositions: append([]string(nil), ka.ValuePropositions...)},
		})
	}
	for _, kp := range l.KeyPartnerships {
		c.KeyPartnerships = append(c.KeyPartnerships, canvas.KeyPartnership{
			ID:   kp.ID,
			Name: kp.Name,
			For: canvas.Relation{
				KeyResources:  append([]string(nil), kp.KeyResources...),
				KeyActivities: append([]string(nil), kp.KeyActivities...),
			},
		})
	}
	for _, cost := range l.CostStructure.Costs {
		c.Costs = append(c.Costs, canvas.Cost{
			ID:   cost.ID,
			Name: cost.Name,
			For: canvas.Relation{
				KeyResources:  append([]string(nil), cost.KeyResources...),
				KeyActivities: append([]string(nil), cost.KeyActivities...),
			},
		})
	}

	return c
}

// newID mints an entity id with the given kind prefix and a short random
// suffix. The prefix keeps kind inference working on migrated documents.
func newID(prefix string) string {
	return prefix + "-" + strings.Split(uuid.NewString(), "-")[0]
}
