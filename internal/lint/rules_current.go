package lint

import (
	"fmt"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/index"
)

// lintCurrent runs the current-shape rule set. Order is fixed: relating
// entities in document order (fits, channels, relationships, revenue,
// resources, activities, partnerships, costs), then coverage over the
// declaring entities. Every rule keeps going past earlier failures.
func lintCurrent(c *canvas.Canvas, ix *index.Index) []Issue {
	var issues []Issue
	add := func(rule string, sev Severity, path, format string, args ...any) {
		issues = append(issues, Issue{
			Rule:     rule,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
			Path:     path,
		})
	}

	// Usage tallies for the coverage pass.
	segmentFitCount := make(map[string]int)
	mappingTargets := make(map[string]bool)

	for i, fit := range c.Fits {
		for j, vp := range fit.For.ValuePropositions {
			if !ix.HasProposition(vp) {
				add(RuleFitValuePropositionRef, SeverityError,
					ptr("fits", i, "for", "value_propositions", j),
					"fit %q references undeclared value proposition %q", fit.ID, vp)
			}
		}
		for j, cs := range fit.For.CustomerSegments {
			segmentFitCount[cs]++
			if !ix.HasSegment(cs) {
				add(RuleFitCustomerSegmentRef, SeverityError,
					ptr("fits", i, "for", "customer_segments", j),
					"fit %q references undeclared customer segment %q", fit.ID, cs)
			}
		}

		for m, pair := range fit.Mappings {
			if len(pair) != 2 {
				add(RuleFitMappingPair, SeverityError,
					ptr("fits", i, "mappings", m),
					"fit %q mapping must be a [source, target] pair, got %d element(s)", fit.ID, len(pair))
				continue
			}
			left, right := pair[0], pair[1]
			mappingTargets[right] = true

			lk, rk := canvas.KindOf(left), canvas.KindOf(right)
			matched := (lk == canvas.KindPainReliever && rk == canvas.KindPain) ||
				(lk == canvas.KindGainCreator && rk == canvas.KindGain)
			if !matched {
				add(RuleFitMappingTypeMismatch, SeverityError,
					ptr("fits", i, "mappings", m),
					"fit %q mapping pairs %q (%s) with %q (%s)", fit.ID, left, lk, right, rk)
			}

			// Scoped existence: the source must be declared inside one of
			// the value propositions this fit links to, the target on one
			// of the customer segments this fit links to. Global existence
			// elsewhere does not count.
			switch lk {
			case canvas.KindPainReliever:
				if !inFitValueMaps(ix, fit.For.ValuePropositions, left, false) {
					add(RuleFitMappingSourceScope, SeverityError,
						ptr("fits", i, "mappings", m, 0),
						"pain reliever %q is not declared in any value proposition linked by fit %q", left, fit.ID)
				}
			case canvas.KindGainCreator:
				if !inFitValueMaps(ix, fit.For.ValuePropositions, left, true) {
					add(RuleFitMappingSourceScope, SeverityError,
						ptr("fits", i, "mappings", m, 0),
						"gain creator %q is not declared in any value proposition linked by fit %q", left, fit.ID)
				}
			}
			switch rk {
			case canvas.KindPain:
				if !inFitProfiles(ix, fit.For.CustomerSegments, right, profilePains) {
					add(RuleFitMappingTargetScope, SeverityError,
						ptr("fits", i, "mappings", m, 1),
						"pain %q is not declared on any customer segment linked by fit %q", right, fit.ID)
				}
			case canvas.KindGain:
				if !inFitProfiles(ix, fit.For.CustomerSegments, right, profileGains) {
					add(RuleFitMappingTargetScope, SeverityError,
						ptr("fits", i, "mappings", m, 1),
						"gain %q is not declared on any customer segment linked by fit %q", right, fit.ID)
				}
			}
		}
	}

	for i, ch := range c.Channels {
		for j, cs := range ch.For.CustomerSegments {
			if !ix.HasSegment(cs) {
				add(RuleChannelSegmentRef, SeverityError,
					ptr("channels", i, "for", "customer_segments", j),
					"channel %q references undeclared customer segment %q", ch.ID, cs)
			}
		}
		for j, vp := range ch.For.ValuePropositions {
			if !ix.HasProposition(vp) {
				add(RuleChannelPropositionRef, SeverityError,
					ptr("channels", i, "for", "value_propositions", j),
					"channel %q references undeclared value proposition %q", ch.ID, vp)
			}
		}
	}

	for i, cr := range c.CustomerRelationships {
		for j, cs := range cr.For.CustomerSegments {
			if !ix.HasSegment(cs) {
				add(RuleRelationshipSegmentRef, SeverityError,
					ptr("customer_relationships", i, "for", "customer_segments", j),
					"customer relationship %q references undeclared customer segment %q", cr.ID, cs)
			}
		}
	}

	for i, rs := range c.RevenueStreams {
		for j, cs := range rs.From.CustomerSegments {
			if !ix.HasSegment(cs) {
				add(RuleRevenueSegmentRef, SeverityError,
					ptr("revenue_streams", i, "from", "customer_segments", j),
					"revenue stream %q flows from undeclared customer segment %q", rs.ID, cs)
			}
		}
		for j, vp := range rs.For.ValuePropositions {
			if !ix.HasProposition(vp) {
				add(RuleRevenuePropositionRef, SeverityError,
					ptr("revenue_streams", i, "for", "value_propositions", j),
					"revenue stream %q references undeclared value proposition %q", rs.ID, vp)
			}
		}
	}

	for i, kr := range c.KeyResources {
		for j, vp := range kr.For.ValuePropositions {
			if !ix.HasProposition(vp) {
				add(RuleResourcePropositionRef, SeverityError,
					ptr("key_resources", i, "for", "value_propositions", j),
					"key resource %q references undeclared value proposition %q", kr.ID, vp)
			}
		}
	}
	for i, ka := range c.KeyActivities {
		for j, vp := range ka.For.ValuePropositions {
			if !ix.HasProposition(vp) {
				add(RuleActivityPropositionRef, SeverityError,
					ptr("key_activities", i, "for", "value_propositions", j),
					"key activity %q references undeclared value proposition %q", ka.ID, vp)
			}
		}
	}

	for i, kp := range c.KeyPartnerships {
		for j, kr := range kp.For.KeyResources {
			if !ix.IsResourceOrActivity(kr) {
				add(RulePartnershipTargetRef, SeverityError,
					ptr("key_partnerships", i, "for", "key_resources", j),
					"key partnership %q references undeclared key resource %q", kp.ID, kr)
			}
		}
		for j, ka := range kp.For.KeyActivities {
			if !ix.IsResourceOrActivity(ka) {
				add(RulePartnershipTargetRef, SeverityError,
					ptr("key_partnerships", i, "for", "key_activities", j),
					"key partnership %q references undeclared key activity %q", kp.ID, ka)
			}
		}
	}

	for i, cost := range c.Costs {
		for j, kr := range cost.For.KeyResources {
			if !ix.IsResourceOrActivity(kr) {
				add(RuleCostTargetRef, SeverityError,
					ptr("costs", i, "for", "key_resources", j),
					"cost %q references undeclared key resource %q", cost.ID, kr)
			}
		}
		for j, ka := range cost.For.KeyActivities {
			if !ix.IsResourceOrActivity(ka) {
				add(RuleCostTargetRef, SeverityError,
					ptr("costs", i, "for", "key_activities", j),
					"cost %q references undeclared key activity %q", cost.ID, ka)
			}
		}
	}

	// Coverage pass. A profile item counts as covered when any fit's
	// mapping names it as its right-hand element.
	for i, cs := range c.CustomerSegments {
		if segmentFitCount[cs.ID] == 0 {
			add(RuleSegmentNoFits, SeverityWarning,
				ptr("customer_segments", i),
				"customer segment %q is not linked by any fit", cs.ID)
		}
		for j, p := range cs.Pains {
			if !mappingTargets[p.ID] {
				add(RulePainNeverRelieved, SeverityWarning,
					ptr("customer_segments", i, "pains", j),
					"pain %q is never relieved by any fit mapping", p.ID)
			}
		}
		for j, g := range cs.Gains {
			if !mappingTargets[g.ID] {
				add(RuleGainNeverCreated, SeverityWarning,
					ptr("customer_segments", i, "gains", j),
					"gain %q is never created by any fit mapping", g.ID)
			}
		}
		for j, jb := range cs.Jobs {
			if !mappingTargets[jb.ID] {
				add(RuleJobNeverAddressed, SeverityWarning,
					ptr("customer_segments", i, "jobs", j),
					"job %q is never addressed by any fit mapping", jb.ID)
			}
		}
	}

	return issues
}

func inFitValueMaps(ix *index.Index, vps []string, id string, creator bool) bool {
	for _, vp := range vps {
		vm, ok := ix.Propositions[vp]
		if !ok {
			continue
		}
		if creator {
			if vm.Creators[id] {
				return true
			}
		} else if vm.Relievers[id] {
			return true
		}
	}
	return false
}

func profilePains(p *index.Profile) map[string]bool { return p.Pains }
func profileGains(p *index.Profile) map[string]bool { return p.Gains }

func inFitProfiles(ix *index.Index, segments []string, id string, pick func(*index.Profile) map[string]bool) bool {
	for _, cs := range segments {
		p, ok := ix.Segments[cs]
		if !ok {
			continue
		}
		if pick(p)[id] {
			return true
		}
	}
	return false
}
