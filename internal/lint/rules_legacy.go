package lint

import (
	"fmt"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/index"
)

// lintLegacy runs the legacy rule set. The rules mirror the current-shape
// ones in spirit; only the reference fields and therefore the issue paths
// differ. Relief, creation and job claims are inline on fits here, each
// scoped to the single customer segment the fit names, and through entries
// are scoped to the single value proposition.
func lintLegacy(c *canvas.LegacyCanvas, ix *index.Index) []Issue {
	var issues []Issue
	add := func(rule string, sev Severity, path, format string, args ...any) {
		issues = append(issues, Issue{
			Rule:     rule,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
			Path:     path,
		})
	}

	segmentFitCount := make(map[string]int)
	propositionFitCount := make(map[string]int)
	relievedPains := make(map[string]bool)
	createdGains := make(map[string]bool)
	addressedJobs := make(map[string]bool)
	usedProducts := make(map[string]bool)

	for i, fit := range c.Fits {
		propositionFitCount[fit.ValueProposition]++
		segmentFitCount[fit.CustomerSegment]++

		if !ix.HasProposition(fit.ValueProposition) {
			add(RuleFitValuePropositionRef, SeverityError,
				ptr("fits", i, "value_proposition"),
				"fit %q references undeclared value proposition %q", fit.ID, fit.ValueProposition)
		}
		if !ix.HasSegment(fit.CustomerSegment) {
			add(RuleFitCustomerSegmentRef, SeverityError,
				ptr("fits", i, "customer_segment"),
				"fit %q references undeclared customer segment %q", fit.ID, fit.CustomerSegment)
		}

		// Scoped sub-references resolve against the specific segment and
		// proposition this fit names, never globally. A nil profile (the
		// segment itself unresolved) fails them all, but the rules still
		// run so every bad reference is reported.
		profile := ix.Segments[fit.CustomerSegment]
		for j, pr := range fit.PainRelievers {
			relievedPains[pr.Pain] = true
			if profile == nil || !profile.Pains[pr.Pain] {
				add(RuleFitPainRef, SeverityError,
					ptr("fits", i, "pain_relievers", j, "pain"),
					"pain %q is not declared on customer segment %q named by fit %q", pr.Pain, fit.CustomerSegment, fit.ID)
			}
		}
		for j, gc := range fit.GainCreators {
			createdGains[gc.Gain] = true
			if profile == nil || !profile.Gains[gc.Gain] {
				add(RuleFitGainRef, SeverityError,
					ptr("fits", i, "gain_creators", j, "gain"),
					"gain %q is not declared on customer segment %q named by fit %q", gc.Gain, fit.CustomerSegment, fit.ID)
			}
		}
		for j, ja := range fit.JobAddressers {
			addressedJobs[ja.Job] = true
			if profile == nil || !profile.Jobs[ja.Job] {
				add(RuleFitJobRef, SeverityError,
					ptr("fits", i, "job_addressers", j, "job"),
					"job %q is not declared on customer segment %q named by fit %q", ja.Job, fit.CustomerSegment, fit.ID)
			}
		}

		valueMap := ix.Propositions[fit.ValueProposition]
		for j, ps := range fit.Through {
			usedProducts[ps] = true
			if valueMap == nil || !valueMap.Products[ps] {
				add(RuleFitThroughRef, SeverityError,
					ptr("fits", i, "through", j),
					"product/service %q is not declared in value proposition %q named by fit %q", ps, fit.ValueProposition, fit.ID)
			}
		}
	}

	for i, ch := range c.Channels {
		for j, cs := range ch.CustomerSegments {
			if !ix.HasSegment(cs) {
				add(RuleChannelSegmentRef, SeverityError,
					ptr("channels", i, "customer_segments", j),
					"channel %q references undeclared customer segment %q", ch.ID, cs)
			}
		}
	}

	for i, cr := range c.CustomerRelationships {
		for j, cs := range cr.CustomerSegments {
			if !ix.HasSegment(cs) {
				add(RuleRelationshipSegmentRef, SeverityError,
					ptr("customer_relationships", i, "customer_segments", j),
					"customer relationship %q references undeclared customer segment %q", cr.ID, cs)
			}
		}
	}

	for i, rs := range c.RevenueStreams {
		for j, cs := range rs.CustomerSegments {
			if !ix.HasSegment(cs) {
				add(RuleRevenueSegmentRef, SeverityError,
					ptr("revenue_streams", i, "customer_segments", j),
					"revenue stream %q flows from undeclared customer segment %q", rs.ID, cs)
			}
		}
		if rs.ValueProposition != "" && !ix.HasProposition(rs.ValueProposition) {
			add(RuleRevenuePropositionRef, SeverityError,
				ptr("revenue_streams", i, "value_proposition"),
				"revenue stream %q references undeclared value proposition %q", rs.ID, rs.ValueProposition)
		}
	}

	for i, kr := range c.KeyResources {
		for j, vp := range kr.ValuePropositions {
			if !ix.HasProposition(vp) {
				add(RuleResourcePropositionRef, SeverityError,
					ptr("key_resources", i, "value_propositions", j),
					"key resource %q references undeclared value proposition %q", kr.ID, vp)
			}
		}
	}
	for i, ka := range c.KeyActivities {
		for j, vp := range ka.ValuePropositions {
			if !ix.HasProposition(vp) {
				add(RuleActivityPropositionRef, SeverityError,
					ptr("key_activities", i, "value_propositions", j),
					"key activity %q references undeclared value proposition %q", ka.ID, vp)
			}
		}
	}

	for i, kp := range c.KeyPartnerships {
		for j, kr := range kp.KeyResources {
			if !ix.IsResourceOrActivity(kr) {
				add(RulePartnershipTargetRef, SeverityError,
					ptr("key_partnerships", i, "key_resources", j),
					"key partnership %q references undeclared key resource %q", kp.ID, kr)
			}
		}
		for j, ka := range kp.KeyActivities {
			if !ix.IsResourceOrActivity(ka) {
				add(RulePartnershipTargetRef, SeverityError,
					ptr("key_partnerships", i, "key_activities", j),
					"key partnership %q references undeclared key activity %q", kp.ID, ka)
			}
		}
	}

	for i, cost := range c.CostStructure.Costs {
		for j, kr := range cost.KeyResources {
			if !ix.IsResourceOrActivity(kr) {
				add(RuleCostTargetRef, SeverityError,
					ptr("cost_structure", "costs", i, "key_resources", j),
					"cost %q references undeclared key resource %q", cost.ID, kr)
			}
		}
		for j, ka := range cost.KeyActivities {
			if !ix.IsResourceOrActivity(ka) {
				add(RuleCostTargetRef, SeverityError,
					ptr("cost_structure", "costs", i, "key_activities", j),
					"cost %q references undeclared key activity %q", cost.ID, ka)
			}
		}
	}

	// Coverage pass.
	for i, cs := range c.CustomerSegments {
		if segmentFitCount[cs.ID] == 0 {
			add(RuleSegmentNoFits, SeverityWarning,
				ptr("customer_segments", i),
				"customer segment %q is not linked by any fit", cs.ID)
		}
		for j, p := range cs.Pains {
			if !relievedPains[p.ID] {
				add(RulePainNeverRelieved, SeverityWarning,
					ptr("customer_segments", i, "pains", j),
					"pain %q is never relieved by any fit", p.ID)
			}
		}
		for j, g := range cs.Gains {
			if !createdGains[g.ID] {
				add(RuleGainNeverCreated, SeverityWarning,
					ptr("customer_segments", i, "gains", j),
					"gain %q is never created by any fit", g.ID)
			}
		}
		for j, jb := range cs.Jobs {
			if !addressedJobs[jb.ID] {
				add(RuleJobNeverAddressed, SeverityWarning,
					ptr("customer_segments", i, "jobs", j),
					"job %q is never addressed by any fit", jb.ID)
			}
		}
	}
	for i, vp := range c.ValuePropositions {
		if propositionFitCount[vp.ID] == 0 {
			add(RulePropositionNoFits, SeverityWarning,
				ptr("value_propositions", i),
				"value proposition %q is not linked by any fit", vp.ID)
		}
		for j, ps := range vp.ProductsServices {
			if !usedProducts[ps.ID] {
				add(RuleProductNeverUsed, SeverityWarning,
					ptr("value_propositions", i, "products_services", j),
					"product/service %q is never used in any fit's through list", ps.ID)
			}
		}
	}

	return issues
}
