package lint

import (
	"testing"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanCurrent builds a current-shape canvas where every reference resolves
// and every declared profile item is covered by a mapping.
func cleanCurrent() *canvas.Canvas {
	return &canvas.Canvas{
		Version: "2.0",
		CustomerSegments: []canvas.CustomerSegment{
			{
				ID:    "cs-developers",
				Pains: []canvas.ProfileItem{{ID: "pain-slow"}},
				Gains: []canvas.ProfileItem{{ID: "gain-fast"}},
			},
		},
		ValuePropositions: []canvas.ValueProposition{
			{
				ID:            "vp-core",
				PainRelievers: []canvas.ValueMapItem{{ID: "pr-caching"}},
				GainCreators:  []canvas.ValueMapItem{{ID: "gc-speedup"}},
			},
		},
		Fits: []canvas.Fit{
			{
				ID: "fit-main",
				For: canvas.Relation{
					ValuePropositions: []string{"vp-core"},
					CustomerSegments:  []string{"cs-developers"},
				},
				Mappings: [][]string{
					{"pr-caching", "pain-slow"},
					{"gc-speedup", "gain-fast"},
				},
			},
		},
		Channels: []canvas.Channel{
			{ID: "ch-web", For: canvas.Relation{
				CustomerSegments:  []string{"cs-developers"},
				ValuePropositions: []string{"vp-core"},
			}},
		},
		CustomerRelationships: []canvas.CustomerRelationship{
			{ID: "cr-support", For: canvas.Relation{CustomerSegments: []string{"cs-developers"}}},
		},
		RevenueStreams: []canvas.RevenueStream{
			{ID: "rs-subs",
				From: canvas.Relation{CustomerSegments: []string{"cs-developers"}},
				For:  canvas.Relation{ValuePropositions: []string{"vp-core"}}},
		},
		KeyResources: []canvas.KeyResource{
			{ID: "kr-index", For: canvas.Relation{ValuePropositions: []string{"vp-core"}}},
		},
		KeyActivities: []canvas.KeyActivity{
			{ID: "ka-crawling", For: canvas.Relation{ValuePropositions: []string{"vp-core"}}},
		},
		KeyPartnerships: []canvas.KeyPartnership{
			{ID: "kp-cloud", For: canvas.Relation{KeyResources: []string{"kr-index"}}},
		},
		Costs: []canvas.Cost{
			{ID: "cost-infra", For: canvas.Relation{
				KeyResources:  []string{"kr-index"},
				KeyActivities: []string{"ka-crawling"},
			}},
		},
	}
}

func runCurrent(c *canvas.Canvas) []Issue {
	return Run(&canvas.Document{Version: canvas.VersionCurrent, Current: c})
}

func byRule(issues []Issue, rule string) []Issue {
	var out []Issue
	for _, is := range issues {
		if is.Rule == rule {
			out = append(out, is)
		}
	}
	return out
}

func TestCleanCanvasHasNoIssues(t *testing.T) {
	assert.Empty(t, runCurrent(cleanCurrent()))
}

func TestEmptyCanvasHasNoIssues(t *testing.T) {
	assert.Empty(t, runCurrent(&canvas.Canvas{Version: "2.0"}))
}

func TestFitUndeclaredReferences(t *testing.T) {
	c := cleanCurrent()
	c.Fits[0].For.ValuePropositions = append(c.Fits[0].For.ValuePropositions, "vp-ghost")
	c.Fits[0].For.CustomerSegments = append(c.Fits[0].For.CustomerSegments, "cs-ghost")

	issues := runCurrent(c)

	vps := byRule(issues, RuleFitValuePropositionRef)
	require.Len(t, vps, 1)
	assert.Equal(t, SeverityError, vps[0].Severity)
	assert.Equal(t, "/fits/0/for/value_propositions/1", vps[0].Path)
	assert.Contains(t, vps[0].Message, "vp-ghost")

	css := byRule(issues, RuleFitCustomerSegmentRef)
	require.Len(t, css, 1)
	assert.Equal(t, "/fits/0/for/customer_segments/1", css[0].Path)
}

func TestMappingArity(t *testing.T) {
	c := cleanCurrent()
	c.Fits[0].Mappings = append(c.Fits[0].Mappings, []string{"pr-caching"})

	issues := byRule(runCurrent(c), RuleFitMappingPair)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "/fits/0/mappings/2", issues[0].Path)
}

func TestMappingTypeMismatchNamesBothSides(t *testing.T) {
	c := cleanCurrent()
	// A reliever pointing at a gain is a mismatch even though both ids are
	// declared in scope.
	c.Fits[0].Mappings = [][]string{{"pr-caching", "gain-fast"}}

	issues := byRule(runCurrent(c), RuleFitMappingTypeMismatch)
	require.Len(t, issues, 1)
	assert.Equal(t, "/fits/0/mappings/0", issues[0].Path)
	assert.Contains(t, issues[0].Message, "pr-caching")
	assert.Contains(t, issues[0].Message, "gain-fast")
	assert.Contains(t, issues[0].Message, "pain reliever")
	assert.Contains(t, issues[0].Message, "gain")
}

func TestMappingSourceScopeIsPerFit(t *testing.T) {
	c := cleanCurrent()
	// The reliever exists, but on a proposition this fit does not link.
	c.ValuePropositions = append(c.ValuePropositions, canvas.ValueProposition{
		ID:            "vp-other",
		PainRelievers: []canvas.ValueMapItem{{ID: "pr-elsewhere"}},
	})
	c.Fits[0].Mappings = append(c.Fits[0].Mappings, []string{"pr-elsewhere", "pain-slow"})

	issues := byRule(runCurrent(c), RuleFitMappingSourceScope)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "/fits/0/mappings/2/0", issues[0].Path)
	assert.Contains(t, issues[0].Message, "pr-elsewhere")
}

func TestMappingTargetScopeIsPerFit(t *testing.T) {
	c := cleanCurrent()
	// The pain exists, but on a segment this fit does not link.
	c.CustomerSegments = append(c.CustomerSegments, canvas.CustomerSegment{
		ID:    "cs-enterprises",
		Pains: []canvas.ProfileItem{{ID: "pain-compliance"}},
	})
	c.ValuePropositions[0].PainRelievers = append(c.ValuePropositions[0].PainRelievers,
		canvas.ValueMapItem{ID: "pr-audit"})
	c.Fits[0].Mappings = append(c.Fits[0].Mappings, []string{"pr-audit", "pain-compliance"})

	issues := byRule(runCurrent(c), RuleFitMappingTargetScope)
	require.Len(t, issues, 1)
	assert.Equal(t, "/fits/0/mappings/2/1", issues[0].Path)
	assert.Contains(t, issues[0].Message, "pain-compliance")
}

func TestDirectReferenceRules(t *testing.T) {
	c := cleanCurrent()
	c.Channels[0].For.CustomerSegments = []string{"cs-ghost"}
	c.Channels[0].For.ValuePropositions = []string{"vp-ghost"}
	c.CustomerRelationships[0].For.CustomerSegments = []string{"cs-ghost"}
	c.RevenueStreams[0].From.CustomerSegments = []string{"cs-ghost"}
	c.RevenueStreams[0].For.ValuePropositions = []string{"vp-ghost"}
	c.KeyResources[0].For.ValuePropositions = []string{"vp-ghost"}
	c.KeyActivities[0].For.ValuePropositions = []string{"vp-ghost"}
	c.KeyPartnerships[0].For.KeyResources = []string{"kr-ghost"}
	c.Costs[0].For.KeyActivities = []string{"ka-ghost"}

	issues := runCurrent(c)
	for _, rule := range []string{
		RuleChannelSegmentRef, RuleChannelPropositionRef,
		RuleRelationshipSegmentRef, RuleRevenueSegmentRef,
		RuleRevenuePropositionRef, RuleResourcePropositionRef,
		RuleActivityPropositionRef, RulePartnershipTargetRef,
	} {
		assert.Len(t, byRule(issues, rule), 1, "rule %s", rule)
	}
	// kr-index stays valid, only the activity side broke.
	assert.Len(t, byRule(issues, RuleCostTargetRef), 1)
}

func TestCoverageWarnings(t *testing.T) {
	c := cleanCurrent()
	c.CustomerSegments = append(c.CustomerSegments, canvas.CustomerSegment{
		ID:   "cs-enterprises",
		Jobs: []canvas.ProfileItem{{ID: "job-comply"}},
	})

	issues := runCurrent(c)

	noFits := byRule(issues, RuleSegmentNoFits)
	require.Len(t, noFits, 1)
	assert.Equal(t, SeverityWarning, noFits[0].Severity)
	assert.Equal(t, "/customer_segments/1", noFits[0].Path)

	jobs := byRule(issues, RuleJobNeverAddressed)
	require.Len(t, jobs, 1)
	assert.Equal(t, "/customer_segments/1/jobs/0", jobs[0].Path)
}

func TestPainAndGainCoverage(t *testing.T) {
	c := cleanCurrent()
	c.Fits[0].Mappings = c.Fits[0].Mappings[:1] // drop the gain mapping

	issues := runCurrent(c)
	assert.Empty(t, byRule(issues, RulePainNeverRelieved))
	gains := byRule(issues, RuleGainNeverCreated)
	require.Len(t, gains, 1)
	assert.Equal(t, "/customer_segments/0/gains/0", gains[0].Path)
}

func TestAllIssuesReportedNoShortCircuit(t *testing.T) {
	c := &canvas.Canvas{
		Version: "2.0",
		Fits: []canvas.Fit{
			{ID: "fit-a", For: canvas.Relation{
				ValuePropositions: []string{"vp-ghost"},
				CustomerSegments:  []string{"cs-ghost"},
			}},
			{ID: "fit-b", For: canvas.Relation{
				ValuePropositions: []string{"vp-also-ghost"},
			}},
		},
		Channels: []canvas.Channel{
			{ID: "ch-a", For: canvas.Relation{CustomerSegments: []string{"cs-ghost"}}},
		},
	}

	issues := runCurrent(c)
	assert.Len(t, byRule(issues, RuleFitValuePropositionRef), 2)
	assert.Len(t, byRule(issues, RuleFitCustomerSegmentRef), 1)
	assert.Len(t, byRule(issues, RuleChannelSegmentRef), 1)
}

func TestDeterministicOrder(t *testing.T) {
	c := cleanCurrent()
	c.Fits[0].For.ValuePropositions = append(c.Fits[0].For.ValuePropositions, "vp-ghost")
	c.CustomerSegments = append(c.CustomerSegments, canvas.CustomerSegment{ID: "cs-idle"})

	first := runCurrent(c)
	for range 10 {
		assert.Equal(t, first, runCurrent(c))
	}
}
