// Package lint walks every cross-entity reference of a parsed canvas and
// reports what does not hold together. It is a pure function of a document
// snapshot: all outcomes come back as data, rules run to completion no
// matter what earlier rules found, and the same input always yields the
// same ordered issue list.
package lint

import (
	"fmt"
	"strings"
)

// Severity grades an issue. Errors invalidate the model; warnings flag
// coverage gaps that leave it valid but incomplete.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one linter finding. Path locates the offending field with
// JSON-Pointer-style syntax, zero-based indices, root "/".
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
}

// Rule identifiers. One rule emits at most one issue per offending
// reference instance.
const (
	RuleFitValuePropositionRef  = "fit-value-proposition-ref"
	RuleFitCustomerSegmentRef   = "fit-customer-segment-ref"
	RuleFitMappingPair          = "fit-mapping-pair"
	RuleFitMappingTypeMismatch  = "fit-mapping-type-mismatch"
	RuleFitMappingSourceScope   = "fit-mapping-source-scope"
	RuleFitMappingTargetScope   = "fit-mapping-target-scope"
	RuleFitPainRef              = "fit-pain-ref"
	RuleFitGainRef              = "fit-gain-ref"
	RuleFitJobRef               = "fit-job-ref"
	RuleFitThroughRef           = "fit-through-ref"
	RuleChannelSegmentRef       = "channel-customer-segment-ref"
	RuleChannelPropositionRef   = "channel-value-proposition-ref"
	RuleRelationshipSegmentRef  = "relationship-customer-segment-ref"
	RuleRevenueSegmentRef       = "revenue-customer-segment-ref"
	RuleRevenuePropositionRef   = "revenue-value-proposition-ref"
	RuleResourcePropositionRef  = "resource-value-proposition-ref"
	RuleActivityPropositionRef  = "activity-value-proposition-ref"
	RulePartnershipTargetRef    = "partnership-target-ref"
	RuleCostTargetRef           = "cost-target-ref"
	RuleSegmentNoFits           = "segment-no-fits"
	RulePropositionNoFits       = "vp-no-fits"
	RulePainNeverRelieved       = "pain-never-relieved"
	RuleGainNeverCreated        = "gain-never-created"
	RuleJobNeverAddressed       = "job-never-addressed"
	RuleProductNeverUsed        = "product-never-used"
)

// HasErrors reports whether any issue carries error severity; callers
// decide pass/fail with this, never via panics from the linter.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

func severityRank(s Severity) int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// ptr joins path segments into a JSON-Pointer-style path. No segments means
// the document root, the literal "/".
func ptr(segments ...any) string {
	if len(segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('/')
		fmt.Fprintf(&b, "%v", seg)
	}
	return b.String()
}
