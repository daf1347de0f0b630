package canvas

import "strings"

// Kind classifies an entity by the prefix of its identifier.
// Every id is "<prefix>-<rest>"; the prefix alone determines the kind,
// no two kinds share a prefix.
type Kind int

const (
	KindUnknown Kind = iota
	KindCustomerSegment
	KindValueProposition
	KindProductService
	KindPain
	KindGain
	KindJob
	KindFit
	KindChannel
	KindRelationship
	KindRevenueStream
	KindKeyResource
	KindKeyActivity
	KindPartnership
	KindCost
	KindPainReliever
	KindGainCreator
)

var prefixKinds = map[string]Kind{
	"cs":   KindCustomerSegment,
	"vp":   KindValueProposition,
	"ps":   KindProductService,
	"pain": KindPain,
	"gain": KindGain,
	"job":  KindJob,
	"fit":  KindFit,
	"ch":   KindChannel,
	"cr":   KindRelationship,
	"rs":   KindRevenueStream,
	"kr":   KindKeyResource,
	"ka":   KindKeyActivity,
	"kp":   KindPartnership,
	"cost": KindCost,
	"pr":   KindPainReliever,
	"gc":   KindGainCreator,
}

var kindNames = map[Kind]string{
	KindUnknown:          "unknown",
	KindCustomerSegment:  "customer segment",
	KindValueProposition: "value proposition",
	KindProductService:   "product/service",
	KindPain:             "pain",
	KindGain:             "gain",
	KindJob:              "job",
	KindFit:              "fit",
	KindChannel:          "channel",
	KindRelationship:     "customer relationship",
	KindRevenueStream:    "revenue stream",
	KindKeyResource:      "key resource",
	KindKeyActivity:      "key activity",
	KindPartnership:      "key partnership",
	KindCost:             "cost",
	KindPainReliever:     "pain reliever",
	KindGainCreator:      "gain creator",
}

// KindOf infers the kind of an identifier from its prefix.
// Ids without a recognized "<prefix>-" token are KindUnknown.
func KindOf(id string) Kind {
	i := strings.IndexByte(id, '-')
	if i <= 0 {
		return KindUnknown
	}
	return prefixKinds[id[:i]]
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
