// Package canvas holds the business model document in both of its wire
// shapes, plus parsing and version detection.
//
// Two generations of the format exist. The current shape ("2.0") expresses
// every cross-entity reference through nested for/from relation objects and
// promotes pain relievers and gain creators to first-class entities inside a
// value proposition. The legacy shape ("1.0") uses flat reference fields and
// keeps relief/creation inline on fits. Both decode from YAML or JSON.
package canvas

// Version tags one of the two document generations.
type Version string

const (
	VersionLegacy  Version = "1.0"
	VersionCurrent Version = "2.0"
)

// Meta carries descriptive document properties. The core never reasons
// about it; it rides along for renderers and the catalog.
type Meta struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string `yaml:"author,omitempty" json:"author,omitempty"`
}

// Canvas is the current-shape document.
type Canvas struct {
	Version               string                 `yaml:"version" json:"version"`
	Meta                  Meta                   `yaml:"meta,omitempty" json:"meta,omitempty"`
	CustomerSegments      []CustomerSegment      `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty"`
	ValuePropositions     []ValueProposition     `yaml:"value_propositions,omitempty" json:"value_propositions,omitempty"`
	Fits                  []Fit                  `yaml:"fits,omitempty" json:"fits,omitempty"`
	Channels              []Channel              `yaml:"channels,omitempty" json:"channels,omitempty"`
	CustomerRelationships []CustomerRelationship `yaml:"customer_relationships,omitempty" json:"customer_relationships,omitempty"`
	RevenueStreams        []RevenueStream        `yaml:"revenue_streams,omitempty" json:"revenue_streams,omitempty"`
	KeyResources          []KeyResource          `yaml:"key_resources,omitempty" json:"key_resources,omitempty"`
	KeyActivities         []KeyActivity          `yaml:"key_activities,omitempty" json:"key_activities,omitempty"`
	KeyPartnerships       []KeyPartnership       `yaml:"key_partnerships,omitempty" json:"key_partnerships,omitempty"`
	Costs                 []Cost                 `yaml:"costs,omitempty" json:"costs,omitempty"`
}

// Relation is the typed reference block nested under a relating entity's
// "for" (or, for revenue streams, "from") key. Only the arrays that make
// sense for the surrounding entity are ever populated.
type Relation struct {
	CustomerSegments  []string `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty"`
	ValuePropositions []string `yaml:"value_propositions,omitempty" json:"value_propositions,omitempty"`
	KeyResources      []string `yaml:"key_resources,omitempty" json:"key_resources,omitempty"`
	KeyActivities     []string `yaml:"key_activities,omitempty" json:"key_activities,omitempty"`
}

// CustomerSegment owns its customer profile: jobs, pains and gains live and
// die with the segment.
type CustomerSegment struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name,omitempty" json:"name,omitempty"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Jobs        []ProfileItem `yaml:"jobs,omitempty" json:"jobs,omitempty"`
	Pains       []ProfileItem `yaml:"pains,omitempty" json:"pains,omitempty"`
	Gains       []ProfileItem `yaml:"gains,omitempty" json:"gains,omitempty"`
}

// ProfileItem is one entry of a customer profile (job, pain or gain).
type ProfileItem struct {
	ID          string `yaml:"id" json:"id"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ValueProposition owns its value map: products/services plus, in the
// current shape, first-class pain relievers and gain creators.
type ValueProposition struct {
	ID               string         `yaml:"id" json:"id"`
	Name             string         `yaml:"name,omitempty" json:"name,omitempty"`
	Description      string         `yaml:"description,omitempty" json:"description,omitempty"`
	ProductsServices []ValueMapItem `yaml:"products_services,omitempty" json:"products_services,omitempty"`
	PainRelievers    []ValueMapItem `yaml:"pain_relievers,omitempty" json:"pain_relievers,omitempty"`
	GainCreators     []ValueMapItem `yaml:"gain_creators,omitempty" json:"gain_creators,omitempty"`
}

// ValueMapItem is one entry of a value map.
type ValueMapItem struct {
	ID          string `yaml:"id" json:"id"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Fit asserts that the value propositions it names serve the customer
// segments it names. Each mapping is an ordered pair
// [reliever-or-creator-id, pain-or-gain-id] scoped to the fit's own links.
type Fit struct {
	ID       string     `yaml:"id" json:"id"`
	For      Relation   `yaml:"for" json:"for"`
	Mappings [][]string `yaml:"mappings,omitempty" json:"mappings,omitempty"`
}

// Channel reaches customer segments, optionally carrying specific value
// propositions.
type Channel struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name,omitempty" json:"name,omitempty"`
	For  Relation `yaml:"for" json:"for"`
}

// CustomerRelationship binds to customer segments.
type CustomerRelationship struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name,omitempty" json:"name,omitempty"`
	For  Relation `yaml:"for" json:"for"`
}

// RevenueStream flows from customer segments for value propositions.
type RevenueStream struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name,omitempty" json:"name,omitempty"`
	From Relation `yaml:"from" json:"from"`
	For  Relation `yaml:"for" json:"for"`
}

// KeyResource backs value propositions.
type KeyResource struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name,omitempty" json:"name,omitempty"`
	For  Relation `yaml:"for" json:"for"`
}

// KeyActivity backs value propositions.
type KeyActivity struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name,omitempty" json:"name,omitempty"`
	For  Relation `yaml:"for" json:"for"`
}

// KeyPartnership provides key resources and/or key activities.
type KeyPartnership struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name,omitempty" json:"name,omitempty"`
	For  Relation `yaml:"for" json:"for"`
}

// Cost is incurred by key resources and/or key activities.
type Cost struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name,omitempty" json:"name,omitempty"`
	For  Relation `yaml:"for" json:"for"`
}
