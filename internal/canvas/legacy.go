package canvas

// LegacyCanvas is the first-generation document shape: relating entities
// point at their targets through flat singular or array fields, pain relief
// and gain creation are inline objects on fits, and costs nest under a
// cost_structure wrapper.
type LegacyCanvas struct {
	Version               string                       `yaml:"version" json:"version"`
	Meta                  Meta                         `yaml:"meta,omitempty" json:"meta,omitempty"`
	CustomerSegments      []CustomerSegment            `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty"`
	ValuePropositions     []LegacyValueProposition     `yaml:"value_propositions,omitempty" json:"value_propositions,omitempty"`
	Fits                  []LegacyFit                  `yaml:"fits,omitempty" json:"fits,omitempty"`
	Channels              []LegacyChannel              `yaml:"channels,omitempty" json:"channels,omitempty"`
	CustomerRelationships []LegacyCustomerRelationship `yaml:"customer_relationships,omitempty" json:"customer_relationships,omitempty"`
	RevenueStreams        []LegacyRevenueStream        `yaml:"revenue_streams,omitempty" json:"revenue_streams,omitempty"`
	KeyResources          []LegacyKeyResource          `yaml:"key_resources,omitempty" json:"key_resources,omitempty"`
	KeyActivities         []LegacyKeyActivity          `yaml:"key_activities,omitempty" json:"key_activities,omitempty"`
	KeyPartnerships       []LegacyKeyPartnership       `yaml:"key_partnerships,omitempty" json:"key_partnerships,omitempty"`
	CostStructure         LegacyCostStructure          `yaml:"cost_structure,omitempty" json:"cost_structure,omitempty"`
}

// LegacyValueProposition has no reliever/creator entities; those live
// inline on fits in this generation.
type LegacyValueProposition struct {
	ID               string         `yaml:"id" json:"id"`
	Name             string         `yaml:"name,omitempty" json:"name,omitempty"`
	Description      string         `yaml:"description,omitempty" json:"description,omitempty"`
	ProductsServices []ValueMapItem `yaml:"products_services,omitempty" json:"products_services,omitempty"`
}

// LegacyFit links exactly one value proposition to one customer segment and
// details the match inline: which pains it relieves, which gains it creates,
// which jobs it addresses, and through which products/services.
type LegacyFit struct {
	ID               string               `yaml:"id" json:"id"`
	ValueProposition string               `yaml:"value_proposition" json:"value_proposition"`
	CustomerSegment  string               `yaml:"customer_segment" json:"customer_segment"`
	PainRelievers    []LegacyPainReliever `yaml:"pain_relievers,omitempty" json:"pain_relievers,omitempty"`
	GainCreators     []LegacyGainCreator  `yaml:"gain_creators,omitempty" json:"gain_creators,omitempty"`
	JobAddressers    []LegacyJobAddresser `yaml:"job_addressers,omitempty" json:"job_addressers,omitempty"`
	Through          []string             `yaml:"through,omitempty" json:"through,omitempty"`
}

// LegacyPainReliever is an inline relief claim scoped to the fit's segment.
type LegacyPainReliever struct {
	Pain        string `yaml:"pain" json:"pain"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// LegacyGainCreator is an inline creation claim scoped to the fit's segment.
type LegacyGainCreator struct {
	Gain        string `yaml:"gain" json:"gain"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// LegacyJobAddresser is an inline job claim scoped to the fit's segment.
type LegacyJobAddresser struct {
	Job         string `yaml:"job" json:"job"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type LegacyChannel struct {
	ID               string   `yaml:"id" json:"id"`
	Name             string   `yaml:"name,omitempty" json:"name,omitempty"`
	CustomerSegments []string `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty"`
}

type LegacyCustomerRelationship struct {
	ID               string   `yaml:"id" json:"id"`
	Name             string   `yaml:"name,omitempty" json:"name,omitempty"`
	CustomerSegments []string `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty"`
}

type LegacyRevenueStream struct {
	ID               string   `yaml:"id" json:"id"`
	Name             string   `yaml:"name,omitempty" json:"name,omitempty"`
	CustomerSegments []string `yaml:"customer_segments,omitempty" json:"customer_segments,omitempty"`
	ValueProposition string   `yaml:"value_proposition,omitempty" json:"value_proposition,omitempty"`
}

type LegacyKeyResource struct {
	ID                string   `yaml:"id" json:"id"`
	Name              string   `yaml:"name,omitempty" json:"name,omitempty"`
	ValuePropositions []string `yaml:"value_propositions,omitempty" json:"value_propositions,omitempty"`
}

type LegacyKeyActivity struct {
	ID                string   `yaml:"id" json:"id"`
	Name              string   `yaml:"name,omitempty" json:"name,omitempty"`
	ValuePropositions []string `yaml:"value_propositions,omitempty" json:"value_propositions,omitempty"`
}

type LegacyKeyPartnership struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name,omitempty" json:"name,omitempty"`
	KeyResources  []string `yaml:"key_resources,omitempty" json:"key_resources,omitempty"`
	KeyActivities []string `yaml:"key_activities,omitempty" json:"key_activities,omitempty"`
}

// LegacyCostStructure wraps the cost items; the wrapper object itself is a
// version signal for the detector.
type LegacyCostStructure struct {
	Costs []LegacyCost `yaml:"costs,omitempty" json:"costs,omitempty"`
}

type LegacyCost struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name,omitempty" json:"name,omitempty"`
	KeyResources  []string `yaml:"key_resources,omitempty" json:"key_resources,omitempty"`
	KeyActivities []string `yaml:"key_activities,omitempty" json:"key_activities,omitempty"`
}
