package canvas

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentYAML = `
version: "2.0"
meta:
  name: Search Engine
customer_segments:
  - id: cs-developers
    pains:
      - id: pain-slow-builds
value_propositions:
  - id: vp-core
    pain_relievers:
      - id: pr-caching
fits:
  - id: fit-main
    for:
      value_propositions: [vp-core]
      customer_segments: [cs-developers]
    mappings:
      - [pr-caching, pain-slow-builds]
`

const legacyJSON = `{
  "customer_segments": [{"id": "cs-developers"}],
  "value_propositions": [{"id": "vp-core", "products_services": [{"id": "ps-cli"}]}],
  "fits": [{
    "id": "fit-main",
    "value_proposition": "vp-core",
    "customer_segment": "cs-developers",
    "through": ["ps-cli"]
  }],
  "cost_structure": {"costs": [{"id": "cost-infra"}]}
}`

func TestParseCurrentYAML(t *testing.T) {
	doc, err := Parse([]byte(currentYAML))
	require.NoError(t, err)
	assert.Equal(t, VersionCurrent, doc.Version)
	require.NotNil(t, doc.Current)
	assert.Nil(t, doc.Legacy)

	require.Len(t, doc.Current.Fits, 1)
	fit := doc.Current.Fits[0]
	assert.Equal(t, "fit-main", fit.ID)
	assert.Equal(t, []string{"vp-core"}, fit.For.ValuePropositions)
	assert.Equal(t, [][]string{{"pr-caching", "pain-slow-builds"}}, fit.Mappings)
	assert.Equal(t, "Search Engine", doc.Current.Meta.Name)
}

func TestParseLegacyJSON(t *testing.T) {
	doc, err := Parse([]byte(legacyJSON))
	require.NoError(t, err)
	assert.Equal(t, VersionLegacy, doc.Version)
	require.NotNil(t, doc.Legacy)
	assert.Nil(t, doc.Current)

	require.Len(t, doc.Legacy.Fits, 1)
	assert.Equal(t, "vp-core", doc.Legacy.Fits[0].ValueProposition)
	assert.Equal(t, []string{"ps-cli"}, doc.Legacy.Fits[0].Through)
	require.Len(t, doc.Legacy.CostStructure.Costs, 1)
	assert.Equal(t, "cost-infra", doc.Legacy.CostStructure.Costs[0].ID)

	// The untyped tree survives for structural collaborators.
	root, ok := doc.Raw.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, root, "cost_structure")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.Error(t, err)

	_, err = Parse([]byte("key: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "/work/canvas.yaml", []byte(currentYAML), 0o644))

	doc, err := Load(fsys, "/work/canvas.yaml")
	require.NoError(t, err)
	assert.Equal(t, VersionCurrent, doc.Version)

	_, err = Load(fsys, "/work/missing.yaml")
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(currentYAML))
	require.NoError(t, err)

	out, err := Encode(doc.Current)
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Current, again.Current)
}
