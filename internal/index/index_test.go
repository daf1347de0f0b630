package index

import (
	"testing"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	c := &canvas.Canvas{
		CustomerSegments: []canvas.CustomerSegment{
			{
				ID:    "cs-developers",
				Jobs:  []canvas.ProfileItem{{ID: "job-ship"}},
				Pains: []canvas.ProfileItem{{ID: "pain-slow"}},
				Gains: []canvas.ProfileItem{{ID: "gain-fast"}},
			},
			{ID: "cs-enterprises"},
		},
		ValuePropositions: []canvas.ValueProposition{
			{
				ID:               "vp-core",
				ProductsServices: []canvas.ValueMapItem{{ID: "ps-cli"}},
				PainRelievers:    []canvas.ValueMapItem{{ID: "pr-caching"}},
				GainCreators:     []canvas.ValueMapItem{{ID: "gc-speedup"}},
			},
		},
		KeyResources:  []canvas.KeyResource{{ID: "kr-index"}},
		KeyActivities: []canvas.KeyActivity{{ID: "ka-crawling"}},
	}

	ix := Build(c)

	assert.True(t, ix.HasSegment("cs-developers"))
	assert.True(t, ix.HasSegment("cs-enterprises"))
	assert.False(t, ix.HasSegment("cs-ghost"))
	assert.True(t, ix.HasProposition("vp-core"))
	assert.False(t, ix.HasProposition("vp-ghost"))
	assert.True(t, ix.IsResourceOrActivity("kr-index"))
	assert.True(t, ix.IsResourceOrActivity("ka-crawling"))
	assert.False(t, ix.IsResourceOrActivity("kr-ghost"))

	dev := ix.Segments["cs-developers"]
	require.NotNil(t, dev)
	assert.True(t, dev.Jobs["job-ship"])
	assert.True(t, dev.Pains["pain-slow"])
	assert.True(t, dev.Gains["gain-fast"])
	assert.False(t, dev.Pains["pain-ghost"])

	// A segment without profile arrays still gets empty, usable sets.
	ent := ix.Segments["cs-enterprises"]
	require.NotNil(t, ent)
	assert.Empty(t, ent.Pains)

	vm := ix.Propositions["vp-core"]
	require.NotNil(t, vm)
	assert.True(t, vm.Products["ps-cli"])
	assert.True(t, vm.Relievers["pr-caching"])
	assert.True(t, vm.Creators["gc-speedup"])
}

func TestBuildLegacy(t *testing.T) {
	c := &canvas.LegacyCanvas{
		CustomerSegments: []canvas.CustomerSegment{
			{ID: "cs-developers", Pains: []canvas.ProfileItem{{ID: "pain-slow"}}},
		},
		ValuePropositions: []canvas.LegacyValueProposition{
			{ID: "vp-core", ProductsServices: []canvas.ValueMapItem{{ID: "ps-cli"}}},
		},
		KeyResources:  []canvas.LegacyKeyResource{{ID: "kr-index"}},
		KeyActivities: []canvas.LegacyKeyActivity{{ID: "ka-crawling"}},
	}

	ix := BuildLegacy(c)

	assert.True(t, ix.HasSegment("cs-developers"))
	assert.True(t, ix.HasProposition("vp-core"))
	assert.True(t, ix.IsResourceOrActivity("kr-index"))
	assert.True(t, ix.IsResourceOrActivity("ka-crawling"))

	vm := ix.Propositions["vp-core"]
	require.NotNil(t, vm)
	assert.True(t, vm.Products["ps-cli"])
	// No reliever or creator entities exist in this generation.
	assert.Empty(t, vm.Relievers)
	assert.Empty(t, vm.Creators)
}
