package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderFixture() *canvas.Canvas {
	return &canvas.Canvas{
		Version: "2.0",
		Meta:    canvas.Meta{Name: "Search Engine"},
		CustomerSegments: []canvas.CustomerSegment{
			{ID: "cs-developers", Name: "Developers"},
			{ID: "cs-enterprises", Name: "Enterprises"},
		},
		ValuePropositions: []canvas.ValueProposition{
			{ID: "vp-core", Name: "Fast search"},
			{ID: "vp-lonely", Name: "Unproven idea"},
		},
		Fits: []canvas.Fit{
			{ID: "fit-main", For: canvas.Relation{
				ValuePropositions: []string{"vp-core"},
				CustomerSegments:  []string{"cs-developers"},
			}},
		},
		Channels: []canvas.Channel{
			{ID: "ch-web", Name: "Web", For: canvas.Relation{CustomerSegments: []string{"cs-developers"}}},
		},
		KeyResources: []canvas.KeyResource{
			{ID: "kr-index", Name: "Search index", For: canvas.Relation{ValuePropositions: []string{"vp-core"}}},
		},
		Costs: []canvas.Cost{
			{ID: "cost-infra", Name: "Infrastructure", For: canvas.Relation{KeyResources: []string{"kr-index"}}},
		},
	}
}

func renderSVG(t *testing.T, c *canvas.Canvas) string {
	t.Helper()
	out, err := SVG(c, connect.Build(c))
	require.NoError(t, err)
	return string(out)
}

func TestSVGStructure(t *testing.T) {
	s := renderSVG(t, renderFixture())

	assert.True(t, strings.HasPrefix(s, "<svg"))
	assert.Contains(t, s, "</svg>")
	assert.Contains(t, s, "Search Engine")
	for _, title := range []string{
		"Key Partnerships", "Key Activities", "Key Resources",
		"Value Propositions", "Customer Relationships", "Channels",
		"Customer Segments", "Cost Structure", "Revenue Streams",
	} {
		assert.Contains(t, s, title)
	}
	assert.Contains(t, s, "Developers")
	assert.Contains(t, s, "Fast search")
	assert.Contains(t, s, "Search index")
}

func TestSVGGroupColors(t *testing.T) {
	s := renderSVG(t, renderFixture())

	// Everything reachable from cs-developers shares its palette color:
	// the segment box itself plus vp-core, fit channel, resource and cost.
	devColor := palette[0]
	assert.GreaterOrEqual(t, strings.Count(s, devColor), 5)

	// The unconnected proposition renders gray.
	assert.Contains(t, s, orphanFill)
}

func TestSVGFallsBackToIDWithoutName(t *testing.T) {
	c := renderFixture()
	c.CustomerSegments[0].Name = ""
	s := renderSVG(t, c)
	assert.Contains(t, s, "cs-developers")
}

func TestSVGUntitledCanvas(t *testing.T) {
	c := renderFixture()
	c.Meta.Name = ""
	s := renderSVG(t, c)
	assert.Contains(t, s, "Business Model Canvas")
}

func TestSVGEmptyCanvas(t *testing.T) {
	s := renderSVG(t, &canvas.Canvas{Version: "2.0"})
	assert.True(t, strings.HasPrefix(s, "<svg"))
	assert.Contains(t, s, "Customer Segments")
}

func TestSVGEscapesMarkupInNames(t *testing.T) {
	c := renderFixture()
	c.Meta.Name = "A <Bold> & Risky Name"
	c.CustomerSegments[0].Name = "Devs <script>"

	s := renderSVG(t, c)
	assert.NotContains(t, s, "<Bold>")
	assert.NotContains(t, s, "<script>")
	assert.Contains(t, s, "&lt;Bold&gt; &amp; Risky")
	assert.Contains(t, s, "Devs &lt;script&gt;")
}

func TestSVGTruncatesMultiByteNamesCleanly(t *testing.T) {
	c := renderFixture()
	c.CustomerSegments[0].Name = strings.Repeat("日本語の顧客", 8)

	s := renderSVG(t, c)
	assert.True(t, utf8.ValidString(s))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 26))

	long := strings.Repeat("x", 40)
	got := truncate(long, 26)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Len(t, []rune(got), 26)

	// Rune-based cutting: a multi-byte name must never be split mid-rune.
	wide := strings.Repeat("顧", 40)
	got = truncate(wide, 26)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, []rune(got), 26)
	assert.True(t, strings.HasSuffix(got, "…"))
}
