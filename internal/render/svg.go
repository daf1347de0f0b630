// Package render draws a current-shape canvas as the classic nine-block
// grid. It consumes the connection graph for grouping colors and does no
// graph reasoning of its own: one palette color per customer segment, each
// entity tinted by the first segment it connects to, orphans gray.
package render

import (
	"bytes"
	"fmt"
	"html"
	"text/template"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/connect"
)

// palette cycles over segments in declaration order.
var palette = []string{
	"#4e79a7", "#f28e2b", "#59a14f", "#e15759",
	"#b07aa1", "#76b7b2", "#edc948", "#9c755f",
}

const orphanFill = "#c7c7c7"

const (
	cellW    = 180
	headerH  = 26
	itemH    = 22
	itemPad  = 4
	minBlock = 120
)

type item struct {
	X, Y  int
	W, H  int
	Label string
	Fill  string
}

type block struct {
	X, Y  int
	W, H  int
	Title string
	Items []item
}

type page struct {
	Width  int
	Height int
	Title  string
	Blocks []block
}

var svgTmpl = template.Must(template.New("canvas").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" font-family="sans-serif">
<rect x="0" y="0" width="{{.Width}}" height="{{.Height}}" fill="#ffffff"/>
<text x="12" y="20" font-size="15" font-weight="bold">{{.Title}}</text>
{{- range .Blocks}}
<g>
<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="none" stroke="#555555"/>
<text x="{{.X}}" y="{{.Y}}" dx="8" dy="18" font-size="12" font-weight="bold">{{.Title}}</text>
{{- range .Items}}
<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" rx="3" fill="{{.Fill}}" fill-opacity="0.75"/>
<text x="{{.X}}" y="{{.Y}}" dx="6" dy="15" font-size="11">{{.Label}}</text>
{{- end}}
</g>
{{- end}}
</svg>
`))

// SVG renders the canvas. The column layout is fixed: partnerships,
// activities/resources, propositions, relationships/channels, segments,
// with costs and revenue along the bottom.
func SVG(c *canvas.Canvas, g *connect.Graph) ([]byte, error) {
	colors := segmentColors(c)
	fill := func(id string) string {
		segs := g.SegmentsOf(id)
		if len(segs) == 0 {
			return orphanFill
		}
		if col, ok := colors[segs[0]]; ok {
			return col
		}
		return orphanFill
	}

	rows := maxEntities(c)
	blockH := headerH + rows*(itemH+itemPad) + itemPad
	if blockH < minBlock {
		blockH = minBlock
	}
	halfH := blockH / 2
	bottomH := minBlock
	top := 32

	p := page{
		Width:  5*cellW + 24,
		Height: top + blockH + bottomH + 24,
		Title:  html.EscapeString(titleOf(c)),
	}

	col := func(n int) int { return 12 + n*cellW }

	p.Blocks = append(p.Blocks,
		layout(block{X: col(0), Y: top, W: cellW, H: blockH, Title: "Key Partnerships"}, partnershipItems(c), fill),
		layout(block{X: col(1), Y: top, W: cellW, H: halfH, Title: "Key Activities"}, activityItems(c), fill),
		layout(block{X: col(1), Y: top + halfH, W: cellW, H: blockH - halfH, Title: "Key Resources"}, resourceItems(c), fill),
		layout(block{X: col(2), Y: top, W: cellW, H: blockH, Title: "Value Propositions"}, propositionItems(c), fill),
		layout(block{X: col(3), Y: top, W: cellW, H: halfH, Title: "Customer Relationships"}, relationshipItems(c), fill),
		layout(block{X: col(3), Y: top + halfH, W: cellW, H: blockH - halfH, Title: "Channels"}, channelItems(c), fill),
		layout(block{X: col(4), Y: top, W: cellW, H: blockH, Title: "Customer Segments"}, segmentItems(c), fill),
		layout(block{X: col(0), Y: top + blockH, W: cellW * 5 / 2, H: bottomH, Title: "Cost Structure"}, costItems(c), fill),
		layout(block{X: col(0) + cellW*5/2, Y: top + blockH, W: cellW*5 - cellW*5/2, H: bottomH, Title: "Revenue Streams"}, revenueItems(c), fill),
	)

	var buf bytes.Buffer
	if err := svgTmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return buf.Bytes(), nil
}

type labeled struct {
	id, name string
}

func (l labeled) label() string {
	if l.name != "" {
		return l.name
	}
	return l.id
}

func layout(b block, entities []labeled, fill func(string) string) block {
	y := b.Y + headerH
	for _, e := range entities {
		if y+itemH > b.Y+b.H {
			break // block full
		}
		b.Items = append(b.Items, item{
			X:     b.X + itemPad,
			Y:     y,
			W:     b.W - 2*itemPad,
			H:     itemH,
			Label: html.EscapeString(truncate(e.label(), 26)),
			Fill:  fill(e.id),
		})
		y += itemH + itemPad
	}
	return b
}

func segmentColors(c *canvas.Canvas) map[string]string {
	colors := make(map[string]string, len(c.CustomerSegments))
	for i, cs := range c.CustomerSegments {
		colors[cs.ID] = palette[i%len(palette)]
	}
	return colors
}

func titleOf(c *canvas.Canvas) string {
	if c.Meta.Name != "" {
		return c.Meta.Name
	}
	return "Business Model Canvas"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func maxEntities(c *canvas.Canvas) int {
	counts := []int{
		len(c.KeyPartnerships), len(c.KeyActivities) + len(c.KeyResources),
		len(c.ValuePropositions), len(c.CustomerRelationships) + len(c.Channels),
		len(c.CustomerSegments),
	}
	max := 1
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	return max
}

func segmentItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.CustomerSegments))
	for _, cs := range c.CustomerSegments {
		out = append(out, labeled{cs.ID, cs.Name})
	}
	return out
}

func propositionItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.ValuePropositions))
	for _, vp := range c.ValuePropositions {
		out = append(out, labeled{vp.ID, vp.Name})
	}
	return out
}

func channelItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.Channels))
	for _, ch := range c.Channels {
		out = append(out, labeled{ch.ID, ch.Name})
	}
	return out
}

func relationshipItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.CustomerRelationships))
	for _, cr := range c.CustomerRelationships {
		out = append(out, labeled{cr.ID, cr.Name})
	}
	return out
}

func revenueItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.RevenueStreams))
	for _, rs := range c.RevenueStreams {
		out = append(out, labeled{rs.ID, rs.Name})
	}
	return out
}

func resourceItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.KeyResources))
	for _, kr := range c.KeyResources {
		out = append(out, labeled{kr.ID, kr.Name})
	}
	return out
}

func activityItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.KeyActivities))
	for _, ka := range c.KeyActivities {
		out = append(out, labeled{ka.ID, ka.Name})
	}
	return out
}

func partnershipItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.KeyPartnerships))
	for _, kp := range c.KeyPartnerships {
		out = append(out, labeled{kp.ID, kp.Name})
	}
	return out
}

func costItems(c *canvas.Canvas) []labeled {
	out := make([]labeled, 0, len(c.Costs))
	for _, cost := range c.Costs {
		out = append(out, labeled{cost.ID, cost.Name})
	}
	return out
}
