package lint

import (
	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/index"
)

// Run lints a parsed document of either generation and returns the ordered
// issue list. The version was decided once at parse time; shape dispatch
// happens here and nowhere else — rule bodies receive typed documents and
// an explicit index, never duck-typed maps.
func Run(doc *canvas.Document) []Issue {
	switch doc.Version {
	case canvas.VersionCurrent:
		if doc.Current == nil {
			return nil
		}
		return lintCurrent(doc.Current, index.Build(doc.Current))
	default:
		if doc.Legacy == nil {
			return nil
		}
		return lintLegacy(doc.Legacy, index.BuildLegacy(doc.Legacy))
	}
}
