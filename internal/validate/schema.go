package validate

import (
	"encoding/json"
	"fmt"

	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/invopop/jsonschema"
)

// Schema exports a JSON Schema for the current document shape, generated
// from the typed model so the two can never drift apart.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: false,
		ExpandedStruct: true,
	}
	s := r.Reflect(&canvas.Canvas{})
	s.Title = "Business Model Canvas (2.0)"
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
