// Package validate is the structural gate in front of the linter: it checks
// that an untyped parsed tree has the container shapes and identifier
// prefixes a canvas document promises, without resolving any references.
// Reference integrity is the linter's job; this package only keeps garbage
// from reaching it.
package validate

import (
	"fmt"

	"github.com/canvaskit/canvaslint/internal/canvas"
)

// Result is the validator's verdict.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError locates one structural problem.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var collectionKinds = map[string]canvas.Kind{
	"customer_segments":      canvas.KindCustomerSegment,
	"value_propositions":     canvas.KindValueProposition,
	"fits":                   canvas.KindFit,
	"channels":               canvas.KindChannel,
	"customer_relationships": canvas.KindRelationship,
	"revenue_streams":        canvas.KindRevenueStream,
	"key_resources":          canvas.KindKeyResource,
	"key_activities":         canvas.KindKeyActivity,
	"key_partnerships":       canvas.KindPartnership,
	"costs":                  canvas.KindCost,
}

// Order collections are visited in, for stable error lists.
var collectionOrder = []string{
	"customer_segments", "value_propositions", "fits", "channels",
	"customer_relationships", "revenue_streams", "key_resources",
	"key_activities", "key_partnerships", "costs",
}

// Check validates an untyped parsed tree. It never throws for any input;
// non-object roots simply come back invalid.
func Check(doc any) Result {
	var errs []FieldError
	fail := func(path, format string, args ...any) {
		errs = append(errs, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	root, ok := doc.(map[string]any)
	if !ok {
		fail("/", "document must be an object")
		return Result{Valid: false, Errors: errs}
	}

	if v, present := root["version"]; present {
		if _, ok := v.(string); !ok {
			fail("/version", "version must be a string")
		}
	}

	for _, key := range collectionOrder {
		raw, present := root[key]
		if !present {
			continue
		}
		items, ok := raw.([]any)
		if !ok {
			fail("/"+key, "%s must be an array", key)
			continue
		}
		checkEntities(key, items, collectionKinds[key], fail)
	}

	// Legacy cost wrapper: same entity checks, one level deeper.
	if raw, present := root["cost_structure"]; present {
		wrapper, ok := raw.(map[string]any)
		if !ok {
			fail("/cost_structure", "cost_structure must be an object")
		} else if rawCosts, present := wrapper["costs"]; present {
			if items, ok := rawCosts.([]any); ok {
				checkEntities("cost_structure/costs", items, canvas.KindCost, fail)
			} else {
				fail("/cost_structure/costs", "costs must be an array")
			}
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func checkEntities(key string, items []any, want canvas.Kind, fail func(string, string, ...any)) {
	for i, item := range items {
		path := fmt.Sprintf("/%s/%d", key, i)
		entity, ok := item.(map[string]any)
		if !ok {
			fail(path, "entry must be an object")
			continue
		}
		id, ok := entity["id"].(string)
		if !ok || id == "" {
			fail(path+"/id", "entry must carry a non-empty string id")
			continue
		}
		if got := canvas.KindOf(id); got != want {
			fail(path+"/id", "id %q has prefix of kind %s, expected %s", id, got, want)
		}
		for _, rel := range []string{"for", "from"} {
			if raw, present := entity[rel]; present {
				if _, ok := raw.(map[string]any); !ok {
					fail(path+"/"+rel, "%s must be an object of id arrays", rel)
				}
			}
		}
	}
}
