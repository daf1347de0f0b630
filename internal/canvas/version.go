package canvas

// legacySignal names the flat reference field whose presence on the first
// element of a relating array marks the legacy shape.
var relatingArrays = []struct {
	key          string
	legacySignal []string
}{
	{"fits", []string{"value_proposition", "customer_segment"}},
	{"channels", []string{"customer_segments"}},
	{"customer_relationships", []string{"customer_segments"}},
	{"revenue_streams", []string{"customer_segments", "value_proposition"}},
	{"key_resources", []string{"value_propositions"}},
	{"key_partnerships", []string{"key_resources", "key_activities"}},
}

// DetectVersion decides which generation a parsed document belongs to.
// It is total: any input, object or not, yields a version without panicking.
// Priority: the explicit version field, then the cost shape, then the first
// element of each relating array in fixed order, then the legacy default.
func DetectVersion(doc any) Version {
	root, ok := doc.(map[string]any)
	if !ok {
		return VersionLegacy
	}

	if v, ok := root["version"].(string); ok {
		switch v {
		case string(VersionLegacy):
			return VersionLegacy
		case string(VersionCurrent):
			return VersionCurrent
		}
	}

	// Cost shape: a cost_structure wrapper only ever existed in the legacy
	// shape; a top-level costs array with relation objects only in the
	// current one.
	if _, ok := root["cost_structure"].(map[string]any); ok {
		return VersionLegacy
	}
	if costs, ok := root["costs"].([]any); ok {
		if first, ok := firstObject(costs); ok {
			if hasRelationKeys(first) {
				return VersionCurrent
			}
		}
	}

	for _, arr := range relatingArrays {
		items, ok := root[arr.key].([]any)
		if !ok {
			continue
		}
		first, ok := firstObject(items)
		if !ok {
			continue
		}
		if hasRelationKeys(first) {
			return VersionCurrent
		}
		for _, field := range arr.legacySignal {
			if _, ok := first[field]; ok {
				return VersionLegacy
			}
		}
	}

	// No signal at all (e.g. a document with only meta).
	return VersionLegacy
}

func firstObject(items []any) (map[string]any, bool) {
	if len(items) == 0 {
		return nil, false
	}
	m, ok := items[0].(map[string]any)
	return m, ok
}

func hasRelationKeys(m map[string]any) bool {
	if _, ok := m["for"].(map[string]any); ok {
		return true
	}
	if _, ok := m["from"].(map[string]any); ok {
		return true
	}
	return false
}
