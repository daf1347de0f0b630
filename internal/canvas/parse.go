package canvas

import (
	"fmt"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Document is a parsed canvas of either generation. Exactly one of Current
// and Legacy is non-nil, matching Version. Raw keeps the untyped tree the
// version was detected from, for collaborators that walk the wire shape
// (the structural validator, path reporting).
type Document struct {
	Version Version
	Current *Canvas
	Legacy  *LegacyCanvas
	Raw     any
}

// Parse decodes a YAML or JSON canvas document, detects its generation and
// returns the typed form. JSON input is recognized by its first non-space
// byte; everything else goes through the YAML decoder (which also accepts
// JSON, so the sniff only decides who produces the untyped tree).
func Parse(data []byte) (*Document, error) {
	var raw any
	if isJSON(data) {
		parsed, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		raw = parsed
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	doc := &Document{Version: DetectVersion(raw), Raw: raw}
	switch doc.Version {
	case VersionCurrent:
		var c Canvas
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode current shape: %w", err)
		}
		doc.Current = &c
	default:
		var l LegacyCanvas
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("decode legacy shape: %w", err)
		}
		doc.Legacy = &l
	}
	return doc, nil
}

// Load reads and parses a document from the given filesystem.
func Load(fsys billy.Filesystem, path string) (*Document, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadFile is Load over the host filesystem.
func LoadFile(path string) (*Document, error) {
	return Load(osfs.New("/"), absOrSelf(path))
}

// Encode marshals a current-shape canvas back to YAML.
func Encode(c *Canvas) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal canvas: %w", err)
	}
	return data, nil
}

// absOrSelf resolves a path against the working directory so the
// root-anchored osfs sees the same file the caller named.
func absOrSelf(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func isJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}
