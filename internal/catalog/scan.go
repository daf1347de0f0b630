package catalog

import (
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/canvaskit/canvaslint/internal/canvas"
	"github.com/canvaskit/canvaslint/internal/lint"
	"github.com/canvaskit/canvaslint/internal/validate"
)

// canvasGlob matches the document extensions the loader understands.
const canvasGlob = "**/*.{yaml,yml,json}"

// Scan walks a workspace filesystem for canvas documents, lints each and
// records the results under a new run. Unparseable or structurally invalid
// files are logged and skipped rather than aborting the scan; one broken
// file must not hide the rest of the workspace. Returns the run id and the
// ordered summary.
func Scan(fsys fs.FS, workspace string, store *Store) (string, []Entry, error) {
	matches, err := doublestar.Glob(fsys, canvasGlob)
	if err != nil {
		return "", nil, fmt.Errorf("glob workspace: %w", err)
	}
	sort.Strings(matches)

	runID, err := store.BeginRun(workspace)
	if err != nil {
		return "", nil, err
	}

	for _, path := range matches {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			log.Printf("catalog: read %s: %v", path, err)
			continue
		}
		doc, err := canvas.Parse(data)
		if err != nil {
			log.Printf("catalog: skip %s: %v", path, err)
			continue
		}
		if res := validate.Check(doc.Raw); !res.Valid {
			log.Printf("catalog: skip %s: %d structural error(s)", path, len(res.Errors))
			continue
		}
		issues := lint.Run(doc)
		if err := store.AddCanvas(runID, path, string(doc.Version), issues); err != nil {
			return "", nil, err
		}
	}

	entries, err := store.Summary(runID)
	if err != nil {
		return "", nil, err
	}
	return runID, entries, nil
}
