package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/tidwall/gjson"

	"mapexpr/internal/expr"
	"mapexpr/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		switch ext {
		case ".geojson", ".json", ".csv", ".kml", ".wkt":
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads either a within expression (a JSON array whose first
// element is the operator tag) or a candidate feature file.
func (m *Model) loadPath(p string) {
	ext := strings.ToLower(filepath.Ext(p))
	if ext == ".json" || ext == ".geojson" {
		if data, err := os.ReadFile(p); err == nil {
			if v := gjson.ParseBytes(data); v.IsArray() {
				m.loadExpression(p, v)
				return
			}
		}
	}
	cands, _, err := geom.LoadCandidates(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.candidates = cands
	m.reEvaluate()
	m.status = fmt.Sprintf("loaded %s  candidates=%d inside=%d",
		filepath.Base(p), len(cands), m.insideCount())
}

func (m *Model) loadExpression(p string, v gjson.Result) {
	var ctx expr.ParsingContext
	node, err := expr.ParseWithin(v, &ctx)
	if err != nil {
		m.status = "parse error: " + err.Error()
		return
	}
	poly, ok := geom.PolygonFromGeoJSON(node.GeoJSON())
	if !ok {
		// guarded at parse time; only malformed ring data lands here
		m.status = "expression polygon has malformed rings"
		return
	}
	m.node = node
	m.polygon = poly
	m.reEvaluate()
	m.status = fmt.Sprintf("loaded expression %s  rings=%d", filepath.Base(p), len(poly))
	// reset viewport for the new reference polygon
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
}
