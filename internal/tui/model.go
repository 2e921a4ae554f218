package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"mapexpr/internal/expr"
	"mapexpr/internal/geom"
)

// verdict is one evaluated candidate.
type verdict struct {
	name   string
	pt     geom.Point
	inside bool
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status  string
	warning string // last observer message, shown in the footer

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Expression under inspection
	node     *expr.Within
	polygon  geom.Polygon
	evalZoom uint8

	// Candidate features and their verdicts
	candidates []geom.Candidate
	verdicts   []verdict
	bbox       geom.BBox

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPolygon    bool
	showCandidates bool

	// inspect popup
	inspectPopup string

	// verdict table
	showTable bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		showSidebar:    false,
		helpVisible:    true,
		zoom:           1.0,
		status:         "mapexpr ready ─ open a within expression",
		showPolygon:    true,
		showCandidates: true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste candidate WKT (POINT or MULTIPOINT). Press Enter to evaluate; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// verdict table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file at launch (expression or feature file).
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// reEvaluate runs the expression over the current candidates and refreshes
// verdicts, the shared bbox, and the last observer warning.
func (m *Model) reEvaluate() {
	m.verdicts = m.verdicts[:0]
	m.warning = ""
	n := 0
	m.bbox = geom.BBox{}
	for _, ring := range m.polygon {
		for _, p := range ring {
			m.bbox.Extend(p, n)
			n++
		}
	}
	if m.node == nil {
		return
	}
	obs := expr.ObserverFunc(func(msg string) { m.warning = msg })
	for _, c := range m.candidates {
		id := geom.TileAt(c.Point, m.evalZoom)
		local := id.FromLonLat(c.Point)
		f := geom.NewPointFeature(local)
		in := m.node.Evaluate(expr.EvaluationContext{Feature: f, Canonical: &id, Observer: obs})
		m.verdicts = append(m.verdicts, verdict{name: c.Name, pt: c.Point, inside: in})
		m.bbox.Extend(c.Point, n)
		n++
	}
	if m.showTable {
		m.refreshTable()
	}
}
